package wire

import "golang.org/x/crypto/cryptobyte"

// BuildCertificateMessage serializes m using cryptobyte.Builder rather than
// WriteCertificateMessage's manual length-prefix arithmetic. It exists so
// fixtures (fuzz seeds, test vectors) can be constructed through a second,
// independent encoding path and cross-checked against the package's own
// writer — the same cryptobyte.Builder idiom the teacher's
// key_schedule.go and tfyl-utls's cert_compression.go use for TLS
// length-prefixed fields.
func BuildCertificateMessage(m *CertificateMessage) ([]byte, error) {
	var b cryptobyte.Builder
	b.AddUint8LengthPrefixed(func(child *cryptobyte.Builder) {
		child.AddBytes(m.RequestContext)
	})
	b.AddUint24LengthPrefixed(func(child *cryptobyte.Builder) {
		for _, entry := range m.CertificateEntries {
			child.AddUint24LengthPrefixed(func(grandchild *cryptobyte.Builder) {
				grandchild.AddBytes(entry.Data)
			})
			child.AddUint16LengthPrefixed(func(grandchild *cryptobyte.Builder) {
				grandchild.AddBytes(entry.Extensions)
			})
		}
	})
	return b.Bytes()
}
