// Package pass1 implements the certificate-compressor's semantic
// substitution pass: well-known certificate bodies are swapped for short
// identifiers on compress, and identifiers are expanded back to their full
// certificate bodies on decompress.
//
// Substitution relies on identifiers and certificate DER encodings being
// disjoint by construction: every built-in identifier is a fixed 16 bytes,
// far shorter than any complete X.509 DER certificate, so a decompressor
// can never mistake a literal (non-substituted) short cert_data field for
// an identifier. Callers supplying a custom lookup must preserve that
// disjointness themselves; nothing in this package can detect a violation
// at runtime.
package pass1

import (
	"github.com/dennisjackson/certcompress/internal/pass1/builtins"
	"github.com/dennisjackson/certcompress/internal/wire"
)

// IDLookup maps a certificate's DER bytes to its short identifier. It
// returns ok=false when cert is not one of the sender's well-known
// certificates, in which case the entry is left untouched.
type IDLookup func(cert []byte) (id []byte, ok bool)

// CertLookup maps a short identifier back to the certificate DER bytes it
// stands for. It returns ok=false when id is not recognized, in which case
// the entry is passed through unchanged (it was never substituted).
type CertLookup func(id []byte) (cert []byte, ok bool)

// Compressor substitutes recognized certificates for identifiers.
type Compressor struct {
	Lookup IDLookup
	custom bool
}

// NewCompressor returns a Compressor backed by the built-in table.
func NewCompressor() *Compressor {
	return &Compressor{Lookup: builtins.CertToIdentifier}
}

// NewCompressorWithLookup returns a Compressor backed by a caller-supplied
// lookup function, for testing or for datasets other than the built-in one.
func NewCompressorWithLookup(lookup IDLookup) *Compressor {
	return &Compressor{Lookup: lookup, custom: true}
}

// Compress rewrites every CertificateEntry in m whose cert_data matches a
// known certificate, replacing it with the matching identifier. Unmatched
// entries are left untouched.
func (c *Compressor) Compress(m *wire.CertificateMessage) *wire.CertificateMessage {
	out := &wire.CertificateMessage{
		RequestContext:     m.RequestContext,
		CertificateEntries: make([]wire.CertificateEntry, len(m.CertificateEntries)),
	}
	for i, entry := range m.CertificateEntries {
		id, ok := c.Lookup(entry.Data)
		if c.custom {
			debugCheckIDAgreement(entry.Data, id, ok)
		}
		if ok {
			entry.Data = id
		}
		out.CertificateEntries[i] = entry
	}
	return out
}

// CompressToBytes parses raw as a CertificateMessage, substitutes
// recognized certificates, and re-serializes the result.
func (c *Compressor) CompressToBytes(raw []byte) ([]byte, error) {
	msg, err := wire.ReadCertificateMessage(raw)
	if err != nil {
		return nil, err
	}
	return wire.WriteCertificateMessage(c.Compress(msg))
}

// Decompressor expands identifiers back to their original certificates.
type Decompressor struct {
	Lookup CertLookup
	custom bool
}

// NewDecompressor returns a Decompressor backed by the built-in table.
func NewDecompressor() *Decompressor {
	return &Decompressor{Lookup: builtins.IdentifierToCert}
}

// NewDecompressorWithLookup returns a Decompressor backed by a
// caller-supplied lookup function.
func NewDecompressorWithLookup(lookup CertLookup) *Decompressor {
	return &Decompressor{Lookup: lookup, custom: true}
}

// Decompress expands every CertificateEntry in m whose cert_data matches a
// known identifier, replacing it with the full certificate. Entries that
// were never substituted (their cert_data is not a recognized identifier)
// are left untouched.
func (d *Decompressor) Decompress(m *wire.CertificateMessage) *wire.CertificateMessage {
	out := &wire.CertificateMessage{
		RequestContext:     m.RequestContext,
		CertificateEntries: make([]wire.CertificateEntry, len(m.CertificateEntries)),
	}
	for i, entry := range m.CertificateEntries {
		cert, ok := d.Lookup(entry.Data)
		if d.custom {
			debugCheckCertAgreement(entry.Data, cert, ok)
		}
		if ok {
			entry.Data = cert
		}
		out.CertificateEntries[i] = entry
	}
	return out
}

// DecompressToBytes parses raw as a CertificateMessage, expands recognized
// identifiers back to full certificates, and re-serializes the result.
func (d *Decompressor) DecompressToBytes(raw []byte) ([]byte, error) {
	msg, err := wire.ReadCertificateMessage(raw)
	if err != nil {
		return nil, err
	}
	return wire.WriteCertificateMessage(d.Decompress(msg))
}
