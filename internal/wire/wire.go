// Package wire implements the RFC 8446 §4.4.2 framing used by the TLS 1.3
// Certificate handshake message: variable-width length-prefixed vectors,
// CertificateEntry records, and the CertificateMessage they compose into.
package wire

import "encoding/binary"

// Width-N length prefixes bound the vectors this package reads and writes.
// RFC 8446 only ever uses widths 1, 2 and 3.
const (
	maxWidth1 = 1<<8 - 1
	maxWidth2 = 1<<16 - 1
	maxWidth3 = 1<<24 - 1
)

// CertificateEntry is one element of a Certificate message's certificate_list.
type CertificateEntry struct {
	Data       []byte
	Extensions []byte
}

// CertificateMessage is the TLS 1.3 Certificate handshake message body
// (post handshake-header; type and length octets are not part of this type).
type CertificateMessage struct {
	RequestContext     []byte
	CertificateEntries []CertificateEntry
}

// ReadVector consumes a width-byte big-endian length prefix followed by that
// many bytes from data, returning the vector contents and the remaining
// input. width must be 1, 2 or 3.
func ReadVector(width int, data []byte) (vec, rest []byte, err error) {
	if len(data) < width {
		return nil, nil, newMalformed("short vector length prefix")
	}
	length, err := readUint(data[:width])
	if err != nil {
		return nil, nil, err
	}
	data = data[width:]
	if length > len(data) {
		return nil, nil, newMalformed("vector length exceeds remaining input")
	}
	return data[:length], data[length:], nil
}

// WriteVector appends a width-byte big-endian length prefix and then
// contents to dst, returning the extended slice.
func WriteVector(width int, dst, contents []byte) ([]byte, error) {
	if err := checkWidth(width, len(contents)); err != nil {
		return nil, err
	}
	dst = appendUint(dst, width, len(contents))
	return append(dst, contents...), nil
}

func readUint(b []byte) (int, error) {
	switch len(b) {
	case 1:
		return int(b[0]), nil
	case 2:
		return int(binary.BigEndian.Uint16(b)), nil
	case 3:
		return int(b[0])<<16 | int(b[1])<<8 | int(b[2]), nil
	default:
		return 0, newMalformed("unsupported length-prefix width")
	}
}

func appendUint(dst []byte, width, v int) []byte {
	switch width {
	case 1:
		return append(dst, byte(v))
	case 2:
		return append(dst, byte(v>>8), byte(v))
	case 3:
		return append(dst, byte(v>>16), byte(v>>8), byte(v))
	default:
		panic("wire: unsupported length-prefix width")
	}
}

func checkWidth(width, length int) error {
	var max int
	switch width {
	case 1:
		max = maxWidth1
	case 2:
		max = maxWidth2
	case 3:
		max = maxWidth3
	default:
		return newMalformed("unsupported length-prefix width")
	}
	if length > max {
		return newTooLarge("value exceeds maximum for its length-prefix width")
	}
	return nil
}

// ReadCertificateEntry parses one CertificateEntry: a width-3 cert_data
// vector followed by a width-2 extensions vector.
func ReadCertificateEntry(data []byte) (CertificateEntry, []byte, error) {
	certData, rest, err := ReadVector(3, data)
	if err != nil {
		return CertificateEntry{}, nil, err
	}
	extensions, rest, err := ReadVector(2, rest)
	if err != nil {
		return CertificateEntry{}, nil, err
	}
	return CertificateEntry{Data: certData, Extensions: extensions}, rest, nil
}

// WriteCertificateEntry serializes e and appends it to dst.
func WriteCertificateEntry(dst []byte, e CertificateEntry) ([]byte, error) {
	dst, err := WriteVector(3, dst, e.Data)
	if err != nil {
		return nil, err
	}
	return WriteVector(2, dst, e.Extensions)
}

// ReadCertificateMessage parses a full CertificateMessage from data. Every
// byte of data must belong to the message: a non-empty remainder after the
// certificate_list vector is parsed is reported as malformed input, matching
// RFC 8446's framing (the caller is expected to have already sliced out
// exactly this handshake message's body using the outer record/handshake
// header).
func ReadCertificateMessage(data []byte) (*CertificateMessage, error) {
	requestContext, rest, err := ReadVector(1, data)
	if err != nil {
		return nil, err
	}
	certList, rest, err := ReadVector(3, rest)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, newMalformed("trailing data inside Certificate message")
	}

	var entries []CertificateEntry
	for len(certList) > 0 {
		var entry CertificateEntry
		entry, certList, err = ReadCertificateEntry(certList)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return &CertificateMessage{
		RequestContext:     requestContext,
		CertificateEntries: entries,
	}, nil
}

// WriteCertificateMessage serializes m into its wire representation.
func WriteCertificateMessage(m *CertificateMessage) ([]byte, error) {
	certList := make([]byte, 0, 64)
	for _, e := range m.CertificateEntries {
		var err error
		certList, err = WriteCertificateEntry(certList, e)
		if err != nil {
			return nil, err
		}
	}

	out := make([]byte, 0, 1+len(m.RequestContext)+3+len(certList))
	out, err := WriteVector(1, out, m.RequestContext)
	if err != nil {
		return nil, err
	}
	return WriteVector(3, out, certList)
}
