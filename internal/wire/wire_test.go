package wire

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func loadRFC8448Message(t *testing.T) []byte {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("..", "..", "testdata", "rfc8448_certificate_message.hex"))
	require.NoError(t, err)
	b, err := hex.DecodeString(strings.TrimSpace(string(raw)))
	require.NoError(t, err)
	return b
}

func TestReadCertificateMessageHappyPath(t *testing.T) {
	raw := loadRFC8448Message(t)

	msg, err := ReadCertificateMessage(raw)
	require.NoError(t, err)
	require.Empty(t, msg.RequestContext)
	require.Len(t, msg.CertificateEntries, 1)
	require.Equal(t, 805, len(msg.CertificateEntries[0].Data))
	require.Empty(t, msg.CertificateEntries[0].Extensions)
}

func TestCertificateMessageRoundTrip(t *testing.T) {
	raw := loadRFC8448Message(t)

	msg, err := ReadCertificateMessage(raw)
	require.NoError(t, err)

	out, err := WriteCertificateMessage(msg)
	require.NoError(t, err)
	require.Equal(t, raw, out)
}

func TestReadCertificateMessageTrailingData(t *testing.T) {
	raw := loadRFC8448Message(t)
	withExtra := append(append([]byte{}, raw...), 0x00)

	_, err := ReadCertificateMessage(withExtra)
	require.Error(t, err)
	var wireErr *Error
	require.ErrorAs(t, err, &wireErr)
	require.Equal(t, KindMalformedInput, wireErr.Kind)
}

func TestReadCertificateMessageEmptyEntryList(t *testing.T) {
	// request_context empty, certificate_list empty: 0x00 0x00 0x00 0x00
	raw := []byte{0x00, 0x00, 0x00, 0x00}

	msg, err := ReadCertificateMessage(raw)
	require.NoError(t, err)
	require.Empty(t, msg.CertificateEntries)

	out, err := WriteCertificateMessage(msg)
	require.NoError(t, err)
	require.Equal(t, raw, out)
}

func TestReadCertificateMessageShortHeader(t *testing.T) {
	_, err := ReadCertificateMessage([]byte{0x00})
	require.Error(t, err)
	var wireErr *Error
	require.ErrorAs(t, err, &wireErr)
	require.Equal(t, KindMalformedInput, wireErr.Kind)
}

func TestWriteVectorValueTooLarge(t *testing.T) {
	_, err := WriteVector(1, nil, make([]byte, maxWidth1+1))
	require.Error(t, err)
	var wireErr *Error
	require.ErrorAs(t, err, &wireErr)
	require.Equal(t, KindValueTooLarge, wireErr.Kind)
}

func TestBuildCertificateMessageAgreesWithWriteCertificateMessage(t *testing.T) {
	raw := loadRFC8448Message(t)
	msg, err := ReadCertificateMessage(raw)
	require.NoError(t, err)

	viaWrite, err := WriteCertificateMessage(msg)
	require.NoError(t, err)
	viaBuilder, err := BuildCertificateMessage(msg)
	require.NoError(t, err)

	require.Equal(t, viaWrite, viaBuilder)
	require.Equal(t, raw, viaBuilder)
}

func TestReadWriteLargeVector(t *testing.T) {
	contents := make([]byte, 70000)
	for i := range contents {
		contents[i] = byte(i)
	}
	out, err := WriteVector(3, nil, contents)
	require.NoError(t, err)

	vec, rest, err := ReadVector(3, out)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, contents, vec)
}
