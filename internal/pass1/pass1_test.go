package pass1

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dennisjackson/certcompress/internal/pass1/builtins"
	"github.com/dennisjackson/certcompress/internal/wire"
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

func loadUnknownCert(t *testing.T) []byte {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("..", "..", "testdata", "unknown_cert.der"))
	require.NoError(t, err)
	return b
}

// The RFC 8448 example certificate is itself one of the built-in entries
// (see DESIGN.md), so round-tripping it through pass 1 must shrink it.
func TestCompressSubstitutesKnownCertificate(t *testing.T) {
	raw := loadRFC8448Message(t)

	comp := NewCompressor()
	compressed, err := comp.CompressToBytes(raw)
	require.NoError(t, err)
	require.Less(t, len(compressed), len(raw))

	decomp := NewDecompressor()
	restored, err := decomp.DecompressToBytes(compressed)
	require.NoError(t, err)
	require.Equal(t, raw, restored)
}

func TestCompressLeavesUnknownCertificateUnchanged(t *testing.T) {
	unknown := loadUnknownCert(t)
	msg := &wire.CertificateMessage{
		CertificateEntries: []wire.CertificateEntry{{Data: unknown}},
	}
	raw, err := wire.WriteCertificateMessage(msg)
	require.NoError(t, err)

	comp := NewCompressor()
	compressed, err := comp.CompressToBytes(raw)
	require.NoError(t, err)
	require.Equal(t, raw, compressed)

	decomp := NewDecompressor()
	restored, err := decomp.DecompressToBytes(compressed)
	require.NoError(t, err)
	require.Equal(t, raw, restored)
}

func TestRoundTripEmptyEntryList(t *testing.T) {
	msg := &wire.CertificateMessage{}
	raw, err := wire.WriteCertificateMessage(msg)
	require.NoError(t, err)

	comp := NewCompressor()
	compressed, err := comp.CompressToBytes(raw)
	require.NoError(t, err)

	decomp := NewDecompressor()
	restored, err := decomp.DecompressToBytes(compressed)
	require.NoError(t, err)
	require.Equal(t, raw, restored)
}

func TestCustomLookupAgreesWithBuiltin(t *testing.T) {
	comp := NewCompressorWithLookup(builtins.CertToIdentifier)
	raw := loadRFC8448Message(t)
	compressed, err := comp.CompressToBytes(raw)
	require.NoError(t, err)
	require.Less(t, len(compressed), len(raw))
}
