package pass2

import (
	"bytes"
	"io"

	"github.com/andybalholm/brotli"
)

// BrotliAlgorithm implements RFC 8879's Brotli (codepoint 2) alternate,
// grounded in the CertCompressionBrotli branch of a utls fork's
// cert_compression.go. andybalholm/brotli does not expose custom
// dictionary priming the way zlib and zstd do here, so this backend runs
// undictionaried.
type BrotliAlgorithm struct {
	quality int
}

// NewBrotliAlgorithm returns a BrotliAlgorithm at the given quality (0-11).
func NewBrotliAlgorithm(quality int) *BrotliAlgorithm {
	return &BrotliAlgorithm{quality: quality}
}

func (b *BrotliAlgorithm) Compress(plaintext []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := brotli.NewWriterLevel(&buf, b.quality)
	if _, err := w.Write(plaintext); err != nil {
		_ = w.Close()
		return nil, newCoderFailure("brotli: failed to write plaintext: " + err.Error())
	}
	if err := w.Close(); err != nil {
		return nil, newCoderFailure("brotli: failed to finalize stream: " + err.Error())
	}
	return buf.Bytes(), nil
}

func (b *BrotliAlgorithm) Decompress(compressed []byte, maxSize int) ([]byte, error) {
	r := brotli.NewReader(bytes.NewReader(compressed))

	out := make([]byte, maxSize)
	n, err := io.ReadFull(r, out)
	switch {
	case err == nil:
		// fall through to the overflow probe below
	case err == io.ErrUnexpectedEOF, err == io.EOF:
		return out[:n], nil
	default:
		return nil, newCoderFailure("brotli: decompression failed: " + err.Error())
	}

	var probe [1]byte
	if pn, _ := r.Read(probe[:]); pn > 0 {
		return nil, newTooLarge("brotli: decompressed output exceeds maximum size")
	}
	return out, nil
}
