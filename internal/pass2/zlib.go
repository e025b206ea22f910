package pass2

import (
	"bytes"
	"compress/zlib"
	"io"
)

// ZlibAlgorithm implements RFC 8879's zlib (codepoint 1) alternate, grounded
// in the dictionary-primed zlib compression quic-go historically used for
// the same RFC (github.com/lucas-clemente/quic-go's cert_compression.go).
type ZlibAlgorithm struct {
	dict  []byte
	level int
}

// NewZlibAlgorithm returns a ZlibAlgorithm at the given compression level
// (compress/zlib's BestCompression is a reasonable default), primed with
// dict (may be nil).
func NewZlibAlgorithm(level int, dict []byte) *ZlibAlgorithm {
	return &ZlibAlgorithm{dict: dict, level: level}
}

func (z *ZlibAlgorithm) Compress(plaintext []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevelDict(&buf, z.level, z.dict)
	if err != nil {
		return nil, newCoderFailure("zlib: failed to construct writer: " + err.Error())
	}
	if _, err := w.Write(plaintext); err != nil {
		_ = w.Close()
		return nil, newCoderFailure("zlib: failed to write plaintext: " + err.Error())
	}
	if err := w.Close(); err != nil {
		return nil, newCoderFailure("zlib: failed to finalize stream: " + err.Error())
	}
	return buf.Bytes(), nil
}

func (z *ZlibAlgorithm) Decompress(compressed []byte, maxSize int) ([]byte, error) {
	r, err := zlib.NewReaderDict(bytes.NewReader(compressed), z.dict)
	if err != nil {
		return nil, newCoderFailure("zlib: failed to construct reader: " + err.Error())
	}
	defer r.Close()

	out := make([]byte, maxSize)
	n, err := io.ReadFull(r, out)
	switch {
	case err == nil:
		// fall through to the overflow probe below
	case err == io.ErrUnexpectedEOF, err == io.EOF:
		return out[:n], nil
	default:
		return nil, newCoderFailure("zlib: decompression failed: " + err.Error())
	}

	var probe [1]byte
	if pn, _ := r.Read(probe[:]); pn > 0 {
		return nil, newTooLarge("zlib: decompressed output exceeds maximum size")
	}
	return out, nil
}
