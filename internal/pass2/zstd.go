package pass2

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zstd"
)

const (
	zstdCompressionLevel = 20
	zstdWindowLog        = 24 // 16 MiB
	zstdWindowSize       = 1 << zstdWindowLog
)

// ZstdAlgorithm is the default pass-2 backend: Zstandard, pinned to the
// configuration this codec has always shipped with. Window size, level and
// dictionary are fixed at construction time; nothing about a call to
// Compress or Decompress can change them.
type ZstdAlgorithm struct {
	dict []byte
}

// NewZstdAlgorithm returns a ZstdAlgorithm primed with dict (may be nil for
// no dictionary).
func NewZstdAlgorithm(dict []byte) *ZstdAlgorithm {
	return &ZstdAlgorithm{dict: dict}
}

func (z *ZstdAlgorithm) encoderOptions() []zstd.EOption {
	opts := []zstd.EOption{
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(zstdCompressionLevel)),
		zstd.WithWindowSize(zstdWindowSize),
		// RFC 8879 frames are self-contained and size-checked by the
		// caller, so the frame checksum is switched off. The dictionary
		// is registered as raw content under id 0, so no dictionary id is
		// written to the frame. No option here controls the frame
		// content-size field, sets a pledged source size or enables
		// long-distance matching.
		zstd.WithEncoderCRC(false),
	}
	if len(z.dict) > 0 {
		opts = append(opts, zstd.WithEncoderDictRaw(0, z.dict))
	}
	return opts
}

func (z *ZstdAlgorithm) decoderOptions() []zstd.DOption {
	opts := []zstd.DOption{
		zstd.WithDecoderMaxWindow(zstdWindowSize),
		zstd.IgnoreChecksum(true),
	}
	if len(z.dict) > 0 {
		opts = append(opts, zstd.WithDecoderDictRaw(0, z.dict))
	}
	return opts
}

// Compress implements Algorithm.
func (z *ZstdAlgorithm) Compress(plaintext []byte) ([]byte, error) {
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf, z.encoderOptions()...)
	if err != nil {
		return nil, newCoderFailure("zstd: failed to construct encoder: " + err.Error())
	}
	if _, err := enc.Write(plaintext); err != nil {
		_ = enc.Close()
		return nil, newCoderFailure("zstd: failed to write plaintext: " + err.Error())
	}
	if err := enc.Close(); err != nil {
		return nil, newCoderFailure("zstd: failed to finalize frame: " + err.Error())
	}
	return buf.Bytes(), nil
}

// Decompress implements Algorithm. It enforces maxSize by reading at most
// maxSize bytes and then probing for one more: if that probe succeeds, the
// true decompressed size exceeds maxSize and the call fails with
// KindOutputTooLarge, regardless of how much memory the probe itself used.
func (z *ZstdAlgorithm) Decompress(compressed []byte, maxSize int) ([]byte, error) {
	dec, err := zstd.NewReader(bytes.NewReader(compressed), z.decoderOptions()...)
	if err != nil {
		return nil, newCoderFailure("zstd: failed to construct decoder: " + err.Error())
	}
	defer dec.Close()

	out := make([]byte, maxSize)
	n, err := io.ReadFull(dec, out)
	switch {
	case err == nil:
		// out was filled completely; there may still be more data.
	case err == io.ErrUnexpectedEOF, err == io.EOF:
		return out[:n], nil
	default:
		return nil, newCoderFailure("zstd: decompression failed: " + err.Error())
	}

	var probe [1]byte
	if pn, _ := dec.Read(probe[:]); pn > 0 {
		return nil, newTooLarge("zstd: decompressed output exceeds maximum size")
	}
	return out, nil
}
