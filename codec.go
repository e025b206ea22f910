// Package certcompress implements RFC 8879 TLS Certificate Compression: a
// two-pass codec that substitutes well-known certificates for short
// identifiers (pass 1) and then runs a dictionary-primed general-purpose
// compressor over the result (pass 2). Compress applies pass2∘pass1;
// Decompress applies pass1∘pass2.
package certcompress

import (
	"github.com/dennisjackson/certcompress/internal/pass1"
	"github.com/dennisjackson/certcompress/internal/pass1/builtins"
	"github.com/dennisjackson/certcompress/internal/pass2"
)

// Algorithm re-exports the pass-2 entropy coder interface so callers can
// plug in their own without reaching into an internal package.
type Algorithm = pass2.Algorithm

// AlgorithmID is the RFC 8879 §6 registry codepoint negotiated in the TLS
// compress_certificate extension for a given algorithm.
type AlgorithmID = pass2.CertificateCompressionAlgorithmID

const (
	AlgorithmZlib      = pass2.AlgorithmZlib
	AlgorithmBrotli    = pass2.AlgorithmBrotli
	AlgorithmZstandard = pass2.AlgorithmZstandard
)

// Compressor is the composite compress = pass2 ∘ pass1 pipeline.
type Compressor struct {
	pass1 *pass1.Compressor
	pass2 Algorithm
}

// New returns a Compressor backed by the built-in substitution table and
// the default Zstandard backend, primed with the built-in dictionary.
func New() *Compressor {
	return &Compressor{
		pass1: pass1.NewCompressor(),
		pass2: pass2.NewZstdAlgorithm(builtins.Dictionary()),
	}
}

// NewWithAlgorithm returns a Compressor using a caller-supplied pass-2
// algorithm (see NewDecompressorWithAlgorithm for the matching half).
func NewWithAlgorithm(alg Algorithm) *Compressor {
	return &Compressor{pass1: pass1.NewCompressor(), pass2: alg}
}

// Compress runs raw (a serialized TLS 1.3 Certificate message) through
// pass 1 substitution and then pass 2 entropy coding.
func (c *Compressor) Compress(raw []byte) ([]byte, error) {
	substituted, err := c.pass1.CompressToBytes(raw)
	if err != nil {
		return nil, wrapWireError(err)
	}
	compressed, err := c.pass2.Compress(substituted)
	if err != nil {
		return nil, wrapPass2Error(err)
	}
	return compressed, nil
}

// Decompressor is the composite decompress = pass1 ∘ pass2 pipeline.
//
// pass 1 only ever expands cert_data fields (an identifier is always
// shorter than the certificate it stands for, by construction of the
// dataset) and never shrinks one, so the substituted intermediate form
// pass 2 decodes can never be larger than the final message. That makes
// maxSize itself a safe, tight cap to hand to pass 2: it never rejects an
// intermediate that could have decompressed to a final message within the
// caller's budget. The true enforcement point is the check against maxSize
// after pass 1 has expanded every identifier back to its full certificate.
// See DESIGN.md.
type Decompressor struct {
	pass1 *pass1.Decompressor
	pass2 Algorithm
}

// NewDecompressor returns a Decompressor backed by the built-in table and
// the default Zstandard backend, primed with the built-in dictionary.
func NewDecompressor() *Decompressor {
	return &Decompressor{
		pass1: pass1.NewDecompressor(),
		pass2: pass2.NewZstdAlgorithm(builtins.Dictionary()),
	}
}

// NewDecompressorWithAlgorithm returns a Decompressor using a
// caller-supplied pass-2 algorithm. Compressor and Decompressor must agree
// on the algorithm (and, for zstd/zlib, the dictionary) used for a given
// message.
func NewDecompressorWithAlgorithm(alg Algorithm) *Decompressor {
	return &Decompressor{pass1: pass1.NewDecompressor(), pass2: alg}
}

// Decompress runs compressed through pass 2 and then pass 1, returning at
// most maxSize bytes of the original serialized Certificate message, or a
// KindOutputTooLarge error if the true decompressed size exceeds it.
func (d *Decompressor) Decompress(compressed []byte, maxSize int) ([]byte, error) {
	if maxSize <= 0 {
		return nil, &Error{Kind: KindValueTooLarge, Msg: "maxSize must be positive"}
	}

	substituted, err := d.pass2.Decompress(compressed, maxSize)
	if err != nil {
		return nil, wrapPass2Error(err)
	}

	raw, err := d.pass1.DecompressToBytes(substituted)
	if err != nil {
		return nil, wrapWireError(err)
	}

	if len(raw) > maxSize {
		return nil, &Error{Kind: KindOutputTooLarge, Msg: "decompressed message exceeds maximum size"}
	}
	return raw, nil
}
