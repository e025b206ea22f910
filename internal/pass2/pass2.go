// Package pass2 implements the certificate compressor's generic entropy
// coding pass: a dictionary-primed general-purpose compressor run over
// pass 1's output, with a strict output-size ceiling enforced on decode so
// a hostile peer cannot turn a small compressed frame into an unbounded
// allocation.
package pass2

// Algorithm is one RFC 8879 §6 registered certificate compression
// algorithm. The zstd implementation is the default; zlib and Brotli are
// carried as alternates behind the same interface so a deployment can
// negotiate whichever its peer supports.
type Algorithm interface {
	// Compress returns plaintext run through the algorithm.
	Compress(plaintext []byte) ([]byte, error)
	// Decompress inflates compressed, refusing to produce more than
	// maxSize bytes of output. Producing (or attempting to produce) more
	// is reported as a KindOutputTooLarge Error.
	Decompress(compressed []byte, maxSize int) ([]byte, error)
}

// CertificateCompressionAlgorithmID is the RFC 8879 §6 registry codepoint
// for a given algorithm, as negotiated in the TLS compress_certificate
// extension.
type CertificateCompressionAlgorithmID uint16

const (
	AlgorithmZlib      CertificateCompressionAlgorithmID = 1
	AlgorithmBrotli    CertificateCompressionAlgorithmID = 2
	AlgorithmZstandard CertificateCompressionAlgorithmID = 3
)
