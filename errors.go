package certcompress

import (
	"github.com/dennisjackson/certcompress/internal/pass2"
	"github.com/dennisjackson/certcompress/internal/wire"
)

// Kind is the codec's closed error taxonomy. Every error this package
// returns is a *Error with exactly one of these kinds; there is no open
// hierarchy to grow over time, matching the narrow failure surface a
// compression codec actually has.
type Kind int

const (
	// KindMalformedInput: the wire-format framing itself was invalid
	// (short reads, bad length prefixes, trailing bytes).
	KindMalformedInput Kind = iota
	// KindValueTooLarge: a field's length exceeds what its length-prefix
	// width can represent when the message is re-serialized, or
	// Decompress was given a maxSize that is not positive.
	KindValueTooLarge
	// KindOutputTooLarge: decompression would have produced more bytes
	// than the caller's requested maximum.
	KindOutputTooLarge
	// KindCoderFailure: the underlying entropy coder failed for a reason
	// unrelated to size (corrupt frame, checksum mismatch, and so on).
	KindCoderFailure
)

func (k Kind) String() string {
	switch k {
	case KindMalformedInput:
		return "malformed input"
	case KindValueTooLarge:
		return "value too large"
	case KindOutputTooLarge:
		return "output too large"
	case KindCoderFailure:
		return "coder failure"
	default:
		return "unknown"
	}
}

// Error is the only error type this package returns.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Kind.String() + ": " + e.Msg }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrMalformedInput = &Error{Kind: KindMalformedInput}
	ErrValueTooLarge  = &Error{Kind: KindValueTooLarge}
	ErrOutputTooLarge = &Error{Kind: KindOutputTooLarge}
	ErrCoderFailure   = &Error{Kind: KindCoderFailure}
)

// wrapWireError maps a *wire.Error onto the package's public Kind space.
// Any other error (should not happen; wire never returns anything else) is
// reported as a coder failure rather than panicking.
func wrapWireError(err error) error {
	if err == nil {
		return nil
	}
	if we, ok := err.(*wire.Error); ok {
		switch we.Kind {
		case wire.KindValueTooLarge:
			return &Error{Kind: KindValueTooLarge, Msg: we.Msg}
		default:
			return &Error{Kind: KindMalformedInput, Msg: we.Msg}
		}
	}
	return &Error{Kind: KindCoderFailure, Msg: err.Error()}
}

func wrapPass2Error(err error) error {
	if err == nil {
		return nil
	}
	if pe, ok := err.(*pass2.Error); ok {
		switch pe.Kind {
		case pass2.KindOutputTooLarge:
			return &Error{Kind: KindOutputTooLarge, Msg: pe.Msg}
		default:
			return &Error{Kind: KindCoderFailure, Msg: pe.Msg}
		}
	}
	return &Error{Kind: KindCoderFailure, Msg: err.Error()}
}
