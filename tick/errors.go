package tick

import "fmt"

// ============================================================
// Decode Errors
// ============================================================

// ErrorKind identifies a class of decode failure.
type ErrorKind uint8

const (
	// ErrInvalidCharacter: a byte that is neither a literal nor the
	// escape marker appeared outside an escape sequence.
	ErrInvalidCharacter ErrorKind = iota

	// ErrTruncatedEscape: the input ended in the middle of an escape
	// sequence.
	ErrTruncatedEscape

	// ErrInvalidHexDigit: an escape sequence contained something other
	// than two uppercase hex digits.
	ErrInvalidHexDigit

	// ErrNonCanonicalEscape: a hex escape decoded to a byte whose
	// canonical form is not a hex escape (a literal or the marker).
	ErrNonCanonicalEscape
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidCharacter:
		return "invalid character"
	case ErrTruncatedEscape:
		return "truncated escape"
	case ErrInvalidHexDigit:
		return "invalid hex digit"
	case ErrNonCanonicalEscape:
		return "non-canonical escape"
	default:
		return "unknown"
	}
}

// DecodeError describes why an input is not a valid canonical encoding.
// Offset is the byte position of the offending input. Byte holds the
// offending input byte, or the decoded value for a non-canonical escape.
type DecodeError struct {
	Kind   ErrorKind
	Offset int
	Byte   byte
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case ErrInvalidCharacter:
		return fmt.Sprintf("invalid byte 0x%02X at offset %d", e.Byte, e.Offset)
	case ErrTruncatedEscape:
		return fmt.Sprintf("truncated escape sequence at offset %d", e.Offset)
	case ErrInvalidHexDigit:
		if e.Byte >= 'a' && e.Byte <= 'f' {
			return fmt.Sprintf("lowercase hex digit %q at offset %d, escapes use uppercase hex", e.Byte, e.Offset)
		}
		return fmt.Sprintf("invalid hex digit %q at offset %d", e.Byte, e.Offset)
	case ErrNonCanonicalEscape:
		return fmt.Sprintf("non-canonical escape `%02X at offset %d", e.Byte, e.Offset)
	default:
		return fmt.Sprintf("invalid encoding at offset %d", e.Offset)
	}
}
