package tick

// ============================================================
// Decoding
// ============================================================
//
// All decode entry points funnel into one forward pass, appendDecode.
// Validation and unescaping happen in the same scan, so there is no
// separate validator that could drift out of agreement with the
// decoder, and the allocating, in-place, and streaming paths accept
// exactly the same inputs.

// Decode validates encoded and returns the raw bytes it represents in a
// freshly allocated buffer. Only the canonical form is accepted: exactly
// the bytes Encode would produce for some input. On failure the returned
// error is a *DecodeError carrying the offending offset; no partial
// output is returned.
func Decode(encoded []byte) ([]byte, error) {
	// Decoding never expands, so the input length bounds the output.
	return AppendDecode(make([]byte, 0, len(encoded)), encoded)
}

// DecodeString is Decode for a string input.
func DecodeString(encoded string) ([]byte, error) {
	return Decode([]byte(encoded))
}

// AppendDecode appends the decoded form of encoded to dst and returns
// the extended slice, or a *DecodeError if encoded is not canonical.
//
// dst may share its backing array with encoded provided it starts at or
// before the start of encoded: the write position never passes the read
// position, because no escape sequence decodes to more bytes than it
// occupies. DecodeInPlace relies on this.
func AppendDecode(dst, encoded []byte) ([]byte, error) {
	out, _, err := appendDecode(dst, encoded, true)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeInPlace decodes buf into itself and returns the logical length
// of the decoded bytes now at the front of buf. Bytes past the returned
// length are stale input and must be ignored. On failure it returns 0
// and a *DecodeError; the front of buf may already have been rewritten.
func DecodeInPlace(buf []byte) (int, error) {
	// Appending into buf[:0] rewrites buf from the front. The append
	// never reallocates because the output cannot outgrow cap(buf),
	// and never overtakes the scan because every escape sequence is
	// longer than the byte it decodes to.
	out, err := AppendDecode(buf[:0], buf)
	if err != nil {
		return 0, err
	}
	return len(out), nil
}

// appendDecode is the single decode pass. It consumes complete encoded
// units from src, appending decoded bytes to dst, and returns the
// extended slice and the number of input bytes consumed.
//
// A unit is a literal byte, a doubled marker, or a marker plus two hex
// digits. If src ends inside a unit, the behavior depends on atEOF:
// when true this is a truncation error, when false the partial unit is
// left unconsumed for the caller to retry with more input. Errors other
// than truncation do not depend on atEOF.
func appendDecode(dst, src []byte, atEOF bool) ([]byte, int, *DecodeError) {
	run := 0 // start of the current literal run
	i := 0
	for i < len(src) {
		switch roles[src[i]] {
		case roleLiteral:
			i++
		case roleHex:
			dst = append(dst, src[run:i]...)
			return dst, i, &DecodeError{Kind: ErrInvalidCharacter, Offset: i, Byte: src[i]}
		case roleMarker:
			dst = append(dst, src[run:i]...)
			run = i
			if i+1 == len(src) || (src[i+1] != Marker && i+2 == len(src)) {
				if atEOF {
					return dst, i, &DecodeError{Kind: ErrTruncatedEscape, Offset: i}
				}
				return dst, i, nil
			}
			if src[i+1] == Marker {
				dst = append(dst, Marker)
				i += 2
				run = i
				continue
			}
			hi, ok := unhex(src[i+1])
			if !ok {
				return dst, i, &DecodeError{Kind: ErrInvalidHexDigit, Offset: i + 1, Byte: src[i+1]}
			}
			lo, ok := unhex(src[i+2])
			if !ok {
				return dst, i, &DecodeError{Kind: ErrInvalidHexDigit, Offset: i + 2, Byte: src[i+2]}
			}
			b := hi<<4 | lo
			if roles[b] != roleHex {
				// The decoded byte has another canonical form: a literal
				// is written as itself, the marker as a doubled pair.
				return dst, i, &DecodeError{Kind: ErrNonCanonicalEscape, Offset: i, Byte: b}
			}
			dst = append(dst, b)
			i += 3
			run = i
		}
	}
	return append(dst, src[run:]...), i, nil
}

// unhex returns the value of an uppercase hex digit.
func unhex(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
