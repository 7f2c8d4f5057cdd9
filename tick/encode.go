package tick

// ============================================================
// Encoding
// ============================================================

const hexDigits = "0123456789ABCDEF"

// Encode returns the canonical escaped form of raw. Literal bytes are
// copied through unchanged and every other byte becomes an escape
// sequence. Encoding never fails: every byte sequence has exactly one
// encoded form.
func Encode(raw []byte) []byte {
	// A mostly-ASCII payload barely expands; worst case is 3x.
	return AppendEncode(make([]byte, 0, len(raw)+len(raw)/2), raw)
}

// EncodeToString is Encode returning a string.
func EncodeToString(raw []byte) string {
	return string(Encode(raw))
}

// AppendEncode appends the canonical escaped form of raw to dst and
// returns the extended slice. Runs of literal bytes are copied in a
// single append rather than byte by byte, so long ASCII stretches cost
// one copy instead of one branch-and-write per byte.
func AppendEncode(dst, raw []byte) []byte {
	run := 0 // start of the current literal run
	for i := 0; i < len(raw); i++ {
		b := raw[i]
		switch roles[b] {
		case roleLiteral:
			continue
		case roleMarker:
			dst = append(dst, raw[run:i]...)
			dst = append(dst, Marker, Marker)
		case roleHex:
			dst = append(dst, raw[run:i]...)
			dst = append(dst, Marker, hexDigits[b>>4], hexDigits[b&0x0F])
		}
		run = i + 1
	}
	return append(dst, raw[run:]...)
}

// EncodedLen returns the exact number of bytes Encode produces for raw.
// Callers encoding into fixed storage can size their buffer with it.
func EncodedLen(raw []byte) int {
	n := len(raw)
	for _, b := range raw {
		switch roles[b] {
		case roleMarker:
			n++
		case roleHex:
			n += 2
		}
	}
	return n
}
