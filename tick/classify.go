package tick

// ============================================================
// Byte Classification
// ============================================================

// Marker is the escape byte. It introduces every escape sequence and,
// when doubled, represents itself.
const Marker byte = '`'

// role is the encoding role of a byte value.
type role uint8

const (
	roleLiteral role = iota // copied through unchanged
	roleMarker              // the escape marker; encoded as a doubled pair
	roleHex                 // encoded as marker + two uppercase hex digits
)

// roles maps every byte value to its role. Built once, never mutated.
var roles = buildRoleTable()

// buildRoleTable derives the role of each byte from the literal set:
// tab (0x09), newline (0x0A), carriage return (0x0D), and printable
// ASCII 0x20-0x7E except the backtick. Everything else, including DEL
// (0x7F) and all bytes above 0x7F, needs a hex escape.
func buildRoleTable() [256]role {
	var table [256]role
	for i := range table {
		table[i] = roleHex
	}
	table['\t'] = roleLiteral
	table['\n'] = roleLiteral
	table['\r'] = roleLiteral
	for b := 0x20; b <= 0x7E; b++ {
		table[b] = roleLiteral
	}
	table[Marker] = roleMarker
	return table
}

// RequiresEscape reports whether b cannot appear verbatim in an encoded
// string. It is true for the escape marker and for every byte outside
// the literal set.
func RequiresEscape(b byte) bool {
	return roles[b] != roleLiteral
}
