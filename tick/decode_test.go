package tick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		want    []byte
	}{
		{"empty", "", []byte{}},
		{"ascii", "hello world!", []byte("hello world!")},
		{"whitespace", "hello world!\r\n\thi there", []byte("hello world!\r\n\thi there")},
		{"doubled marker", "``", []byte("`")},
		{"high byte", "`FF", []byte{0xFF}},
		{"binary pair", "`00`FF", []byte{0x00, 0xFF}},
		{"emoji", "hello, world! `F0`9F`99`82", []byte("hello, world! 🙂")},
		{"escape at start", "`00 tail", []byte("\x00 tail")},
		{"marker run", "````", []byte("``")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.encoded))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			got, err = DecodeString(tt.encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		kind    ErrorKind
		offset  int
	}{
		{"raw control byte", "\x01", ErrInvalidCharacter, 0},
		{"raw nul", "\x00", ErrInvalidCharacter, 0},
		{"raw high byte", "\xFF", ErrInvalidCharacter, 0},
		{"control after ascii", "ok\x0B", ErrInvalidCharacter, 2},
		{"lone marker", "`", ErrTruncatedEscape, 0},
		{"half hex", "`F", ErrTruncatedEscape, 0},
		{"trailing marker", "`F0`", ErrTruncatedEscape, 3},
		{"trailing half hex", "`F0`9", ErrTruncatedEscape, 3},
		{"lowercase hex", "`fe", ErrInvalidHexDigit, 1},
		{"lowercase low digit", "`0e", ErrInvalidHexDigit, 2},
		{"lowercase both", "`f0", ErrInvalidHexDigit, 1},
		{"bad high digit", "`GE", ErrInvalidHexDigit, 1},
		{"bad low digit", "`0G", ErrInvalidHexDigit, 2},
		{"bad after lowercase", "`fG", ErrInvalidHexDigit, 1},
		{"escaped literal", "`65", ErrNonCanonicalEscape, 0},
		{"escaped space", "`20", ErrNonCanonicalEscape, 0},
		{"escaped marker value", "`60", ErrNonCanonicalEscape, 0},
		{"error after valid units", "ok`00`61", ErrNonCanonicalEscape, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.encoded))
			require.Error(t, err)
			assert.Nil(t, got, "no partial output on failure")

			var derr *DecodeError
			require.ErrorAs(t, err, &derr)
			assert.Equal(t, tt.kind, derr.Kind)
			assert.Equal(t, tt.offset, derr.Offset)
		})
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	raw := []byte("bytes: \x00\x01\x02\x03 and a ` marker \xFE\xFF")
	decoded, err := Decode(Encode(raw))
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
}

func TestAppendDecode_PreservesPrefix(t *testing.T) {
	dst := []byte("prefix: ")
	out, err := AppendDecode(dst, []byte("`00x"))
	require.NoError(t, err)
	assert.Equal(t, "prefix: \x00x", string(out))
}

func TestDecodeError_Messages(t *testing.T) {
	tests := []struct {
		err  *DecodeError
		want string
	}{
		{&DecodeError{Kind: ErrInvalidCharacter, Offset: 4, Byte: 0xFF}, "invalid byte 0xFF at offset 4"},
		{&DecodeError{Kind: ErrTruncatedEscape, Offset: 7}, "truncated escape sequence at offset 7"},
		{&DecodeError{Kind: ErrInvalidHexDigit, Offset: 1, Byte: 'g'}, `invalid hex digit 'g' at offset 1`},
		{&DecodeError{Kind: ErrInvalidHexDigit, Offset: 2, Byte: 'e'}, `lowercase hex digit 'e' at offset 2, escapes use uppercase hex`},
		{&DecodeError{Kind: ErrNonCanonicalEscape, Offset: 0, Byte: 0x60}, "non-canonical escape `60 at offset 0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "invalid character", ErrInvalidCharacter.String())
	assert.Equal(t, "truncated escape", ErrTruncatedEscape.String())
	assert.Equal(t, "invalid hex digit", ErrInvalidHexDigit.String())
	assert.Equal(t, "non-canonical escape", ErrNonCanonicalEscape.String())
}
