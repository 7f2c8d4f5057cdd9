// Package tick implements tick encoding, a canonical backtick escape
// codec for embedding arbitrary binary data in text containers.
//
// Tick encoding maps any byte sequence to an ASCII-safe string. Bytes
// that are already printable ASCII (plus tab, newline, and carriage
// return) pass through unchanged, so mostly-ASCII payloads stay
// readable. Every other byte is escaped with a backtick:
//
//	`XX   a byte as two uppercase hex digits (`00, `FF, ...)
//	``    a literal backtick
//
// The encoding is canonical: every byte sequence has exactly one valid
// encoded form, and the decoder accepts only that form. A hex escape
// that could have been written as a literal or as a doubled backtick is
// rejected, as are lowercase hex digits.
//
// # Example
//
//	encoded := tick.Encode([]byte("hello, world! 🙂"))
//	// encoded == []byte("hello, world! `F0`9F`99`82")
//
//	raw, err := tick.Decode(encoded)
//	// raw == the original UTF-8 bytes
//
// # Decoding in place
//
// Decoded output is never longer than its encoded form, so a buffer can
// be decoded into itself without a second allocation:
//
//	n, err := tick.DecodeInPlace(buf)
//	// buf[:n] holds the decoded bytes
//
// # Streaming
//
// NewEncoder and NewDecoder wrap an io.Writer / io.Reader for payloads
// that should not be held in memory all at once. The buffer-based and
// streaming paths share one decode pass and accept exactly the same
// inputs.
package tick
