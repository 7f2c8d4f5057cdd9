package tick

import "io"

// ============================================================
// Streaming Encoder / Decoder
// ============================================================

// NewEncoder returns an io.WriteCloser that tick-encodes everything
// written to it and writes the encoded form to w. Encoding is a
// left-to-right single-pass transform, so the encoder holds no state
// between writes; Close only reports a previously recorded write error.
func NewEncoder(w io.Writer) io.WriteCloser {
	return &streamEncoder{w: w}
}

type streamEncoder struct {
	w   io.Writer
	buf []byte // reused encode scratch
	err error
}

func (e *streamEncoder) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	e.buf = AppendEncode(e.buf[:0], p)
	if _, err := e.w.Write(e.buf); err != nil {
		e.err = err
		return 0, err
	}
	return len(p), nil
}

func (e *streamEncoder) Close() error {
	return e.err
}

// NewDecoder returns an io.Reader that reads tick-encoded bytes from r
// and yields the decoded raw bytes. An escape sequence may be split
// across reads from r; the decoder carries it over to the next chunk.
// Malformed input surfaces as a *DecodeError whose Offset is absolute
// within the encoded stream.
func NewDecoder(r io.Reader) io.Reader {
	return &streamDecoder{r: r}
}

type streamDecoder struct {
	r      io.Reader
	in     []byte // unconsumed input: at most a partial escape plus the latest chunk
	out    []byte // decoded bytes not yet delivered
	outBuf []byte // backing storage for out, reused across fills
	offset int    // absolute stream offset of in[0]
	err    error
}

func (d *streamDecoder) Read(p []byte) (int, error) {
	for len(d.out) == 0 {
		if d.err != nil {
			return 0, d.err
		}
		d.fill()
	}
	n := copy(p, d.out)
	d.out = d.out[n:]
	return n, nil
}

// fill reads one chunk from the underlying reader and decodes every
// complete unit in it, leaving a partial trailing escape (at most two
// bytes) in d.in for the next fill.
func (d *streamDecoder) fill() {
	var chunk [4096]byte
	n, rerr := d.r.Read(chunk[:])
	d.in = append(d.in, chunk[:n]...)

	atEOF := rerr == io.EOF
	out, consumed, derr := appendDecode(d.outBuf[:0], d.in, atEOF)
	d.outBuf = out
	d.out = out
	if derr != nil {
		// Deliver the bytes decoded before the error, then the error.
		derr.Offset += d.offset
		d.err = derr
		return
	}
	d.in = append(d.in[:0], d.in[consumed:]...)
	d.offset += consumed

	if rerr != nil {
		// io.EOF with everything consumed is a clean end of stream;
		// appendDecode already rejected a dangling partial escape.
		d.err = rerr
	}
}
