package fastcdc

import (
	"io"
)

// Chunks returns a sync driver that reads r and yields chunk descriptors on
// demand. A Chunker is not safe for concurrent use.
func (c *Config) Chunks(r io.Reader) *Chunker {
	return &Chunker{
		cfg:    c,
		reader: r,
		buf:    make([]byte, c.bufSize),
	}
}

// Chunker pulls bytes from a reader and splits them into chunk descriptors,
// one per Next call, in stream order.
type Chunker struct {
	cfg    *Config
	reader io.Reader

	buf        []byte
	start, end int
	eof        bool
	streamPos  uint64
}

// fill ensures the unconsumed window buf[start:end] holds at least maxSize
// bytes, unless the reader has been exhausted. It compacts the window to
// the front of buf before reading more.
func (ch *Chunker) fill() error {
	avail := ch.end - ch.start
	if ch.eof || avail >= ch.cfg.maxSize {
		return nil
	}

	copy(ch.buf[:avail], ch.buf[ch.start:ch.end])
	ch.start = 0
	ch.end = avail

	n, err := io.ReadFull(ch.reader, ch.buf[ch.end:])
	ch.end += n
	switch err {
	case nil:
		return nil
	case io.EOF, io.ErrUnexpectedEOF:
		ch.eof = true
		return nil
	default:
		return err
	}
}

// Next returns the next chunk descriptor, or io.EOF once the stream is
// fully consumed. A non-EOF error is always a *IoError.
func (ch *Chunker) Next() (Descriptor, error) {
	if err := ch.fill(); err != nil {
		if ch.cfg.logger != nil {
			ch.cfg.logger.Warn("fastcdc: reader error", "offset", ch.streamPos, "error", err)
		}
		return Descriptor{}, &IoError{Offset: ch.streamPos, Err: err}
	}

	if ch.end-ch.start == 0 {
		return Descriptor{}, io.EOF
	}

	// fill guarantees avail >= maxSize or eof, so findCutPoint never
	// needs more bytes than the window already holds.
	length, hash, _ := findCutPoint(ch.buf[ch.start:ch.end], ch.cfg, ch.eof)

	d := Descriptor{Offset: ch.streamPos, Length: uint64(length), Hash: hash}
	ch.start += length
	ch.streamPos += uint64(length)
	return d, nil
}

// ForEach calls fn with every chunk descriptor in order, stopping at the
// first error fn returns or when the stream is exhausted.
func (ch *Chunker) ForEach(fn func(Descriptor) error) error {
	for {
		d, err := ch.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(d); err != nil {
			return err
		}
	}
}
