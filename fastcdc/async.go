package fastcdc

import (
	"context"
	"io"

	"github.com/vitalvas/gocdc/xcmd"
)

// ChunksAsync returns a driver that chunks r on a single background
// goroutine, feeding a bounded channel the caller drains with Next. Use it
// when the caller wants to overlap chunking with other work, or wants
// cancellation of an in-progress read via context. Callers that don't need
// that should prefer Chunks.
func (c *Config) ChunksAsync(r io.Reader) *AsyncChunker {
	ctx, cancel := context.WithCancel(context.Background())
	group, _ := xcmd.ErrGroup(ctx)

	ac := &AsyncChunker{
		cancel:  cancel,
		group:   group,
		results: make(chan asyncResult, 1),
	}

	group.Go(func(ctx context.Context) error {
		defer close(ac.results)
		ch := c.Chunks(r)
		for {
			d, err := ch.Next()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				select {
				case ac.results <- asyncResult{err: err}:
				case <-ctx.Done():
				}
				return err
			}
			select {
			case ac.results <- asyncResult{desc: d}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	return ac
}

type asyncResult struct {
	desc Descriptor
	err  error
}

// AsyncChunker drives chunking on a background goroutine. Exactly one
// goroutine reads from the underlying source; Next is the only safe way for
// a consumer to observe its output, and must not be called concurrently
// with itself.
type AsyncChunker struct {
	cancel  context.CancelFunc
	group   *xcmd.Group
	results chan asyncResult
}

// Next returns the next chunk descriptor, io.EOF once the stream is
// exhausted, or ctx.Err() if ctx is cancelled first. A non-EOF,
// non-cancellation error is always an *IoError.
func (ac *AsyncChunker) Next(ctx context.Context) (Descriptor, error) {
	if err := ctx.Err(); err != nil {
		ac.cancel()
		return Descriptor{}, err
	}

	select {
	case r, ok := <-ac.results:
		if !ok {
			return Descriptor{}, io.EOF
		}
		if r.err != nil {
			return Descriptor{}, r.err
		}
		return r.desc, nil
	case <-ctx.Done():
		ac.cancel()
		return Descriptor{}, ctx.Err()
	}
}

// Close cancels the background goroutine and waits for it to exit. Safe to
// call after the stream has already been fully drained; call it whenever a
// caller stops consuming Next before seeing io.EOF, to avoid leaking the
// goroutine.
func (ac *AsyncChunker) Close() error {
	ac.cancel()
	return ac.group.Wait()
}

// ForEachAsync calls fn with every chunk descriptor in order, stopping at
// the first error (from fn, from chunking, or from ctx) or at EOF. It
// always closes the driver before returning.
func (ac *AsyncChunker) ForEachAsync(ctx context.Context, fn func(Descriptor) error) error {
	defer ac.Close()
	for {
		d, err := ac.Next(ctx)
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
