package wire

import (
	"io"
	"sync"
)

// Pipe is a request body that is written on demand by a goroutine,
// so an encoded message is never buffered as a whole.
type Pipe struct {
	r      *io.PipeReader
	done   chan struct{}
	mu     sync.RWMutex
	err    error
	closed bool
}

func NewPipe(write func(io.Writer) error) *Pipe {

	pr, pw := io.Pipe()

	p := &Pipe{
		r:    pr,
		done: make(chan struct{}),
	}

	go func() {
		defer close(p.done)

		err := write(pw)

		p.mu.Lock()
		p.err = err
		p.mu.Unlock()

		// nil error: the reader receives io.EOF
		_ = pw.CloseWithError(err)
	}()

	return p
}

func (p *Pipe) Read(out []byte) (int, error) {

	p.mu.RLock()
	closed := p.closed
	p.mu.RUnlock()

	if closed {
		return 0, io.EOF
	}

	return p.r.Read(out)
}

// Close stops an unfinished write and returns the write error, if any.
func (p *Pipe) Close() error {

	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	_ = p.r.Close()
	<-p.done

	p.mu.RLock()
	err := p.err
	p.mu.RUnlock()

	if err == io.ErrClosedPipe {
		// interrupted by Close
		return nil
	}

	return err
}
