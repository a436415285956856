package progress

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// DefaultInterval is the delay between spinner frames.
const DefaultInterval = 200 * time.Millisecond

var frames = []string{"/", "-", `\`, "|"}

// Spinner animates a single terminal line until stopped.
type Spinner struct {
	w        io.Writer
	label    string
	interval time.Duration

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// Option configures a Spinner.
type Option func(*Spinner)

// WithInterval sets the frame delay. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(s *Spinner) {
		if d > 0 {
			s.interval = d
		}
	}
}

// Start draws label followed by a rotating frame to w until Stop is called.
// The caller owns the returned handle and usually defers Stop.
func Start(w io.Writer, label string, opts ...Option) *Spinner {
	s := &Spinner{
		w:        w,
		label:    label,
		interval: DefaultInterval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.run()
	return s
}

func (s *Spinner) run() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for i := 0; ; i = (i + 1) % len(frames) {
		fmt.Fprintf(s.w, "\r%s %s", s.label, frames[i])
		select {
		case <-ticker.C:
		case <-s.stop:
			// clear the line
			width := len(s.label) + 2
			fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", width))
			return
		}
	}
}

// Stop halts the animation and clears the line. It blocks until the
// goroutine has exited and is safe to call more than once.
func (s *Spinner) Stop() {
	s.once.Do(func() { close(s.stop) })
	<-s.done
}
