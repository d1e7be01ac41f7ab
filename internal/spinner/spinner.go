// Package spinner draws an animated progress line while inputs are analyzed.
package spinner

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mattn/go-runewidth"
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Interval is the delay between frames.
const Interval = 80 * time.Millisecond

// Spinner reports "label done/total" on a single terminal line.
type Spinner struct {
	w     io.Writer
	label string
	total int
	done  atomic.Int64

	stop     chan struct{}
	cleared  chan struct{}
	stopOnce sync.Once
}

// Start begins drawing on w. Call Stop to clear the line.
func Start(w io.Writer, label string, total int) *Spinner {
	s := &Spinner{
		w:       w,
		label:   label,
		total:   total,
		stop:    make(chan struct{}),
		cleared: make(chan struct{}),
	}
	go s.run()
	return s
}

// Advance marks one more input as finished. Safe for concurrent use.
func (s *Spinner) Advance() {
	s.done.Add(1)
}

// Done returns the number of finished inputs.
func (s *Spinner) Done() int {
	return int(s.done.Load())
}

// Stop clears the line and waits for the drawing goroutine to exit.
func (s *Spinner) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
	<-s.cleared
}

func (s *Spinner) run() {
	ticker := time.NewTicker(Interval)
	defer ticker.Stop()

	width := 0
	for i := 0; ; i++ {
		select {
		case <-s.stop:
			fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", width)) //nolint:errcheck
			close(s.cleared)
			return
		case <-ticker.C:
			line := s.line(i)
			width = max(width, runewidth.StringWidth(line))
			fmt.Fprintf(s.w, "\r%s", line) //nolint:errcheck
		}
	}
}

func (s *Spinner) line(frame int) string {
	return fmt.Sprintf("%s %s %d/%d", frames[frame%len(frames)], s.label, s.Done(), s.total)
}
