package cli

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// ProgressReporter reports progress through a batch of files.
type ProgressReporter interface {
	Start(total int)
	Step(path string, ok bool)
	Finish()
}

// SimpleProgress prints one line per processed file.
type SimpleProgress struct {
	mu      sync.Mutex
	total   int
	current int
	failed  int
	started time.Time
	writer  io.Writer
}

// NewProgressReporter creates a new progress reporter that writes to w.
// If w is nil, it defaults to os.Stderr.
func NewProgressReporter(w io.Writer) ProgressReporter {
	if w == nil {
		w = os.Stderr
	}
	return &SimpleProgress{writer: w}
}

// Start initializes the reporter with the number of files.
func (p *SimpleProgress) Start(total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.total = total
	p.current = 0
	p.failed = 0
	p.started = time.Now()
}

// Step records one processed file.
func (p *SimpleProgress) Step(path string, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current++
	mark := "ok"
	if !ok {
		p.failed++
		mark = "FAIL"
	}
	fmt.Fprintf(p.writer, "[%d/%d] %-4s %s\n", p.current, p.total, mark, path)
}

// Finish prints the totals.
func (p *SimpleProgress) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.writer, "checked %d file(s), %d failed, in %s\n",
		p.current, p.failed, time.Since(p.started).Round(time.Millisecond))
}

// NoProgress discards progress.
type NoProgress struct{}

func (NoProgress) Start(int)         {}
func (NoProgress) Step(string, bool) {}
func (NoProgress) Finish()           {}
