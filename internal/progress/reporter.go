// Package progress reports page rendering during a static export.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/schollz/progressbar/v3"
)

// Reporter receives one Update per page file written. Pages are rendered
// concurrently, so Update may be called from several goroutines and current
// may arrive out of order.
type Reporter interface {
	Start(total int)
	Update(current int, file string)
	Finish()
}

// NewReporter picks a line-based reporter under CI and a progress bar
// otherwise. Both write to stderr.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{Out: os.Stderr}
	}
	return &TerminalReporter{Out: os.Stderr}
}

// TerminalReporter draws a progress bar that names the last page written.
type TerminalReporter struct {
	Out io.Writer

	mu   sync.Mutex
	bar  *progressbar.ProgressBar
	high int
}

func (r *TerminalReporter) Start(total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.high = 0
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.Out),
		progressbar.OptionSetDescription("Rendering pages"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Update(current int, file string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bar == nil || current <= r.high {
		return
	}
	r.high = current
	r.bar.Describe("Writing " + file)
	_ = r.bar.Set(current)
}

func (r *TerminalReporter) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints one line per page and a closing count, which is short
// of the total when rendering stopped early.
type CIReporter struct {
	Out io.Writer

	mu      sync.Mutex
	total   int
	written int
}

func (r *CIReporter) Start(total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.total, r.written = total, 0
	fmt.Fprintf(r.Out, "Rendering %d pages\n", total)
}

func (r *CIReporter) Update(current int, file string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.written++
	fmt.Fprintf(r.Out, "wrote %s (%d/%d)\n", file, current, r.total)
}

func (r *CIReporter) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.Out, "Rendered %d of %d pages\n", r.written, r.total)
}
