package app

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
)

// progressReporter prints one line per generated table to out and, unless
// quiet, drives a progress bar on barOut. Safe for concurrent use.
type progressReporter struct {
	mu  sync.Mutex
	out io.Writer
	bar *progressbar.ProgressBar
}

func newProgressReporter(out, barOut io.Writer, quiet bool, total int) *progressReporter {
	p := &progressReporter{out: out}
	if quiet || barOut == nil || total == 0 {
		return p
	}
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(barOut),
		progressbar.OptionSetDescription("Exporting tables"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
	return p
}

func (p *progressReporter) generated(location string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, "✅ Generated: %s\n", location)
	if p.bar != nil {
		_ = p.bar.Add(1)
	}
}

func (p *progressReporter) finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}
