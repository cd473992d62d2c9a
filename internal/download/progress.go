package download

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/dustin/go-humanize"

	"github.com/conn-castle/nebula-setup/internal/messages"
)

const progressRedrawEvery = 100 * time.Millisecond

var progressNow = time.Now

// progressWriter counts bytes and redraws a single-line bar on out.
type progressWriter struct {
	out      io.Writer
	total    int64
	written  int64
	bar      progress.Model
	lastDraw time.Time
}

func newProgressWriter(out io.Writer, total int64) *progressWriter {
	return &progressWriter{
		out:   out,
		total: total,
		bar:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

func (p *progressWriter) Write(b []byte) (int, error) {
	p.written += int64(len(b))
	now := progressNow()
	if now.Sub(p.lastDraw) >= progressRedrawEvery {
		p.lastDraw = now
		p.draw()
	}
	return len(b), nil
}

// finish draws the final state and ends the line.
func (p *progressWriter) finish() {
	p.draw()
	_, _ = fmt.Fprintln(p.out)
}

func (p *progressWriter) draw() {
	if p.total <= 0 {
		_, _ = fmt.Fprintf(p.out, messages.DownloadProgressUnknownFmt, humanize.Bytes(uint64(p.written)))
		return
	}
	_, _ = fmt.Fprintf(p.out, messages.DownloadProgressFmt,
		p.bar.ViewAs(p.percent()),
		humanize.Bytes(uint64(p.written)),
		humanize.Bytes(uint64(p.total)))
}

func (p *progressWriter) percent() float64 {
	if p.total <= 0 {
		return 0
	}
	pct := float64(p.written) / float64(p.total)
	if pct > 1 {
		return 1
	}
	return pct
}
