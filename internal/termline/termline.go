package termline

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/hupe1980/longshot/resource"
	"github.com/hupe1980/longshot/search"
)

// Line writes run progress to a terminal. On a TTY it repaints a single
// status line in place; otherwise it degrades to plain lines so piped
// output stays readable. Redraw frequency is capped by the resource
// controller's render budget.
type Line struct {
	out       io.Writer
	isTTY     bool
	res       *resource.Controller
	lastWidth int
}

// New creates a status line writer for out. Pass os.Stdout for normal
// runs; TTY detection only applies to *os.File writers.
func New(out io.Writer, res *resource.Controller) *Line {
	isTTY := false
	if f, ok := out.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}
	return &Line{out: out, isTTY: isTTY, res: res}
}

// Status implements search.Sink.
func (l *Line) Status(s search.Snapshot) {
	if !l.res.AllowRender() {
		return
	}

	line := fmt.Sprintf("checked %s  |  %s/s  |  %.0e of space  |  %s elapsed  |  %d workers",
		formatCount(s.Total),
		formatFloatCount(s.PerSecond),
		s.SpaceFraction,
		formatDuration(s.Elapsed),
		s.Workers-s.Failed,
	)
	if s.Failed > 0 {
		line += fmt.Sprintf(" (%d failed)", s.Failed)
	}

	if !l.isTTY {
		fmt.Fprintln(l.out, line)
		return
	}

	// Pad over the previous repaint so a shrinking line leaves no tail.
	if pad := l.lastWidth - len(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	l.lastWidth = len(strings.TrimRight(line, " "))
	fmt.Fprintf(l.out, "\r%s", line)
}

// Summary implements search.Sink. It terminates the status line and
// prints the final statistics block.
func (l *Line) Summary(sum *search.Summary) {
	if l.isTTY {
		fmt.Fprint(l.out, "\r", strings.Repeat(" ", l.lastWidth), "\r")
	}

	fmt.Fprintf(l.out, "run %s: %s\n", sum.RunID, sum.Cause)
	if sum.Found {
		fmt.Fprintf(l.out, "secret recovered: %s\n", sum.Secret)
	} else {
		fmt.Fprintln(l.out, "secret not recovered (as expected for this space)")
	}
	fmt.Fprintf(l.out, "checked %s candidates (%s) in %s (%s/s), workers %d",
		sum.TotalChecked,
		formatCountDecimal(sum.TotalChecked),
		formatDuration(sum.Elapsed),
		formatFloatCount(sum.PerSecond),
		sum.Workers,
	)
	if sum.Failed > 0 {
		fmt.Fprintf(l.out, " (%d failed)", sum.Failed)
	}
	fmt.Fprintln(l.out)
}

// Compile-time interface check
var _ search.Sink = (*Line)(nil)
