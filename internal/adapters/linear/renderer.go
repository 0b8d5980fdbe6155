// Package linear prints include annotations as plain, line oriented text.
package linear

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"go.trai.ch/incinfo/internal/core/domain"
	"go.trai.ch/incinfo/internal/ui/output"
	"go.trai.ch/incinfo/internal/ui/style"
)

// goToHeader labels the entry that opens the included file itself.
const goToHeader = "Go To Header"

// Row is one annotated directive.
type Row struct {
	Directive domain.IncludeDirective
	// Text is the annotation, or the no-info placeholder.
	Text string
	// Standard marks a standard library header.
	Standard bool
	// Missing marks a directive that produced no metrics.
	Missing bool
}

// Entry is one include of the file being listed.
type Entry struct {
	Directive domain.IncludeDirective
	// Target is zero when the include does not resolve.
	Target domain.FileIdentity
}

// Renderer writes annotations to a single writer. It is safe for concurrent use.
type Renderer struct {
	mu     sync.Mutex
	out    io.Writer
	styles style.Annotation
}

// NewRenderer creates a Renderer writing to out. A nil out means stdout.
func NewRenderer(out io.Writer) *Renderer {
	if out == nil {
		out = os.Stdout
	}
	return &Renderer{
		out:    out,
		styles: style.NewAnnotation(output.NewRenderer(out)),
	}
}

// Annotations prints one line per row, columns aligned:
//
//	main.c:1  "a.h"     Size: 0.04 KB | Lines: 3 | Included Files: 2
func (r *Renderer) Annotations(source domain.FileIdentity, rows []Row) {
	r.mu.Lock()
	defer r.mu.Unlock()

	locs := make([]string, len(rows))
	locWidth, nameWidth := 0, 0
	for i, row := range rows {
		locs[i] = source.Name() + ":" + strconv.Itoa(row.Directive.Position.Line+1)
		locWidth = max(locWidth, len(locs[i]))
		nameWidth = max(nameWidth, len(row.Directive.Spelling()))
	}

	for i, row := range rows {
		text := r.styles.Value
		switch {
		case row.Missing:
			text = r.styles.Missing
		case row.Standard:
			text = r.styles.Standard
		}
		_, _ = fmt.Fprintf(r.out, "%s  %s  %s\n",
			r.styles.Label.Render(locs[i])+fill(locs[i], locWidth),
			pad(row.Directive.Spelling(), nameWidth),
			text.Render(row.Text),
		)
	}
}

// Includes prints the includes of target followed by an entry for target itself.
func (r *Renderer) Includes(target domain.FileIdentity, entries []Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.out, "%s\n", r.styles.Heading.Render(target.Name()))

	width := len(goToHeader)
	for _, e := range entries {
		width = max(width, len(e.Directive.Spelling()))
	}

	for _, e := range entries {
		where := r.styles.Missing.Render("unresolved")
		if !e.Target.IsZero() {
			where = r.styles.Label.Render(e.Target.Path())
		}
		_, _ = fmt.Fprintf(r.out, "  %s %s %s\n", pad(e.Directive.Spelling(), width), style.Arrow, where)
	}
	_, _ = fmt.Fprintf(r.out, "  %s %s %s\n",
		r.styles.Value.Render(goToHeader)+fill(goToHeader, width), style.Arrow, r.styles.Label.Render(target.Path()))
}

// Changed prints the header of a watch refresh.
func (r *Renderer) Changed(paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = domain.NewFileIdentity(p).Name()
	}
	_, _ = fmt.Fprintf(r.out, "\n%s %s\n", style.Dot, r.styles.Heading.Render("changed: "+strings.Join(names, ", ")))
}

// Message prints a plain line.
func (r *Renderer) Message(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintln(r.out, msg)
}

func pad(s string, width int) string {
	return s + fill(s, width)
}

// fill returns the spaces that widen s to width. Styles are applied before
// padding, so escape sequences never count towards the width.
func fill(s string, width int) string {
	if len(s) >= width {
		return ""
	}
	return strings.Repeat(" ", width-len(s))
}
