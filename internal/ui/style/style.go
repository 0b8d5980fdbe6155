// Package style holds the colours and glyphs shared by log and annotation output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Glyphs.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Arrow   = "→"
)

// Annotation styles for a given renderer.
type Annotation struct {
	Label    lipgloss.Style
	Value    lipgloss.Style
	Standard lipgloss.Style
	Missing  lipgloss.Style
	Heading  lipgloss.Style
}

// NewAnnotation builds the annotation styles on r.
func NewAnnotation(r *lipgloss.Renderer) Annotation {
	return Annotation{
		Label:    r.NewStyle().Foreground(Slate),
		Value:    r.NewStyle().Foreground(Iris),
		Standard: r.NewStyle().Foreground(Green),
		Missing:  r.NewStyle().Foreground(Yellow),
		Heading:  r.NewStyle().Bold(true),
	}
}
