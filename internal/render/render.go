// Package render formats engine results for the terminal.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/passgen/passgen-go/internal/model"
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	categoryStyles = map[string]lipgloss.Style{
		"weak":        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		"fair":        lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		"strong":      lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		"very strong": lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	}

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Renderer writes human-readable or JSON output.
type Renderer struct {
	noColor bool
}

// New creates a Renderer. With noColor set, all styling is skipped.
func New(noColor bool) *Renderer {
	return &Renderer{noColor: noColor}
}

// PasswordBox renders a generated password inside a border so it stands out
// from surrounding terminal noise.
func (r *Renderer) PasswordBox(resp model.GenerateResponse) string {
	if r.noColor {
		return resp.Password
	}
	box := boxStyle.Render(resp.Password)
	info := labelStyle.Render(fmt.Sprintf("%d characters, ~%.0f bits of entropy", resp.Length, resp.EntropyBits))
	return box + "\n" + info
}

// Strength renders a full assessment report.
func (r *Renderer) Strength(a model.StrengthAssessment) string {
	var b strings.Builder

	category := a.Category
	if !r.noColor {
		if style, ok := categoryStyles[a.Category]; ok {
			category = style.Render(a.Category)
		}
	}

	fmt.Fprintf(&b, "Score:    %d/100 (%s)\n", a.Score, category)
	fmt.Fprintf(&b, "Length:   %d characters\n", a.Length)
	fmt.Fprintf(&b, "Contains: %s\n", composition(a))

	if len(a.Findings) > 0 {
		b.WriteString("Recommendations:\n")
		for _, finding := range a.Findings {
			fmt.Fprintf(&b, "  - %s\n", finding)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// JSON writes v as a single JSON document.
func (r *Renderer) JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	return enc.Encode(v)
}

func composition(a model.StrengthAssessment) string {
	var present []string
	if a.HasUpper {
		present = append(present, "uppercase")
	}
	if a.HasLower {
		present = append(present, "lowercase")
	}
	if a.HasDigit {
		present = append(present, "digits")
	}
	if a.HasSymbol {
		present = append(present, "symbols")
	}
	if len(present) == 0 {
		return "nothing"
	}
	return strings.Join(present, ", ")
}
