package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/mat"
)

// Shared styles, rebuilt from CurrentTheme by SetTheme.
var (
	Title       lipgloss.Style
	Panel       lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	Highlight   lipgloss.Style
	Subtle      lipgloss.Style
	KeyHint     lipgloss.Style
	StatusGood  lipgloss.Style
	StatusBad   lipgloss.Style
	HeaderStyle lipgloss.Style
)

func init() { applyTheme(CurrentTheme) }

func applyTheme(t Theme) {
	Title = lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Muted).
		Padding(0, 1)
	Label = lipgloss.NewStyle().Foreground(t.Muted).Width(10)
	Value = lipgloss.NewStyle().Foreground(t.Text)
	Highlight = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	KeyHint = lipgloss.NewStyle().Foreground(t.Muted).Italic(true)
	StatusGood = lipgloss.NewStyle().Bold(true).Foreground(t.Good)
	StatusBad = lipgloss.NewStyle().Bold(true).Foreground(t.Bad)
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Text).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Muted)
}

// FormatVec renders values as a fixed-width row.
func FormatVec(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%9.5f", x)
	}
	return "[" + strings.Join(parts, " ") + " ]"
}

// FormatMatrix renders m one row per line.
func FormatMatrix(m mat.Matrix) string {
	r, _ := m.Dims()
	rows := make([]string, r)
	for i := range rows {
		rows[i] = FormatVec(mat.Row(nil, i, m))
	}
	return strings.Join(rows, "\n")
}

// KV renders a label/value line.
func KV(label, value string) string {
	return Label.Render(label) + Value.Render(value)
}

// ProgressBar renders a bar filled to percent (0..1).
func ProgressBar(percent float64, width int) string {
	filled := min(width, max(0, int(percent*float64(width))))
	return StatusGood.Render(strings.Repeat("█", filled)) + Subtle.Render(strings.Repeat("░", width-filled))
}

// Sparkline renders values scaled to their own range, sampled down to width.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 {
		return Subtle.Render(strings.Repeat("─", width))
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo, hi = min(lo, v), max(hi, v)
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	step := max(1, len(values)/width)
	var b strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		norm := (values[i*step] - lo) / rng
		b.WriteRune(chars[min(len(chars)-1, int(norm*float64(len(chars)-1)))])
	}
	return Highlight.Render(b.String())
}

func Separator(width int) string {
	mid := width / 2
	return Subtle.Render(strings.Repeat("─", mid-3) + " ◆ " + strings.Repeat("─", width-mid-3))
}
