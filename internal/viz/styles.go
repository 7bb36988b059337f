package viz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/bounce/internal/anim"
)

var (
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466"))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466"))

	StatusStyle = lipgloss.NewStyle().
			Bold(true)

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	MetricValue = lipgloss.NewStyle().
			Bold(true)

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)
)

// Summary renders a run result as a titled panel, metrics sorted by name.
func Summary(shape string, r *anim.Result) string {
	var s strings.Builder
	s.WriteString(HeaderStyle.Render("SUMMARY "+strings.ToUpper(shape)) + "\n")
	s.WriteString(MetricLabel.Width(12).Render("frames") + MetricValue.Render(fmt.Sprintf("%d", r.Frames)) + "\n")
	s.WriteString(MetricLabel.Width(12).Render("elapsed") + MetricValue.Render(r.Elapsed.String()) + "\n")
	s.WriteString(MetricLabel.Width(12).Render("state") + MetricValue.Render(r.State.String()))

	names := make([]string, 0, len(r.Metrics))
	for name := range r.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s.WriteString("\n" + MetricLabel.Width(12).Render(name) + MetricValue.Render(fmt.Sprintf("%.4f", r.Metrics[name])))
	}
	return Panel.Padding(0, 1).Render(s.String())
}
