package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/bounce/internal/anim"
	"github.com/san-kum/bounce/internal/render"
)

type TickMsg time.Time

// Model steps the animator once per tick at the configured frame rate.
type Model struct {
	animator *anim.Animator
	interval time.Duration
	frame    anim.Frame
	done     bool
	quitting bool
}

func NewModel(a *anim.Animator) Model {
	return Model{
		animator: a,
		interval: a.Config().FrameInterval(),
		frame: anim.Frame{
			Points: a.Points(),
			Line:   render.NewLine(a.Config().Width),
		},
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles quit keys and advances one frame per tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}
	case TickMsg:
		if m.animator.Done() {
			m.done = true
			return m, tea.Quit
		}
		m.frame = m.animator.Step()
		return m, m.tick()
	}
	return m, nil
}

// Frame is the most recently drawn frame.
func (m Model) Frame() anim.Frame {
	return m.frame
}

// Done reports whether the duration budget ran out.
func (m Model) Done() bool {
	return m.done
}

func (m Model) View() string {
	cfg := m.animator.Config()
	shape := m.animator.Shape()

	var s strings.Builder
	s.WriteString(HeaderStyle.Render(strings.ToUpper(shape.Name())) + "\n")
	s.WriteString(Panel.Render(m.frame.Line.String()) + "\n")

	status := "RUNNING"
	if m.done || m.quitting {
		status = "STOPPED"
	}
	budget := "∞"
	if !cfg.Unbounded() {
		budget = cfg.Budget().String()
	}
	half := "lower"
	if m.frame.Reversal < 0 {
		half = "upper"
	}
	s.WriteString(fmt.Sprintf("%s  %s %d  %s %s / %s  %s %s\n",
		StatusStyle.Render(status),
		MetricLabel.Render("frame"), m.frame.Number,
		MetricLabel.Render("time"), m.frame.Elapsed, budget,
		MetricLabel.Render("arc"), half,
	))
	s.WriteString(KeyHint.Render("q: stop"))
	return s.String()
}
