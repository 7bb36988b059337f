package viz

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/bounce/internal/anim"
	"github.com/san-kum/bounce/internal/curve"
)

func newTestModel(t *testing.T, duration float64) Model {
	t.Helper()

	cfg := anim.DefaultConfig()
	cfg.Duration = duration
	cfg.Width = 40
	cfg.Resolution = 20
	shape, err := curve.New("ellipse", cfg.Step())
	if err != nil {
		t.Fatal(err)
	}
	a, err := anim.New(shape, cfg, anim.WithOutput(io.Discard), anim.WithPacer(anim.NoPacer{}))
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(a)
}

func TestModelTickAdvances(t *testing.T) {
	m := newTestModel(t, anim.Forever)

	updated, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected the next tick to be scheduled")
	}
	m = updated.(Model)
	if m.Frame().Number != 1 {
		t.Errorf("expected frame 1, got %d", m.Frame().Number)
	}

	view := m.View()
	if !strings.Contains(view, "ELLIPSE") {
		t.Error("view is missing the shape header")
	}
	if !strings.Contains(view, m.Frame().Line.String()) {
		t.Error("view is missing the frame line")
	}
}

func TestModelQuitKey(t *testing.T) {
	m := newTestModel(t, anim.Forever)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestModelStopsWhenBudgetSpent(t *testing.T) {
	m := newTestModel(t, 0.2)

	var cmd tea.Cmd
	for i := 0; i < 3; i++ {
		var updated tea.Model
		updated, cmd = m.Update(TickMsg(time.Now()))
		m = updated.(Model)
	}

	if !m.Done() {
		t.Fatal("expected the model to finish after the budget")
	}
	if m.Frame().Number != 2 {
		t.Errorf("expected 2 frames, got %d", m.Frame().Number)
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg once the budget is spent")
	}
	if !strings.Contains(m.View(), "STOPPED") {
		t.Error("expected stopped status in view")
	}
}

func TestSummary(t *testing.T) {
	r := &anim.Result{
		Frames:  10,
		Elapsed: time.Second,
		State:   anim.Stopped,
		Metrics: map[string]float64{"reversals": 2, "coverage": 0.5},
	}

	out := Summary("ellipse", r)
	for _, want := range []string{"ELLIPSE", "frames", "10", "1s", "stopped", "coverage", "0.5000", "reversals", "2.0000"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
