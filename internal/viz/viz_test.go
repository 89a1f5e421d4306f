package viz

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestThemes(t *testing.T) {
	if GetTheme("lofi").Name != "lofi" {
		t.Error("expected lofi theme")
	}
	if GetTheme("nope").Name != "nebula" {
		t.Error("unknown theme should fall back to nebula")
	}
	names := ThemeNames()
	if len(names) != len(Themes) {
		t.Errorf("expected %d names, got %d", len(Themes), len(names))
	}

	SetTheme("mono")
	defer SetTheme("nebula")
	if CurrentTheme.Name != "mono" {
		t.Error("SetTheme did not switch")
	}
}

func TestGradientTextKeepsRunes(t *testing.T) {
	out := GradientText("abc", "#000000", "#ffffff")
	for _, r := range "abc" {
		if !strings.ContainsRune(out, r) {
			t.Errorf("missing %q in %q", r, out)
		}
	}
	if GradientText("", "#000000", "#ffffff") != "" {
		t.Error("expected empty output")
	}
}

func TestSparklineWidth(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i)
	}
	got := []rune(stripANSI(Sparkline(values, 20)))
	if len(got) != 20 {
		t.Errorf("expected 20 cells, got %d", len(got))
	}
	if got[0] != '▁' || got[len(got)-1] != '▇' {
		t.Errorf("expected rising sparkline, got %q", string(got))
	}
}

func TestPlot(t *testing.T) {
	out := Plot([]float64{1, 2, 3, 2, 1}, "brightness", 20, 5)
	if !strings.Contains(out, "brightness") {
		t.Error("caption missing")
	}
	if !strings.Contains(Plot(nil, "x", 10, 3), "no data") {
		t.Error("empty series should say so")
	}
}

func stripANSI(s string) string {
	var sb strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && r == 'm':
			inEsc = false
		case !inEsc:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func TestProgressRunsJobsInOrder(t *testing.T) {
	var order []string
	job := func(name string, err error) Job {
		return Job{Name: name, Run: func(ctx context.Context) (Outcome, error) {
			order = append(order, name)
			return Outcome{Frames: 3, Path: name + ".gif"}, err
		}}
	}
	boom := errors.New("boom")
	p := NewProgress(context.Background(), []Job{job("a", nil), job("b", boom)})

	msg := p.runJob(0)()
	model, cmd := p.Update(msg)
	p = model.(*Progress)
	if cmd == nil || p.Finished() {
		t.Fatal("expected the second job to be scheduled")
	}

	_, cmd = p.Update(cmd())
	if !p.Finished() {
		t.Fatal("expected all jobs finished")
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
	if strings.Join(order, ",") != "a,b" {
		t.Errorf("jobs ran in order %v", order)
	}
	if !errors.Is(p.Err(), boom) {
		t.Errorf("Err() = %v", p.Err())
	}
	view := p.View()
	if !strings.Contains(view, "a.gif") || !strings.Contains(view, "boom") {
		t.Errorf("view missing results:\n%s", view)
	}
}

func TestProgressQuit(t *testing.T) {
	p := NewProgress(context.Background(), []Job{{Name: "a", Run: func(ctx context.Context) (Outcome, error) {
		return Outcome{}, ctx.Err()
	}}})
	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !p.Canceled() {
		t.Error("expected canceled after q")
	}
	if p.ctx.Err() == nil {
		t.Error("quitting should cancel the job context")
	}
}
