package viz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Outcome is what a finished job reports.
type Outcome struct {
	Path    string
	Frames  int
	Elapsed time.Duration
}

// Job renders one generator.
type Job struct {
	Name string
	Run  func(ctx context.Context) (Outcome, error)
}

type jobDoneMsg struct {
	index   int
	outcome Outcome
	err     error
}

type tickMsg time.Time

type jobState struct {
	outcome Outcome
	err     error
	done    bool
}

// Progress is a Bubble Tea model that runs jobs one after another and
// shows their results as they finish.
type Progress struct {
	ctx     context.Context
	cancel  context.CancelFunc
	jobs    []Job
	states  []jobState
	current int
	frame   int
	quit    bool
}

func NewProgress(ctx context.Context, jobs []Job) *Progress {
	ctx, cancel := context.WithCancel(ctx)
	return &Progress{
		ctx:    ctx,
		cancel: cancel,
		jobs:   jobs,
		states: make([]jobState, len(jobs)),
	}
}

func (p *Progress) Init() tea.Cmd {
	return tea.Batch(p.runJob(0), tick())
}

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (p *Progress) runJob(i int) tea.Cmd {
	if i >= len(p.jobs) {
		return nil
	}
	job := p.jobs[i]
	ctx := p.ctx
	return func() tea.Msg {
		out, err := job.Run(ctx)
		return jobDoneMsg{index: i, outcome: out, err: err}
	}
}

func (p *Progress) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			p.cancel()
			p.quit = true
			return p, tea.Quit
		}
	case tickMsg:
		if p.Finished() {
			return p, nil
		}
		p.frame++
		return p, tick()
	case jobDoneMsg:
		p.states[msg.index] = jobState{outcome: msg.outcome, err: msg.err, done: true}
		p.current = msg.index + 1
		if p.Finished() {
			return p, tea.Quit
		}
		return p, p.runJob(p.current)
	}
	return p, nil
}

// Finished reports whether every job has completed.
func (p *Progress) Finished() bool { return p.current >= len(p.jobs) }

// Canceled reports whether the user quit before the jobs finished.
func (p *Progress) Canceled() bool { return p.quit && !p.Finished() }

// Err returns the first job error.
func (p *Progress) Err() error {
	for i, s := range p.states {
		if s.err != nil {
			return fmt.Errorf("%s: %w", p.jobs[i].Name, s.err)
		}
	}
	return nil
}

func (p *Progress) View() string {
	var sb strings.Builder
	sb.WriteString(GradientText("animgen", CurrentTheme.Primary, CurrentTheme.Secondary))
	sb.WriteString("\n\n")

	for i, job := range p.jobs {
		s := p.states[i]
		switch {
		case s.done && s.err != nil:
			fmt.Fprintf(&sb, " %s %-18s %s\n", StatusFail.Render("✗"), job.Name, Subtle.Render(s.err.Error()))
		case s.done:
			fmt.Fprintf(&sb, " %s %-18s %s\n", StatusDone.Render("✓"), job.Name,
				Subtle.Render(fmt.Sprintf("%d frames  %s  %s", s.outcome.Frames, s.outcome.Elapsed.Round(time.Millisecond), s.outcome.Path)))
		case i == p.current:
			fmt.Fprintf(&sb, " %s %s\n", Title.Render(Spinner(p.frame)), job.Name)
		default:
			fmt.Fprintf(&sb, "   %s\n", Subtle.Render(job.Name))
		}
	}

	fraction := 1.0
	if len(p.jobs) > 0 {
		fraction = float64(p.current) / float64(len(p.jobs))
	}
	fmt.Fprintf(&sb, "\n %s %d/%d\n", ProgressBar(fraction, 30), p.current, len(p.jobs))
	if !p.Finished() {
		sb.WriteString(Subtle.Render(" q to stop") + "\n")
	}
	return sb.String()
}
