package viz

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/mvolek/biosim/internal/ode"
)

const historyCapacity = 600

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type TickMsg time.Time

// Live is a bubbletea model that steps an ODE system in real time and
// charts the recent trajectory of every compartment.
type Live struct {
	model ode.Model
	integ *ode.Euler
	name  string

	state   ode.State
	t       float64
	history [][]float64

	fps           int
	stepsPerFrame int
	running       bool
	err           error
}

func NewLive(m ode.Model, dt float64, name string, fps int) (*Live, error) {
	integ, err := ode.NewEuler(dt)
	if err != nil {
		return nil, err
	}
	if fps <= 0 {
		fps = 30
	}

	steps := int(1.0 / (dt * float64(fps)))
	if steps < 1 {
		steps = 1
	}

	l := &Live{
		model:         m,
		integ:         integ,
		name:          name,
		fps:           fps,
		stepsPerFrame: steps,
		running:       true,
	}
	l.reset()
	return l, nil
}

func (l *Live) reset() {
	l.state = l.model.InitialState()
	l.t = 0
	l.history = make([][]float64, l.model.StateDim())
	for i := range l.history {
		l.history[i] = make([]float64, 0, historyCapacity)
	}
	l.record()
}

func (l *Live) record() {
	for i, v := range l.state {
		if len(l.history[i]) >= historyCapacity {
			l.history[i] = l.history[i][1:]
		}
		l.history[i] = append(l.history[i], v)
	}
}

func (l *Live) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(l.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (l *Live) Init() tea.Cmd {
	return l.tick()
}

func (l *Live) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return l, tea.Quit
		case " ":
			l.running = !l.running
		case "r":
			l.reset()
			l.err = nil
		}
	case TickMsg:
		if l.running && l.err == nil {
			for i := 0; i < l.stepsPerFrame; i++ {
				next, err := l.integ.Step(l.model.Derivatives, l.state, l.t)
				if err != nil {
					l.err = err
					break
				}
				l.state = next
				l.t += l.integ.Dt()
				l.record()
			}
		}
		return l, l.tick()
	}
	return l, nil
}

func (l *Live) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%s · live (dt=%.3f)", l.name, l.integ.Dt())))
	b.WriteString("\n")

	var stats strings.Builder
	stats.WriteString(labelStyle.Render("t") + valueStyle.Render(fmt.Sprintf("%.2f", l.t)) + "\n")
	for i, label := range l.model.Labels() {
		stats.WriteString(labelStyle.Render(label) + valueStyle.Render(fmt.Sprintf("%.4f", l.state[i])) + "\n")
	}

	if c, ok := l.model.(ode.Configurable); ok {
		params := c.Params()
		keys := make([]string, 0, len(params))
		for k := range params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		stats.WriteString("\n")
		for _, k := range keys {
			stats.WriteString(labelStyle.Render(k) + valueStyle.Render(fmt.Sprintf("%.4f", params[k])) + "\n")
		}
	}
	b.WriteString(statsStyle.Render(stats.String()))
	b.WriteString("\n")

	if len(l.history) > 0 && len(l.history[0]) > 1 {
		graph := asciigraph.PlotMany(l.history,
			asciigraph.Height(12),
			asciigraph.Width(plotWidth),
			asciigraph.Caption(strings.Join(l.model.Labels(), " / ")),
		)
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	if l.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("error: %v", l.err)))
		b.WriteString("\n")
	}

	status := "running"
	if !l.running {
		status = "paused"
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf("[%s]  space pause · r reset · q quit", status)))
	b.WriteString("\n")

	return b.String()
}
