package tui

import (
	"fmt"
	"time"

	bookview "github.com/bnema/callbook/internal/adapters/render/book"
	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type callTimerModel struct {
	name        string
	stopwatch   stopwatch.Model
	ended       bool
	interrupted bool
}

var (
	timerLabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	timerElapsedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159"))
	timerHintStyle    = lipgloss.NewStyle().Faint(true)
)

func newCallTimerModel(name string) callTimerModel {
	return callTimerModel{
		name:      name,
		stopwatch: stopwatch.NewWithInterval(time.Second),
	}
}

func (m callTimerModel) Init() tea.Cmd {
	return m.stopwatch.Init()
}

func (m callTimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			m.ended = true
			return m, tea.Quit
		case tea.KeyCtrlC:
			m.interrupted = true
			return m, tea.Quit
		default:
			return m, nil
		}
	default:
		var cmd tea.Cmd
		m.stopwatch, cmd = m.stopwatch.Update(msg)
		return m, cmd
	}
}

func (m callTimerModel) View() string {
	if m.ended || m.interrupted {
		return ""
	}

	return fmt.Sprintf("%s %s %s",
		timerLabelStyle.Render("On call with "+bookview.Sanitize(m.name)),
		timerElapsedStyle.Render(m.stopwatch.View()),
		timerHintStyle.Render("(press Enter to end the call)"),
	)
}
