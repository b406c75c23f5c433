package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bnema/callbook/internal/adapters/prompt/line"
	"github.com/bnema/callbook/internal/ports"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrCallInterrupted = errors.New("call interrupted")

// Prompter shows a live call timer while a call is in progress and defers
// everything else to a line prompter.
type Prompter struct {
	*line.Prompter
	in  io.Reader
	out io.Writer
}

var _ ports.Prompter = (*Prompter)(nil)

func New(lines *line.Prompter, in io.Reader, out io.Writer) *Prompter {
	return &Prompter{Prompter: lines, in: in, out: out}
}

func (p *Prompter) WaitCallEnd(ctx context.Context, name string) error {
	program := tea.NewProgram(
		newCallTimerModel(name),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
		tea.WithContext(ctx),
	)

	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("run call timer: %w", err)
	}

	result, ok := finalModel.(callTimerModel)
	if !ok {
		return fmt.Errorf("unexpected final call timer model type %T", finalModel)
	}
	if result.interrupted {
		return ErrCallInterrupted
	}

	return nil
}
