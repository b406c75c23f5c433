package line

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	bookview "github.com/bnema/callbook/internal/adapters/render/book"
	"github.com/bnema/callbook/internal/ports"
)

// Prompter drives calls and questions over a line-oriented reader and writer.
// The same reader serves menu input, so nothing else may read from it.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

var _ ports.Prompter = (*Prompter)(nil)

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ReadLine returns the next input line without its line ending. io.EOF is
// returned only when the input is exhausted and nothing was read.
func (p *Prompter) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Ask writes label and reads the answer line.
func (p *Prompter) Ask(ctx context.Context, label string) (string, error) {
	if _, err := fmt.Fprint(p.out, label); err != nil {
		return "", err
	}

	return p.ReadLine(ctx)
}

func (p *Prompter) WaitCallStart(ctx context.Context, name string) error {
	return p.waitEnter(ctx, bookview.CallStart(name))
}

func (p *Prompter) WaitCallEnd(ctx context.Context, _ string) error {
	return p.waitEnter(ctx, bookview.CallEnd())
}

// Confirm treats a closed input as "no".
func (p *Prompter) Confirm(ctx context.Context, question ports.Question) (bool, error) {
	answer, err := p.Ask(ctx, bookview.Question(question))
	if err != nil {
		if errors.Is(err, io.EOF) {
			_, _ = fmt.Fprintln(p.out)
			return false, nil
		}
		return false, fmt.Errorf("read answer: %w", err)
	}

	return bookview.IsYes(answer), nil
}

func (p *Prompter) Notify(_ context.Context, notice ports.Notice) error {
	_, err := fmt.Fprintln(p.out, bookview.Notice(notice))
	return err
}

// waitEnter treats a closed input like a pressed Enter so piped sessions do
// not hang.
func (p *Prompter) waitEnter(ctx context.Context, label string) error {
	if _, err := p.Ask(ctx, label); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("wait for enter: %w", err)
	}

	return nil
}
