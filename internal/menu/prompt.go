package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// ErrAborted is returned when the user leaves a menu without choosing.
var ErrAborted = errors.New("menu aborted")

// Prompter asks questions on a terminal with Bubble Tea, or line by line when
// the input is not a terminal.
type Prompter struct {
	in     io.Reader
	out    io.Writer
	plain  bool
	reader *bufio.Reader
}

// NewPrompter constructs a prompter. plain forces line menus.
func NewPrompter(in io.Reader, out io.Writer, plain bool) *Prompter {
	return &Prompter{in: in, out: out, plain: plain}
}

// Interactive reports whether Bubble Tea menus are used.
func (p *Prompter) Interactive() bool {
	if p.plain {
		return false
	}
	return isTerminal(p.in) && isTerminal(p.out)
}

// Choose asks the user to pick one of options and returns its index.
func (p *Prompter) Choose(ctx context.Context, title string, options []string) (int, error) {
	if len(options) == 0 {
		return -1, fmt.Errorf("no options for %q", title)
	}
	if p.Interactive() {
		return p.chooseTUI(ctx, title, options)
	}
	return p.chooseLine(ctx, title, options)
}

// Confirm asks a yes/no question. EOF counts as no.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	if p.Interactive() {
		return p.confirmTUI(ctx, question)
	}
	return p.confirmLine(ctx, question)
}

func (p *Prompter) chooseTUI(ctx context.Context, title string, options []string) (int, error) {
	final, err := p.run(ctx, NewChoiceModel(title, options))
	if err != nil {
		return -1, err
	}
	m, ok := final.(*ChoiceModel)
	if !ok {
		return -1, fmt.Errorf("unexpected menu model %T", final)
	}
	idx, chosen := m.Chosen()
	if !chosen {
		return -1, ErrAborted
	}
	return idx, nil
}

func (p *Prompter) confirmTUI(ctx context.Context, question string) (bool, error) {
	final, err := p.run(ctx, NewConfirmModel(question))
	if err != nil {
		return false, err
	}
	m, ok := final.(*ConfirmModel)
	if !ok {
		return false, fmt.Errorf("unexpected prompt model %T", final)
	}
	answer, done := m.Answer()
	if !done {
		return false, nil
	}
	return IsYes(answer), nil
}

func (p *Prompter) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	program := tea.NewProgram(m, tea.WithContext(ctx), tea.WithInput(p.in), tea.WithOutput(p.out))
	final, err := program.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("failed to run menu: %w", err)
	}
	return final, nil
}

func (p *Prompter) chooseLine(ctx context.Context, title string, options []string) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return -1, err
		}
		if err := p.printOptions(title, options); err != nil {
			return -1, err
		}
		line, err := p.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return -1, ErrAborted
			}
			return -1, fmt.Errorf("failed to read choice: %w", err)
		}
		if idx, ok := matchOption(line, options); ok {
			return idx, nil
		}
		if _, err := fmt.Fprintf(p.out, "%q is not a valid choice, please try again.\n", line); err != nil {
			return -1, err
		}
	}
}

func (p *Prompter) confirmLine(ctx context.Context, question string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if _, err := fmt.Fprintln(p.out, question); err != nil {
		return false, err
	}
	line, err := p.readLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	return IsYes(line), nil
}

func (p *Prompter) printOptions(title string, options []string) error {
	lines := make([]string, 0, len(options)+2)
	lines = append(lines, title)
	for i, option := range options {
		lines = append(lines, fmt.Sprintf("  %d) %s", i+1, option))
	}
	lines = append(lines, "Enter a number or a name:")
	_, err := fmt.Fprintln(p.out, strings.Join(lines, "\n"))
	return err
}

// readLine returns the next trimmed line. A final line without a newline is
// returned without error.
func (p *Prompter) readLine() (string, error) {
	if p.reader == nil {
		p.reader = bufio.NewReader(p.in)
	}
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func matchOption(input string, options []string) (int, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return -1, false
	}
	if n, err := strconv.Atoi(input); err == nil {
		if n >= 1 && n <= len(options) {
			return n - 1, true
		}
		return -1, false
	}
	for i, option := range options {
		if strings.EqualFold(option, input) {
			return i, true
		}
	}
	return -1, false
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
