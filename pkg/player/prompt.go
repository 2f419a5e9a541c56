package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/grugui/pkg/errors"
	"github.com/pterm/pterm"
)

// QuitOption is the label of the extra choice that ends the session
const QuitOption = "quit"

// Prompter asks the user questions. Choose returns ok=false when the user
// quits.
type Prompter interface {
	Choose(title string, options []string) (index int, ok bool, err error)
	Text(prompt string) (string, error)
}

// LinePrompter prints numbered options and reads answers line by line
type LinePrompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewLinePrompter creates a line prompter
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewScanner(in), out: out}
}

// Choose implements Prompter. End of input quits. Invalid answers are
// asked again.
func (p *LinePrompter) Choose(title string, options []string) (int, bool, error) {
	for {
		fmt.Fprintln(p.out, title)
		for i, o := range options {
			fmt.Fprintf(p.out, "  %d) %s\n", i+1, o)
		}
		fmt.Fprintf(p.out, "  q) %s\n> ", QuitOption)

		line, ok, err := p.readLine()
		if err != nil || !ok {
			return 0, false, err
		}
		if line == "q" || line == QuitOption {
			return 0, false, nil
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= 1 && n <= len(options) {
			return n - 1, true, nil
		}
		fmt.Fprintf(p.out, "invalid choice %q\n", line)
	}
}

// Text implements Prompter
func (p *LinePrompter) Text(prompt string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", prompt)
	line, _, err := p.readLine()
	return line, err
}

func (p *LinePrompter) readLine() (string, bool, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", false, errors.Wrap(err, errors.ErrInternal, "failed to read input")
		}
		return "", false, nil
	}
	return strings.TrimSpace(p.in.Text()), true, nil
}

// PtermPrompter uses pterm's interactive widgets
type PtermPrompter struct{}

// Choose implements Prompter
func (PtermPrompter) Choose(title string, options []string) (int, bool, error) {
	labels := make([]string, 0, len(options)+1)
	for i, o := range options {
		labels = append(labels, fmt.Sprintf("%d. %s", i+1, o))
	}
	labels = append(labels, QuitOption)

	picked, err := pterm.DefaultInteractiveSelect.
		WithOptions(labels).
		WithMaxHeight(len(labels)).
		Show(title)
	if err != nil {
		return 0, false, errors.Wrap(err, errors.ErrInternal, "selection failed")
	}
	for i, l := range labels[:len(options)] {
		if l == picked {
			return i, true, nil
		}
	}
	return 0, false, nil
}

// Text implements Prompter
func (PtermPrompter) Text(prompt string) (string, error) {
	v, err := pterm.DefaultInteractiveTextInput.Show(prompt)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "text input failed")
	}
	return v, nil
}
