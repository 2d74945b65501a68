// Package prompt asks questions on a terminal: free text, hidden passwords,
// yes/no confirmations, and a pick from a list of choices.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"golang.org/x/term"
	"golang.org/x/text/cases"
)

// ErrNoChoice is returned by Choose when the user answers "none".
var ErrNoChoice = errors.New("no choice made")

var (
	yesAnswers = []string{"y", "yes", "1", "on", "true", "t"}
	noAnswers  = []string{"n", "no", "0", "off", "false", "f"}
	noneAnswer = "none"
)

// Choice is one option offered by Choose. Key is what the user types;
// Label, if set, is shown alongside it.
type Choice struct {
	Key   string
	Label string
}

func (c Choice) String() string {
	if c.Label == "" {
		return c.Key
	}
	return fmt.Sprintf("%s [%s]", c.Label, c.Key)
}

// Choices builds unlabeled choices from keys.
func Choices(keys ...string) []Choice {
	cs := make([]Choice, len(keys))
	for i, k := range keys {
		cs[i] = Choice{Key: k}
	}
	return cs
}

// Prompter reads answers from In and writes questions to Out.
type Prompter struct {
	In  io.Reader
	Out io.Writer

	// ReadSecret reads one line without echo. When nil, a terminal In is read
	// with echo disabled and any other reader is read as plain text.
	ReadSecret func() (string, error)

	r *bufio.Reader
}

// New returns a Prompter reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{In: in, Out: out}
}

var std = New(os.Stdin, os.Stdout)

// Prompt asks on stdin and stdout. See Prompter.Prompt.
func Prompt(name, def string) (string, error) { return std.Prompt(name, def) }

// Password asks without echo on stdin. See Prompter.Password.
func Password(name, def string) (string, error) { return std.Password(name, def) }

// Confirm asks a yes/no question on stdin. See Prompter.Confirm.
func Confirm(name string, def bool) (bool, error) { return std.Confirm(name, def) }

// Choose asks for one of choices on stdin. See Prompter.Choose.
func Choose(name string, choices []Choice, def string) (string, error) {
	return std.Choose(name, choices, def)
}

// Prompt writes "name [def]: " and returns the answer. An empty answer
// returns def, or asks again when def is empty. Names ending in "?" are
// followed by a space instead of a colon.
func (p *Prompter) Prompt(name, def string) (string, error) {
	return p.ask(label(name, def), def, p.readLine)
}

// Password is Prompt without echoing the answer.
func (p *Prompter) Password(name, def string) (string, error) {
	return p.ask(label(name, def), def, p.readSecret)
}

// Confirm asks "name? [y/n]" and interprets the answer as a boolean. An
// empty answer returns def; an unrecognized one asks again.
func (p *Prompter) Confirm(name string, def bool) (bool, error) {
	hint := noAnswers[0]
	if def {
		hint = yesAnswers[0]
	}
	fold := cases.Fold()
	for {
		answer, err := p.Prompt(name+"?", hint)
		if err != nil {
			return def, err
		}
		answer = fold.String(strings.TrimSpace(answer))
		switch {
		case slices.Contains(yesAnswers, answer):
			return true, nil
		case slices.Contains(noAnswers, answer):
			return false, nil
		}
	}
}

// Choose lists choices and returns the key the user picks, compared without
// regard to case. An empty answer returns def, "none" returns ErrNoChoice,
// and anything else asks again.
func (p *Prompter) Choose(name string, choices []Choice, def string) (string, error) {
	shown := make([]string, len(choices))
	for i, c := range choices {
		shown[i] = c.String()
	}
	question := fmt.Sprintf("%s? - (%s)", name, strings.Join(shown, ", "))

	fold := cases.Fold()
	for {
		answer, err := p.Prompt(question, def)
		if err != nil {
			return "", err
		}
		answer = fold.String(strings.TrimSpace(answer))
		if answer == noneAnswer {
			return "", ErrNoChoice
		}
		for _, c := range choices {
			if fold.String(c.Key) == answer {
				return c.Key, nil
			}
		}
	}
}

func label(name, def string) string {
	l := name
	if def != "" {
		l += " [" + def + "]"
	}
	if strings.HasSuffix(name, "?") {
		return l + " "
	}
	return l + ": "
}

func (p *Prompter) ask(label, def string, read func() (string, error)) (string, error) {
	for {
		if _, err := io.WriteString(p.Out, label); err != nil {
			return "", err
		}
		answer, err := read()
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		if def != "" {
			return def, nil
		}
	}
}

// readLine returns the next line of input without its line ending. Input
// that ends without a newline still counts as a line; after that, io.EOF.
func (p *Prompter) readLine() (string, error) {
	if p.r == nil {
		p.r = bufio.NewReader(p.In)
	}
	line, err := p.r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *Prompter) readSecret() (string, error) {
	if p.ReadSecret != nil {
		return p.ReadSecret()
	}
	f, ok := p.In.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return p.readLine()
	}
	b, err := term.ReadPassword(int(f.Fd()))
	_, _ = io.WriteString(p.Out, "\n")
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}
