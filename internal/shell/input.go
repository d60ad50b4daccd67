package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
)

// LineInput reads one line of user input after showing a prompt.
type LineInput interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

type basicLineInput struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewBasicLineInput reads lines from in and echoes prompts to out. It is used
// when stdin is not a terminal.
func NewBasicLineInput(in io.Reader, out io.Writer) LineInput {
	return &basicLineInput{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (b *basicLineInput) ReadLine(prompt string) (string, error) {
	if b.out != nil {
		fmt.Fprint(b.out, prompt)
	}
	line, err := b.reader.ReadString('\n')
	if err != nil {
		// A final line without a newline still counts.
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (b *basicLineInput) Close() error { return nil }

type readlineInput struct {
	instance *readline.Instance
}

func newReadlineInput() (*readlineInput, error) {
	instance, err := readline.NewEx(&readline.Config{
		Prompt:            "> ",
		AutoComplete:      completer(),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return nil, err
	}
	return &readlineInput{instance: instance}, nil
}

func (r *readlineInput) ReadLine(prompt string) (string, error) {
	r.instance.SetPrompt(prompt)
	return r.instance.Readline()
}

func (r *readlineInput) Close() error {
	if r == nil || r.instance == nil {
		return nil
	}
	return r.instance.Close()
}

// NewLineInput returns a readline editor when stdin is a terminal and a plain
// line reader otherwise.
func NewLineInput() LineInput {
	if readline.DefaultIsTerminal() {
		if r, err := newReadlineInput(); err == nil {
			return r
		}
	}
	return NewBasicLineInput(os.Stdin, os.Stdout)
}

func completer() *readline.PrefixCompleter {
	formats := func() []readline.PrefixCompleterInterface {
		return []readline.PrefixCompleterInterface{
			readline.PcItem("json"),
			readline.PcItem("csv"),
			readline.PcItem("yaml"),
			readline.PcItem("pdf"),
		}
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("add"),
		readline.PcItem("list"),
		readline.PcItem("ls"),
		readline.PcItem("done"),
		readline.PcItem("toggle"),
		readline.PcItem("rm"),
		readline.PcItem("delete"),
		readline.PcItem("dump"),
		readline.PcItem("export", formats()...),
		readline.PcItem("help"),
		readline.PcItem("quit"),
		readline.PcItem("exit"),
	)
}

// isInputClosed reports whether err means the user ended input.
func isInputClosed(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt)
}
