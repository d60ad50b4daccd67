// Package shell is a line-oriented front-end for the task list, for terminals
// where the full-screen board is unwanted and for scripted input.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/valter-silva-au/taskpad/internal/core"
	"github.com/valter-silva-au/taskpad/internal/export"
	"github.com/valter-silva-au/taskpad/internal/i18n"
	"github.com/valter-silva-au/taskpad/pkg/models"
)

// Prompt is shown before each command.
const Prompt = "taskpad> "

var commandHelp = []string{
	"add [title]              add a task (asks for title and description)",
	"list | ls                show all tasks",
	"done | toggle <id>       mark a task done or not done",
	"rm | delete <id>         delete a task after confirmation",
	"dump                     print the list as YAML",
	"export <format> <file>   write the list as json, csv, yaml or pdf",
	"help                     show this help",
	"quit | exit              leave the shell",
}

// Shell reads commands from a LineInput and applies them to a controller.
type Shell struct {
	ctrl     *core.Controller
	cat      *i18n.Catalog
	in       LineInput
	out      io.Writer
	exporter *export.Exporter

	// writeFile is replaced in tests.
	writeFile func(name string, data []byte, perm os.FileMode) error
}

// New creates a Shell over ctrl.
func New(ctrl *core.Controller, cat *i18n.Catalog, in LineInput, out io.Writer) *Shell {
	return &Shell{
		ctrl:      ctrl,
		cat:       cat,
		in:        in,
		out:       out,
		exporter:  export.NewExporter(cat.T("app.title")),
		writeFile: os.WriteFile,
	}
}

// Run reads and executes commands until quit, end of input, or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, s.cat.T("shell.welcome"))

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		line, err := s.in.ReadLine(Prompt)
		if err != nil {
			if isInputClosed(err) {
				return nil
			}
			return fmt.Errorf("reading command: %w", err)
		}

		quit, err := s.Exec(line)
		if err != nil {
			if isInputClosed(err) {
				return nil
			}
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// Exec runs a single command line. It reports true when the command asks the
// shell to stop.
func (s *Shell) Exec(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "add":
		return false, s.add(strings.Join(args, " "))
	case "list", "ls":
		s.list()
	case "done", "toggle":
		return false, s.toggle(args)
	case "rm", "delete":
		return false, s.remove(args)
	case "dump":
		return false, s.dump()
	case "export":
		return false, s.export(args)
	case "help", "?":
		s.help()
	case "quit", "exit":
		return true, nil
	default:
		fmt.Fprintln(s.out, s.cat.T("shell.unknown", cmd))
	}
	return false, nil
}

// add asks for whatever the command line did not supply. Interrupt at either
// prompt cancels the add and leaves the draft untouched.
func (s *Shell) add(title string) error {
	if strings.TrimSpace(title) == "" {
		var err error
		title, err = s.in.ReadLine(s.cat.T("shell.title_prompt"))
		if err != nil {
			return s.cancelOnInterrupt(err)
		}
	}
	desc, err := s.in.ReadLine(s.cat.T("shell.desc_prompt"))
	if err != nil {
		return s.cancelOnInterrupt(err)
	}

	s.ctrl.SetTitle(title)
	s.ctrl.SetDescription(desc)
	task, err := s.ctrl.AddTask()
	if errors.Is(err, core.ErrEmptyTitle) {
		fmt.Fprintln(s.out, s.cat.T("alert.empty_title"))
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, s.cat.T("status.added", task.ID))
	return nil
}

func (s *Shell) list() {
	tasks := s.ctrl.Tasks()
	if len(tasks) == 0 {
		fmt.Fprintln(s.out, s.cat.T("task.empty"))
		return
	}

	done := 0
	for _, t := range tasks {
		fmt.Fprintln(s.out, formatTask(t))
		if t.Description != "" {
			fmt.Fprintf(s.out, "        %s\n", t.Description)
		}
		if t.Done {
			done++
		}
	}
	fmt.Fprintln(s.out, s.cat.T("task.count", len(tasks), done))
}

func formatTask(t models.Task) string {
	mark := "[ ]"
	if t.Done {
		mark = "[x]"
	}
	return fmt.Sprintf("%s %3d  %s", mark, t.ID, t.Title)
}

func (s *Shell) toggle(args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	if !s.ctrl.ToggleDone(id) {
		fmt.Fprintln(s.out, s.cat.T("shell.not_found", id))
		return nil
	}
	fmt.Fprintln(s.out, s.cat.T("status.toggled", id))
	return nil
}

func (s *Shell) remove(args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	confirmed := false
	var readErr error
	removed, err := s.ctrl.DeleteTask(id, core.ConfirmFunc(func(prompt string) bool {
		confirmed, readErr = s.ask(prompt)
		return confirmed
	}))
	if readErr != nil {
		return readErr
	}
	if err != nil {
		return err
	}

	switch {
	case removed:
		fmt.Fprintln(s.out, s.cat.T("status.deleted", id))
	case confirmed:
		fmt.Fprintln(s.out, s.cat.T("shell.not_found", id))
	default:
		fmt.Fprintln(s.out, s.cat.T("status.declined"))
	}
	return nil
}

func (s *Shell) cancelOnInterrupt(err error) error {
	if errors.Is(err, readline.ErrInterrupt) {
		fmt.Fprintln(s.out, s.cat.T("shell.add_cancelled"))
		return nil
	}
	return err
}

// ask shows a [y/N] question. Interrupt counts as no.
func (s *Shell) ask(question string) (bool, error) {
	line, err := s.in.ReadLine(s.cat.T("shell.confirm", question))
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) {
			return false, nil
		}
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func (s *Shell) dump() error {
	out, err := s.exporter.Export(s.ctrl.Tasks(), export.FormatYAML)
	if err != nil {
		return err
	}
	_, err = s.out.Write(out)
	return err
}

func (s *Shell) export(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: export <%s> <file>", strings.Join(export.Formats, "|"))
	}
	format, path := args[0], args[1]

	data, err := s.exporter.Export(s.ctrl.Tasks(), format)
	if err != nil {
		return err
	}
	if err := s.writeFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintln(s.out, s.cat.T("shell.exported", path, len(data)))
	return nil
}

func (s *Shell) help() {
	fmt.Fprintln(s.out, "commands:")
	for _, line := range commandHelp {
		fmt.Fprintf(s.out, "  %s\n", line)
	}
}

func parseID(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.New("expected exactly one task id")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", args[0])
	}
	return id, nil
}
