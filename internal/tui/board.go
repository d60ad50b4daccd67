// Package tui implements the interactive task board: a header, a sidebar menu,
// the add-task form, the task cards and a footer, with modal dialogs for the
// empty-title alert and the delete confirmation.
package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/valter-silva-au/taskpad/internal/core"
	"github.com/valter-silva-au/taskpad/internal/i18n"
	"github.com/valter-silva-au/taskpad/pkg/models"
)

type focusArea int

const (
	focusTitle focusArea = iota
	focusDesc
	focusList
	focusCount
)

type page int

const (
	pageHome page = iota
	pageTasks
	pageAbout
)

type dialogKind int

const (
	dialogNone dialogKind = iota
	dialogAlert
	dialogConfirm
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Options carries the configuration the board displays.
type Options struct {
	User         models.UserConfig
	Footer       string
	SidebarWidth int
}

// Model is the Bubble Tea model for the board. The task list itself lives in
// the controller; the model only holds view state.
type Model struct {
	ctrl  *core.Controller
	cat   *i18n.Catalog
	keys  KeyMap
	theme Theme
	opts  Options

	title textinput.Model
	desc  textinput.Model

	focus         focusArea
	page          page
	cursor        int
	dialog        dialogKind
	pendingDelete int
	status        string
	about         string

	width  int
	height int
}

// New builds a board over ctrl. Any draft already held by the controller is
// shown in the form.
func New(ctrl *core.Controller, cat *i18n.Catalog, opts Options) Model {
	title := textinput.New()
	title.Placeholder = cat.T("form.title.placeholder")

	desc := textinput.New()
	desc.Placeholder = cat.T("form.desc.placeholder")

	form := ctrl.Form()
	title.SetValue(form.Title)
	desc.SetValue(form.Description)
	title.Focus()

	m := Model{
		ctrl:   ctrl,
		cat:    cat,
		keys:   DefaultKeyMap(),
		theme:  DefaultTheme(),
		opts:   opts,
		title:  title,
		desc:   desc,
		focus:  focusTitle,
		page:   pageHome,
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.resize()
	return m
}

// Run starts the board and blocks until the user quits.
func Run(m Model, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		switch m.dialog {
		case dialogAlert:
			return m.updateAlert(msg)
		case dialogConfirm:
			return m.updateConfirm(msg)
		}
		return m.handleKey(msg)
	}

	// Cursor blink and other input messages.
	return m.updateInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Home):
		return m.switchPage(pageHome)
	case key.Matches(msg, m.keys.Tasks):
		return m.switchPage(pageTasks)
	case key.Matches(msg, m.keys.About):
		return m.switchPage(pageAbout)
	}

	if m.page == pageAbout {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextFocus):
		cmd := m.cycleFocus(1)
		return m, cmd
	case key.Matches(msg, m.keys.PrevFocus):
		cmd := m.cycleFocus(-1)
		return m, cmd
	}

	if m.focus == focusList {
		return m.updateList(msg)
	}
	return m.updateForm(msg)
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Blur):
		cmd := m.setFocus(focusList)
		return m, cmd
	}
	return m.updateInput(msg)
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
	case focusDesc:
		m.desc, cmd = m.desc.Update(msg)
	default:
		return m, nil
	}
	m.syncDraft()
	return m, cmd
}

// submit hands the draft to the controller. A blank title raises the alert
// and leaves both inputs as typed.
func (m Model) submit() (tea.Model, tea.Cmd) {
	m.syncDraft()
	task, err := m.ctrl.AddTask()
	if err != nil {
		if errors.Is(err, core.ErrEmptyTitle) {
			m.dialog = dialogAlert
			return m, nil
		}
		m.status = err.Error()
		return m, nil
	}

	m.title.SetValue("")
	m.desc.SetValue("")
	m.cursor = m.indexOf(task.ID)
	m.status = m.cat.T("status.added", task.ID)
	cmd := m.setFocus(focusTitle)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasks := m.ctrl.Tasks()
	m.cursor = clampCursor(m.cursor, len(tasks))

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(tasks)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if len(tasks) == 0 {
			return m, nil
		}
		id := tasks[m.cursor].ID
		if m.ctrl.ToggleDone(id) {
			m.status = m.cat.T("status.toggled", id)
		}
	case key.Matches(msg, m.keys.Delete):
		if len(tasks) == 0 {
			return m, nil
		}
		m.pendingDelete = tasks[m.cursor].ID
		m.dialog = dialogConfirm
	}
	return m, nil
}

func (m Model) updateAlert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Dismiss) {
		m.dialog = dialogNone
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		return m.resolveDelete(true), nil
	case key.Matches(msg, m.keys.No):
		return m.resolveDelete(false), nil
	}
	return m, nil
}

// resolveDelete passes the dialog's answer to the controller as its Confirmer.
func (m Model) resolveDelete(answer bool) Model {
	id := m.pendingDelete
	m.dialog = dialogNone
	m.pendingDelete = 0

	removed, err := m.ctrl.DeleteTask(id, core.ConfirmFunc(func(string) bool { return answer }))
	switch {
	case err != nil:
		m.status = err.Error()
	case removed:
		m.status = m.cat.T("status.deleted", id)
	default:
		m.status = m.cat.T("status.declined")
	}
	m.cursor = clampCursor(m.cursor, len(m.ctrl.Tasks()))
	return m
}

func (m Model) switchPage(p page) (tea.Model, tea.Cmd) {
	m.page = p
	if p == pageTasks && m.focus != focusList {
		cmd := m.setFocus(focusList)
		return m, cmd
	}
	return m, nil
}

// cycleFocus moves focus by delta. The Tasks page has no form, so focus stays
// on the list there.
func (m *Model) cycleFocus(delta int) tea.Cmd {
	if m.page == pageTasks {
		return m.setFocus(focusList)
	}
	next := (int(m.focus) + delta + int(focusCount)) % int(focusCount)
	return m.setFocus(focusArea(next))
}

func (m *Model) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	m.title.Blur()
	m.desc.Blur()
	switch f {
	case focusTitle:
		return m.title.Focus()
	case focusDesc:
		return m.desc.Focus()
	}
	return nil
}

func (m *Model) syncDraft() {
	m.ctrl.SetTitle(m.title.Value())
	m.ctrl.SetDescription(m.desc.Value())
}

func (m *Model) resize() {
	inputWidth := m.mainWidth() - 8
	if inputWidth < 10 {
		inputWidth = 10
	}
	m.title.Width = inputWidth
	m.desc.Width = inputWidth
	m.about = RenderMarkdown(m.cat.T("about.body"), m.mainWidth()-2)
}

func (m Model) indexOf(id int) int {
	for i, t := range m.ctrl.Tasks() {
		if t.ID == id {
			return i
		}
	}
	return 0
}

func clampCursor(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}
