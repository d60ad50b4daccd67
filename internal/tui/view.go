package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/valter-silva-au/taskpad/pkg/models"
)

// Lines taken by the header, status line and footer.
const chromeHeight = 3

// cardHeight is the rendered height of one task card: two content lines and
// the border.
const cardHeight = 4

func (m Model) View() string {
	header := m.theme.HeaderStyle.Width(m.width).Render(m.cat.T("app.title"))

	bodyHeight := m.bodyHeight()
	mainWidth := m.mainWidth()

	var main string
	if m.dialog != dialogNone {
		main = lipgloss.Place(mainWidth, bodyHeight, lipgloss.Center, lipgloss.Center, m.renderDialog())
	} else {
		main = m.renderPage(mainWidth-2, bodyHeight)
	}
	main = lipgloss.NewStyle().
		Width(mainWidth).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		PaddingLeft(1).
		Render(main)

	body := main
	if sw := m.sidebarWidth(); sw > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(sw, bodyHeight), main)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		m.renderStatusLine(),
		m.renderFooter(),
	)
}

func (m Model) sidebarWidth() int {
	w := m.opts.SidebarWidth
	if w <= 0 {
		return 0
	}
	if w > m.width/2 {
		w = m.width / 2
	}
	return w
}

func (m Model) mainWidth() int {
	w := m.width - m.sidebarWidth()
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) bodyHeight() int {
	h := m.height - chromeHeight
	if h < cardHeight+2 {
		h = cardHeight + 2
	}
	return h
}

func (m Model) renderSidebar(width, height int) string {
	inner := width - 2

	items := []string{m.theme.MenuTitleStyle.Render(fitWidth(m.cat.T("menu.title"), inner))}
	for i, label := range []string{"menu.home", "menu.tasks", "menu.about"} {
		style := m.theme.MenuItemStyle
		if page(i) == m.page {
			style = m.theme.MenuActiveStyle
		}
		text := fmt.Sprintf("F%d %s", i+1, m.cat.T(label))
		items = append(items, style.Render(padRight(fitWidth(text, inner), inner)))
	}
	top := lipgloss.JoinVertical(lipgloss.Left, items...)

	user := fmt.Sprintf("%s : %s", m.opts.User.Name, m.opts.User.Role)
	gap := height - lipgloss.Height(top)
	if gap < 1 {
		gap = 1
	}
	content := top + strings.Repeat("\n", gap) + m.theme.MutedStyle.Bold(true).Render(fitWidth(user, inner))

	return m.theme.SidebarStyle.
		Width(width - 1).
		Height(height).
		MaxHeight(height).
		Render(content)
}

func (m Model) renderPage(width, height int) string {
	switch m.page {
	case pageAbout:
		return m.about
	case pageTasks:
		return m.renderList(width, height)
	}

	form := m.renderForm(width)
	list := m.renderList(width, height-lipgloss.Height(form))
	return lipgloss.JoinVertical(lipgloss.Left, form, list)
}

func (m Model) renderForm(width int) string {
	submit := m.theme.SubmitStyle.Render(m.cat.T("form.submit"))
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.LabelStyle.Render(m.cat.T("form.title.label")),
		m.title.View(),
		m.theme.LabelStyle.Render(m.cat.T("form.desc.label")),
		m.desc.View(),
		submit,
	)

	style := m.theme.FormStyle
	if m.focus != focusList {
		style = m.theme.FormActiveStyle
	}
	return style.Width(width - 2).Render(content)
}

func (m Model) renderList(width, height int) string {
	tasks := m.ctrl.Tasks()

	done := 0
	for _, t := range tasks {
		if t.Done {
			done++
		}
	}
	head := m.theme.MutedStyle.Render(m.cat.T("task.count", len(tasks), done))

	if len(tasks) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, head, "", m.theme.MutedStyle.Render(m.cat.T("task.empty")))
	}

	visible := (height - 1) / cardHeight
	if visible < 1 {
		visible = 1
	}
	cursor := clampCursor(m.cursor, len(tasks))
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(tasks) {
		end = len(tasks)
	}

	rows := []string{head}
	for i := start; i < end; i++ {
		rows = append(rows, m.renderCard(tasks[i], i == cursor && m.focus == focusList, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderCard(t models.Task, selected bool, width int) string {
	inner := width - 4

	toggle := m.theme.MarkDoneStyle.Render(m.cat.T("task.mark_done"))
	if t.Done {
		toggle = m.theme.MarkUndoneStyle.Render(m.cat.T("task.mark_undone"))
	}
	buttons := toggle + " " + m.theme.DeleteStyle.Render(m.cat.T("task.delete"))

	titleWidth := inner - lipgloss.Width(buttons) - 1
	if titleWidth < 4 {
		titleWidth = 4
	}
	title := fitWidth(fmt.Sprintf("#%d %s", t.ID, t.Title), titleWidth)
	desc := fitWidth(t.Description, inner)

	titleStyle := m.theme.TitleStyle
	descStyle := m.theme.MutedStyle
	if t.Done {
		titleStyle = m.theme.DoneTitleStyle
		descStyle = m.theme.DoneDescStyle
	}

	pad := titleWidth - runewidth.StringWidth(title) + 1
	line := titleStyle.Render(title) + strings.Repeat(" ", pad) + buttons

	style := m.theme.CardStyle
	switch {
	case selected:
		style = m.theme.CardCursorStyle
	case t.Done:
		style = m.theme.CardDoneStyle
	}
	return style.Width(width - 2).Render(line + "\n" + descStyle.Render(desc))
}

func (m Model) renderDialog() string {
	switch m.dialog {
	case dialogAlert:
		return m.theme.AlertStyle.Render(
			m.cat.T("alert.empty_title") + "\n\n" + m.theme.MutedStyle.Render(m.cat.T("alert.hint")))
	case dialogConfirm:
		return m.theme.ConfirmStyle.Render(
			m.cat.T("confirm.delete") + "\n\n" + m.theme.MutedStyle.Render(m.cat.T("confirm.hint")))
	}
	return ""
}

func (m Model) renderStatusLine() string {
	help := m.cat.T("help.list")
	if m.page != pageAbout && m.focus != focusList {
		help = m.cat.T("help.form")
	}
	line := m.theme.MutedStyle.Render(help)
	if m.status != "" {
		line = m.theme.StatusStyle.Render(m.status) + "  " + line
	}
	return fitWidthStyled(line, m.width)
}

func (m Model) renderFooter() string {
	text := m.opts.Footer
	if text == "" {
		text = m.cat.T("footer.default", time.Now().Year(), m.opts.User.Name)
	}
	return m.theme.FooterStyle.Width(m.width).Render(text)
}

// fitWidthStyled keeps an already styled line to a single row of width cells.
func fitWidthStyled(s string, width int) string {
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}
