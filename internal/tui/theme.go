package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the board's colours and pre-built styles.
type Theme struct {
	Primary lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Danger  lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color
	Border  lipgloss.Color

	HeaderStyle     lipgloss.Style
	FooterStyle     lipgloss.Style
	SidebarStyle    lipgloss.Style
	MenuTitleStyle  lipgloss.Style
	MenuItemStyle   lipgloss.Style
	MenuActiveStyle lipgloss.Style
	LabelStyle      lipgloss.Style
	FormStyle       lipgloss.Style
	FormActiveStyle lipgloss.Style
	SubmitStyle     lipgloss.Style
	CardStyle       lipgloss.Style
	CardDoneStyle   lipgloss.Style
	CardCursorStyle lipgloss.Style
	TitleStyle      lipgloss.Style
	DoneTitleStyle  lipgloss.Style
	DoneDescStyle   lipgloss.Style
	MarkDoneStyle   lipgloss.Style
	MarkUndoneStyle lipgloss.Style
	DeleteStyle     lipgloss.Style
	AlertStyle      lipgloss.Style
	ConfirmStyle    lipgloss.Style
	StatusStyle     lipgloss.Style
	MutedStyle      lipgloss.Style
}

// DefaultTheme returns the board's colour scheme: a blue header, green for
// finished work, amber and red for the undo and delete actions.
func DefaultTheme() Theme {
	t := Theme{
		Primary: lipgloss.Color("#2563EB"),
		Success: lipgloss.Color("#15803D"),
		Warning: lipgloss.Color("#F59E0B"),
		Danger:  lipgloss.Color("#DC2626"),
		Muted:   lipgloss.Color("#6B7280"),
		Text:    lipgloss.Color("#E5E7EB"),
		Border:  lipgloss.Color("#374151"),
	}

	t.HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(t.Primary).
		Padding(0, 1)

	t.FooterStyle = lipgloss.NewStyle().
		Foreground(t.Muted).
		Align(lipgloss.Center)

	t.SidebarStyle = lipgloss.NewStyle().
		BorderRight(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		PaddingLeft(1)

	t.MenuTitleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	t.MenuItemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#60A5FA"))
	t.MenuActiveStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(t.Primary).
		Bold(true)

	t.LabelStyle = lipgloss.NewStyle().Foreground(t.Muted)

	t.FormStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
	t.FormActiveStyle = t.FormStyle.BorderForeground(t.Primary)

	t.SubmitStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(t.Primary).
		Padding(0, 1)

	t.CardStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
	t.CardDoneStyle = t.CardStyle.BorderForeground(t.Success)
	t.CardCursorStyle = t.CardStyle.
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(t.Primary)

	t.TitleStyle = lipgloss.NewStyle().Bold(true)
	t.DoneTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Success).
		Strikethrough(true)
	t.DoneDescStyle = lipgloss.NewStyle().
		Foreground(t.Muted).
		Strikethrough(true)

	t.MarkDoneStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(t.Success).
		Padding(0, 1)
	t.MarkUndoneStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#000000")).
		Background(t.Warning).
		Padding(0, 1)
	t.DeleteStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(t.Danger).
		Padding(0, 1)

	t.AlertStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(t.Warning).
		Padding(1, 3)
	t.ConfirmStyle = t.AlertStyle.BorderForeground(t.Danger)

	t.StatusStyle = lipgloss.NewStyle().Foreground(t.Success)
	t.MutedStyle = lipgloss.NewStyle().Foreground(t.Muted)

	return t
}
