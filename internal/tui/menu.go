package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuItem struct {
	title string
	page  string
}

// Pseudo pages handled by the menu itself.
const (
	menuLogout = "logout"
	menuQuit   = "quit"
)

type MenuModel struct {
	username string
	items    []menuItem
	idx      int
	status   string
}

func NewMenuModel(username string) *MenuModel {
	return &MenuModel{
		username: username,
		items: []menuItem{
			{title: "Add expense", page: pageAddExpense},
			{title: "Add income", page: pageAddIncome},
			{title: "My expenses", page: pageExpenses},
			{title: "My income", page: pageIncome},
			{title: "Dashboard", page: pageDashboard},
			{title: "Wishlist", page: pageWishlist},
			{title: "Leaderboard", page: pageLeaderboard},
			{title: "Ask the money coach", page: pageChat},
			{title: "Log out", page: menuLogout},
			{title: "Quit", page: menuQuit},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if saved, ok := msg.(entrySavedMsg); ok && saved.err == nil {
		m.status = fmt.Sprintf("Saved %s \"%s\" (%s)", saved.entry.Kind, saved.entry.Label, formatAmount(saved.entry.Amount))
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.status = ""
		switch page := m.items[m.idx].page; page {
		case menuLogout:
			return m, func() tea.Msg { return LogoutRequested{} }
		case menuQuit:
			return m, tea.Quit
		default:
			return m, func() tea.Msg { return NavigateTo{Page: page} }
		}
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	idColWidth := lipgloss.Width("ID")
	itemsCountWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items)))
	if itemsCountWidth > idColWidth {
		idColWidth = itemsCountWidth
	}
	idColWidth += 2 // reserve space for selection marker and space ("<marker> <id>")

	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item.title); w > actionColWidth {
			actionColWidth = w
		}
	}

	if m.username != "" {
		b.WriteString("Hi, ")
		b.WriteString(m.username)
		b.WriteString("!\n\n")
	}
	if m.status != "" {
		b.WriteString(okStyle.Render("OK: " + m.status))
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item.title))
	}

	return renderPage("MAIN MENU", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: version")
}
