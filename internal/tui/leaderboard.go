package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-pocket-money/internal/service"
	"github.com/MKhiriev/go-pocket-money/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

const leaderboardSize = 10

type LeaderboardModel struct {
	ctx      context.Context
	pocket   service.ClientPocketService
	username string

	table   table.Model
	rows    []models.LeaderboardRow
	loading bool
	err     error
}

func NewLeaderboardModel(ctx context.Context, pocket service.ClientPocketService, username string) *LeaderboardModel {
	return &LeaderboardModel{
		ctx:      ctx,
		pocket:   pocket,
		username: username,
		table: table.New(
			table.WithColumns([]table.Column{
				{Title: "#", Width: 3},
				{Title: "Name", Width: 20},
				{Title: "Level", Width: 5},
				{Title: "XP", Width: 7},
				{Title: "Points", Width: 7},
			}),
			table.WithFocused(true),
			table.WithHeight(leaderboardSize),
		),
	}
}

func (m *LeaderboardModel) Init() tea.Cmd {
	m.loading = true
	m.err = nil
	ctx := m.ctx
	pocket := m.pocket

	return func() tea.Msg {
		rows, err := pocket.Leaderboard(ctx, leaderboardSize)
		return leaderboardLoadedMsg{rows: rows, err: err}
	}
}

func (m *LeaderboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case leaderboardLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.rows = msg.rows
			m.table.SetRows(leaderboardRows(msg.rows, m.username))
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.refresh):
			return m, m.Init()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *LeaderboardModel) View() string {
	var body string
	switch {
	case m.loading:
		body = "Loading..."
	case m.err != nil:
		body = renderError(m.err)
	case len(m.rows) == 0:
		body = "Nobody has played yet"
	default:
		body = m.table.View()
	}

	return renderPage("LEADERBOARD", body, "↑/↓: scroll │ r: refresh │ esc: menu")
}

// leaderboardRows marks the row of the signed-in user with a star.
func leaderboardRows(rows []models.LeaderboardRow, username string) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		name := r.Username
		if strings.EqualFold(name, username) {
			name = "★ " + name
		}
		out = append(out, table.Row{
			strconv.Itoa(r.Rank),
			fitText(name, 20),
			strconv.Itoa(r.Level),
			strconv.Itoa(r.XP),
			strconv.Itoa(r.Points),
		})
	}
	return out
}
