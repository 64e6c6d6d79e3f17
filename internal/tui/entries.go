package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pocket-money/internal/service"
	"github.com/MKhiriev/go-pocket-money/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

const tableHeight = 12

// EntriesModel lists the entries of one kind, newest first as the server
// returns them, together with today's total.
type EntriesModel struct {
	ctx    context.Context
	pocket service.ClientPocketService
	kind   models.EntryKind
	now    func() time.Time

	table   table.Model
	count   int
	today   int64
	loading bool
	err     error
}

func NewEntriesModel(ctx context.Context, pocket service.ClientPocketService, kind models.EntryKind) *EntriesModel {
	return &EntriesModel{
		ctx:    ctx,
		pocket: pocket,
		kind:   kind,
		now:    time.Now,
		table: table.New(
			table.WithColumns(entryColumns(kind)),
			table.WithFocused(true),
			table.WithHeight(tableHeight),
		),
	}
}

func (m *EntriesModel) Init() tea.Cmd {
	m.loading = true
	m.err = nil
	return m.cmdLoad()
}

func (m *EntriesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case entriesLoadedMsg:
		if msg.kind != m.kind {
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.count = len(msg.entries)
			m.today = msg.today
			m.table.SetRows(entryRows(m.kind, msg.entries))
			m.table.GotoTop()
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

func (m *EntriesModel) View() string {
	title := "MY EXPENSES"
	todayLabel := "Spent today"
	if m.kind == models.EntryKindIncome {
		title = "MY INCOME"
		todayLabel = "Earned today"
	}

	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString("Loading...")
	case m.err != nil:
		b.WriteString(renderError(m.err))
	case m.count == 0:
		b.WriteString("Nothing here yet")
	default:
		b.WriteString(fmt.Sprintf("%s: %s\n\n", todayLabel, formatAmount(m.today)))
		b.WriteString(m.table.View())
	}

	return renderPage(title, b.String(), "↑/↓: scroll │ r: refresh │ esc: menu")
}

func (m *EntriesModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	pocket := m.pocket
	kind := m.kind
	today := models.NewDate(m.now())

	return func() tea.Msg {
		entries, err := pocket.Entries(ctx, kind)
		if err != nil {
			return entriesLoadedMsg{kind: kind, err: err}
		}

		total, err := pocket.DailyTotal(ctx, kind, today)
		return entriesLoadedMsg{kind: kind, entries: entries, today: total, err: err}
	}
}

func entryColumns(kind models.EntryKind) []table.Column {
	columns := []table.Column{
		{Title: "Date", Width: 10},
		{Title: "Label", Width: 24},
		{Title: "Category", Width: 14},
	}
	if kind == models.EntryKindExpense {
		columns = append(columns, table.Column{Title: "Need/Want", Width: 9})
	}
	return append(columns, table.Column{Title: "Amount", Width: 10})
}

func entryRows(kind models.EntryKind, entries []models.Entry) []table.Row {
	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		row := table.Row{e.Date.String(), fitText(e.Label, 24), fitText(e.Category, 14)}
		if kind == models.EntryKindExpense {
			row = append(row, string(e.Necessity))
		}
		rows = append(rows, append(row, formatAmount(e.Amount)))
	}
	return rows
}
