package tui

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-pocket-money/internal/service"
	"github.com/MKhiriev/go-pocket-money/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

type entryDraft struct {
	Label     string
	Amount    string
	Category  string
	Date      string
	Necessity models.Necessity
}

// EntryFormModel records one expense or income through a huh form. The
// suggested categories are fetched once and cached for later forms.
type EntryFormModel struct {
	ctx    context.Context
	pocket service.ClientPocketService
	kind   models.EntryKind
	now    func() time.Time

	draft      *entryDraft
	form       *huh.Form
	categories *models.Categories
	saving     bool
	errMsg     string
}

func NewEntryFormModel(ctx context.Context, pocket service.ClientPocketService, kind models.EntryKind) *EntryFormModel {
	return &EntryFormModel{
		ctx:    ctx,
		pocket: pocket,
		kind:   kind,
		now:    time.Now,
	}
}

func (m *EntryFormModel) Init() tea.Cmd {
	m.saving = false
	m.errMsg = ""
	m.draft = &entryDraft{
		Date:      models.NewDate(m.now()).String(),
		Necessity: models.NecessityNeed,
	}

	if m.categories == nil {
		m.form = nil
		return m.cmdLoadCategories()
	}

	m.form = newEntryForm(m.kind, m.draft, m.suggestions())
	return m.form.Init()
}

func (m *EntryFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case categoriesLoadedMsg:
		// without suggestions the category is still free text
		m.categories = &msg.categories
		m.form = newEntryForm(m.kind, m.draft, m.suggestions())
		return m, m.form.Init()

	case entrySavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = humanizeEntryError(msg.err)
			m.form = newEntryForm(m.kind, m.draft, m.suggestions())
			return m, m.form.Init()
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu, Payload: msg} }

	case tea.KeyMsg:
		if key.Matches(msg, keys.esc) && !m.saving {
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		}
	}

	if m.form == nil || m.saving {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		entry, err := m.draft.toEntry(m.kind)
		if err != nil {
			m.errMsg = err.Error()
			m.form = newEntryForm(m.kind, m.draft, m.suggestions())
			return m, m.form.Init()
		}
		m.saving = true
		return m, m.cmdRecord(entry)
	case huh.StateAborted:
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
	}

	return m, cmd
}

func (m *EntryFormModel) View() string {
	title := "ADD EXPENSE"
	if m.kind == models.EntryKindIncome {
		title = "ADD INCOME"
	}

	var b strings.Builder
	switch {
	case m.saving:
		b.WriteString("Saving...")
	case m.form == nil:
		b.WriteString("Loading categories...")
	default:
		b.WriteString(m.form.View())
	}

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage(title, b.String(), "enter: next │ shift+tab: back │ esc: menu")
}

func (m *EntryFormModel) suggestions() []string {
	if m.categories == nil {
		return nil
	}
	if m.kind == models.EntryKindIncome {
		return m.categories.Income
	}
	return m.categories.Expense
}

func (m *EntryFormModel) cmdLoadCategories() tea.Cmd {
	ctx := m.ctx
	pocket := m.pocket

	return func() tea.Msg {
		categories, err := pocket.Categories(ctx)
		return categoriesLoadedMsg{categories: categories, err: err}
	}
}

func (m *EntryFormModel) cmdRecord(entry models.Entry) tea.Cmd {
	ctx := m.ctx
	pocket := m.pocket

	return func() tea.Msg {
		saved, err := pocket.Record(ctx, entry)
		return entrySavedMsg{entry: saved, err: err}
	}
}

func newEntryForm(kind models.EntryKind, draft *entryDraft, suggestions []string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("What was it?").
			Placeholder("ice cream").
			Value(&draft.Label).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("label cannot be empty")
				}
				return nil
			}),
		huh.NewInput().
			Title("Amount").
			Description("Whole number, for example 250").
			Value(&draft.Amount).
			Validate(func(s string) error {
				_, err := parseAmount(s)
				return err
			}),
		huh.NewInput().
			Title("Category").
			Suggestions(suggestions).
			Value(&draft.Category).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("category cannot be empty")
				}
				return nil
			}),
	}

	if kind == models.EntryKindExpense {
		fields = append(fields, huh.NewSelect[models.Necessity]().
			Title("Did you need it or just want it?").
			Options(
				huh.NewOption("I needed it", models.NecessityNeed),
				huh.NewOption("I wanted it", models.NecessityWant),
			).
			Value(&draft.Necessity))
	}

	fields = append(fields, huh.NewInput().
		Title("Date").
		Description("YYYY-MM-DD, leave empty for today").
		Value(&draft.Date).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return nil
			}
			_, err := models.ParseDate(strings.TrimSpace(s))
			return err
		}))

	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(huh.ThemeCharm())
}

func (d *entryDraft) toEntry(kind models.EntryKind) (models.Entry, error) {
	amount, err := parseAmount(d.Amount)
	if err != nil {
		return models.Entry{}, err
	}

	entry := models.Entry{
		Kind:     kind,
		Label:    strings.TrimSpace(d.Label),
		Amount:   amount,
		Category: strings.TrimSpace(d.Category),
	}
	if kind == models.EntryKindExpense {
		entry.Necessity = d.Necessity
	}
	if s := strings.TrimSpace(d.Date); s != "" {
		if entry.Date, err = models.ParseDate(s); err != nil {
			return models.Entry{}, err
		}
	}

	return entry, nil
}

func parseAmount(s string) (int64, error) {
	amount, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || amount <= 0 {
		return 0, errors.New("amount must be a positive whole number")
	}
	return amount, nil
}

func humanizeEntryError(err error) string {
	if errors.Is(err, service.ErrInvalidInput) {
		return err.Error()
	}
	return humanizeServerUnavailableError(err)
}
