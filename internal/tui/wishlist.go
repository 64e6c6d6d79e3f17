package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-pocket-money/internal/service"
	"github.com/MKhiriev/go-pocket-money/internal/store"
	"github.com/MKhiriev/go-pocket-money/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

type wishlistDraft struct {
	ItemLabel    string
	TargetAmount string
	ImagePath    string
}

type wishlistMode int

const (
	wishlistView wishlistMode = iota
	wishlistEdit
	wishlistConfirmClear
)

// WishlistModel shows the savings goal and lets the user replace or clear it.
type WishlistModel struct {
	ctx    context.Context
	pocket service.ClientPocketService

	mode    wishlistMode
	goal    models.WishlistGoal
	hasGoal bool
	loading bool
	saving  bool
	status  string
	err     error

	draft *wishlistDraft
	form  *huh.Form
}

func NewWishlistModel(ctx context.Context, pocket service.ClientPocketService) *WishlistModel {
	return &WishlistModel{ctx: ctx, pocket: pocket}
}

func (m *WishlistModel) Init() tea.Cmd {
	m.mode = wishlistView
	m.loading = true
	m.status = ""
	m.err = nil
	return m.cmdLoad()
}

func (m *WishlistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case wishlistLoadedMsg:
		m.loading = false
		m.goal = msg.goal
		m.hasGoal = msg.err == nil
		if msg.err != nil && !errors.Is(msg.err, store.ErrWishlistNotFound) {
			m.err = msg.err
		}
		return m, nil

	case wishlistSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = "Wishlist saved"
		if msg.cleared {
			m.status = "Wishlist cleared"
		}
		m.loading = true
		return m, m.cmdLoad()
	}

	switch m.mode {
	case wishlistEdit:
		return m.updateForm(msg)
	case wishlistConfirmClear:
		return m.updateConfirm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.loading || m.saving {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
	case key.Matches(keyMsg, keys.edit):
		m.status = ""
		m.err = nil
		m.mode = wishlistEdit
		m.draft = &wishlistDraft{}
		if m.hasGoal {
			m.draft.ItemLabel = m.goal.ItemLabel
			m.draft.TargetAmount = strconv.FormatInt(m.goal.TargetAmount, 10)
		}
		m.form = newWishlistForm(m.draft)
		return m, m.form.Init()
	case key.Matches(keyMsg, keys.clear):
		if m.hasGoal {
			m.mode = wishlistConfirmClear
		}
	}

	return m, nil
}

func (m *WishlistModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.esc) {
		m.mode = wishlistView
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.mode = wishlistView
		goal, err := m.draft.toGoal(m.goal)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.saving = true
		return m, m.cmdSave(goal)
	case huh.StateAborted:
		m.mode = wishlistView
		return m, nil
	}

	return m, cmd
}

func (m *WishlistModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes):
		m.mode = wishlistView
		m.saving = true
		return m, m.cmdClear()
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		m.mode = wishlistView
	}

	return m, nil
}

func (m *WishlistModel) View() string {
	if m.mode == wishlistEdit {
		return renderPage("WISHLIST: SET GOAL", m.form.View(), "enter: next │ esc: cancel")
	}

	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString("Loading...")
	case !m.hasGoal:
		b.WriteString("No goal yet. Press e to pick something to save for.")
	default:
		fmt.Fprintf(&b, "Item:   %s\n", m.goal.ItemLabel)
		fmt.Fprintf(&b, "Target: %s\n", formatAmount(m.goal.TargetAmount))
		if len(m.goal.Image) > 0 {
			fmt.Fprintf(&b, "Image:  %s, %d bytes", valueOrNA(m.goal.ImageContentType), len(m.goal.Image))
		} else {
			b.WriteString("Image:  -")
		}
	}

	if m.saving {
		b.WriteString("\n\nSaving...")
	}
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(okStyle.Render(m.status))
	}
	if m.err != nil {
		b.WriteString("\n\n")
		b.WriteString(renderError(m.err))
	}

	body := b.String()
	if m.mode == wishlistConfirmClear {
		body += "\n\n" + overlayBoxStyle.Render("Clear \""+m.goal.ItemLabel+"\"?\n\ny yes    n no")
	}

	return renderPage("WISHLIST", body, "e: set goal │ d: clear │ esc: menu")
}

func (m *WishlistModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	pocket := m.pocket

	return func() tea.Msg {
		goal, err := pocket.Wishlist(ctx)
		return wishlistLoadedMsg{goal: goal, err: err}
	}
}

func (m *WishlistModel) cmdSave(goal models.WishlistGoal) tea.Cmd {
	ctx := m.ctx
	pocket := m.pocket

	return func() tea.Msg {
		return wishlistSavedMsg{err: pocket.SetWishlist(ctx, goal)}
	}
}

func (m *WishlistModel) cmdClear() tea.Cmd {
	ctx := m.ctx
	pocket := m.pocket

	return func() tea.Msg {
		return wishlistSavedMsg{cleared: true, err: pocket.ClearWishlist(ctx)}
	}
}

func newWishlistForm(draft *wishlistDraft) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What are you saving for?").
				Value(&draft.ItemLabel).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("item cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("How much does it cost?").
				Value(&draft.TargetAmount).
				Validate(func(s string) error {
					_, err := parseAmount(s)
					return err
				}),
			huh.NewInput().
				Title("Picture").
				Description("Path to an image file, leave empty to keep the current one").
				Value(&draft.ImagePath),
		),
	).WithTheme(huh.ThemeCharm())
}

// toGoal builds the replacement goal. Without a new picture the previous
// image is carried over.
func (d *wishlistDraft) toGoal(previous models.WishlistGoal) (models.WishlistGoal, error) {
	target, err := parseAmount(d.TargetAmount)
	if err != nil {
		return models.WishlistGoal{}, err
	}

	goal := models.WishlistGoal{
		ItemLabel:    strings.TrimSpace(d.ItemLabel),
		TargetAmount: target,
		Image:        previous.Image,
	}

	if path := strings.TrimSpace(d.ImagePath); path != "" {
		if goal.Image, err = os.ReadFile(path); err != nil {
			return models.WishlistGoal{}, fmt.Errorf("reading picture: %w", err)
		}
	}

	return goal, nil
}
