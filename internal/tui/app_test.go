package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pocket-money/internal/mock"
	"github.com/MKhiriev/go-pocket-money/models"
)

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+y":
		return tea.KeyMsg{Type: tea.KeyCtrlY}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// stubPage records what the router delivers to it.
type stubPage struct {
	inits int
	msgs  []tea.Msg
}

func (p *stubPage) Init() tea.Cmd {
	p.inits++
	return nil
}

func (p *stubPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	p.msgs = append(p.msgs, msg)
	return p, nil
}

func (p *stubPage) View() string { return "stub" }

func newTestPocket(t *testing.T) *mock.MockClientPocketService {
	t.Helper()
	return mock.NewMockClientPocketService(gomock.NewController(t))
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	root := NewRootModel(map[string]tea.Model{pageMenu: NewMenuModel("mia")}, pageMenu, models.AppBuildInfo{})

	updated, cmd := root.Update(keyPress("ctrl+c"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, updated.(RootModel).quitByUser)
}

func TestRootModel_NavigateTo(t *testing.T) {
	target := &stubPage{}
	root := NewRootModel(map[string]tea.Model{
		pageMenu:      NewMenuModel("mia"),
		pageDashboard: target,
	}, pageMenu, models.AppBuildInfo{})

	updated, _ := root.Update(NavigateTo{Page: pageDashboard})
	root = updated.(RootModel)

	assert.Same(t, target, root.current)
	assert.Equal(t, 1, target.inits)
	assert.Contains(t, root.View(), "stub")
}

func TestRootModel_NavigateToUnknownPageIsIgnored(t *testing.T) {
	menu := NewMenuModel("mia")
	root := NewRootModel(map[string]tea.Model{pageMenu: menu}, pageMenu, models.AppBuildInfo{})

	updated, cmd := root.Update(NavigateTo{Page: "nowhere"})

	assert.Nil(t, cmd)
	assert.Same(t, menu, updated.(RootModel).current)
}

func TestRootModel_NavigateToDeliversPayload(t *testing.T) {
	target := &stubPage{}
	root := NewRootModel(map[string]tea.Model{
		pageLogin: &stubPage{},
		pageMenu:  target,
	}, pageLogin, models.AppBuildInfo{})

	payload := entrySavedMsg{entry: models.Entry{Label: "gum"}}
	updated, cmd := root.Update(NavigateTo{Page: pageMenu, Payload: payload})
	require.NotNil(t, cmd)
	assert.Zero(t, target.inits)

	updated, _ = updated.Update(cmd())
	assert.Same(t, target, updated.(RootModel).current)
	assert.Equal(t, []tea.Msg{payload}, target.msgs)
}

func TestRootModel_LoginResult(t *testing.T) {
	root := NewRootModel(map[string]tea.Model{pageLogin: &stubPage{}}, pageLogin, models.AppBuildInfo{})

	updated, cmd := root.Update(LoginResult{Username: "mia"})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "mia", updated.(RootModel).username)

	page := &stubPage{}
	root = NewRootModel(map[string]tea.Model{pageLogin: page}, pageLogin, models.AppBuildInfo{})
	failed := LoginResult{Err: errors.New("boom")}
	updated, _ = root.Update(failed)
	assert.Empty(t, updated.(RootModel).username)
	assert.Equal(t, []tea.Msg{failed}, page.msgs)
}

func TestRootModel_LogoutRequested(t *testing.T) {
	root := NewRootModel(map[string]tea.Model{pageMenu: NewMenuModel("mia")}, pageMenu, models.AppBuildInfo{})

	updated, cmd := root.Update(LogoutRequested{})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, updated.(RootModel).logout)
}

func TestRootModel_BuildInfoOverlay(t *testing.T) {
	info := models.NewAppBuildInfo("v1.2.3", "2026-01-02", "abc123")
	root := NewRootModel(map[string]tea.Model{pageMenu: NewMenuModel("mia")}, pageMenu, info)

	updated, _ := root.Update(keyPress("v"))
	view := updated.View()
	assert.Contains(t, view, "ABOUT")
	assert.Contains(t, view, "v1.2.3")
	assert.Contains(t, view, "abc123")

	// keys other than esc are swallowed by the overlay
	updated, _ = updated.Update(keyPress("down"))
	assert.Equal(t, 0, updated.(RootModel).current.(*MenuModel).idx)

	updated, _ = updated.Update(keyPress("esc"))
	assert.NotContains(t, updated.View(), "ABOUT")
}

func TestRootModel_BuildInfoOnlyFromMenu(t *testing.T) {
	page := &stubPage{}
	root := NewRootModel(map[string]tea.Model{pageLogin: page}, pageLogin, models.AppBuildInfo{})

	updated, _ := root.Update(keyPress("v"))

	assert.False(t, updated.(RootModel).showBuildInfo)
	assert.Len(t, page.msgs, 1)
}

func TestRootModel_WindowSizeReachesEveryPage(t *testing.T) {
	a, b := &stubPage{}, &stubPage{}
	root := NewRootModel(map[string]tea.Model{"a": a, "b": b}, "a", models.AppBuildInfo{})

	root.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Len(t, a.msgs, 1)
	assert.Len(t, b.msgs, 1)
}

func TestMenuModel_Navigation(t *testing.T) {
	m := NewMenuModel("mia")

	m.Update(keyPress("down"))
	_, cmd := m.Update(keyPress("enter"))

	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageAddIncome}, cmd())
}

func TestMenuModel_UpStopsAtTop(t *testing.T) {
	m := NewMenuModel("mia")

	m.Update(keyPress("up"))

	assert.Equal(t, 0, m.idx)
}

func TestMenuModel_Logout(t *testing.T) {
	m := NewMenuModel("mia")
	m.idx = len(m.items) - 2

	_, cmd := m.Update(keyPress("enter"))

	require.NotNil(t, cmd)
	assert.Equal(t, LogoutRequested{}, cmd())
}

func TestMenuModel_Quit(t *testing.T) {
	m := NewMenuModel("mia")
	m.idx = len(m.items) - 1

	_, cmd := m.Update(keyPress("enter"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestMenuModel_ShowsSavedEntry(t *testing.T) {
	m := NewMenuModel("mia")

	m.Update(entrySavedMsg{entry: models.Entry{Kind: models.EntryKindExpense, Label: "gum", Amount: 1500}})

	assert.Contains(t, m.View(), `Saved expense "gum" (1 500)`)
	assert.Contains(t, m.View(), "Hi, mia!")
}

func TestTUI_New(t *testing.T) {
	ui := New(nil, models.AppBuildInfo{}, nil)
	require.NotNil(t, ui)
	assert.NotEmpty(t, ui.options)
}
