// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-pocket-money/internal/service"
	"github.com/MKhiriev/go-pocket-money/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the Bubble Tea model for the login screen. It renders two text inputs
// (name and PIN) and dispatches an async login command on form submission.
// On success a [LoginResult] message is produced and handled by [RootModel] to finish
// the authentication flow. An unknown name is registered by the server on first login.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with pre-configured name and PIN inputs.
// The name field receives focus immediately; the PIN field uses masked echo.
func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "name"
	nameInput.CharLimit = 32
	nameInput.Width = 32
	nameInput.Focus()

	pinInput := textinput.New()
	pinInput.Placeholder = "PIN"
	pinInput.CharLimit = 12
	pinInput.Width = 32
	pinInput.EchoMode = textinput.EchoPassword
	pinInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{nameInput, pinInput},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult]  clears submitting state; on error, populates errMsg.
//   - tab            moves focus to the next input.
//   - shift+tab      moves focus to the previous input.
//   - enter          on the name field moves to the PIN, on the PIN submits.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeLoginError(result.Err)
			m.inputs[1].SetValue("")
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			if m.focus == 0 {
				m.focusNext()
				return m, nil
			}

			name := strings.TrimSpace(m.inputs[0].Value())
			pin := m.inputs[1].Value()
			if name == "" || pin == "" {
				m.errMsg = "Name and PIN are required"
				return m, nil
			}
			if !isDigits(pin) {
				m.errMsg = "PIN must contain digits only"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(name, pin)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Field │ Value\n")
	b.WriteString("──────┼────────────────────────────────────────\n")
	b.WriteString("Name  │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("PIN   │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}
	b.WriteString(helpStyle.Render("\nNew here? Pick a name and a PIN, your account is created on first sign in.\n"))

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: confirm")
}

func (m *LoginModel) cmdLogin(name, pin string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		username, err := auth.Login(ctx, models.Credentials{Name: name, Secret: pin})
		return LoginResult{Username: username, Err: err}
	}
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func humanizeLoginError(err error) string {
	switch {
	case errors.Is(err, service.ErrWrongSecret):
		return "Wrong PIN for this name"
	case errors.Is(err, service.ErrInvalidInput):
		return "Check the name and PIN: " + err.Error()
	default:
		return humanizeServerUnavailableError(err)
	}
}
