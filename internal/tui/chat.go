package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-pocket-money/internal/adapter"
	"github.com/MKhiriev/go-pocket-money/internal/service"
	"github.com/MKhiriev/go-pocket-money/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

const chatWidth = 60

// ChatModel sends a prompt to the money coach and shows the last reply.
type ChatModel struct {
	ctx    context.Context
	pocket service.ClientPocketService

	input   textarea.Model
	spinner spinner.Model
	waiting bool
	reply   models.ChatReply
	choices models.ChatModels
	status  string
	err     error
}

func NewChatModel(ctx context.Context, pocket service.ClientPocketService) *ChatModel {
	input := textarea.New()
	input.Placeholder = "How can I save for a bike faster?"
	input.SetWidth(chatWidth)
	input.SetHeight(3)
	input.ShowLineNumbers = false

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &ChatModel{
		ctx:     ctx,
		pocket:  pocket,
		input:   input,
		spinner: s,
	}
}

func (m *ChatModel) Init() tea.Cmd {
	m.status = ""
	m.err = nil
	ctx := m.ctx
	pocket := m.pocket

	return tea.Batch(m.input.Focus(), func() tea.Msg {
		list, err := pocket.ChatModels(ctx)
		return chatModelsMsg{models: list, err: err}
	})
}

func (m *ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case chatModelsMsg:
		// the model list is informational only
		if msg.err == nil {
			m.choices = msg.models
		}
		return m, nil

	case chatReplyMsg:
		m.waiting = false
		m.err = msg.err
		if msg.err == nil {
			m.reply = msg.reply
			m.input.Reset()
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = "Could not copy: " + msg.err.Error()
		} else {
			m.status = "Reply copied to clipboard"
		}
		return m, nil

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.input.Blur()
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.copy):
			return m, m.cmdCopy()
		case key.Matches(msg, keys.send):
			prompt := strings.TrimSpace(m.input.Value())
			if prompt == "" || m.waiting {
				return m, nil
			}
			m.waiting = true
			m.status = ""
			m.err = nil
			return m, tea.Batch(m.spinner.Tick, m.cmdSend(prompt))
		}
	}

	if m.waiting {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ChatModel) View() string {
	var b strings.Builder

	if m.choices.Primary != "" {
		b.WriteString(helpStyle.Render("model: " + m.choices.Primary))
		b.WriteString("\n\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.waiting:
		b.WriteString(m.spinner.View())
		b.WriteString(" Thinking...")
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error: " + humanizeChatError(m.err)))
	case m.reply.Text != "":
		b.WriteString(lipgloss.NewStyle().Width(chatWidth).Render(m.reply.Text))
		if m.reply.FellBack {
			b.WriteString("\n")
			b.WriteString(helpStyle.Render("(answered by " + m.reply.Model + ")"))
		}
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(okStyle.Render(m.status))
	}

	return renderPage("MONEY COACH", b.String(), "ctrl+s: send │ ctrl+y: copy reply │ esc: menu")
}

func (m *ChatModel) cmdSend(prompt string) tea.Cmd {
	ctx := m.ctx
	pocket := m.pocket

	return func() tea.Msg {
		reply, err := pocket.Chat(ctx, models.ChatRequest{Prompt: prompt})
		return chatReplyMsg{reply: reply, err: err}
	}
}

func (m *ChatModel) cmdCopy() tea.Cmd {
	text := m.reply.Text
	if text == "" {
		return nil
	}

	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}

func humanizeChatError(err error) string {
	switch {
	case errors.Is(err, adapter.ErrChatAuth):
		return "The money coach is not set up on the server yet"
	case errors.Is(err, adapter.ErrEmptyResponse):
		return "The money coach had nothing to say, try asking differently"
	case errors.Is(err, adapter.ErrBadGateway), errors.Is(err, adapter.ErrGatewayTimeout):
		return "The money coach is busy right now, try again later"
	default:
		return humanizeServerUnavailableError(err)
	}
}
