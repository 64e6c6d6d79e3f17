package tui

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/MKhiriev/go-pocket-money/internal/service"
	"github.com/MKhiriev/go-pocket-money/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// DashboardModel shows the derived summary, the progression report with
// badges and the spending feedback.
type DashboardModel struct {
	ctx    context.Context
	pocket service.ClientPocketService

	spinner spinner.Model
	loading bool
	data    dashboardLoadedMsg
}

func NewDashboardModel(ctx context.Context, pocket service.ClientPocketService) *DashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &DashboardModel{
		ctx:     ctx,
		pocket:  pocket,
		spinner: s,
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		m.data = msg
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.refresh):
			return m, m.Init()
		}
	}

	return m, nil
}

func (m *DashboardModel) View() string {
	hotKeys := "r: refresh │ esc: menu"
	if m.loading {
		return renderPage("DASHBOARD", m.spinner.View()+" Loading...", hotKeys)
	}
	if m.data.err != nil {
		return renderPage("DASHBOARD", renderError(m.data.err), hotKeys)
	}

	var b strings.Builder
	writeSummary(&b, m.data.summary)
	b.WriteString("\n")
	writeProgress(&b, m.data.progress)
	b.WriteString("\n")
	writeFeedback(&b, m.data.feedback)

	return renderPage("DASHBOARD", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *DashboardModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	pocket := m.pocket

	return func() tea.Msg {
		var msg dashboardLoadedMsg
		if msg.summary, msg.err = pocket.Summary(ctx); msg.err != nil {
			return msg
		}
		if msg.progress, msg.err = pocket.Progress(ctx); msg.err != nil {
			return msg
		}
		msg.feedback, msg.err = pocket.Feedback(ctx)
		return msg
	}
}

func writeSummary(b *strings.Builder, s models.Summary) {
	b.WriteString(titleStyle.Render("Money"))
	b.WriteString("\n")
	fmt.Fprintf(b, "Earned:  %s\n", formatAmount(s.TotalEarned))
	fmt.Fprintf(b, "Spent:   %s\n", formatAmount(s.TotalSpent))
	fmt.Fprintf(b, "Savings: %s\n", formatAmount(s.Savings))
	fmt.Fprintf(b, "Needs %s / Wants %s\n", formatAmount(s.NeedsTotal), formatAmount(s.WantsTotal))
	fmt.Fprintf(b, "No-spend streak: %d day(s)\n", s.NoSpendStreak)

	if len(s.ExpenseByCategory) > 0 {
		b.WriteString("Spent by category:\n")
		for _, category := range slices.Sorted(maps.Keys(s.ExpenseByCategory)) {
			fmt.Fprintf(b, "  %-14s %s\n", fitText(category, 14), formatAmount(s.ExpenseByCategory[category]))
		}
	}

	if s.Wishlist != nil {
		fmt.Fprintf(b, "Saving for %s: %s %.0f%% of %s\n",
			s.Wishlist.ItemLabel,
			progressBar(s.Wishlist.Percent, 20),
			s.Wishlist.Percent,
			formatAmount(s.Wishlist.TargetAmount),
		)
	}
}

func writeProgress(b *strings.Builder, p models.ProgressReport) {
	b.WriteString(titleStyle.Render("Progress"))
	b.WriteString("\n")
	fmt.Fprintf(b, "Level %d │ XP %d (%d to next level) │ Points %d\n", p.Level, p.XP, p.XPToNextLevel, p.Points)
	fmt.Fprintf(b, "Activity streak: %d day(s)\n", p.StreakDays)

	for _, badge := range p.Badges {
		mark := "[ ]"
		if badge.Unlocked {
			mark = okStyle.Render("[x]")
		}
		fmt.Fprintf(b, "%s %s: %s\n", mark, badge.Title, badge.Description)
	}
}

func writeFeedback(b *strings.Builder, f models.FeedbackReport) {
	b.WriteString(titleStyle.Render("Feedback"))
	b.WriteString("\n")
	b.WriteString(renderVerdict(f.Snack))
	b.WriteString("\n")
	b.WriteString(renderVerdict(f.Necessity))
	b.WriteString("\n")
}

func renderVerdict(v models.Verdict) string {
	switch v.Level {
	case models.VerdictGood:
		return okStyle.Render("✓ " + v.Message)
	case models.VerdictWarning:
		return warnStyle.Render("! " + v.Message)
	case models.VerdictAlert:
		return errorStyle.Render("!! " + v.Message)
	default:
		return v.Message
	}
}
