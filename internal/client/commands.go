package client

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-pocket-money/internal/config"
	"github.com/MKhiriev/go-pocket-money/models"
)

// CLI is the command line of the client. Without a command the TUI starts.
type CLI struct {
	Server  string        `short:"s" help:"Server address." placeholder:"URL"`
	Timeout time.Duration `help:"Timeout of one server request." placeholder:"DURATION"`
	LogFile string        `name:"log-file" help:"Client log file." placeholder:"PATH"`

	Tui         TuiCmd         `cmd:"" default:"1" help:"Launch the interactive TUI."`
	Login       LoginCmd       `cmd:"" help:"Sign in. An unknown name creates a new account."`
	Logout      LogoutCmd      `cmd:"" help:"Forget the stored session."`
	Record      RecordCmd      `cmd:"" help:"Record an expense or an income."`
	Summary     SummaryCmd     `cmd:"" help:"Show totals, progress and feedback."`
	Leaderboard LeaderboardCmd `cmd:"" help:"Show the best savers."`
	Chat        ChatCmd        `cmd:"" help:"Ask the money coach."`
	Version     VersionCmd     `cmd:"" help:"Show client and server versions."`
}

// Overrides returns the client configuration set by command line flags.
func (c *CLI) Overrides() *config.ClientConfig {
	return &config.ClientConfig{
		Adapter: config.ClientAdapter{
			HTTPAddress:    c.Server,
			RequestTimeout: c.Timeout,
		},
		Log: config.ClientLog{
			FilePath: c.LogFile,
		},
	}
}

type TuiCmd struct{}

func (c *TuiCmd) Run(app *App) error {
	return app.Run()
}

type LoginCmd struct {
	Name string `arg:"" help:"Your name."`
}

func (c *LoginCmd) Run(app *App) error {
	pin, err := readSecret(app.in, app.out)
	if err != nil {
		return fmt.Errorf("reading PIN: %w", err)
	}

	username, err := app.services.AuthService.Login(context.Background(), models.Credentials{
		Name:   strings.TrimSpace(c.Name),
		Secret: pin,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(app.out, "Signed in as %s\n", username)
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(app *App) error {
	if err := app.services.AuthService.Logout(context.Background()); err != nil {
		return err
	}

	fmt.Fprintln(app.out, "Logged out")
	return nil
}

type RecordCmd struct {
	Expense ExpenseCmd `cmd:"" help:"Record money spent."`
	Income  IncomeCmd  `cmd:"" help:"Record money earned or received."`
}

type entryArgs struct {
	Label    string `arg:"" help:"What it was."`
	Amount   int64  `arg:"" help:"Positive whole amount."`
	Category string `short:"c" required:"" help:"Category, for example snack or allowance."`
	Date     string `short:"d" help:"Day as YYYY-MM-DD. Defaults to today."`
}

func (a entryArgs) entry(kind models.EntryKind) (models.Entry, error) {
	entry := models.Entry{
		Kind:     kind,
		Label:    a.Label,
		Amount:   a.Amount,
		Category: a.Category,
	}

	if a.Date != "" {
		date, err := models.ParseDate(a.Date)
		if err != nil {
			return models.Entry{}, err
		}
		entry.Date = date
	}

	return entry, nil
}

type ExpenseCmd struct {
	Entry     entryArgs `embed:""`
	Necessity string    `short:"n" enum:"need,want" default:"need" help:"Did you need it or want it (need, want)."`
}

func (c *ExpenseCmd) Run(app *App) error {
	entry, err := c.Entry.entry(models.EntryKindExpense)
	if err != nil {
		return err
	}
	entry.Necessity = models.Necessity(c.Necessity)

	return app.record(entry)
}

type IncomeCmd struct {
	Entry entryArgs `embed:""`
}

func (c *IncomeCmd) Run(app *App) error {
	entry, err := c.Entry.entry(models.EntryKindIncome)
	if err != nil {
		return err
	}

	return app.record(entry)
}

func (a *App) record(entry models.Entry) error {
	ctx := context.Background()
	if _, err := a.session(ctx); err != nil {
		return err
	}

	saved, err := a.services.PocketService.Record(ctx, entry)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Recorded %s #%d %q: %d (%s) on %s\n",
		saved.Kind, saved.ID, saved.Label, saved.Amount, saved.Category, saved.Date)
	return nil
}

type SummaryCmd struct{}

func (c *SummaryCmd) Run(app *App) error {
	ctx := context.Background()
	username, err := app.session(ctx)
	if err != nil {
		return err
	}

	pocket := app.services.PocketService
	summary, err := pocket.Summary(ctx)
	if err != nil {
		return err
	}
	progress, err := pocket.Progress(ctx)
	if err != nil {
		return err
	}
	feedback, err := pocket.Feedback(ctx)
	if err != nil {
		return err
	}

	out := app.out
	fmt.Fprintf(out, "%s: level %d, %d XP (%d to next), %d points, %d day streak\n",
		username, progress.Level, progress.XP, progress.XPToNextLevel, progress.Points, progress.StreakDays)
	fmt.Fprintf(out, "earned %d, spent %d, savings %d\n", summary.TotalEarned, summary.TotalSpent, summary.Savings)
	fmt.Fprintf(out, "needs %d, wants %d, no-spend streak %d\n", summary.NeedsTotal, summary.WantsTotal, summary.NoSpendStreak)
	for _, category := range slices.Sorted(maps.Keys(summary.ExpenseByCategory)) {
		fmt.Fprintf(out, "  %s: %d\n", category, summary.ExpenseByCategory[category])
	}
	if w := summary.Wishlist; w != nil {
		fmt.Fprintf(out, "wishlist %s: %.0f%% of %d\n", w.ItemLabel, w.Percent, w.TargetAmount)
	}
	for _, badge := range progress.Badges {
		if badge.Unlocked {
			fmt.Fprintf(out, "badge: %s\n", badge.Title)
		}
	}
	fmt.Fprintf(out, "[%s] %s\n", feedback.Snack.Level, feedback.Snack.Message)
	fmt.Fprintf(out, "[%s] %s\n", feedback.Necessity.Level, feedback.Necessity.Message)

	return nil
}

type LeaderboardCmd struct {
	Limit int `short:"n" default:"10" help:"How many users to show."`
}

func (c *LeaderboardCmd) Run(app *App) error {
	rows, err := app.services.PocketService.Leaderboard(context.Background(), c.Limit)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintln(app.out, "Nobody has played yet")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "NAME", "LEVEL", "XP", "POINTS")
	for _, r := range rows {
		t.Row(strconv.Itoa(r.Rank), r.Username, strconv.Itoa(r.Level), strconv.Itoa(r.XP), strconv.Itoa(r.Points))
	}

	fmt.Fprintln(app.out, t.Render())
	return nil
}

type ChatCmd struct {
	Prompt     []string `arg:"" optional:"" help:"Question for the money coach."`
	Model      string   `short:"m" help:"Model to use instead of the server default."`
	APIKey     string   `name:"api-key" env:"GOOGLE_API_KEY" help:"Use your own API key."`
	Ping       bool     `help:"Check that the coach answers."`
	ListModels bool     `name:"list-models" help:"List the selectable models."`
}

func (c *ChatCmd) Run(app *App) error {
	ctx := context.Background()
	pocket := app.services.PocketService

	if c.ListModels {
		list, err := pocket.ChatModels(ctx)
		if err != nil {
			return err
		}
		for _, name := range list.Models {
			marker := " "
			switch name {
			case list.Primary:
				marker = "*"
			case list.Fallback:
				marker = "~"
			}
			fmt.Fprintf(app.out, "%s %s\n", marker, name)
		}
		return nil
	}

	if _, err := app.session(ctx); err != nil {
		return err
	}

	req := models.ChatRequest{
		Prompt: strings.TrimSpace(strings.Join(c.Prompt, " ")),
		APIKey: c.APIKey,
		Model:  c.Model,
	}

	var (
		reply models.ChatReply
		err   error
	)
	switch {
	case c.Ping:
		reply, err = pocket.ChatPing(ctx, req)
	case req.Prompt == "":
		return errors.New("nothing to ask: pass a prompt")
	default:
		reply, err = pocket.Chat(ctx, req)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(app.out, reply.Text)
	if reply.FellBack {
		fmt.Fprintf(app.out, "(answered by %s)\n", reply.Model)
	}
	return nil
}

type VersionCmd struct{}

func (c *VersionCmd) Run(app *App) error {
	fmt.Fprintf(app.out, "client: %s (%s, %s)\n",
		orNA(app.buildInfo.BuildVersion()), orNA(app.buildInfo.BuildDate()), orNA(app.buildInfo.BuildCommit()))

	version, err := app.services.PocketService.Version(context.Background())
	if err != nil {
		app.logger.Err(err).Str("func", "*VersionCmd.Run").Msg("server version is unavailable")
		fmt.Fprintln(app.out, "server: unavailable")
		return nil
	}

	fmt.Fprintf(app.out, "server: %s\n", version)
	return nil
}

func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return "N/A"
	}
	return v
}
