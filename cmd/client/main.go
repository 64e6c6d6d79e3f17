package main

import (
	"github.com/alecthomas/kong"

	"github.com/MKhiriev/go-pocket-money/internal/adapter"
	"github.com/MKhiriev/go-pocket-money/internal/client"
	"github.com/MKhiriev/go-pocket-money/internal/config"
	"github.com/MKhiriev/go-pocket-money/internal/logger"
	"github.com/MKhiriev/go-pocket-money/internal/service"
	"github.com/MKhiriev/go-pocket-money/internal/session"
	"github.com/MKhiriev/go-pocket-money/internal/tui"
	"github.com/MKhiriev/go-pocket-money/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	var cli client.CLI
	ctx := kong.Parse(&cli,
		kong.Name("pocket"),
		kong.Description("Pocket money tracker for kids: record, save, level up."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
	)

	cfg, err := config.GetClientConfig(cli.Overrides())
	ctx.FatalIfErrorf(err, "error getting configs")

	log := logger.NewClientLogger("go-pocket-money-client", logger.Rotation{
		FilePath:   cfg.Log.FilePath,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	log.Debug().
		Str("command", ctx.Command()).
		Str("server_address", cfg.Adapter.HTTPAddress).
		Dur("request_timeout", cfg.Adapter.RequestTimeout).
		Msg("received configs")

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Err(err).Msg("create server adapter")
		ctx.FatalIfErrorf(err, "create server adapter")
	}

	tokens := session.NewKeyringStore(cfg.Session.KeyringService)
	services := service.NewClientServices(tokens, serverAdapter)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	app := client.NewApp(services, tui.New(services, buildInfo, log), buildInfo, log)
	if err = ctx.Run(app); err != nil {
		log.Err(err).Str("command", ctx.Command()).Msg("client run error")
		ctx.FatalIfErrorf(err)
	}
}
