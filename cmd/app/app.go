package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/andhikaputrab/vgsales-dashboard/cmd/app/cli/domain"
	"github.com/andhikaputrab/vgsales-dashboard/cmd/app/cli/query"
	"github.com/andhikaputrab/vgsales-dashboard/cmd/app/server"
	"github.com/andhikaputrab/vgsales-dashboard/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "vgsales",
		Description: "Video game sales dashboard backend. Filters, aggregates, derives and compares the vgsales table in memory. Built with Go, fiber and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			query.Command(),
			domain.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
