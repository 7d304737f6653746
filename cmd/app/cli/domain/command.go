package domain

import (
	"os"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "github.com/andhikaputrab/vgsales-dashboard/cmd/app/cli"
	"github.com/andhikaputrab/vgsales-dashboard/internal/service"
)

type CommandDeps struct {
	fx.In

	DatasetService *service.Dataset
}

func Command() *cli.Command {
	return &cli.Command{
		Name:  "domain",
		Usage: "load the dataset and print its observed domain",
		Action: func(c *cli.Context) error {
			deps, err := cliapp.Deps[CommandDeps]()
			if err != nil {
				return errors.Wrap(err, "failed to start application")
			}

			domain, err := deps.DatasetService.Domain()
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(domain)
		},
	}
}
