package query

import (
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
	"gopkg.in/guregu/null.v3"

	cliapp "github.com/andhikaputrab/vgsales-dashboard/cmd/app/cli"
	"github.com/andhikaputrab/vgsales-dashboard/internal/model/types"
	"github.com/andhikaputrab/vgsales-dashboard/internal/service"
	"github.com/andhikaputrab/vgsales-dashboard/internal/util"
	"github.com/andhikaputrab/vgsales-dashboard/internal/util/rekuest"
)

type CommandDeps struct {
	fx.In

	DashboardService *service.Dashboard
}

func optionalInt(c *cli.Context, name string) null.Int {
	if !c.IsSet(name) {
		return null.Int{}
	}
	return null.IntFrom(c.Int64(name))
}

func queryFromFlags(c *cli.Context) *types.DashboardQuery {
	return &types.DashboardQuery{
		YearMin:   optionalInt(c, "year-min"),
		YearMax:   optionalInt(c, "year-max"),
		Genres:    util.SplitList(c.String("genres")),
		Platforms: util.SplitList(c.String("platforms")),
		Publisher: c.String("publisher"),
		Metric:    c.String("metric"),
		GroupBy:   util.SplitList(c.String("group-by")),
		Top:       optionalInt(c, "top"),
		Window:    optionalInt(c, "window"),
		Matrix:    c.String("matrix"),
		Regions:   util.SplitList(c.String("regions")),
		CompareBy: c.String("compare-by"),
		CompareA:  c.String("compare-a"),
		CompareB:  c.String("compare-b"),
	}
}

func Command() *cli.Command {
	return &cli.Command{
		Name:  "query",
		Usage: "run the dashboard pipeline once and print the results",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "year-min", Usage: "inclusive lower year bound"},
			&cli.Int64Flag{Name: "year-max", Usage: "inclusive upper year bound"},
			&cli.StringFlag{Name: "genres", Usage: "comma separated genres"},
			&cli.StringFlag{Name: "platforms", Usage: "comma separated platforms"},
			&cli.StringFlag{Name: "publisher", Usage: "exact publisher"},
			&cli.StringFlag{Name: "metric", Aliases: []string{"m"}, Usage: "sales metric", Value: "global_sales"},
			&cli.StringFlag{Name: "group-by", Usage: "one or two comma separated dimensions", Value: "year,genre"},
			&cli.Int64Flag{Name: "top", Aliases: []string{"n"}, Usage: "ranking size"},
			&cli.Int64Flag{Name: "window", Usage: "moving average window"},
			&cli.StringFlag{Name: "matrix", Usage: "region matrix dimension", Value: "genre"},
			&cli.StringFlag{Name: "regions", Usage: "comma separated regional metrics"},
			&cli.StringFlag{Name: "compare-by", Usage: "genre, platform or publisher"},
			&cli.StringFlag{Name: "compare-a", Usage: "first entity to compare"},
			&cli.StringFlag{Name: "compare-b", Usage: "second entity to compare"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "output format: text or json", Value: "text"},
		},
		Action: func(c *cli.Context) error {
			q := queryFromFlags(c)
			if err := rekuest.Valid(q); err != nil {
				return err
			}

			deps, err := cliapp.Deps[CommandDeps]()
			if err != nil {
				return errors.Wrap(err, "failed to start application")
			}

			resp, err := deps.DashboardService.Run(c.Context, q)
			if err != nil {
				return err
			}

			switch c.String("format") {
			case "json":
				return writeJSON(os.Stdout, resp)
			case "text":
				return writeText(os.Stdout, resp)
			default:
				return errors.Errorf("unknown format %q", c.String("format"))
			}
		},
	}
}
