package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/andhikaputrab/vgsales-dashboard/internal/app/appconfig"
	"github.com/andhikaputrab/vgsales-dashboard/internal/app/appcontext"
	"github.com/andhikaputrab/vgsales-dashboard/internal/controller"
	"github.com/andhikaputrab/vgsales-dashboard/internal/infra"
	"github.com/andhikaputrab/vgsales-dashboard/internal/pkg/logger"
	"github.com/andhikaputrab/vgsales-dashboard/internal/repo"
	"github.com/andhikaputrab/vgsales-dashboard/internal/server"
	"github.com/andhikaputrab/vgsales-dashboard/internal/service"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	return OptionsWithConfig(conf, additionalOpts...)
}

// OptionsWithConfig builds the graph from an already parsed configuration.
func OptionsWithConfig(conf *appconfig.Config, additionalOpts ...fx.Option) []fx.Option {
	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Infrastructures
		infra.Module(),

		// Servers
		server.Module(),

		// Repositories
		repo.Module(),

		// Services
		service.Module(),

		// Controllers
		controller.Module(),

		// fx Extra Options
		fx.StartTimeout(conf.DatasetLoadTimeout + 5*time.Second),
		// StopTimeout is not typically needed, since we're using fiber's Shutdown(),
		// in which fiber has its own IdleTimeout for controlling the shutdown timeout.
		// It acts as a countermeasure in case the fiber app is not properly shutting down.
		fx.StopTimeout(conf.HTTPServerShutdownTimeout + 5*time.Second),
	}

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
