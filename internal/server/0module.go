package server

import (
	"go.uber.org/fx"

	"github.com/andhikaputrab/vgsales-dashboard/internal/server/httpserver"
	"github.com/andhikaputrab/vgsales-dashboard/internal/server/svr"
)

func Module() fx.Option {
	return fx.Module("server",
		fx.Provide(httpserver.Create),
		fx.Provide(svr.CreateEndpointGroups))
}
