package controller

import (
	"go.uber.org/fx"

	controllermeta "github.com/andhikaputrab/vgsales-dashboard/internal/controller/meta"
	controllerv1 "github.com/andhikaputrab/vgsales-dashboard/internal/controller/v1"
)

func Module() fx.Option {
	return fx.Module("controller",
		// Controllers (v1)
		controllerv1.Module(),

		// Controllers (meta)
		controllermeta.Module(),
	)
}
