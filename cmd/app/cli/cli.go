package cli

import (
	"context"

	"go.uber.org/fx"

	"github.com/andhikaputrab/vgsales-dashboard/internal/app"
	"github.com/andhikaputrab/vgsales-dashboard/internal/app/appcontext"
)

// Start builds the application graph for a CLI command. Construction errors, such as
// a dataset that fails to load, are returned instead of serving.
func Start(module fx.Option) error {
	fxApp := app.New(appcontext.Declare(appcontext.EnvCLI), module)
	if err := fxApp.Err(); err != nil {
		return err
	}
	return fxApp.Start(context.Background())
}

// Deps populates T from the application graph.
func Deps[T any]() (T, error) {
	var deps T
	err := Start(fx.Populate(&deps))
	return deps, err
}
