package testentry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/andhikaputrab/vgsales-dashboard/internal/app"
	"github.com/andhikaputrab/vgsales-dashboard/internal/app/appconfig"
	"github.com/andhikaputrab/vgsales-dashboard/internal/app/appcontext"
)

// FixtureCSV is a small excerpt of the sales table in its original column layout.
const FixtureCSV = `Rank,Name,Platform,Year,Genre,Publisher,NA_Sales,EU_Sales,JP_Sales,Other_Sales,Global_Sales
1,Wii Sports,Wii,2006,Sports,Nintendo,41.49,29.02,3.77,8.46,82.74
2,Super Mario Bros.,NES,1985,Platform,Nintendo,29.08,3.58,6.81,0.77,40.24
3,Mario Kart Wii,Wii,2008,Racing,Nintendo,15.85,12.88,3.79,3.31,35.82
4,Wii Sports Resort,Wii,2009,Sports,Nintendo,15.75,11.01,3.28,2.96,33.00
5,Pokemon Red/Pokemon Blue,GB,1996,Role-Playing,Nintendo,11.27,8.89,10.22,1.00,31.37
17,Grand Theft Auto V,PS3,2013,Action,Take-Two Interactive,7.01,9.27,0.97,4.14,21.40
30,Call of Duty: Modern Warfare 3,X360,2011,Shooter,Activision,9.03,4.28,0.13,1.32,14.76
33,Call of Duty: Black Ops,X360,2010,Shooter,Activision,9.67,3.73,0.11,1.13,14.64
`

// Config parses the default configuration and points it at a fixture dataset in a temporary directory.
func Config(t testing.TB) *appconfig.Config {
	t.Helper()

	path := filepath.Join(t.TempDir(), "vgsales.csv")
	if err := os.WriteFile(path, []byte(FixtureCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	conf, err := appconfig.Parse(appcontext.Declare(appcontext.EnvServer))
	if err != nil {
		t.Fatal(err)
	}
	conf.DatasetPath = path
	conf.DatasetS3Bucket = ""
	conf.TracingEnabled = false
	conf.SentryDSN = ""
	conf.DevMode = true
	return conf
}

// Populate starts the application graph against the fixture dataset and fills targets.
func Populate(t testing.TB, targets ...any) {
	t.Helper()

	// for testing, logger is too annoying. therefore, we use a NopLogger here
	opts := app.OptionsWithConfig(Config(t))
	opts = append(opts, fx.NopLogger)
	opts = append(opts, fx.Populate(targets...))
	opts = append(opts, fx.Invoke(func() {
		log.Logger = log.Logger.Output(zerolog.NewTestWriter(t))
	}))

	fxApp := fxtest.New(t, opts...)
	fxApp.RequireStart()
	t.Cleanup(fxApp.RequireStop)
}
