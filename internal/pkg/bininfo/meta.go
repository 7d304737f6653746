// Package bininfo carries version control information injected at link time, e.g.
//
//	go build -ldflags "-X github.com/andhikaputrab/vgsales-dashboard/internal/pkg/bininfo.Version=v1.2.0"
//
// DO NOT EDIT THE VARIABLE NAMES UNLESS YOU KNOW WHAT YOU ARE DOING.
package bininfo

var (
	// Version is the SemVer version of the binary.
	// Git commit is appended, if available, separated by a plus sign [+].
	Version = "v0.0.0"

	// BuildTime is the time at which the application was built.
	BuildTime = "1970-01-01T00:00:00Z"
)

type Info struct {
	Version   string `json:"version"`
	BuildTime string `json:"build"`
}

func Get() Info {
	return Info{
		Version:   Version,
		BuildTime: BuildTime,
	}
}
