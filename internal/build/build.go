// Package build holds build-time information.
package build

// Version, Commit and Date default to development values and are overwritten by linker flags:
//
//	go build -ldflags "-X go.trai.ch/xcscheme/internal/build.Version=v1.0.0"
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
