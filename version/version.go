package version

// These values are injected at link time, for example
//
//	go build -ldflags "-X github.com/gvard/planetarium-led/version.GitHash=$(git rev-parse HEAD) -X github.com/gvard/planetarium-led/version.BuildTime=$(date -u +%FT%TZ)"
var (
	BuildTime string = "unknown"
	GitHash   string = "unknown"
)
