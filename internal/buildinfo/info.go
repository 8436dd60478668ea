package buildinfo

// Set via -ldflags "-X github.com/nightshift-tools/nightshift/internal/buildinfo.Version=..." at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
