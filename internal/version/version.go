package version

// These values are overridden at build time via -ldflags.
var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
)
