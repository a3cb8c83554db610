package version

// set with -ldflags "-X opencsg.com/bookmark-server/version.GitRevision=..."
var (
	GitRevision = "unknown"
	APIVersion  = "v0.1.0"
)
