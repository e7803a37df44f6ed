package version

// Version is injected at build time with -ldflags "-X github.com/liamg/sweep/version.Version=..."
var Version string
