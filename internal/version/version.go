// Package version holds the build version, stamped via -ldflags at release.
package version

// Version is "dev" unless overridden at build time.
var Version = "dev"
