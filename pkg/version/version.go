package version

// VersionString is replaced at build time via -ldflags.
var VersionString = "devel"
