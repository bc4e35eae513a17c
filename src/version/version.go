package version

// Version is the pdmove release string. Override at build time with
// -ldflags "-X pdmove/src/version.Version=...".
var Version = "0.1.0"
