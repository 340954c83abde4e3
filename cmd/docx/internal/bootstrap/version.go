package bootstrap

import "runtime/debug"

// version can be overridden at build time:
//
//	go build -ldflags "-X .../cmd/docx/internal/bootstrap.version=v1.2.3"
var version = ""

// Version reports the build version for the CLI binaries. It prefers the
// linker-injected value and falls back to module build info, then "dev".
func Version() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}
