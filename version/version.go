// Package version reports the statdump version from the binary's build info.
package version

import "runtime/debug"

const modulePath = "github.com/lex00/statdump"

// Version returns the module version recorded in the build info. Local
// builds report "dev", with the VCS revision appended when known.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	if info.Main.Path == modulePath && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	for _, dep := range info.Deps {
		if dep.Path == modulePath {
			return dep.Version
		}
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return "dev+" + s.Value[:7]
		}
	}
	return "dev"
}

// ModulePath returns the canonical module path.
func ModulePath() string {
	return modulePath
}
