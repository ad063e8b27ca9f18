// Package build reports version information for the sortcheck binary. Release
// builds inject a JSON blob through -ldflags; otherwise the VCS stamp the Go
// toolchain embeds is used.
package build

import (
	"encoding/json"
	"log/slog"
	"runtime"
	"runtime/debug"
)

// Info contains build metadata.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"` //nolint:tagliatelle
	GitDate   string `json:"git_date"`   //nolint:tagliatelle
	BuildTime string `json:"build_time"` //nolint:tagliatelle
	GoVersion string `json:"go_version"` //nolint:tagliatelle
}

// Parse deserializes a JSON string into build Info.
// Returns (nil, false) if the input is empty, "{}", or fails to parse.
func Parse(js string) (*Info, bool) {
	if len(js) == 0 || js == "{}" {
		return nil, false
	}

	var info Info

	if err := json.Unmarshal([]byte(js), &info); err != nil {
		slog.Warn("Failed to parse build info from JSON",
			"data", js,
			"error", err)

		return nil, false
	}

	return &info, true
}

// Current returns the injected build info when js parses, and falls back to
// runtime/debug build information otherwise.
func Current(js string) Info {
	if info, ok := Parse(js); ok {
		if info.GoVersion == "" {
			info.GoVersion = runtime.Version()
		}

		return *info
	}

	info := Info{
		Version:   "devel",
		GoVersion: runtime.Version(),
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	if bi.Main.Version != "" {
		info.Version = bi.Main.Version
	}

	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.GitCommit = setting.Value
		case "vcs.time":
			info.GitDate = setting.Value
		}
	}

	return info
}
