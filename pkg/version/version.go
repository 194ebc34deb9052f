package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
	"time"
)

// Valores padrão (sobrescritos por ldflags ou por build info)
var (
	Version   = "0.0.0-dev"
	Commit    = ""
	BuildTime = ""
)

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
	GoVersion string `json:"go_version"`
}

var once sync.Once

// fromBuildInfo fills the fields ldflags left empty from the VCS stamps the Go toolchain
// embeds in module builds.
func fromBuildInfo() {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi == nil {
		return
	}

	settings := make(map[string]string, len(bi.Settings))
	for _, s := range bi.Settings {
		settings[s.Key] = s.Value
	}

	if Commit == "" {
		if rev := settings["vcs.revision"]; len(rev) >= 7 {
			Commit = rev[:7]
		}
	}

	if BuildTime == "" {
		if ts, err := time.Parse(time.RFC3339, settings["vcs.time"]); err == nil {
			BuildTime = ts.UTC().Format("2006-01-02T15:04:05Z")
		}
	}

	if Version == "" || Version == "0.0.0-dev" {
		if v := bi.Main.Version; v != "" && v != "(devel)" {
			Version = strings.TrimPrefix(v, "v")
			if strings.EqualFold(settings["vcs.modified"], "true") {
				Version += "-dirty"
			}
		}
	}
}

// Get returns the version information, resolving build info on first use.
func Get() Info {
	once.Do(fromBuildInfo)
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
	}
}

// FormatVersion retorna a versão formatada com commit e build time.
// Ex.: "1.2.3 (commit: abc1234, built at: 2025-10-23T10:20:30Z)"
func FormatVersion() string {
	info := Get()
	switch {
	case info.Commit == "" && info.BuildTime == "":
		return fmt.Sprintf("%s (development)", info.Version)
	case info.BuildTime == "":
		return fmt.Sprintf("%s (commit: %s)", info.Version, info.Commit)
	case info.Commit == "":
		return fmt.Sprintf("%s (built at: %s)", info.Version, info.BuildTime)
	default:
		return fmt.Sprintf("%s (commit: %s, built at: %s)", info.Version, info.Commit, info.BuildTime)
	}
}
