// Where: internal/version/version.go
// What: Build and VCS information for the version command.
// Why: Identify which model build produced a rendering or hash.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Version can be set at link time with -ldflags "-X <pkg>.Version=v1.2.3".
var Version = ""

var readBuildInfo = debug.ReadBuildInfo

// Info describes the running binary.
type Info struct {
	Version   string
	Revision  string
	Dirty     bool
	GoVersion string
}

// Get collects Info from the link-time version and build info.
func Get() Info {
	info := Info{Version: Version}
	build, ok := readBuildInfo()
	if !ok {
		if info.Version == "" {
			info.Version = "dev"
		}
		return info
	}

	info.GoVersion = build.GoVersion
	if info.Version == "" && build.Main.Version != "" && build.Main.Version != "(devel)" {
		info.Version = build.Main.Version
	}
	if info.Version == "" {
		info.Version = "dev"
	}
	for _, setting := range build.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.Revision = setting.Value
			if len(info.Revision) > 7 {
				info.Revision = info.Revision[:7]
			}
		case "vcs.modified":
			info.Dirty = setting.Value == "true"
		}
	}
	return info
}

// String renders e.g. "v1.2.3 (abc1234, dirty) go1.25.1".
func (i Info) String() string {
	var b strings.Builder
	b.WriteString(i.Version)
	if i.Revision != "" {
		if i.Dirty {
			fmt.Fprintf(&b, " (%s, dirty)", i.Revision)
		} else {
			fmt.Fprintf(&b, " (%s)", i.Revision)
		}
	}
	if i.GoVersion != "" {
		b.WriteString(" " + i.GoVersion)
	}
	return b.String()
}
