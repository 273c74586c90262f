// Where: internal/version/version_test.go
// What: Tests for build info parsing.
package version

import (
	"runtime/debug"
	"testing"
)

func stubBuildInfo(t *testing.T, info *debug.BuildInfo, ok bool) {
	t.Helper()
	orig := readBuildInfo
	t.Cleanup(func() { readBuildInfo = orig })
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, ok }
}

func TestGetWithoutBuildInfo(t *testing.T) {
	stubBuildInfo(t, nil, false)
	if got := Get().String(); got != "dev" {
		t.Fatalf("unexpected version: %q", got)
	}
}

func TestGetShortensRevisionAndMarksDirty(t *testing.T) {
	stubBuildInfo(t, &debug.BuildInfo{
		GoVersion: "go1.25.1",
		Main:      debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.modified", Value: "true"},
		},
	}, true)

	got := Get()
	if got.Revision != "0123456" || !got.Dirty {
		t.Fatalf("unexpected info: %+v", got)
	}
	if got.String() != "dev (0123456, dirty) go1.25.1" {
		t.Fatalf("unexpected string: %q", got.String())
	}
}

func TestLinkTimeVersionWins(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })
	Version = "v0.3.0"
	stubBuildInfo(t, &debug.BuildInfo{Main: debug.Module{Version: "v0.2.0"}}, true)

	if got := Get().String(); got != "v0.3.0" {
		t.Fatalf("unexpected version: %q", got)
	}
}

func TestModuleVersionUsedWhenNotLinked(t *testing.T) {
	stubBuildInfo(t, &debug.BuildInfo{
		Main:     debug.Module{Version: "v0.2.0"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc"}},
	}, true)

	if got := Get().String(); got != "v0.2.0 (abc)" {
		t.Fatalf("unexpected version: %q", got)
	}
}
