package pngme

import (
	"runtime"
	"strings"
	"testing"
)

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()

	if info.Version != Version {
		t.Errorf("Version = %q, want %q", info.Version, Version)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", info.GoVersion, runtime.Version())
	}
	if info.GitCommit == "" || info.BuildTime == "" {
		t.Errorf("GitCommit and BuildTime should never be empty: %+v", info)
	}
}

func TestVersionInfo_String(t *testing.T) {
	info := VersionInfo{Version: "1.2.3", GitCommit: "abc123", BuildTime: "2026-01-01T00:00:00Z", GoVersion: "go1.26.0"}

	s := info.String()
	for _, want := range []string{"pngme 1.2.3", "commit abc123", "2026-01-01T00:00:00Z", "go1.26.0"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, should contain %q", s, want)
		}
	}
}
