package app

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestBuildVersion_IncludesVersion(t *testing.T) {
	if got := BuildVersion(); !strings.HasPrefix(got, Version+" (commit: ") {
		t.Errorf("BuildVersion() = %q", got)
	}
}

func TestVCSStamp(t *testing.T) {
	settings := []debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef0123"},
		{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		{Key: "vcs.modified", Value: "true"},
	}

	tests := []struct {
		name       string
		settings   []debug.BuildSetting
		commit     string
		built      string
		wantCommit string
		wantBuilt  string
	}{
		{"no vcs info", nil, "unknown", "unknown", "unknown", "unknown"},
		{"fills unknowns", settings, "unknown", "unknown", "0123456789ab-dirty", "2026-01-02T03:04:05Z"},
		{"ldflags win", settings, "abc", "yesterday", "abc-dirty", "yesterday"},
		{"short revision", []debug.BuildSetting{{Key: "vcs.revision", Value: "abc"}}, "unknown", "unknown", "abc", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commit, built := vcsStamp(tt.settings, tt.commit, tt.built)
			if commit != tt.wantCommit || built != tt.wantBuilt {
				t.Errorf("vcsStamp = (%q, %q), want (%q, %q)", commit, built, tt.wantCommit, tt.wantBuilt)
			}
		})
	}
}
