package buildinfo

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()

	if info.Version != Version {
		t.Errorf("Get().Version = %s, want %s", info.Version, Version)
	}
	if info.Commit != Commit {
		t.Errorf("Get().Commit = %s, want %s", info.Commit, Commit)
	}
	if info.BuildTime != BuildTime {
		t.Errorf("Get().BuildTime = %s, want %s", info.BuildTime, BuildTime)
	}
}

func TestString(t *testing.T) {
	s := String()

	if !strings.Contains(s, Version) {
		t.Errorf("String() = %q, expected to contain version %q", s, Version)
	}
	if !strings.Contains(s, Commit) {
		t.Errorf("String() = %q, expected to contain commit %q", s, Commit)
	}
}
