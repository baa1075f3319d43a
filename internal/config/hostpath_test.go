package config

import (
	"errors"
	"path/filepath"
	"testing"
)

func envWith(key string, value string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		if name == key {
			return value, true
		}
		return "", false
	}
}

func TestResolveHomeHonorsOverride(t *testing.T) {
	t.Parallel()
	home, err := ResolveHome(envWith(EnvHome, "/custom/home"))
	if err != nil {
		t.Fatalf("ResolveHome error: %v", err)
	}
	if home != "/custom/home" {
		t.Fatalf("home = %q, want /custom/home", home)
	}
}

func TestResolveHomeIgnoresBlankOverride(t *testing.T) {
	t.Parallel()
	home, err := ResolveHome(envWith(EnvHome, "   "))
	if err != nil {
		t.Fatalf("ResolveHome error: %v", err)
	}
	if home == "" {
		t.Fatalf("expected real home directory")
	}
}

func TestHostCommandPathClaude(t *testing.T) {
	t.Parallel()
	path, err := HostCommandPath("/home/dev", HostTargetClaude)
	if err != nil {
		t.Fatalf("HostCommandPath error: %v", err)
	}
	want := filepath.Join("/home/dev", ".claude", "commands", "kickoff.md")
	if path != want {
		t.Fatalf("path = %q, want %q", path, want)
	}
}

func TestHostCommandPathUnsupported(t *testing.T) {
	t.Parallel()
	_, err := HostCommandPath("/home/dev", "copilot")
	if !errors.Is(err, ErrUnsupportedTarget) {
		t.Fatalf("expected ErrUnsupportedTarget, got %v", err)
	}
}

func TestDefaultPaths(t *testing.T) {
	t.Parallel()
	paths := DefaultPaths("/repo")
	if paths.Dir != filepath.Join("/repo", ".stackpilot") {
		t.Fatalf("unexpected dir: %q", paths.Dir)
	}
	if paths.CommandPath != filepath.Join("/repo", ".stackpilot", "commands", "kickoff.md") {
		t.Fatalf("unexpected command path: %q", paths.CommandPath)
	}
	if paths.MemoryPath != filepath.Join("/repo", "CLAUDE.md") {
		t.Fatalf("unexpected memory path: %q", paths.MemoryPath)
	}
}
