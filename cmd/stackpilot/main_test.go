package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/castlebay-dev/stackpilot/internal/config"
	"github.com/castlebay-dev/stackpilot/internal/install"
)

func runCLI(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := 0
	runMain(append([]string{"stackpilot"}, args...), &out, &errOut, func(c int) { code = c })
	return out.String(), errOut.String(), code
}

func withWorkdir(t *testing.T, dir string) {
	t.Helper()
	orig := getwd
	getwd = func() (string, error) { return dir, nil }
	t.Cleanup(func() { getwd = orig })
}

func installInto(t *testing.T, root string, home string) {
	t.Helper()
	hostPath := filepath.Join(home, ".claude", "commands", "kickoff.md")
	if _, err := install.Run(root, install.Options{
		System:          install.RealSystem{},
		HostCommandPath: hostPath,
		Out:             &bytes.Buffer{},
	}); err != nil {
		t.Fatalf("install: %v", err)
	}
}

func TestRunMainVersion(t *testing.T) {
	stdout, _, code := runCLI(t, "--version")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if !strings.Contains(stdout, "dev") {
		t.Fatalf("version output = %q", stdout)
	}
}

func TestRunMainUnknownCommand(t *testing.T) {
	_, stderr, code := runCLI(t, "bogus")
	if code != 1 {
		t.Fatalf("exit = %d, want 1", code)
	}
	if stderr == "" {
		t.Fatalf("expected error output")
	}
}

func TestVersionString(t *testing.T) {
	origCommit, origDate := Commit, BuildDate
	t.Cleanup(func() { Commit, BuildDate = origCommit, origDate })

	Commit, BuildDate = "unknown", "unknown"
	if got := versionString(); got != Version {
		t.Fatalf("versionString = %q", got)
	}
	Commit, BuildDate = "abc123", "2026-01-02"
	got := versionString()
	if !strings.Contains(got, "abc123") || !strings.Contains(got, "2026-01-02") {
		t.Fatalf("versionString = %q", got)
	}
}

func TestInstallUnsupportedTarget(t *testing.T) {
	withWorkdir(t, t.TempDir())
	_, stderr, code := runCLI(t, "install", "--target", "copilot")
	if code != 1 {
		t.Fatalf("exit = %d, want 1", code)
	}
	if !strings.Contains(stderr, "supported targets") {
		t.Fatalf("stderr = %q", stderr)
	}
}

func TestInstallThenDoctor(t *testing.T) {
	root := t.TempDir()
	home := filepath.Join(root, "home")
	withWorkdir(t, root)
	t.Setenv(config.EnvHome, home)

	stdout, stderr, code := runCLI(t, "install")
	if code != 0 {
		t.Fatalf("install exit = %d, stderr = %q", code, stderr)
	}
	if !strings.Contains(stdout, "created") {
		t.Fatalf("install output = %q", stdout)
	}
	if _, err := os.Stat(filepath.Join(home, ".claude", "commands", "kickoff.md")); err != nil {
		t.Fatalf("registration missing: %v", err)
	}

	stdout, stderr, code = runCLI(t, "doctor")
	if code != 0 {
		t.Fatalf("doctor exit = %d, stderr = %q", code, stderr)
	}
	if !strings.Contains(stdout, "[OK]") {
		t.Fatalf("doctor output = %q", stdout)
	}
}

func TestDoctorFailsOnEmptyRoot(t *testing.T) {
	root := t.TempDir()
	withWorkdir(t, root)
	t.Setenv(config.EnvHome, filepath.Join(root, "home"))

	stdout, _, code := runCLI(t, "doctor")
	if code != 3 {
		t.Fatalf("exit = %d, want 3", code)
	}
	if !strings.Contains(stdout, "[FAIL]") {
		t.Fatalf("doctor output = %q", stdout)
	}
}

func TestKickoffRequiresPrompt(t *testing.T) {
	_, stderr, code := runCLI(t, "kickoff")
	if code != 1 {
		t.Fatalf("exit = %d, want 1", code)
	}
	if !strings.Contains(stderr, "requires a prompt") {
		t.Fatalf("stderr = %q", stderr)
	}
}

func TestKickoffSelectsStack(t *testing.T) {
	root := t.TempDir()
	installInto(t, root, filepath.Join(root, "home"))
	withWorkdir(t, root)

	stdout, stderr, code := runCLI(t, "kickoff", "build a web app for invoices")
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %q", code, stderr)
	}
	if !strings.Contains(stdout, "Selected stack: WEB_APP") {
		t.Fatalf("output = %q", stdout)
	}
	if !strings.Contains(stdout, "Matched tag: web") {
		t.Fatalf("output = %q", stdout)
	}
	if !strings.Contains(stdout, "React") {
		t.Fatalf("expected technologies in output: %q", stdout)
	}
}

func TestKickoffFallsBack(t *testing.T) {
	root := t.TempDir()
	installInto(t, root, filepath.Join(root, "home"))
	withWorkdir(t, root)

	stdout, _, code := runCLI(t, "kickoff", "organize my sock drawer")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if !strings.Contains(stdout, "Selected stack: GENERAL") {
		t.Fatalf("output = %q", stdout)
	}
	if !strings.Contains(stdout, "No tag matched") {
		t.Fatalf("output = %q", stdout)
	}
}

func TestKickoffMissingCatalog(t *testing.T) {
	root := t.TempDir()
	installInto(t, root, filepath.Join(root, "home"))
	withWorkdir(t, root)
	if err := os.Remove(filepath.Join(root, ".stackpilot", "catalog.md")); err != nil {
		t.Fatalf("remove catalog: %v", err)
	}

	_, stderr, code := runCLI(t, "kickoff", "build a web app")
	if code != 3 {
		t.Fatalf("exit = %d, want 3", code)
	}
	if !strings.Contains(stderr, "restore the default catalog") {
		t.Fatalf("stderr = %q", stderr)
	}
}

func TestKickoffNotInstalled(t *testing.T) {
	withWorkdir(t, t.TempDir())
	_, stderr, code := runCLI(t, "kickoff", "build a web app")
	if code != 3 {
		t.Fatalf("exit = %d, want 3", code)
	}
	if !strings.Contains(stderr, "stackpilot install") {
		t.Fatalf("stderr = %q", stderr)
	}
}

func TestKickoffDryRunPreview(t *testing.T) {
	// Preview never touches the repository; no install needed.
	stdout, stderr, code := runCLI(t, "kickoff", "--dry-run", "Build", "a", "dark", "mode", "toggle")
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %q", code, stderr)
	}
	if !strings.Contains(stdout, "Dry run") {
		t.Fatalf("output = %q", stdout)
	}
	if !strings.Contains(stdout, "1. /specify") || !strings.Contains(stdout, "3. /tasks") {
		t.Fatalf("expected full chain in output: %q", stdout)
	}
	if !strings.Contains(stdout, "Build a dark mode toggle") {
		t.Fatalf("first prompt must be verbatim: %q", stdout)
	}
	if !strings.Contains(stdout, "Use the spec.md artifact produced by /specify") {
		t.Fatalf("expected chained prompt: %q", stdout)
	}
	if strings.Count(stdout, "dark mode") != 1 {
		t.Fatalf("raw prompt leaked into chained steps: %q", stdout)
	}
}

func TestKickoffDryRunQuotedPrompt(t *testing.T) {
	stdout, _, code := runCLI(t, "kickoff", "--dry-run Build a dark mode toggle")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if !strings.Contains(stdout, "1. /specify") {
		t.Fatalf("quoted invocation must preview too: %q", stdout)
	}
}

func TestKickoffDryRunEmptyPrompt(t *testing.T) {
	stdout, _, code := runCLI(t, "kickoff", "--dry-run")
	if code != 0 {
		t.Fatalf("empty preview is a success, exit = %d", code)
	}
	if !strings.Contains(stdout, "Nothing to preview") {
		t.Fatalf("output = %q", stdout)
	}
}

func TestKickoffInvalidFlagPlacement(t *testing.T) {
	_, stderr, code := runCLI(t, "kickoff", "build", "a", "toggle", "--dry-run")
	if code != 2 {
		t.Fatalf("exit = %d, want 2", code)
	}
	if !strings.Contains(stderr, "first token") {
		t.Fatalf("stderr = %q", stderr)
	}
}
