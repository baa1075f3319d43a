package install

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const commandDoc = "---\nname: kickoff\ndescription: Select a stack.\n---\n\n# /kickoff\n"

func fixedNow(epoch int64) func() time.Time {
	return func() time.Time { return time.Unix(epoch, 0) }
}

func writeCommandSource(t *testing.T, dir string, content string) string {
	t.Helper()
	path := filepath.Join(dir, "kickoff.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path
}

func TestRegisterCreatesTarget(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	source := writeCommandSource(t, dir, commandDoc)
	hostPath := filepath.Join(dir, "home", ".claude", "commands", "kickoff.md")

	var out bytes.Buffer
	outcome, err := Register(RealSystem{}, source, hostPath, false, fixedNow(100), &out, 0)
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if outcome != OutcomeCreated {
		t.Fatalf("outcome = %v, want created", outcome)
	}
	data, err := os.ReadFile(hostPath)
	if err != nil || string(data) != commandDoc {
		t.Fatalf("host content = %q, %v", data, err)
	}
}

func TestRegisterSkipsExistingWithoutForce(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	source := writeCommandSource(t, dir, commandDoc)
	hostPath := filepath.Join(dir, "registered.md")
	if err := os.WriteFile(hostPath, []byte("user edited"), 0o644); err != nil {
		t.Fatalf("write host: %v", err)
	}

	outcome, err := Register(RealSystem{}, source, hostPath, false, fixedNow(100), nil, 0)
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if outcome != OutcomeSkippedExists {
		t.Fatalf("outcome = %v, want skipped", outcome)
	}
	data, _ := os.ReadFile(hostPath)
	if string(data) != "user edited" {
		t.Fatalf("existing registration was touched: %q", data)
	}
}

func TestRegisterForceBacksUpThenOverwrites(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	source := writeCommandSource(t, dir, commandDoc)
	hostPath := filepath.Join(dir, "kickoff-host.md")
	if err := os.WriteFile(hostPath, []byte("old definition\n"), 0o644); err != nil {
		t.Fatalf("write host: %v", err)
	}

	var out bytes.Buffer
	outcome, err := Register(RealSystem{}, source, hostPath, true, fixedNow(1700000000), &out, 0)
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if outcome != OutcomeRecreated {
		t.Fatalf("outcome = %v, want recreated", outcome)
	}

	backupPath := filepath.Join(dir, "kickoff-host.1700000000.md")
	backup, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(backup) != "old definition\n" {
		t.Fatalf("backup content = %q", backup)
	}

	data, _ := os.ReadFile(hostPath)
	if string(data) != commandDoc {
		t.Fatalf("host content = %q", data)
	}

	report := out.String()
	if !strings.Contains(report, backupPath) {
		t.Fatalf("expected backup note in output: %q", report)
	}
	if !strings.Contains(report, "Replacing") || !strings.Contains(report, "-old definition") {
		t.Fatalf("expected diff preview in output: %q", report)
	}
}

func TestRegisterForceIdenticalContentSkipsDiff(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	source := writeCommandSource(t, dir, commandDoc)
	hostPath := filepath.Join(dir, "host.md")
	if err := os.WriteFile(hostPath, []byte(commandDoc), 0o644); err != nil {
		t.Fatalf("write host: %v", err)
	}

	var out bytes.Buffer
	outcome, err := Register(RealSystem{}, source, hostPath, true, fixedNow(100), &out, 0)
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if outcome != OutcomeRecreated {
		t.Fatalf("outcome = %v, want recreated", outcome)
	}
	if strings.Contains(out.String(), "Replacing") {
		t.Fatalf("no diff expected for identical content: %q", out.String())
	}
}

func TestRegisterMissingSource(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	outcome, err := Register(RealSystem{}, filepath.Join(dir, "absent.md"), filepath.Join(dir, "host.md"), false, fixedNow(100), nil, 0)
	if err == nil {
		t.Fatalf("expected error for missing source")
	}
	if outcome != OutcomeFailed {
		t.Fatalf("outcome = %v, want failed", outcome)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
}

func TestRegisterInvalidDefinition(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	source := writeCommandSource(t, dir, "no frontmatter\n")

	outcome, err := Register(RealSystem{}, source, filepath.Join(dir, "host.md"), false, fixedNow(100), nil, 0)
	if outcome != OutcomeFailed || !errors.Is(err, ErrDefinitionInvalid) {
		t.Fatalf("outcome = %v, err = %v", outcome, err)
	}
}

func TestPrintRegistrationDiffTruncates(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	existing := strings.Repeat("old line\n", 30)
	incoming := strings.Repeat("new line\n", 30)
	printRegistrationDiff(&out, "host.md", existing, incoming, 5)
	report := out.String()
	if !strings.Contains(report, "diff truncated") {
		t.Fatalf("expected truncation note: %q", report)
	}
	if got := strings.Count(report, "\n"); got > 8 {
		t.Fatalf("diff not capped, %d lines: %q", got, report)
	}
}
