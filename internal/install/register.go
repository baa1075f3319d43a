package install

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aymanbagabas/go-udiff"

	"github.com/castlebay-dev/stackpilot/internal/backup"
	"github.com/castlebay-dev/stackpilot/internal/messages"
)

// DefaultDiffMaxLines caps the force-mode diff preview per file.
const DefaultDiffMaxLines = 40

// backupSystem adapts the installer System to the backup package.
type backupSystem struct {
	sys System
}

func (b backupSystem) Stat(name string) (os.FileInfo, error) {
	return b.sys.Stat(name)
}

func (b backupSystem) ReadFile(name string) ([]byte, error) {
	return b.sys.ReadFile(name)
}

func (b backupSystem) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return b.sys.WriteFileAtomic(filename, data, perm)
}

// Register copies the canonical command definition at sourcePath to
// hostPath. An existing target is skipped unless force is set; a forced
// overwrite is routed through the backup manager first, and the overwrite is
// aborted when the backup fails.
func Register(sys System, sourcePath string, hostPath string, force bool, now func() time.Time, out io.Writer, diffMaxLines int) (Outcome, error) {
	data, err := sys.ReadFile(sourcePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return OutcomeFailed, fmt.Errorf("%s: %w", messages.RegisterSourceMissing, err)
		}
		return OutcomeFailed, fmt.Errorf(messages.InstallFailedReadFmt, sourcePath, err)
	}
	if err := validateCommandDefinition(sourcePath, data); err != nil {
		return OutcomeFailed, err
	}

	state, err := probePath(sys, hostPath)
	if err != nil {
		return OutcomeFailed, err
	}
	if state == pathExists {
		if !force {
			return OutcomeSkippedExists, nil
		}
		existing, readErr := sys.ReadFile(hostPath)
		if readErr != nil {
			return OutcomeFailed, fmt.Errorf(messages.InstallFailedReadFmt, hostPath, readErr)
		}
		record, backupErr := backup.IfExists(backupSystem{sys: sys}, hostPath, now)
		if backupErr != nil {
			return OutcomeFailed, backupErr
		}
		if record != nil && out != nil {
			_, _ = fmt.Fprintf(out, messages.InstallBackupNoteFmt, record.OriginalPath, record.BackupPath)
		}
		if out != nil {
			printRegistrationDiff(out, hostPath, string(existing), string(data), diffMaxLines)
		}
		if err := sys.WriteFileAtomic(hostPath, data, 0o644); err != nil {
			return OutcomeFailed, fmt.Errorf(messages.InstallFailedWriteFmt, hostPath, err)
		}
		return OutcomeRecreated, nil
	}

	if err := sys.MkdirAll(filepath.Dir(hostPath), 0o755); err != nil {
		return OutcomeFailed, fmt.Errorf(messages.InstallCreateDirFailedFmt, filepath.Dir(hostPath), err)
	}
	if err := sys.WriteFileAtomic(hostPath, data, 0o644); err != nil {
		return OutcomeFailed, fmt.Errorf(messages.InstallFailedWriteFmt, hostPath, err)
	}
	return OutcomeCreated, nil
}

// printRegistrationDiff writes a capped unified diff of the replacement.
// Diff output is informational; write errors are discarded.
func printRegistrationDiff(out io.Writer, path string, existing string, incoming string, maxLines int) {
	if existing == incoming {
		return
	}
	if maxLines <= 0 {
		maxLines = DefaultDiffMaxLines
	}
	diff := udiff.Unified("current", "incoming", existing, incoming)
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	_, _ = fmt.Fprintf(out, messages.InstallDiffHeaderFmt, path)
	for i, line := range lines {
		if i >= maxLines {
			_, _ = fmt.Fprint(out, messages.InstallDiffTruncated)
			break
		}
		_, _ = fmt.Fprintf(out, "  %s\n", line)
	}
}

// permissionClass reports whether err stems from a permission failure.
func permissionClass(err error) bool {
	return errors.Is(err, fs.ErrPermission)
}
