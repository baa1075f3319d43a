package install

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/castlebay-dev/stackpilot/internal/messages"
)

// BlockOutcome is the result of an EnsureBlock call.
type BlockOutcome int

const (
	BlockAlreadyPresent BlockOutcome = iota
	BlockAppended
	BlockCreated
)

// EnsureBlock idempotently merges a marker-delimited block into the file at
// path. Existing bytes are preserved exactly; when the marker is already
// present nothing is written, which also means stale values inside an
// existing block are not refreshed.
func EnsureBlock(sys System, path string, marker string, content string) (BlockOutcome, error) {
	if strings.TrimSpace(marker) == "" {
		return BlockAlreadyPresent, fmt.Errorf(messages.ConfigBlockMarkerRequired)
	}

	existing := ""
	created := true
	data, err := sys.ReadFile(path)
	switch {
	case err == nil:
		existing = string(data)
		created = false
	case errors.Is(err, os.ErrNotExist):
		// Treat as empty.
	default:
		return BlockAlreadyPresent, fmt.Errorf(messages.InstallFailedReadFmt, path, err)
	}

	if strings.Contains(existing, marker) {
		return BlockAlreadyPresent, nil
	}

	merged := existing
	if merged != "" && !strings.HasSuffix(merged, "\n") {
		merged += "\n"
	}
	merged += content

	if err := sys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return BlockAlreadyPresent, fmt.Errorf(messages.InstallCreateDirFailedFmt, filepath.Dir(path), err)
	}
	if err := sys.WriteFileAtomic(path, []byte(merged), 0o644); err != nil {
		return BlockAlreadyPresent, fmt.Errorf(messages.InstallFailedWriteFmt, path, err)
	}
	if created {
		return BlockCreated, nil
	}
	return BlockAppended, nil
}
