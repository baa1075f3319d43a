package install

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/castlebay-dev/stackpilot/internal/messages"
)

// pathState is the single decision about a target path, consumed once per
// asset instead of scattering existence probes across call sites.
type pathState int

const (
	pathExists pathState = iota
	pathMissing
	pathDenied
)

// probePath classifies path as exists, missing, or permission-denied. The
// returned error is non-nil for denied and for any other stat failure.
func probePath(sys System, path string) (pathState, error) {
	_, err := sys.Stat(path)
	if err == nil {
		return pathExists, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return pathMissing, nil
	}
	if errors.Is(err, fs.ErrPermission) {
		return pathDenied, fmt.Errorf(messages.InstallFailedStatFmt, path, err)
	}
	return pathMissing, fmt.Errorf(messages.InstallFailedStatFmt, path, err)
}
