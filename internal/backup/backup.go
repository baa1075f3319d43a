// Package backup creates collision-safe timestamped copies of files before
// they are overwritten.
package backup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/castlebay-dev/stackpilot/internal/messages"
)

// maxCandidates bounds the collision-suffix search.
const maxCandidates = 10_000

// System abstracts the filesystem operations the backup manager needs.
type System interface {
	Stat(name string) (os.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
}

// Record describes one completed backup. Never mutated after creation.
type Record struct {
	OriginalPath    string
	BackupPath      string
	EpochSeconds    int64
	CollisionSuffix int
}

// IfExists copies path to a timestamped sibling and returns the Record, or
// (nil, nil) when path does not exist. Any failure aborts before the caller
// may overwrite: the original file is never modified here, only read.
func IfExists(sys System, path string, now func() time.Time) (*Record, error) {
	info, err := sys.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf(messages.InstallFailedStatFmt, path, err)
	}

	epoch := now().Unix()
	backupPath, suffix, err := freeCandidate(sys, path, epoch)
	if err != nil {
		return nil, err
	}

	data, err := sys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.BackupCopyFailedFmt, path, err)
	}
	if err := sys.WriteFileAtomic(backupPath, data, info.Mode().Perm()); err != nil {
		return nil, fmt.Errorf(messages.BackupCopyFailedFmt, path, err)
	}

	return &Record{
		OriginalPath:    path,
		BackupPath:      backupPath,
		EpochSeconds:    epoch,
		CollisionSuffix: suffix,
	}, nil
}

// freeCandidate finds the first unused backup name for path at epoch,
// incrementing the collision suffix until a name is free. Two backups within
// the same second therefore never collide.
func freeCandidate(sys System, path string, epoch int64) (string, int, error) {
	for suffix := 0; suffix < maxCandidates; suffix++ {
		candidate := candidateName(path, epoch, suffix)
		_, err := sys.Stat(candidate)
		if errors.Is(err, os.ErrNotExist) {
			return candidate, suffix, nil
		}
		if err != nil {
			return "", 0, fmt.Errorf(messages.InstallFailedStatFmt, candidate, err)
		}
	}
	return "", 0, fmt.Errorf(messages.BackupCandidatesFmt, path, maxCandidates)
}

// candidateName builds <name>.<epoch>[-<suffix>]<ext>, preserving the
// original extension so backups stay openable.
func candidateName(path string, epoch int64, suffix int) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	name := base + "." + strconv.FormatInt(epoch, 10)
	if suffix > 0 {
		name += "-" + strconv.Itoa(suffix)
	}
	return name + ext
}
