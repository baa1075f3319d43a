package install

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/castlebay-dev/stackpilot/internal/clierr"
	"github.com/castlebay-dev/stackpilot/internal/config"
	"github.com/castlebay-dev/stackpilot/internal/messages"
	"github.com/castlebay-dev/stackpilot/internal/templates"
)

// Options controls installer behavior.
type Options struct {
	Force           bool
	System          System
	HostCommandPath string
	Out             io.Writer
	Now             func() time.Time
	DiffMaxLines    int
}

type installer struct {
	root         string
	paths        config.Paths
	force        bool
	sys          System
	hostPath     string
	out          io.Writer
	now          func() time.Time
	diffMaxLines int
}

// Run installs the managed asset set into root. Every asset is attempted
// even when an earlier one fails; the returned error is non-nil when any
// asset failed and carries the exit class of the first failure.
func Run(root string, opts Options) ([]AssetResult, error) {
	if root == "" {
		return nil, fmt.Errorf(messages.InstallRootRequired)
	}
	if opts.System == nil {
		return nil, fmt.Errorf(messages.InstallSystemRequired)
	}
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	inst := &installer{
		root:         root,
		paths:        config.DefaultPaths(root),
		force:        opts.Force,
		sys:          opts.System,
		hostPath:     opts.HostCommandPath,
		out:          out,
		now:          now,
		diffMaxLines: opts.DiffMaxLines,
	}

	if err := inst.createDirs(); err != nil {
		return nil, classifyAssetError(err)
	}

	assets := managedAssets(inst.paths, inst.hostPath)
	results := make([]AssetResult, 0, len(assets))
	failed := 0
	var firstFailure error
	for _, asset := range assets {
		result := inst.installAsset(asset)
		results = append(results, result)
		inst.reportOutcome(result)
		if result.Outcome == OutcomeFailed {
			failed++
			if firstFailure == nil {
				firstFailure = result.Err
			}
		}
	}

	if failed > 0 {
		summary := fmt.Errorf(messages.InstallFailedSummaryFmt, failed, len(assets))
		classified := classifyAssetError(firstFailure)
		return results, &clierr.Error{Code: clierr.ExitCode(classified), Remedy: messages.InstallFailedRemedy, Err: summary}
	}
	return results, nil
}

func (inst *installer) createDirs() error {
	dirs := []string{
		inst.paths.Dir,
		inst.paths.StacksDir,
		filepath.Dir(inst.paths.CommandPath),
	}
	for _, dir := range dirs {
		if err := inst.sys.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf(messages.InstallCreateDirFailedFmt, dir, err)
		}
	}
	return nil
}

func (inst *installer) installAsset(asset ManagedAsset) AssetResult {
	outcome, err := inst.applyAsset(asset)
	return AssetResult{Path: asset.Path, Outcome: outcome, Err: err}
}

func (inst *installer) applyAsset(asset ManagedAsset) (Outcome, error) {
	switch asset.Class {
	case ClassEnsureBlock:
		return inst.applyEnsureBlock(asset)
	case ClassRegistration:
		return Register(inst.sys, asset.SourcePath, asset.Path, inst.force, inst.now, inst.out, inst.diffMaxLines)
	default:
		return inst.applyIdempotent(asset)
	}
}

// applyIdempotent writes a template-backed file: skipped when present,
// recreated under force, created when missing.
func (inst *installer) applyIdempotent(asset ManagedAsset) (Outcome, error) {
	state, err := probePath(inst.sys, asset.Path)
	if err != nil {
		return OutcomeFailed, err
	}
	switch state {
	case pathExists:
		if !inst.force {
			return OutcomeSkippedExists, nil
		}
		if err := inst.writeTemplate(asset); err != nil {
			return OutcomeFailed, err
		}
		return OutcomeRecreated, nil
	default:
		if err := inst.writeTemplate(asset); err != nil {
			return OutcomeFailed, err
		}
		return OutcomeCreated, nil
	}
}

func (inst *installer) applyEnsureBlock(asset ManagedAsset) (Outcome, error) {
	content, err := templates.Read(asset.Template)
	if err != nil {
		return OutcomeFailed, fmt.Errorf(messages.InstallFailedReadTemplateFmt, asset.Template, err)
	}
	outcome, err := EnsureBlock(inst.sys, asset.Path, blockMarker, string(content))
	if err != nil {
		return OutcomeFailed, err
	}
	if outcome == BlockAlreadyPresent {
		return OutcomeSkippedExists, nil
	}
	return OutcomeCreated, nil
}

func (inst *installer) writeTemplate(asset ManagedAsset) error {
	data, err := templates.Read(asset.Template)
	if err != nil {
		return fmt.Errorf(messages.InstallFailedReadTemplateFmt, asset.Template, err)
	}
	if err := inst.sys.MkdirAll(filepath.Dir(asset.Path), 0o755); err != nil {
		return fmt.Errorf(messages.InstallCreateDirFailedFmt, filepath.Dir(asset.Path), err)
	}
	if err := inst.sys.WriteFileAtomic(asset.Path, data, asset.Perm); err != nil {
		return fmt.Errorf(messages.InstallFailedWriteFmt, asset.Path, err)
	}
	return nil
}

// reportOutcome prints one line per asset. Report writes are informational;
// errors are discarded.
func (inst *installer) reportOutcome(result AssetResult) {
	rel := result.Path
	if candidate, err := filepath.Rel(inst.root, result.Path); err == nil && !isParentEscape(candidate) {
		rel = candidate
	}
	switch result.Outcome {
	case OutcomeCreated:
		_, _ = fmt.Fprintf(inst.out, messages.InstallOutcomeCreatedFmt, rel)
	case OutcomeSkippedExists:
		_, _ = fmt.Fprintf(inst.out, messages.InstallOutcomeSkippedFmt, rel)
	case OutcomeRecreated:
		_, _ = fmt.Fprintf(inst.out, messages.InstallOutcomeRecreatedFmt, rel)
	case OutcomeFailed:
		_, _ = fmt.Fprintf(inst.out, messages.InstallOutcomeFailedFmt, rel, result.Err)
	}
}

// isParentEscape reports whether rel points outside the root (e.g. the host
// command path); those are reported absolute.
func isParentEscape(rel string) bool {
	return rel == ".." || len(rel) >= 3 && rel[:3] == ".."+string(filepath.Separator)
}

// classifyAssetError maps an install failure onto the CLI error taxonomy.
func classifyAssetError(err error) error {
	if err == nil {
		return nil
	}
	var classified *clierr.Error
	if errors.As(err, &classified) {
		return err
	}
	switch {
	case permissionClass(err):
		return clierr.Permission(err, messages.PermissionDeniedRemedy)
	case errors.Is(err, ErrDefinitionInvalid):
		return clierr.Validation(err, messages.DefinitionInvalidRemedy)
	case errors.Is(err, os.ErrNotExist):
		return clierr.Dependency(err, messages.InstallFailedRemedy)
	default:
		return clierr.Usage(err, messages.InstallFailedRemedy)
	}
}
