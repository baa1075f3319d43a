package install

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/castlebay-dev/stackpilot/internal/config"
	"github.com/castlebay-dev/stackpilot/internal/templates"
)

// AssetClass controls how an asset is written and how force applies to it.
type AssetClass int

const (
	// ClassIdempotent assets are plain template writes: skipped when
	// present, recreated under force.
	ClassIdempotent AssetClass = iota
	// ClassEnsureBlock assets append a marker-delimited block to a
	// user-owned file; presence of the marker makes them a no-op
	// regardless of force.
	ClassEnsureBlock
	// ClassRegistration copies the canonical command definition to the
	// host; a forced overwrite is backed up first.
	ClassRegistration
)

// ManagedAsset is one statically enumerated install target. Assets are never
// discovered from disk.
type ManagedAsset struct {
	Path       string
	Template   string
	SourcePath string
	Class      AssetClass
	Perm       fs.FileMode
}

// blockMarker identifies the managed block inside CLAUDE.md.
const blockMarker = "<!-- stackpilot:managed -->"

// stackTemplates enumerates the stack documents shipped in the embedded
// template store. Walk order is lexical, so the asset set is deterministic.
func stackTemplates() []string {
	var names []string
	_ = templates.Walk("stacks", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			names = append(names, p)
		}
		return nil
	})
	return names
}

// managedAssets enumerates the full managed asset set for a repo root.
// hostCommandPath is the resolved registration target.
func managedAssets(paths config.Paths, hostCommandPath string) []ManagedAsset {
	assets := []ManagedAsset{
		{Path: paths.ConfigPath, Template: "config.toml", Class: ClassIdempotent, Perm: 0o644},
		{Path: filepath.Join(paths.Dir, "catalog.md"), Template: "catalog.md", Class: ClassIdempotent, Perm: 0o644},
	}
	for _, tmpl := range stackTemplates() {
		assets = append(assets, ManagedAsset{
			Path:     filepath.Join(paths.StacksDir, strings.TrimPrefix(tmpl, "stacks/")),
			Template: tmpl,
			Class:    ClassIdempotent,
			Perm:     0o644,
		})
	}
	assets = append(assets,
		ManagedAsset{Path: paths.CommandPath, Template: "commands/kickoff.md", Class: ClassIdempotent, Perm: 0o644},
		ManagedAsset{Path: paths.MemoryPath, Template: "claude-block.md", Class: ClassEnsureBlock, Perm: 0o644},
		ManagedAsset{Path: hostCommandPath, SourcePath: paths.CommandPath, Class: ClassRegistration, Perm: 0o644},
	)
	return assets
}

// Outcome is the per-asset install result.
type Outcome int

const (
	OutcomeCreated Outcome = iota
	OutcomeSkippedExists
	OutcomeRecreated
	OutcomeFailed
)

// AssetResult pairs an asset path with its outcome.
type AssetResult struct {
	Path    string
	Outcome Outcome
	Err     error
}
