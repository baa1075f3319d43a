package config

import "path/filepath"

// CommandName is the slash command this tool installs.
const CommandName = "kickoff"

// Paths holds resolved paths for the managed asset layout under a repo root.
type Paths struct {
	Root        string
	Dir         string
	ConfigPath  string
	CommandPath string
	StacksDir   string
	MemoryPath  string
}

// DefaultPaths returns the default asset paths for a repo root.
func DefaultPaths(root string) Paths {
	dir := filepath.Join(root, ".stackpilot")
	return Paths{
		Root:        root,
		Dir:         dir,
		ConfigPath:  filepath.Join(dir, "config.toml"),
		CommandPath: filepath.Join(dir, "commands", CommandName+".md"),
		StacksDir:   filepath.Join(dir, "stacks"),
		MemoryPath:  filepath.Join(root, "CLAUDE.md"),
	}
}

// CatalogPath resolves the configured catalog location against the asset dir.
func (p Paths) CatalogPath(cfg *Config) string {
	return filepath.Join(p.Dir, filepath.FromSlash(cfg.Catalog.Path))
}
