// Package templates embeds the default assets the installer writes.
package templates

import (
	"embed"
	"io/fs"
	"path"
	"strings"
)

//go:embed all:assets
var assetsFS embed.FS

const assetsRoot = "assets"

// Read returns the embedded template content for name.
func Read(name string) ([]byte, error) {
	return assetsFS.ReadFile(path.Join(assetsRoot, name))
}

// Walk walks the embedded templates under root, invoking fn with paths
// relative to the assets root (e.g. "stacks/web-app.md").
func Walk(root string, fn fs.WalkDirFunc) error {
	prefix := assetsRoot + "/"
	return fs.WalkDir(assetsFS, path.Join(assetsRoot, root), func(p string, d fs.DirEntry, err error) error {
		return fn(strings.TrimPrefix(p, prefix), d, err)
	})
}
