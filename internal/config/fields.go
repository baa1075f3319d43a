package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/castlebay-dev/stackpilot/internal/messages"
)

// Config is the decoded .stackpilot/config.toml.
type Config struct {
	Catalog CatalogConfig `toml:"catalog"`
	Host    HostConfig    `toml:"host"`
	DryRun  DryRunConfig  `toml:"dryrun"`
}

// CatalogConfig locates the catalog document relative to .stackpilot.
type CatalogConfig struct {
	Path string `toml:"path"`
}

// HostConfig names the assistant the kickoff command is registered with.
type HostConfig struct {
	Target string `toml:"target"`
}

// DryRunConfig fixes the downstream generation chain previewed by --dry-run.
// Arity and order come from this list, never from input.
type DryRunConfig struct {
	Targets []DryRunTarget `toml:"targets"`
}

// DryRunTarget is one downstream command and the artifact it would produce.
type DryRunTarget struct {
	Command  string `toml:"command"`
	Artifact string `toml:"artifact"`
}

// Validate checks that the settings are complete.
func (c *Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Catalog.Path) == "" {
		problems = append(problems, messages.ConfigCatalogPathRequired)
	}
	if strings.TrimSpace(c.Host.Target) == "" {
		problems = append(problems, messages.ConfigHostTargetRequired)
	}
	if len(c.DryRun.Targets) == 0 {
		problems = append(problems, messages.ConfigTargetsRequired)
	}
	for i, target := range c.DryRun.Targets {
		if strings.TrimSpace(target.Command) == "" {
			problems = append(problems, fmt.Sprintf(messages.ConfigTargetCommandFmt, i))
		}
		if strings.TrimSpace(target.Artifact) == "" {
			problems = append(problems, fmt.Sprintf(messages.ConfigTargetArtifactFmt, i))
		}
	}
	if len(problems) == 0 {
		return nil
	}
	return errors.New(strings.Join(problems, "; "))
}
