package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/castlebay-dev/stackpilot/internal/messages"
)

// EnvHome overrides the home directory used to resolve host target paths.
const EnvHome = "STACKPILOT_HOME"

// HostTargetClaude is the only supported host assistant.
const HostTargetClaude = "claude"

// ErrUnsupportedTarget wraps host targets this tool cannot register with.
var ErrUnsupportedTarget = errors.New("unsupported host target")

// ResolveHome resolves the user profile directory, honoring the EnvHome
// override. lookupEnv is injected so tests never depend on process state.
func ResolveHome(lookupEnv func(string) (string, bool)) (string, error) {
	if value, ok := lookupEnv(EnvHome); ok && strings.TrimSpace(value) != "" {
		return value, nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf(messages.ConfigResolveHomeFailedFmt, err)
	}
	return home, nil
}

// HostCommandPath resolves where the command definition is registered for
// the given host target.
func HostCommandPath(home string, target string) (string, error) {
	switch target {
	case HostTargetClaude:
		return filepath.Join(home, ".claude", "commands", CommandName+".md"), nil
	default:
		return "", fmt.Errorf("%w: "+messages.UnsupportedTargetFmt, ErrUnsupportedTarget, target)
	}
}
