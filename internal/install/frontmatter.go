package install

import (
	"errors"
	"fmt"
	"strings"

	yaml "go.yaml.in/yaml/v3"

	"github.com/castlebay-dev/stackpilot/internal/messages"
)

// ErrDefinitionInvalid is a sentinel that wraps command-definition
// validation failures so callers can map them to the validation exit class.
var ErrDefinitionInvalid = errors.New("command definition invalid")

type commandFrontMatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// validateCommandDefinition checks that the canonical command definition
// carries YAML frontmatter with a non-blank name before it is registered
// with a host.
func validateCommandDefinition(path string, data []byte) error {
	raw, ok := extractFrontMatter(string(data))
	if !ok {
		return fmt.Errorf("%w: "+messages.DefinitionInvalidFmt, ErrDefinitionInvalid, path, errors.New(messages.DefinitionNoFrontmatter))
	}
	var fm commandFrontMatter
	if err := yaml.Unmarshal([]byte(raw), &fm); err != nil {
		return fmt.Errorf("%w: "+messages.DefinitionInvalidFmt, ErrDefinitionInvalid, path, err)
	}
	if strings.TrimSpace(fm.Name) == "" {
		return fmt.Errorf("%w: "+messages.DefinitionInvalidFmt, ErrDefinitionInvalid, path, errors.New(messages.DefinitionMissingName))
	}
	return nil
}

// extractFrontMatter returns the YAML between the leading "---" fences.
func extractFrontMatter(content string) (string, bool) {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(normalized, "---\n") {
		return "", false
	}
	rest := strings.TrimPrefix(normalized, "---\n")
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}
