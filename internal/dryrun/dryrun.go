// Package dryrun classifies kickoff invocations and builds the preview
// prompt chain. Nothing in this package touches the filesystem or network,
// and no downstream command is ever invoked here.
package dryrun

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/castlebay-dev/stackpilot/internal/messages"
)

// Flag is the preview flag; it must be the first whitespace-delimited token
// of the raw input. Exact match only: no aliases, no case folding.
const Flag = "--dry-run"

// State is the classification of a raw invocation. The initial state is
// determined synchronously from the raw input and is terminal.
type State int

const (
	// StateNormal delegates to external orchestration.
	StateNormal State = iota
	// StatePreview produces the prompt list with zero side effects.
	StatePreview
	// StateInvalidFlagPlacement is a distinct usage-class error: the flag
	// appears somewhere other than the first token.
	StateInvalidFlagPlacement
)

// Request is a classified invocation.
type Request struct {
	RawInput      string
	State         State
	PromptContent string
}

// Target is one downstream command and the artifact it would produce.
type Target struct {
	Command  string
	Artifact string
}

// Prompt is the generated prompt for one downstream target.
type Prompt struct {
	Command string
	Order   int
	Text    string
	Notes   string
}

// Classify determines the state for rawInput. In the preview state,
// PromptContent is rawInput with the leading flag token and following
// whitespace removed, then trimmed.
func Classify(rawInput string) Request {
	req := Request{RawInput: rawInput}
	fields := strings.Fields(rawInput)
	if len(fields) > 0 && fields[0] == Flag {
		req.State = StatePreview
		rest := strings.TrimLeftFunc(rawInput, unicode.IsSpace)
		rest = strings.TrimPrefix(rest, Flag)
		req.PromptContent = strings.TrimSpace(rest)
		return req
	}
	for _, field := range fields {
		if field == Flag {
			req.State = StateInvalidFlagPlacement
			return req
		}
	}
	req.State = StateNormal
	return req
}

// TargetCommands returns the ordered downstream command identifiers for the
// request: one per configured target, or empty when the prompt content is
// empty or whitespace-only (a successful no-op preview, not an error).
func (r Request) TargetCommands(targets []Target) []string {
	if strings.TrimSpace(r.PromptContent) == "" {
		return nil
	}
	commands := make([]string, 0, len(targets))
	for _, target := range targets {
		commands = append(commands, target.Command)
	}
	return commands
}

// BuildPrompts generates one prompt per target, in order. The first target
// receives the prompt content verbatim; every subsequent target receives a
// structured reference to the artifact the previous target would have
// produced, never the raw content. Empty content yields no prompts.
func BuildPrompts(content string, targets []Target) []Prompt {
	if strings.TrimSpace(content) == "" {
		return nil
	}
	prompts := make([]Prompt, 0, len(targets))
	for i, target := range targets {
		prompt := Prompt{
			Command: target.Command,
			Order:   i + 1,
		}
		if i == 0 {
			prompt.Text = content
		} else {
			prev := targets[i-1]
			prompt.Text = fmt.Sprintf(messages.DryRunChainedPromptFmt, prev.Artifact, prev.Command)
			prompt.Notes = fmt.Sprintf(messages.DryRunChainedNoteFmt, prev.Command)
		}
		prompts = append(prompts, prompt)
	}
	return prompts
}
