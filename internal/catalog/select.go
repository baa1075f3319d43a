package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/castlebay-dev/stackpilot/internal/messages"
)

// SelectionResult describes the stack chosen for a prompt. Exactly one is
// produced per Select call; it is a pure function of (index, prompt).
type SelectionResult struct {
	Stack        string
	Priority     int
	MatchedTag   string
	Fallback     bool
	Reason       string
	DocPath      string
	Technologies []string
}

// Select deterministically picks one stack for the prompt. Records are
// scanned in (priority ascending, declaration order ascending) order and the
// first record with any word-boundary tag match wins; the scanning order is
// the tie-break. When no tag matches, the first record in that same order is
// the fallback.
func Select(index *Index, prompt string) (SelectionResult, error) {
	if index == nil || len(index.Stacks) == 0 {
		return SelectionResult{}, fmt.Errorf(messages.SelectionEmptyCatalog)
	}

	ordered := make([]StackDefinition, len(index.Stacks))
	copy(ordered, index.Stacks)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Priority != ordered[j].Priority {
			return ordered[i].Priority < ordered[j].Priority
		}
		return ordered[i].DeclarationOrder < ordered[j].DeclarationOrder
	})

	normalized := strings.ToLower(prompt)
	for _, stack := range ordered {
		for _, tag := range stack.Tags {
			if containsWord(normalized, tag) {
				return SelectionResult{
					Stack:        stack.Name,
					Priority:     stack.Priority,
					MatchedTag:   tag,
					Reason:       fmt.Sprintf(messages.SelectionMatchedReasonFmt, tag),
					DocPath:      stack.DocPath,
					Technologies: stack.Technologies,
				}, nil
			}
		}
	}

	fallback := ordered[0]
	return SelectionResult{
		Stack:        fallback.Name,
		Priority:     fallback.Priority,
		Fallback:     true,
		Reason:       messages.SelectionFallbackReason,
		DocPath:      fallback.DocPath,
		Technologies: fallback.Technologies,
	}, nil
}

// containsWord reports whether tag occurs in text bounded by
// non-alphanumeric characters or the string boundary on both sides. This
// prevents "api" from matching inside "rapid".
func containsWord(text string, tag string) bool {
	if tag == "" {
		return false
	}
	for from := 0; ; {
		idx := strings.Index(text[from:], tag)
		if idx < 0 {
			return false
		}
		start := from + idx
		end := start + len(tag)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			return true
		}
		from = start + 1
	}
}

func boundaryBefore(text string, start int) bool {
	if start == 0 {
		return true
	}
	return !isWordByte(text[start-1])
}

func boundaryAfter(text string, end int) bool {
	if end >= len(text) {
		return true
	}
	return !isWordByte(text[end])
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') || (b >= 'A' && b <= 'Z')
}
