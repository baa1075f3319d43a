// Package catalog loads the stack catalog and selects stacks for prompts.
package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/castlebay-dev/stackpilot/internal/messages"
)

// ErrCatalogValidation is a sentinel that wraps malformed-catalog failures
// (as opposed to filesystem errors). Callers can use
// errors.Is(err, ErrCatalogValidation) to pick the right exit class.
var ErrCatalogValidation = errors.New("catalog validation failed")

// PrioritySentinel is assigned to records with an absent or unparsable
// priority field, pushing them behind every explicitly prioritized record.
const PrioritySentinel = 1_000_000

// StackDefinition is one catalog record. Immutable once loaded.
type StackDefinition struct {
	Name             string
	Priority         int
	Tags             []string
	DeclarationOrder int
	DocPath          string
	Technologies     []string
}

// Index is the ordered stack catalog; insertion order is declaration order.
type Index struct {
	Stacks []StackDefinition
}

// Load reads and parses the catalog document at path.
func Load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.CatalogMissingFileFmt, path, err)
	}
	return Parse(data)
}

var linkRe = regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`)

// recordBuilder accumulates one catalog record while scanning.
type recordBuilder struct {
	def         StackDefinition
	docEntries  []string
	coreEntries []string
	section     string
}

const (
	sectionDocumentation = "documentation"
	sectionCoreTech      = "core technologies"
)

// Parse parses a catalog document into an ordered Index.
func Parse(data []byte) (*Index, error) {
	index := &Index{}
	seen := make(map[string]struct{})
	var current *recordBuilder

	flush := func() {
		if current == nil {
			return
		}
		current.def.Technologies = technologyList(current.docEntries, current.coreEntries)
		index.Stacks = append(index.Stacks, current.def)
		current = nil
	}

	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, "### "):
			if current != nil {
				current.section = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(trimmed, "### ")))
			}
		case strings.HasPrefix(trimmed, "## "):
			flush()
			name := strings.TrimSpace(strings.TrimPrefix(trimmed, "## "))
			if name == "" {
				return nil, fmt.Errorf("%w: "+messages.CatalogRecordMissingNameFmt, ErrCatalogValidation, lineNo)
			}
			if _, dup := seen[name]; dup {
				return nil, fmt.Errorf("%w: "+messages.CatalogDuplicateNameFmt, ErrCatalogValidation, name)
			}
			seen[name] = struct{}{}
			current = &recordBuilder{
				def: StackDefinition{
					Name:             name,
					Priority:         PrioritySentinel,
					DeclarationOrder: len(index.Stacks),
				},
			}
		case trimmed == "##" || trimmed == "###":
			if strings.HasPrefix(trimmed, "###") {
				continue
			}
			return nil, fmt.Errorf("%w: "+messages.CatalogRecordMissingNameFmt, ErrCatalogValidation, lineNo)
		case strings.HasPrefix(trimmed, "- "):
			if current == nil {
				continue
			}
			parseRecordLine(current, strings.TrimSpace(strings.TrimPrefix(trimmed, "- ")))
		}
	}
	flush()

	if len(index.Stacks) == 0 {
		return nil, fmt.Errorf("%w: "+messages.CatalogNoStacks, ErrCatalogValidation)
	}
	return index, nil
}

// parseRecordLine consumes one bullet line inside a record. Field bullets
// (Priority, Tags, Doc) are recognized anywhere in the record; other bullets
// feed the technology list of the active subsection. Unknown fields are ignored.
func parseRecordLine(current *recordBuilder, body string) {
	key, value, isField := splitField(body)
	if isField {
		switch strings.ToLower(key) {
		case "priority":
			if parsed, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
				current.def.Priority = parsed
			}
		case "tags":
			current.def.Tags = normalizeTags(value)
		case "doc":
			current.def.DocPath = strings.TrimSpace(value)
		}
		return
	}
	switch current.section {
	case sectionDocumentation:
		if entry := entryText(body); entry != "" {
			current.docEntries = append(current.docEntries, entry)
		}
	case sectionCoreTech:
		if entry := strings.TrimSpace(body); entry != "" {
			current.coreEntries = append(current.coreEntries, entry)
		}
	}
}

// splitField splits "Key: value" bullets. Only a bare word before the colon
// qualifies as a key: multi-word keys are not fields, and neither are list
// entries whose text happens to contain a colon, such as markdown links.
func splitField(body string) (key string, value string, ok bool) {
	idx := strings.Index(body, ":")
	if idx <= 0 {
		return "", "", false
	}
	key = strings.TrimSpace(body[:idx])
	if !isFieldKey(key) {
		return "", "", false
	}
	return key, body[idx+1:], true
}

func isFieldKey(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		default:
			return false
		}
	}
	return true
}

// entryText extracts the display text of a documentation bullet, unwrapping
// markdown links.
func entryText(body string) string {
	if m := linkRe.FindStringSubmatch(body); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(body)
}

// technologyList prefers documentation entries; core technologies are the
// fallback only when documentation captured nothing. Deduped and sorted for
// stable output.
func technologyList(docEntries []string, coreEntries []string) []string {
	entries := docEntries
	if len(entries) == 0 {
		entries = coreEntries
	}
	if len(entries) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(entries))
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		if _, dup := seen[entry]; dup {
			continue
		}
		seen[entry] = struct{}{}
		out = append(out, entry)
	}
	sort.Strings(out)
	return out
}

// normalizeTags splits a comma-separated tag list, case-folds each tag, and
// strips characters outside [a-z0-9+-].
func normalizeTags(value string) []string {
	parts := strings.Split(value, ",")
	seen := make(map[string]struct{}, len(parts))
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := normalizeTag(part)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

func normalizeTag(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	var b strings.Builder
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '+', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}
