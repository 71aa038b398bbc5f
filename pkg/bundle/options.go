package bundle

import (
	"fmt"
	"sort"
	"strings"
)

// Options holds the configuration for a single bundling run.
// It is built once, from command-line flags or from a replayed
// response file, and never mutated afterwards.
type Options struct {
	Output           string       // Destination path for the bundled output file
	Source           string       // Root directory to scan for candidate files
	Extensions       ExtensionSet // Requested extensions, or the match-all set
	IncludeComments  bool         // Emit a "// Source:" line before each file
	SortMode         SortMode     // Ordering of the bundled files
	RemoveEmptyLines bool         // Drop blank and all-whitespace lines
	Author           string       // Optional author named in the banner line
}

// AllLanguages is the sentinel that disables extension filtering.
const AllLanguages = "all"

// ExtensionSet is a set of normalized file extensions with an explicit
// match-all variant. Extensions are stored lower-cased without a leading dot.
type ExtensionSet struct {
	all  bool
	exts map[string]struct{}
}

// ParseExtensions builds an ExtensionSet from a comma-separated list of
// extensions, or the match-all set when the input is the "all" sentinel.
func ParseExtensions(csv string) ExtensionSet {
	if strings.EqualFold(strings.TrimSpace(csv), AllLanguages) {
		return ExtensionSet{all: true}
	}

	exts := make(map[string]struct{})
	for _, part := range strings.Split(csv, ",") {
		ext := NormalizeExt(part)
		if ext != "" {
			exts[ext] = struct{}{}
		}
	}
	return ExtensionSet{exts: exts}
}

// All reports whether the set matches every extension.
func (s ExtensionSet) All() bool {
	return s.all
}

// Contains reports whether the normalized form of ext is in the set.
func (s ExtensionSet) Contains(ext string) bool {
	if s.all {
		return true
	}
	_, ok := s.exts[NormalizeExt(ext)]
	return ok
}

// String renders the set back into the comma-separated form accepted by
// ParseExtensions, with entries sorted for determinism.
func (s ExtensionSet) String() string {
	if s.all {
		return AllLanguages
	}
	exts := make([]string, 0, len(s.exts))
	for ext := range s.exts {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return strings.Join(exts, ",")
}

// NormalizeExt lower-cases an extension and strips its leading dot.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}

// SortMode selects the ordering applied to the candidate list before writing.
type SortMode string

const (
	// SortByName orders candidates by file name only.
	SortByName SortMode = "name"
	// SortByType orders candidates by extension first, then file name.
	SortByType SortMode = "type"
)

// ParseSortMode validates a sort mode string. An empty value defaults to
// sorting by name.
func ParseSortMode(s string) (SortMode, error) {
	switch SortMode(strings.ToLower(strings.TrimSpace(s))) {
	case SortByName, "":
		return SortByName, nil
	case SortByType:
		return SortByType, nil
	default:
		return "", fmt.Errorf("invalid sort mode %q: must be %q or %q", s, SortByName, SortByType)
	}
}
