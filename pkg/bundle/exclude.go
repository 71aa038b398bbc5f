package bundle

import (
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultExcludes lists the directory patterns skipped during scanning:
// VCS metadata, IDE state, build output, dependency caches, and logs.
// The same list backs both the bundle command and the interactive
// configurator, so the two entry points always agree on what is excluded.
var DefaultExcludes = []string{
	".git/",
	".svn/",
	".hg/",
	".vs/",
	".idea/",
	".*/", // any other hidden directory
	"bin/",
	"obj/",
	"build/",
	"dist/",
	"node_modules/",
	"packages/",
	"logs/",
	"temp/",
}

// Matcher matches relative paths against a list of gitignore-style exclusion
// patterns. Matching is case-insensitive; paths use forward slashes and
// directories carry a trailing slash.
type Matcher struct {
	patterns []*excludePattern
}

type excludePattern struct {
	re     *regexp.Regexp
	negate bool
	line   string
}

// NewMatcher compiles the given pattern lines. Empty lines and comments are
// skipped; lines starting with '!' negate an earlier match.
func NewMatcher(lines ...string) *Matcher {
	m := &Matcher{}
	for _, line := range lines {
		re, negate, ok := compilePatternLine(line)
		if !ok {
			continue
		}
		m.patterns = append(m.patterns, &excludePattern{re: re, negate: negate, line: line})
	}
	return m
}

// DefaultMatcher returns a matcher over DefaultExcludes.
func DefaultMatcher() *Matcher {
	return NewMatcher(DefaultExcludes...)
}

// Matches reports whether the path is excluded. The last matching pattern
// wins, so a negation can re-include a path excluded earlier in the list.
func (m *Matcher) Matches(path string) bool {
	normalized := filepath.ToSlash(path)

	matched := false
	for _, p := range m.patterns {
		if p.re.MatchString(normalized) {
			matched = !p.negate
		}
	}
	return matched
}

// compilePatternLine translates one gitignore-style line into an anchored,
// case-insensitive regular expression and a negation flag. The third return
// is false for empty lines, comments, and invalid patterns.
func compilePatternLine(line string) (*regexp.Regexp, bool, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, false, false
	}

	negate := false
	if strings.HasPrefix(trimmed, "!") {
		negate = true
		trimmed = strings.TrimPrefix(trimmed, "!")
	}

	pattern := escapeSpecialChars(trimmed)
	pattern = expandDoubleStars(pattern)
	pattern = wildcardToRegex(pattern)
	pattern = anchorPattern(pattern, trimmed)

	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, false, false
	}
	return re, negate, true
}

// escapeSpecialChars escapes regex metacharacters except '*', '?', and '/'.
func escapeSpecialChars(pattern string) string {
	const specialChars = `.+()|^$[]{}`
	for _, char := range specialChars {
		pattern = strings.ReplaceAll(pattern, string(char), `\`+string(char))
	}
	return pattern
}

// expandDoubleStars replaces '**' segments with their regex equivalents.
func expandDoubleStars(pattern string) string {
	pattern = regexp.MustCompile(`/\*\*/`).ReplaceAllString(pattern, `(/|/.+/)`)
	pattern = regexp.MustCompile(`/\*\*$`).ReplaceAllString(pattern, `(/.*)?`)
	pattern = regexp.MustCompile(`^\*\*/`).ReplaceAllString(pattern, `(.*/)?`)
	return pattern
}

// wildcardToRegex converts '*' and '?' wildcards to regex equivalents.
func wildcardToRegex(pattern string) string {
	pattern = regexp.MustCompile(`\*`).ReplaceAllString(pattern, `[^/]*`)
	return strings.ReplaceAll(pattern, "?", ".")
}

// anchorPattern anchors the pattern to whole path segments. Patterns with a
// trailing slash match the directory and everything beneath it; patterns
// without a leading slash match at any depth.
func anchorPattern(pattern, original string) string {
	if strings.HasSuffix(original, "/") {
		pattern += "(|.*)$"
	} else {
		pattern += "(|/.*)$"
	}

	if strings.HasPrefix(original, "/") {
		return "^" + pattern
	}
	return "^(|.*/)" + pattern
}
