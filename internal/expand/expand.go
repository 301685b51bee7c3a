// Package expand turns the positional CLI arguments into the ordered list
// of candidate input files.
package expand

import (
	"path/filepath"
	"strings"
)

// Expand resolves each argument, in order, into candidate file paths.
// Arguments with glob metacharacters are matched against the filesystem
// (matches come back lexically sorted); plain filenames pass through
// untouched whether or not they exist, so a missing literal surfaces later
// as a per-file readability skip rather than silently vanishing here.
//
// Duplicates are preserved: a file named twice, or matched by two
// patterns, is summarized twice. A pattern that matches nothing
// contributes nothing and is not an error.
func Expand(patterns []string) []string {
	var candidates []string
	for _, p := range patterns {
		if !hasMeta(p) {
			candidates = append(candidates, p)
			continue
		}
		matches, err := filepath.Glob(p)
		if err != nil {
			// Malformed pattern (e.g. unclosed bracket): treat as literal,
			// like the shell would when expansion fails.
			candidates = append(candidates, p)
			continue
		}
		candidates = append(candidates, matches...)
	}
	return candidates
}

// hasMeta reports whether the path contains any glob metacharacters.
func hasMeta(path string) bool {
	return strings.ContainsAny(path, `*?[`)
}
