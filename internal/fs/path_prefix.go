package fs

import (
	"path/filepath"
	"strings"
)

// TrimPathPrefix removes base followed by exactly one separator from the
// start of p and returns the rest. Only a prefix at the very start of p is
// removed; later occurrences of base inside p are left alone. If p does not
// start with base plus a separator, p is returned unchanged and ok is false.
//
// base must not be empty. A base which already ends in a separator (e.g.
// "/") is not extended by another one.
func TrimPathPrefix(base, p string) (rel string, ok bool) {
	if base == "" {
		return p, false
	}

	prefix := base
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}

	rel, ok = strings.CutPrefix(p, prefix)
	if !ok || rel == "" {
		return p, false
	}
	return rel, true
}
