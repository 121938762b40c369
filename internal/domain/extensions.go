package domain

import (
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExtension is the file extension scanned when none is configured.
const DefaultExtension = "flac"

// ExtensionSet is a case-insensitive set of file extensions, stored without
// the leading dot.
type ExtensionSet map[string]struct{}

// NewExtensionSet builds a set from extensions such as "flac", ".FLAC" or
// "Fla". Blank entries are ignored; an empty result falls back to
// DefaultExtension.
func NewExtensionSet(extensions ...string) ExtensionSet {
	set := make(ExtensionSet, len(extensions))

	for _, ext := range extensions {
		normalized := normalizeExtension(ext)
		if normalized == "" {
			continue
		}

		set[normalized] = struct{}{}
	}

	if len(set) == 0 {
		set[DefaultExtension] = struct{}{}
	}

	return set
}

// Match reports whether path has one of the extensions in the set. Files
// without an extension never match.
func (s ExtensionSet) Match(path string) bool {
	ext := normalizeExtension(filepath.Ext(path))
	if ext == "" {
		return false
	}

	_, ok := s[ext]

	return ok
}

// List returns the extensions in sorted order.
func (s ExtensionSet) List() []string {
	list := make([]string, 0, len(s))
	for ext := range s {
		list = append(list, ext)
	}

	sort.Strings(list)

	return list
}

func normalizeExtension(ext string) string {
	return strings.ToLower(strings.TrimLeft(strings.TrimSpace(ext), "."))
}
