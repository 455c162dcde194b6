package internal

import (
	"regexp"
	"strings"
)

var identifierRegex = regexp.MustCompile(IdentifierPattern)

// IsIdentifierKey reports whether key may be used as a data key or helper name:
// a leading letter or underscore followed by letters, digits or underscores.
func IsIdentifierKey(key string) bool {
	return identifierRegex.MatchString(key)
}

// NormalizeExtension returns ext with exactly one leading separator.
// An empty extension stays empty.
func NormalizeExtension(ext string) string {
	if ext == StringValueEmpty {
		return StringValueEmpty
	}
	return ExtensionSeparator + strings.TrimLeft(ext, ExtensionSeparator)
}

// FormatPathList renders paths as "[a, b, c]" for error messages.
func FormatPathList(paths []string) string {
	return PathListOpen + strings.Join(paths, PathListSeparator) + PathListClose
}
