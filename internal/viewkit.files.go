package internal

import (
	"os"
	"path/filepath"
)

// IsReadableFile reports whether path names a regular file that can be opened
// for reading.
func IsReadableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

// FindFile scans dirs in order and returns the first dir/name that is a
// readable regular file.
func FindFile(dirs []string, name string) (string, bool) {
	for _, dir := range dirs {
		candidate := filepath.Join(dir, name)
		if IsReadableFile(candidate) {
			return candidate, true
		}
	}
	return StringValueEmpty, false
}
