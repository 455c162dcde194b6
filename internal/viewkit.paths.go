package internal

// PathList is an ordered list of template search directories without
// duplicates. Lookups are linear scans; lists are expected to stay small.
type PathList struct {
	paths []string
}

// NewPathList creates a path list seeded with paths, dropping duplicates.
func NewPathList(paths ...string) *PathList {
	l := &PathList{}
	l.Append(paths...)
	return l
}

// Append adds each path to the end of the list unless it is already present.
func (l *PathList) Append(paths ...string) {
	for _, path := range paths {
		if l.Has(path) {
			continue
		}
		l.paths = append(l.paths, path)
	}
}

// Prepend inserts each path at the front of the list unless it is already
// present. The input is walked in reverse so the new paths keep their
// relative order ahead of the existing ones.
func (l *PathList) Prepend(paths ...string) {
	for i := len(paths) - 1; i >= 0; i-- {
		path := paths[i]
		if l.Has(path) {
			continue
		}
		l.paths = append([]string{path}, l.paths...)
	}
}

// Has reports exact string membership.
func (l *PathList) Has(path string) bool {
	return l.index(path) >= 0
}

// Remove deletes the first entry equal to path.
// Returns true if an entry was removed.
func (l *PathList) Remove(path string) bool {
	i := l.index(path)
	if i < 0 {
		return false
	}
	l.paths = append(l.paths[:i], l.paths[i+1:]...)
	return true
}

// Clear empties the list.
func (l *PathList) Clear() {
	l.paths = nil
}

// Len returns the number of paths.
func (l *PathList) Len() int {
	return len(l.paths)
}

// Slice returns a copy of the paths in priority order.
func (l *PathList) Slice() []string {
	out := make([]string, len(l.paths))
	copy(out, l.paths)
	return out
}

func (l *PathList) index(path string) int {
	for i, p := range l.paths {
		if p == path {
			return i
		}
	}
	return -1
}
