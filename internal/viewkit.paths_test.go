package internal

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestPathList_Append(t *testing.T) {
	t.Run("keeps input order", func(t *testing.T) {
		l := NewPathList()
		l.Append("a", "b", "c")
		if diff := cmp.Diff([]string{"a", "b", "c"}, l.Slice()); diff != "" {
			t.Fatalf("paths mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("drops paths already present", func(t *testing.T) {
		l := NewPathList("b")
		l.Append("a", "b", "c", "a")
		if diff := cmp.Diff([]string{"b", "a", "c"}, l.Slice()); diff != "" {
			t.Fatalf("paths mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestPathList_Prepend(t *testing.T) {
	t.Run("new paths keep relative order ahead of existing", func(t *testing.T) {
		l := NewPathList("x", "y")
		l.Prepend("a", "b", "c")
		if diff := cmp.Diff([]string{"a", "b", "c", "x", "y"}, l.Slice()); diff != "" {
			t.Fatalf("paths mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("existing paths are not moved", func(t *testing.T) {
		l := NewPathList("x", "b")
		l.Prepend("a", "b")
		if diff := cmp.Diff([]string{"a", "x", "b"}, l.Slice()); diff != "" {
			t.Fatalf("paths mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestPathList_RemoveHasClear(t *testing.T) {
	l := NewPathList("a", "b", "c")

	assert.True(t, l.Has("b"))
	assert.False(t, l.Has("B"))

	assert.True(t, l.Remove("b"))
	assert.False(t, l.Has("b"))
	assert.False(t, l.Remove("b"))
	assert.Equal(t, []string{"a", "c"}, l.Slice())

	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Slice())
}

func TestPathList_SliceIsCopy(t *testing.T) {
	l := NewPathList("a")
	out := l.Slice()
	out[0] = "mutated"
	assert.Equal(t, []string{"a"}, l.Slice())
}
