package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalOrder_Sorts(t *testing.T) {
	paths := []string{"src/z.go", "README.md", "src/a.go", "cmd/main.go"}
	got := CanonicalOrder(paths)
	assert.Equal(t, []string{"README.md", "cmd/main.go", "src/a.go", "src/z.go"}, got)
}

func TestCanonicalOrder_DedupFirstWins(t *testing.T) {
	paths := []string{"b.txt", "a.txt", "b.txt", "a.txt", "a.txt"}
	got := CanonicalOrder(paths)
	assert.Equal(t, []string{"a.txt", "b.txt"}, got)
}

func TestCanonicalOrder_Empty(t *testing.T) {
	assert.Empty(t, CanonicalOrder(nil))
	assert.Empty(t, CanonicalOrder([]string{}))
}

func TestCanonicalOrder_CodePointOrder(t *testing.T) {
	// Uppercase sorts before lowercase in code-point order, regardless of
	// locale conventions.
	got := CanonicalOrder([]string{"a.txt", "B.txt"})
	assert.Equal(t, []string{"B.txt", "a.txt"}, got)
}

func TestCanonicalOrder_PureFunction(t *testing.T) {
	paths := []string{"c", "a", "b", "a"}
	first := CanonicalOrder(paths)
	second := CanonicalOrder(paths)
	assert.Equal(t, first, second)
	// Input slice is left untouched.
	assert.Equal(t, []string{"c", "a", "b", "a"}, paths)
}
