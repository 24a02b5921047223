package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTree_DirectoriesBeforeFiles(t *testing.T) {
	got := RenderTree([]string{"b.txt", "a_dir/file.txt"})
	want := "" +
		"├── a_dir/\n" +
		"│   └── file.txt\n" +
		"└── b.txt\n" +
		treeSeparator + "\n"
	assert.Equal(t, want, got)
}

func TestRenderTree_Nested(t *testing.T) {
	got := RenderTree([]string{"src/app/main.go", "src/util.go", "README.md"})
	want := "" +
		"├── src/\n" +
		"│   ├── app/\n" +
		"│   │   └── main.go\n" +
		"│   └── util.go\n" +
		"└── README.md\n" +
		treeSeparator + "\n"
	assert.Equal(t, want, got)
}

func TestRenderTree_SiblingsSortLexicographically(t *testing.T) {
	got := RenderTree([]string{"z.txt", "a.txt", "m.txt"})
	lines := strings.Split(got, "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "├── a.txt", lines[0])
	assert.Equal(t, "├── m.txt", lines[1])
	assert.Equal(t, "└── z.txt", lines[2])
}

func TestRenderTree_BlankIndentUnderLastAncestor(t *testing.T) {
	got := RenderTree([]string{"outer/inner/leaf.txt", "a.txt"})
	// outer/ is the last ancestor at its level once files sort after it...
	// here outer/ is the only directory, a.txt the only file.
	want := "" +
		"├── outer/\n" +
		"│   └── inner/\n" +
		"│       └── leaf.txt\n" +
		"└── a.txt\n" +
		treeSeparator + "\n"
	assert.Equal(t, want, got)
}

func TestRenderTree_EmptyInput(t *testing.T) {
	got := RenderTree(nil)
	assert.Equal(t, treeSeparator+"\n", got)
}

func TestRenderTree_Deterministic(t *testing.T) {
	paths := []string{"c/x.go", "a/y.go", "b.txt", "a/z.go"}
	assert.Equal(t, RenderTree(paths), RenderTree(paths))
}
