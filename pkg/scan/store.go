package scan

import (
	"os"
	"path/filepath"
)

// Store reads file bytes relative to a project root. It implements the
// export pipeline's backing store.
type Store struct {
	root string
}

// NewStore creates a Store rooted at the given directory.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Read returns the raw bytes of the file at the slash-separated relative
// path.
func (s *Store) Read(path string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.root, filepath.FromSlash(path)))
}
