// Package scan discovers candidate files under a project root and provides
// the OS-backed byte store the export pipeline reads through. Discovery
// applies ignore patterns and a size cap; it does not read file content.
package scan

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"ctxpack/pkg/ignore"

	"go.uber.org/zap"
)

// Scanner walks a project root and lists exportable files.
type Scanner struct {
	root          string
	matcher       ignore.Matcher
	maxFileSizeKB int
	logger        *zap.Logger
}

// New creates a Scanner for the given root. A maxFileSizeKB of 0 disables
// the size cap.
func New(root string, matcher ignore.Matcher, maxFileSizeKB int, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if matcher == nil {
		matcher = ignore.New(logger)
	}
	return &Scanner{
		root:          root,
		matcher:       matcher,
		maxFileSizeKB: maxFileSizeKB,
		logger:        logger,
	}
}

// Collect walks the root and returns root-relative, slash-separated paths
// for every file that survives the ignore patterns and the size cap. Paths
// that cannot be accessed are logged and skipped; the walk itself never
// fails on them. The result is unordered; the pipeline's canonical orderer
// sorts it.
func (s *Scanner) Collect() ([]string, error) {
	absRoot, err := filepath.Abs(s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %q: %w", s.root, err)
	}

	var paths []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.logger.Warn("Error accessing path during traversal",
				zap.String("path", path), zap.Error(err))
			return nil
		}
		if path == absRoot {
			return nil
		}

		rel, relErr := filepath.Rel(absRoot, path)
		if relErr != nil {
			s.logger.Warn("Failed to compute relative path",
				zap.String("path", path), zap.Error(relErr))
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if s.matcher.MatchesPath(rel) {
				s.logger.Debug("Skipping ignored directory",
					zap.String("directory", rel))
				return filepath.SkipDir
			}
			return nil
		}

		if s.matcher.MatchesPath(rel) {
			s.logger.Debug("Skipping ignored file", zap.String("file", rel))
			return nil
		}

		if s.maxFileSizeKB > 0 {
			info, infoErr := d.Info()
			if infoErr != nil {
				s.logger.Warn("Failed to stat file",
					zap.String("file", rel), zap.Error(infoErr))
				return nil
			}
			if info.Size() > int64(s.maxFileSizeKB)*1024 {
				s.logger.Debug("Skipping file over size cap",
					zap.String("file", rel),
					zap.Int64("sizeBytes", info.Size()),
					zap.Int("maxSizeKB", s.maxFileSizeKB))
				return nil
			}
		}

		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %q: %w", absRoot, err)
	}

	s.logger.Debug("Completed file collection",
		zap.String("root", absRoot),
		zap.Int("fileCount", len(paths)))
	return paths, nil
}
