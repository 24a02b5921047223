package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ctxpack/pkg/export"

	"go.uber.org/zap"
)

// FileSink writes each segment to its own file. A run that produces exactly
// one segment gets the bare output name; otherwise segments are numbered
// with a _partN suffix, starting at 1.
type FileSink struct {
	base   string
	format export.Format
	logger *zap.Logger

	written []string
}

// NewFileSink creates a FileSink writing next to the given output path. An
// extension matching the format is stripped from output so the part suffix
// lands before it.
func NewFileSink(output string, format export.Format, logger *zap.Logger) *FileSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileSink{
		base:   strings.TrimSuffix(output, "."+format.Extension()),
		format: format,
		logger: logger,
	}
}

// Write persists one segment.
func (s *FileSink) Write(seg export.Segment) error {
	name := s.segmentName(seg)

	if dir := filepath.Dir(name); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(name, []byte(segmentText(s.format, seg)), 0o644); err != nil {
		return fmt.Errorf("failed to write segment %d to %s: %w", seg.Index, name, err)
	}

	s.written = append(s.written, name)
	s.logger.Info("Wrote segment",
		zap.String("file", name),
		zap.Int("files", seg.Files),
		zap.Int("cost", seg.Cost))
	return nil
}

// Close reports the files written during the run.
func (s *FileSink) Close() error {
	s.logger.Debug("File sink closed", zap.Strings("written", s.written))
	return nil
}

// Written lists the paths written so far, in emission order.
func (s *FileSink) Written() []string {
	return s.written
}

func (s *FileSink) segmentName(seg export.Segment) string {
	if seg.Index == 0 && seg.Last {
		return fmt.Sprintf("%s.%s", s.base, s.format.Extension())
	}
	return fmt.Sprintf("%s_part%d.%s", s.base, seg.Index+1, s.format.Extension())
}
