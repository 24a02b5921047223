package sink

import (
	"fmt"
	"strings"

	"ctxpack/pkg/export"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

// writeClipboard is swappable for tests; clipboard access is unavailable in
// most CI environments.
var writeClipboard = clipboard.WriteAll

// ClipboardSink accumulates segments and places the joined text on the
// system clipboard on Close. The clipboard holds a single value, so
// per-segment writes would leave only the last part.
type ClipboardSink struct {
	format export.Format
	logger *zap.Logger
	parts  []string
}

// NewClipboardSink creates a clipboard-backed sink.
func NewClipboardSink(format export.Format, logger *zap.Logger) *ClipboardSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClipboardSink{format: format, logger: logger}
}

// Write buffers one segment.
func (s *ClipboardSink) Write(seg export.Segment) error {
	s.parts = append(s.parts, segmentText(s.format, seg))
	return nil
}

// Close joins the buffered segments and writes them to the clipboard.
func (s *ClipboardSink) Close() error {
	if len(s.parts) == 0 {
		return nil
	}
	if err := writeClipboard(strings.Join(s.parts, "\n")); err != nil {
		return fmt.Errorf("failed to write to clipboard: %w", err)
	}
	s.logger.Info("Copied export to clipboard", zap.Int("segments", len(s.parts)))
	return nil
}
