// Package sink delivers completed export segments to their destination:
// files on disk or the system clipboard. Sinks receive each segment exactly
// once, in emission order.
package sink

import (
	"ctxpack/pkg/export"
)

// Sink receives completed segments as the assembler produces them.
type Sink interface {
	Write(seg export.Segment) error
	Close() error
}

// segmentText returns the text to persist for a segment, applying the XML
// document root wrapping when the run produced a single unchunked segment.
// Chunked XML stays a fragment stream; wrapping it per segment would
// fabricate documents the fragments never formed.
func segmentText(format export.Format, seg export.Segment) string {
	if format == export.FormatXML && seg.Index == 0 && seg.Last {
		return export.WrapDocument(seg.Text)
	}
	return seg.Text
}
