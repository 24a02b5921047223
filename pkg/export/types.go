// Package export implements the aggregation-and-chunking pipeline: it orders
// a selected set of project files, loads and encodes each one, and assembles
// the encoded stream into one or more budget-bounded output segments without
// ever splitting a single file across segments.
package export

import (
	"fmt"
)

// Format selects the per-file encoding of the export artifact.
type Format string

const (
	// FormatPlain delimits each file with fixed sentinel lines.
	FormatPlain Format = "plain"
	// FormatMarkdown renders each file as a heading plus a fenced code block.
	FormatMarkdown Format = "markdown"
	// FormatXML renders each file as an element with the content in CDATA.
	FormatXML Format = "xml"
)

// ParseFormat validates a format name from config or command-line flags.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPlain, FormatMarkdown, FormatXML:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown format %q (expected plain, markdown or xml)", s)
}

// Extension returns the suggested artifact file extension for the format.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return "md"
	case FormatXML:
		return "xml"
	default:
		return "txt"
	}
}

// BinaryPlaceholder replaces the content of files whose leading bytes
// contain a NUL byte.
const BinaryPlaceholder = "[Binary File Omitted]"

// ReadErrorMarker replaces the content of files that could not be read or
// decoded. The failure is logged but never aborts the pipeline.
const ReadErrorMarker = "ERROR READING FILE"

// FileRecord holds the loaded content of a single file, keyed by its
// project-relative, slash-separated path. Records live only for the
// pipeline invocation that produced them.
type FileRecord struct {
	Path    string
	Content string
	Binary  bool  // content was replaced by BinaryPlaceholder
	Err     error // original read/decode failure, already absorbed into Content
}

// Segment is one bounded output artifact produced by the Assembler.
type Segment struct {
	Text  string
	Index int  // 0-based emission index
	Files int  // encoded fragments contained
	Cost  int  // estimated budget units
	Last  bool // final segment of the run
}

// Store resolves a file identifier to raw bytes. It is the pipeline's
// backing store; scan.Store is the OS-backed implementation.
type Store interface {
	Read(path string) ([]byte, error)
}

// Options configure a pipeline run.
type Options struct {
	Format Format
	// Budget is the per-segment cost ceiling in budget units; 0 emits a
	// single unbounded segment. The ceiling is soft for a lone fragment
	// whose own cost already exceeds it.
	Budget int
	// IncludeTree prepends the tree rendering to the first segment.
	// Ignored for FormatXML, where it would break well-formedness.
	IncludeTree bool
	// Prefetch is the bounded read-ahead window; values <= 1 read each
	// file synchronously. Output order is preserved either way.
	Prefetch int
	// Progress, if set, is called with (processed, total) after each file.
	Progress func(processed, total int)
}
