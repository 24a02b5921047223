package export

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"go.uber.org/zap"
)

// binarySniffLen is the exact prefix length inspected for NUL bytes when
// classifying content as binary.
const binarySniffLen = 8000

// ErrInvalidUTF8 is recorded on a FileRecord whose bytes do not decode as
// UTF-8 text.
var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

// Loader resolves identifiers to FileRecords through the backing store.
type Loader struct {
	store  Store
	logger *zap.Logger
}

// NewLoader creates a Loader reading through the given store. Failures are
// reported to the logger, which acts as the diagnostic channel.
func NewLoader(store Store, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{store: store, logger: logger}
}

// Load resolves one identifier. It never fails: read errors and undecodable
// content produce a record carrying ReadErrorMarker, binary content produces
// a record carrying BinaryPlaceholder. One unreadable file must not prevent
// export of the rest.
func (l *Loader) Load(path string) FileRecord {
	data, err := l.store.Read(path)
	if err != nil {
		l.logger.Warn("Failed to read file",
			zap.String("path", path),
			zap.Error(err))
		return FileRecord{Path: path, Content: ReadErrorMarker, Err: err}
	}

	if hasNULPrefix(data) {
		return FileRecord{Path: path, Content: BinaryPlaceholder, Binary: true}
	}

	if !utf8.Valid(data) {
		l.logger.Warn("File content is not valid UTF-8",
			zap.String("path", path))
		return FileRecord{Path: path, Content: ReadErrorMarker, Err: ErrInvalidUTF8}
	}

	return FileRecord{Path: path, Content: string(data)}
}

// hasNULPrefix reports whether any of the first binarySniffLen bytes is NUL.
// A NUL past that prefix does not classify the content as binary.
func hasNULPrefix(data []byte) bool {
	sniff := data
	if len(sniff) > binarySniffLen {
		sniff = sniff[:binarySniffLen]
	}
	return bytes.IndexByte(sniff, 0) >= 0
}
