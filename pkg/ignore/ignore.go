// Package ignore compiles gitignore-style pattern files (.ctxpackignore)
// into path matchers used by the file lister.
package ignore

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Matcher reports whether a project-relative path is excluded.
type Matcher interface {
	MatchesPath(path string) bool
}

// Pattern encapsulates a compiled pattern line, its negation flag, and
// metadata about its origin.
type Pattern struct {
	Pattern *regexp.Regexp // Compiled regular expression for the line.
	Negate  bool           // The line started with '!'.
	Line    string         // Original pattern line.
	LineNo  int            // 1-based line number in the source.
}

// Ignore is an ordered collection of ignore patterns. Later patterns
// override earlier ones, so a negation can re-include a previously
// excluded path.
type Ignore struct {
	patterns []*Pattern
	logger   *zap.Logger
}

// New initializes an empty Ignore with an optional logger.
func New(logger *zap.Logger) *Ignore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ignore{logger: logger}
}

// CompileLines compiles pattern lines and appends them to the collection.
// Empty lines and comments are skipped.
func (gi *Ignore) CompileLines(lines ...string) {
	for _, line := range lines {
		lineNo := len(gi.patterns) + 1
		compiled, negate := parsePatternLine(line, lineNo, gi.logger)
		if compiled == nil {
			continue
		}
		gi.patterns = append(gi.patterns, &Pattern{
			Pattern: compiled,
			Negate:  negate,
			Line:    line,
			LineNo:  lineNo,
		})
	}
}

// CompileFile reads an ignore file and compiles its lines. A missing file
// is not an error.
func (gi *Ignore) CompileFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			gi.logger.Debug("Ignore file does not exist and will be skipped",
				zap.String("path", path))
			return nil
		}
		gi.logger.Warn("Failed to read ignore file",
			zap.String("path", path), zap.Error(err))
		return err
	}

	gi.CompileLines(strings.Split(string(content), "\n")...)
	gi.logger.Debug("Loaded ignore file",
		zap.String("path", path),
		zap.Int("totalPatterns", len(gi.patterns)))
	return nil
}

// Len returns the number of compiled patterns.
func (gi *Ignore) Len() int {
	return len(gi.patterns)
}

// MatchesPath reports whether the path matches the compiled patterns,
// honoring negations in order.
func (gi *Ignore) MatchesPath(path string) bool {
	matched, _ := gi.MatchesPathWithPattern(path)
	return matched
}

// MatchesPathWithPattern additionally returns the last pattern that decided
// the outcome, for diagnostics.
func (gi *Ignore) MatchesPathWithPattern(path string) (bool, *Pattern) {
	normalized := filepath.ToSlash(path)

	matched := false
	var decided *Pattern
	for _, p := range gi.patterns {
		if !p.Pattern.MatchString(normalized) {
			continue
		}
		matched = !p.Negate
		decided = p
	}
	return matched, decided
}

// parsePatternLine converts one pattern line into a compiled regular
// expression and a negation flag. Returns nil for comments and blanks.
func parsePatternLine(line string, lineNo int, logger *zap.Logger) (*regexp.Regexp, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, false
	}

	negate := false
	if strings.HasPrefix(trimmed, "!") {
		negate = true
		trimmed = strings.TrimPrefix(trimmed, "!")
	}

	expr := escapeSpecialChars(trimmed)
	expr = expandDoubleStars(expr)
	expr = wildcardToRegex(expr)
	expr = anchorPattern(expr, trimmed)

	compiled, err := regexp.Compile("^" + expr)
	if err != nil {
		logger.Warn("Invalid ignore pattern",
			zap.String("pattern", trimmed),
			zap.Int("lineNo", lineNo),
			zap.Error(err))
		return nil, false
	}
	return compiled, negate
}
