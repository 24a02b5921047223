package ignore

import (
	"regexp"
	"strings"
)

// Precompiled expressions used when translating pattern lines to regexes.
var (
	doubleStarMiddle   = regexp.MustCompile(`/\*\*/`)
	doubleStarTrailing = regexp.MustCompile(`/\*\*$`)
	doubleStarLeading  = regexp.MustCompile(`^\*\*/`)
	singleStar         = regexp.MustCompile(`\*`)
	directoryEnd       = regexp.MustCompile(`/$`)
	rootRelative       = regexp.MustCompile(`^/`)
)

// escapeSpecialChars escapes regex metacharacters except '*', '?' and '/',
// which carry wildcard meaning in ignore patterns.
func escapeSpecialChars(pattern string) string {
	const special = `.+()|^$[]{}`
	for _, ch := range special {
		pattern = strings.ReplaceAll(pattern, string(ch), `\`+string(ch))
	}
	return pattern
}

// expandDoubleStars replaces '**' segments with their regex equivalents:
// any directory depth in the middle, anything below when trailing, any
// leading prefix when leading.
func expandDoubleStars(pattern string) string {
	pattern = doubleStarMiddle.ReplaceAllString(pattern, `(/|/.+/)`)
	pattern = doubleStarTrailing.ReplaceAllString(pattern, `(/.*)?`)
	pattern = doubleStarLeading.ReplaceAllString(pattern, `(.*/)?`)
	return pattern
}

// wildcardToRegex converts the remaining '*' and '?' wildcards.
func wildcardToRegex(pattern string) string {
	pattern = singleStar.ReplaceAllString(pattern, `[^/]*`)
	return strings.ReplaceAll(pattern, "?", ".")
}

// anchorPattern anchors the expression so it matches whole path segments.
// A trailing slash restricts the pattern to directories; a leading slash
// pins it to the project root instead of matching at any depth.
func anchorPattern(pattern, original string) string {
	if directoryEnd.MatchString(original) {
		pattern = strings.TrimSuffix(pattern, "/") + "(/.*)?$"
	} else {
		pattern += "(|/.*)?$"
	}

	if rootRelative.MatchString(original) {
		return "^" + strings.TrimPrefix(pattern, "/")
	}
	return "^(|.*/)" + pattern
}
