// Package filter decides which input paths are excluded from the tree.
package filter

import (
	"path"
	"strings"
)

const (
	pathSegmentSeparator = "/"
	globMetaCharacters   = "*?["
	shellNegatedClass    = "[!"
	matchNegatedClass    = "[^"
)

// Matcher evaluates exclusion patterns, with inclusion patterns overriding them.
type Matcher struct {
	exclusionPatterns []string
	inclusionPatterns []string
}

// NewMatcher builds a matcher from exclusion and inclusion pattern lists.
// Blank patterns are dropped.
func NewMatcher(exclusionPatterns []string, inclusionPatterns []string) *Matcher {
	return &Matcher{
		exclusionPatterns: compactPatterns(exclusionPatterns),
		inclusionPatterns: compactPatterns(inclusionPatterns),
	}
}

func compactPatterns(patterns []string) []string {
	result := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		trimmedPattern := strings.TrimSpace(pattern)
		if trimmedPattern == "" {
			continue
		}
		result = append(result, trimmedPattern)
	}
	return result
}

// IsExcluded reports whether candidate matches any exclusion pattern.
func (matcher *Matcher) IsExcluded(candidate string) bool {
	return matchesAny(candidate, matcher.exclusionPatterns)
}

// IsIncluded reports whether candidate matches any inclusion pattern.
func (matcher *Matcher) IsIncluded(candidate string) bool {
	return matchesAny(candidate, matcher.inclusionPatterns)
}

// Excluded reports whether candidate should be dropped: it matches an
// exclusion pattern and no inclusion pattern.
func (matcher *Matcher) Excluded(candidate string) bool {
	if matcher == nil {
		return false
	}
	return matcher.IsExcluded(candidate) && !matcher.IsIncluded(candidate)
}

func matchesAny(candidate string, patterns []string) bool {
	for _, pattern := range patterns {
		if Matches(candidate, pattern) {
			return true
		}
	}
	return false
}

// Matches evaluates a single pattern against a slash-separated path.
//
// Patterns containing any of "*", "?" or "[" are glob patterns with path.Match
// semantics. A glob pattern of N segments matches when it matches the whole
// path or any run of N consecutive path segments, so "*.tmp" matches
// "a/b/c.tmp" and "cache/*" matches "home/cache/file". Every other pattern,
// including glob patterns that fail to compile, is a plain substring test.
// Shell-style negated classes such as "[!x]" are accepted as "[^x]".
func Matches(candidate string, pattern string) bool {
	if !isGlobPattern(pattern) {
		return strings.Contains(candidate, pattern)
	}
	pattern = strings.ReplaceAll(pattern, shellNegatedClass, matchNegatedClass)
	if _, compileError := path.Match(pattern, ""); compileError != nil {
		return strings.Contains(candidate, pattern)
	}
	if isMatched, _ := path.Match(pattern, candidate); isMatched {
		return true
	}

	pathSegments := strings.Split(candidate, pathSegmentSeparator)
	patternSegments := strings.Split(strings.Trim(pattern, pathSegmentSeparator), pathSegmentSeparator)
	if len(patternSegments) > len(pathSegments) {
		return false
	}
	for windowStart := 0; windowStart+len(patternSegments) <= len(pathSegments); windowStart++ {
		if segmentsMatch(pathSegments[windowStart:windowStart+len(patternSegments)], patternSegments) {
			return true
		}
	}
	return false
}

func isGlobPattern(pattern string) bool {
	return strings.ContainsAny(pattern, globMetaCharacters)
}

// segmentsMatch reports whether each pattern segment matches the corresponding
// path segment using path.Match semantics.
func segmentsMatch(pathSegments, patternSegments []string) bool {
	for segmentIndex, patternSegment := range patternSegments {
		isMatched, matchError := path.Match(patternSegment, pathSegments[segmentIndex])
		if matchError != nil || !isMatched {
			return false
		}
	}
	return true
}
