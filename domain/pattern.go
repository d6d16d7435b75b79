package domain

import (
	"path"
	"strings"
)

const (
	rangeOpeners = "[("
	rangeClosers = "])"
)

// SplitPatterns splits a comma-separated list of artifact patterns without
// breaking apart version-range expressions that themselves contain commas,
// e.g. "g:a:jar:*:[1.0,2.2),g2:a2". Whitespace is not trimmed.
func SplitPatterns(raw string) []string {
	if raw == "" {
		return nil
	}
	var patterns []string
	for {
		idx := nextCommaIndex(raw)
		if idx < 0 {
			break
		}
		patterns = append(patterns, raw[:idx])
		raw = raw[idx+1:]
	}
	return append(patterns, raw)
}

// nextCommaIndex locates the next comma that acts as a separator. A comma
// sitting between a range opener and its closer belongs to the version range
// and is skipped. Iterative with an accumulated offset so adversarial inputs
// cannot grow the stack. A missing closer means the remainder has no more
// top-level commas.
func nextCommaIndex(s string) int {
	offset := 0
	for {
		rest := s[offset:]
		comma := strings.IndexByte(rest, ',')
		open := strings.IndexAny(rest, rangeOpeners)
		if open < 0 || (comma >= 0 && comma < open) {
			if comma < 0 {
				return -1
			}
			return offset + comma
		}
		stop := strings.IndexAny(rest, rangeClosers)
		if stop < 0 {
			return -1
		}
		offset += stop + 1
	}
}

// Pattern matches artifact coordinates against a
// groupId:artifactId:type:classifier:version template. Each segment is a glob;
// missing trailing segments match anything. A version segment written as a
// range matches by containment.
type Pattern struct {
	raw      string
	segments []string
}

// CompilePattern builds a pattern from its string form.
func CompilePattern(raw string) Pattern {
	return Pattern{raw: raw, segments: strings.Split(raw, ":")}
}

func (p Pattern) String() string { return p.raw }

// Matches reports whether the coordinate satisfies every present segment.
func (p Pattern) Matches(c ArtifactCoordinate) bool {
	parts := []string{c.GroupID, c.ArtifactID, c.Type, c.Classifier, c.Version}
	for i, segment := range p.segments {
		if i >= len(parts) {
			break
		}
		if !matchSegment(segment, parts[i], i == len(parts)-1) {
			return false
		}
	}
	return true
}

func matchSegment(segment, value string, isVersion bool) bool {
	if segment == "" || segment == "*" {
		return true
	}
	if isVersion && strings.ContainsAny(segment, rangeOpeners) {
		r, err := ParseRange(segment)
		if err != nil {
			// Malformed ranges degrade to literal comparison.
			return segment == value
		}
		return r.Contains(value)
	}
	ok, err := path.Match(segment, value)
	if err != nil {
		return segment == value
	}
	return ok
}

// Filter composes optional include and exclude pattern sets. With includes
// present a coordinate must match at least one of them; an exclude match then
// drops it regardless. Absence of both means include everything.
type Filter struct {
	includes []Pattern
	excludes []Pattern
}

// NewFilter compiles the filter once from immutable configuration. For each
// direction the single comma-delimited string form, when present, wins over
// the explicit list form.
func NewFilter(includesList string, includes []string, excludesList string, excludes []string) *Filter {
	return &Filter{
		includes: compilePatterns(includesList, includes),
		excludes: compilePatterns(excludesList, excludes),
	}
}

func compilePatterns(list string, explicit []string) []Pattern {
	raws := explicit
	if list != "" {
		raws = SplitPatterns(list)
	}
	patterns := make([]Pattern, 0, len(raws))
	for _, raw := range raws {
		patterns = append(patterns, CompilePattern(raw))
	}
	return patterns
}

// Included decides whether the coordinate should be processed.
func (f *Filter) Included(c ArtifactCoordinate) bool {
	if f == nil {
		return true
	}
	if len(f.includes) > 0 {
		matched := false
		for _, p := range f.includes {
			if p.Matches(c) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	for _, p := range f.excludes {
		if p.Matches(c) {
			return false
		}
	}
	return true
}
