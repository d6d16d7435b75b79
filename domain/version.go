package domain

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Compare orders two Maven version strings. When both parse as (lenient)
// semantic versions the semver order applies; the prerelease ordering places
// alpha < beta < milestone < rc < snapshot < release, which matches the usual
// Maven qualifiers. Unparseable versions fall back to lexical order so the
// ordering stays total.
func Compare(a, b string) int {
	va, errA := parseVersion(a)
	vb, errB := parseVersion(b)
	if errA == nil && errB == nil {
		return va.Compare(vb)
	}
	return strings.Compare(a, b)
}

func parseVersion(raw string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(raw), "v"))
}

// IsSnapshot reports whether the version is a Maven snapshot.
func IsSnapshot(version string) bool {
	return strings.HasSuffix(version, "-SNAPSHOT")
}

// Current is the tagged current-state of a dependency: either a fixed version
// or a version range. Classification branches explicitly on the variant.
type Current interface {
	String() string
	isCurrent()
}

// Fixed is a single pinned version.
type Fixed string

func (f Fixed) String() string { return string(f) }

func (Fixed) isCurrent() {}

// Range is a Maven version-range expression, possibly a union of several
// restrictions, e.g. "[1.0,2.0)" or "[1.0,1.5],[2.0,)".
type Range struct {
	raw          string
	restrictions []restriction
}

func (r Range) String() string { return r.raw }

func (Range) isCurrent() {}

// restriction is one bounded interval of a range. Empty bounds are unbounded.
type restriction struct {
	lower          string
	upper          string
	lowerInclusive bool
	upperInclusive bool
}

func (r restriction) contains(version string) bool {
	if r.lower != "" {
		c := Compare(version, r.lower)
		if c < 0 || (c == 0 && !r.lowerInclusive) {
			return false
		}
	}
	if r.upper != "" {
		c := Compare(version, r.upper)
		if c > 0 || (c == 0 && !r.upperInclusive) {
			return false
		}
	}
	return true
}

// Contains reports whether the version satisfies any restriction of the range.
func (r Range) Contains(version string) bool {
	for _, res := range r.restrictions {
		if res.contains(version) {
			return true
		}
	}
	return false
}

// ParseCurrent builds the tagged variant for a dependency's declared version.
// Strings carrying range delimiters parse as ranges; everything else is a
// fixed version. An empty string cannot form an artifact identity.
func ParseCurrent(raw string) (Current, error) {
	if raw == "" {
		return nil, &InvalidVersionError{Raw: raw}
	}
	if strings.ContainsAny(raw, "[(") {
		return ParseRange(raw)
	}
	return Fixed(raw), nil
}

// ParseRange parses a Maven version-range expression.
func ParseRange(raw string) (Range, error) {
	rest := raw
	var restrictions []restriction
	for rest != "" {
		if rest[0] == ',' || rest[0] == ' ' {
			rest = rest[1:]
			continue
		}
		open := rest[0]
		if open != '[' && open != '(' {
			return Range{}, &InvalidVersionError{Raw: raw}
		}
		end := strings.IndexAny(rest, "])")
		if end < 0 {
			return Range{}, &InvalidVersionError{Raw: raw}
		}
		res := restriction{
			lowerInclusive: open == '[',
			upperInclusive: rest[end] == ']',
		}
		body := rest[1:end]
		if comma := strings.Index(body, ","); comma >= 0 {
			res.lower = strings.TrimSpace(body[:comma])
			res.upper = strings.TrimSpace(body[comma+1:])
		} else {
			exact := strings.TrimSpace(body)
			if exact == "" {
				return Range{}, &InvalidVersionError{Raw: raw}
			}
			res.lower, res.upper = exact, exact
		}
		restrictions = append(restrictions, res)
		rest = rest[end+1:]
	}
	if len(restrictions) == 0 {
		return Range{}, &InvalidVersionError{Raw: raw}
	}
	return Range{raw: raw, restrictions: restrictions}, nil
}
