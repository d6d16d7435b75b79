package domain

import "fmt"

// UpdateScope bounds how far an update lookup may reach from the current
// version. Each scope except Any holds the segments above its level fixed:
// Minor allows a newer minor within the same major, Major requires a major
// bump, and so on.
type UpdateScope int

const (
	ScopeAny UpdateScope = iota
	ScopeMajor
	ScopeMinor
	ScopeIncremental
	ScopeSubincremental
)

var scopeNames = map[UpdateScope]string{
	ScopeAny:            "any",
	ScopeMajor:          "major",
	ScopeMinor:          "minor",
	ScopeIncremental:    "incremental",
	ScopeSubincremental: "subincremental",
}

func (s UpdateScope) String() string {
	if name, ok := scopeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("UpdateScope(%d)", int(s))
}

// ParseScope resolves a scope name from configuration or the command line.
func ParseScope(name string) (UpdateScope, error) {
	for scope, n := range scopeNames {
		if n == name {
			return scope, nil
		}
	}
	return ScopeAny, fmt.Errorf("unknown update scope %q", name)
}

// Allows reports whether candidate is an eligible update from current under
// this scope. Candidates that do not sort above the current version are never
// eligible. When either version cannot be decomposed into segments only
// ScopeAny can reach it.
func (s UpdateScope) Allows(current, candidate string) bool {
	if Compare(candidate, current) <= 0 {
		return false
	}
	if s == ScopeAny {
		return true
	}
	cur, errCur := parseVersion(current)
	cand, errCand := parseVersion(candidate)
	if errCur != nil || errCand != nil {
		return false
	}
	switch s {
	case ScopeMajor:
		return cand.Major() > cur.Major()
	case ScopeMinor:
		return cand.Major() == cur.Major() && cand.Minor() > cur.Minor()
	case ScopeIncremental:
		return cand.Major() == cur.Major() && cand.Minor() == cur.Minor() &&
			cand.Patch() > cur.Patch()
	case ScopeSubincremental:
		return cand.Major() == cur.Major() && cand.Minor() == cur.Minor() &&
			cand.Patch() == cur.Patch()
	default:
		return false
	}
}
