package domain

import (
	"sort"
	"strings"
)

// ArtifactCoordinate identifies a Maven artifact. Identity for matching and
// shadowing checks is (GroupID, ArtifactID, Type, Classifier); Version joins
// the tuple only for canonical set ordering.
type ArtifactCoordinate struct {
	GroupID    string
	ArtifactID string
	Type       string
	Classifier string
	Version    string // fixed version or range expression; empty means inherited
}

// Key returns the versionless groupId:artifactId label used in reports.
func (c ArtifactCoordinate) Key() string {
	return c.GroupID + ":" + c.ArtifactID
}

// Dependency is a declared dependency or dependency-management entry as read
// from the project descriptor. An empty Version signals "inherit from parent".
type Dependency struct {
	GroupID    string
	ArtifactID string
	Type       string
	Classifier string
	Version    string
	Scope      string
}

// Coordinate returns the artifact coordinate of the dependency.
func (d Dependency) Coordinate() ArtifactCoordinate {
	return ArtifactCoordinate{
		GroupID:    d.GroupID,
		ArtifactID: d.ArtifactID,
		Type:       d.Type,
		Classifier: d.Classifier,
		Version:    d.Version,
	}
}

// CoordinateKey returns the versionless identity key used to join lookup
// results back to their dependency.
func (d Dependency) CoordinateKey() string {
	return d.GroupID + ":" + d.ArtifactID + ":" + d.Type + ":" + d.Classifier
}

// identityCompare defines the canonical ordering over dependency entries.
// Insertion order is irrelevant; the identity tuple is the order.
func identityCompare(a, b Dependency) int {
	for _, pair := range [][2]string{
		{a.GroupID, b.GroupID},
		{a.ArtifactID, b.ArtifactID},
		{a.Type, b.Type},
		{a.Classifier, b.Classifier},
		{a.Version, b.Version},
	} {
		if c := strings.Compare(pair[0], pair[1]); c != 0 {
			return c
		}
	}
	return 0
}

// DependencySet is an ordered, de-duplicated collection of dependencies keyed
// by the (groupId, artifactId, type, classifier, version) tuple.
type DependencySet struct {
	entries []Dependency
}

// NewDependencySet creates an empty set.
func NewDependencySet() *DependencySet {
	return &DependencySet{}
}

// Add inserts the dependency in canonical order, ignoring exact duplicates.
func (s *DependencySet) Add(d Dependency) {
	i := sort.Search(len(s.entries), func(i int) bool {
		return identityCompare(s.entries[i], d) >= 0
	})
	if i < len(s.entries) && identityCompare(s.entries[i], d) == 0 {
		return
	}
	s.entries = append(s.entries, Dependency{})
	copy(s.entries[i+1:], s.entries[i:])
	s.entries[i] = d
}

// All returns the entries in canonical order.
func (s *DependencySet) All() []Dependency {
	return s.entries
}

// Len returns the number of entries.
func (s *DependencySet) Len() int {
	return len(s.entries)
}

// ClassificationResult is the outcome of an update lookup for one dependency.
// An empty Latest means no qualifying newer version was found, including the
// case where the only newer-looking candidate is still inside the current
// range.
type ClassificationResult struct {
	Coordinate ArtifactCoordinate
	Current    string
	Latest     string
}

// HasUpdate reports whether a real update was found.
func (r ClassificationResult) HasUpdate() bool {
	return r.Latest != ""
}
