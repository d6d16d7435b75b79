package domain

import "context"

// RemoteRepository identifies a repository consulted for version metadata.
type RemoteRepository struct {
	ID  string
	URL string
}

// VersionResolver supplies the set of known versions per coordinate. It is
// the only collaborator that talks to the network; a failure for any
// coordinate fails the whole call.
type VersionResolver interface {
	// LookupVersions returns, for every entry of deps keyed by
	// Dependency.CoordinateKey, the list of known versions in ascending
	// order. includeSubScopes widens the lookup to sub-scoped artifacts;
	// the update report always passes false.
	LookupVersions(ctx context.Context, deps *DependencySet, includeSubScopes bool) (map[string][]string, error)
}
