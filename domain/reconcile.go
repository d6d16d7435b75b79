package domain

import (
	logger "github.com/sirupsen/logrus"
)

// Reconcile resolves dependency-management versions through the parent chain,
// applies the include/exclude filter to both sets, and removes direct
// dependencies already governed by a management entry. It returns the
// management set and the dependency set to report on.
func Reconcile(
	direct, management, parentManagement []Dependency,
	hasParent bool,
	processManagement bool,
	filter *Filter,
) (*DependencySet, *DependencySet, error) {
	mgmt := NewDependencySet()
	for _, entry := range management {
		if !filter.Included(entry.Coordinate()) {
			continue
		}
		logger.Debugf("dependency from pom: %s:%s:%s", entry.GroupID, entry.ArtifactID, entry.Version)
		if entry.Version == "" {
			if !hasParent {
				return nil, nil, &ConfigurationError{Coordinate: entry.Coordinate()}
			}
			logger.Debug("reading parent dependencyManagement information")
			// Version is absent, so only groupId, artifactId and type identify
			// the parent entry. No match means no constraint.
			for _, parentEntry := range parentManagement {
				if parentEntry.GroupID == entry.GroupID &&
					parentEntry.ArtifactID == entry.ArtifactID &&
					parentEntry.Type == entry.Type {
					entry.Version = parentEntry.Version
					mgmt.Add(entry)
					break
				}
			}
			continue
		}
		mgmt.Add(entry)
	}

	deps := NewDependencySet()
	for _, dep := range direct {
		if !filter.Included(dep.Coordinate()) {
			continue
		}
		deps.Add(dep)
	}

	if processManagement {
		deps = removeManaged(deps, mgmt)
	}
	return mgmt, deps, nil
}

// removeManaged drops dependencies shadowed by a management entry so each is
// reported only once, under "Dependency Management".
func removeManaged(deps, mgmt *DependencySet) *DependencySet {
	result := NewDependencySet()
	for _, dep := range deps.All() {
		if !shadowed(dep, mgmt) {
			result.Add(dep)
		}
	}
	return result
}

// shadowed scans the management set in canonical order; the first match wins.
// Only the management side's absent scope and classifier act as wildcards;
// absence on the dependency side is deliberately not symmetric, because
// management entries omitting those fields are meant to apply broadly.
func shadowed(dep Dependency, mgmt *DependencySet) bool {
	for _, entry := range mgmt.All() {
		if entry.GroupID == dep.GroupID &&
			entry.ArtifactID == dep.ArtifactID &&
			(entry.Scope == "" || entry.Scope == dep.Scope) &&
			(entry.Classifier == "" || entry.Classifier == dep.Classifier) &&
			(dep.Version == "" || entry.Version == "" || entry.Version == dep.Version) {
			return true
		}
	}
	return false
}
