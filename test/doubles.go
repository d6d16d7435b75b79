// Package test provides shared test doubles for the report collaborators.
package test

import (
	"context"

	"github.com/mvnup/mvnup/domain"
)

// StubResolver implements domain.VersionResolver with canned version lists
// keyed by Dependency.CoordinateKey. When Err is set every call fails with it.
type StubResolver struct {
	Versions map[string][]string
	Err      error
	Calls    int
}

func (s *StubResolver) LookupVersions(
	_ context.Context,
	deps *domain.DependencySet,
	_ bool,
) (map[string][]string, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	results := make(map[string][]string, deps.Len())
	for _, dep := range deps.All() {
		results[dep.CoordinateKey()] = s.Versions[dep.CoordinateKey()]
	}
	return results, nil
}

// StubDescriptor implements domain.ProjectDescriptor from plain fields.
type StubDescriptor struct {
	Artifact         string
	Direct           []domain.Dependency
	Management       []domain.Dependency
	ParentManagement []domain.Dependency
	Parent           bool
	Repos            []domain.RemoteRepository
}

func (s *StubDescriptor) ArtifactID() string                        { return s.Artifact }
func (s *StubDescriptor) Dependencies() []domain.Dependency         { return s.Direct }
func (s *StubDescriptor) DependencyManagement() []domain.Dependency { return s.Management }
func (s *StubDescriptor) HasParent() bool                           { return s.Parent }

func (s *StubDescriptor) ParentDependencyManagement() []domain.Dependency {
	return s.ParentManagement
}

func (s *StubDescriptor) Repositories() []domain.RemoteRepository { return s.Repos }
