package domain

// ProjectDescriptor exposes the parts of a project model the update report
// needs. Implementations own descriptor loading and inheritance mechanics;
// the report logic only reads.
type ProjectDescriptor interface {
	// ArtifactID returns the project's artifactId, shown in section headers.
	ArtifactID() string

	// Dependencies returns the project's direct dependencies.
	Dependencies() []Dependency

	// DependencyManagement returns the dependencyManagement entries, or nil
	// when the section is absent.
	DependencyManagement() []Dependency

	// HasParent reports whether the project declares a parent.
	HasParent() bool

	// ParentDependencyManagement returns the parent's dependencyManagement
	// entries, or nil when there is no parent or the parent declares none.
	ParentDependencyManagement() []Dependency

	// Repositories returns the remote repositories declared by the project.
	Repositories() []RemoteRepository
}
