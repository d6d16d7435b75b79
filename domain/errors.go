package domain

import "fmt"

// ConfigurationError reports a dependency-management entry whose version
// cannot be determined because the project has no parent to inherit from.
type ConfigurationError struct {
	Coordinate ArtifactCoordinate
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf(
		"cannot determine the version for dependency %s: there is no parent to inherit from",
		e.Coordinate.Key(),
	)
}

// InvalidVersionError reports a version or range string that cannot be parsed
// when building an artifact identity.
type InvalidVersionError struct {
	Raw string
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid version specification %q", e.Raw)
}

// MetadataError reports a failure to retrieve version metadata for a
// coordinate. It aborts the whole lookup; no partial report is emitted.
type MetadataError struct {
	Coordinate ArtifactCoordinate
	Err        error
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("failed to retrieve metadata for %s: %v", e.Coordinate.Key(), e.Err)
}

func (e *MetadataError) Unwrap() error { return e.Err }
