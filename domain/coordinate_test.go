package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mvnup/mvnup/domain"
)

func TestDependencySet(t *testing.T) {
	t.Parallel()

	t.Run("should keep entries in canonical identity order", func(t *testing.T) {
		t.Parallel()

		// given
		set := domain.NewDependencySet()
		set.Add(domain.Dependency{GroupID: "z.org", ArtifactID: "a", Type: "jar", Version: "1.0"})
		set.Add(domain.Dependency{GroupID: "a.org", ArtifactID: "b", Type: "jar", Version: "1.0"})
		set.Add(domain.Dependency{GroupID: "a.org", ArtifactID: "a", Type: "jar", Version: "2.0"})
		set.Add(domain.Dependency{GroupID: "a.org", ArtifactID: "a", Type: "jar", Version: "1.0"})

		// when
		entries := set.All()

		// then - insertion order is irrelevant, identity order is canonical
		assert.Equal(t, 4, set.Len())
		assert.Equal(t, "a.org", entries[0].GroupID)
		assert.Equal(t, "a", entries[0].ArtifactID)
		assert.Equal(t, "1.0", entries[0].Version)
		assert.Equal(t, "2.0", entries[1].Version)
		assert.Equal(t, "b", entries[2].ArtifactID)
		assert.Equal(t, "z.org", entries[3].GroupID)
	})

	t.Run("should drop exact duplicates", func(t *testing.T) {
		t.Parallel()

		// given
		set := domain.NewDependencySet()
		entry := domain.Dependency{GroupID: "g", ArtifactID: "a", Type: "jar", Version: "1.0"}

		// when
		set.Add(entry)
		set.Add(entry)

		// then
		assert.Equal(t, 1, set.Len())
	})

	t.Run("should keep entries differing only by classifier", func(t *testing.T) {
		t.Parallel()

		// given
		set := domain.NewDependencySet()
		set.Add(domain.Dependency{GroupID: "g", ArtifactID: "a", Type: "jar", Version: "1.0"})
		set.Add(domain.Dependency{GroupID: "g", ArtifactID: "a", Type: "jar", Classifier: "sources", Version: "1.0"})

		// then
		assert.Equal(t, 2, set.Len())
	})
}

func TestCoordinateKeys(t *testing.T) {
	t.Parallel()

	t.Run("should build the versionless report label", func(t *testing.T) {
		t.Parallel()

		// given
		coordinate := domain.ArtifactCoordinate{GroupID: "org.example", ArtifactID: "widget", Version: "1.0"}

		// then
		assert.Equal(t, "org.example:widget", coordinate.Key())
	})

	t.Run("should exclude the version from the lookup key", func(t *testing.T) {
		t.Parallel()

		// given
		a := domain.Dependency{GroupID: "g", ArtifactID: "a", Type: "jar", Version: "1.0"}
		b := domain.Dependency{GroupID: "g", ArtifactID: "a", Type: "jar", Version: "2.0"}

		// then
		assert.Equal(t, a.CoordinateKey(), b.CoordinateKey())
	})
}

func TestClassificationResult(t *testing.T) {
	t.Parallel()

	t.Run("should report an update only when latest is present", func(t *testing.T) {
		t.Parallel()

		assert.True(t, domain.ClassificationResult{Current: "1.0", Latest: "2.0"}.HasUpdate())
		assert.False(t, domain.ClassificationResult{Current: "1.0"}.HasUpdate())
	})
}
