package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mvnup/mvnup/domain"
)

func TestSplitPatterns(t *testing.T) {
	t.Parallel()

	t.Run("should split a plain comma separated list", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "a,b,c"

		// when
		patterns := domain.SplitPatterns(raw)

		// then
		assert.Equal(t, []string{"a", "b", "c"}, patterns)
	})

	t.Run("should be the inverse of joining when no ranges are present", func(t *testing.T) {
		t.Parallel()

		// given
		patterns := []string{"g:a:jar", "g2:a2", "g3:*"}

		// when
		split := domain.SplitPatterns(strings.Join(patterns, ","))

		// then
		assert.Equal(t, patterns, split)
	})

	t.Run("should not split on a comma inside a version range", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "g:a:jar:*:[1.0,2.0),g2:a2:jar:*:3.0"

		// when
		patterns := domain.SplitPatterns(raw)

		// then
		assert.Equal(t, []string{"g:a:jar:*:[1.0,2.0)", "g2:a2:jar:*:3.0"}, patterns)
	})

	t.Run("should handle multiple ranges in one list", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "g:a:jar:*:[1.0,2.0),g2:a2:jar:*:(1.1,2.2],g3:a3"

		// when
		patterns := domain.SplitPatterns(raw)

		// then
		assert.Equal(t, []string{
			"g:a:jar:*:[1.0,2.0)",
			"g2:a2:jar:*:(1.1,2.2]",
			"g3:a3",
		}, patterns)
	})

	t.Run("should return an empty sequence for empty input", func(t *testing.T) {
		t.Parallel()

		// when
		patterns := domain.SplitPatterns("")

		// then
		assert.Empty(t, patterns)
	})

	t.Run("should treat an unbalanced range as one literal pattern", func(t *testing.T) {
		t.Parallel()

		// given - the opener has no closer, so the rest of the string is one pattern
		raw := "g:a:jar:*:[1.0,2.0,g2:a2"

		// when
		patterns := domain.SplitPatterns(raw)

		// then
		assert.Equal(t, []string{"g:a:jar:*:[1.0,2.0,g2:a2"}, patterns)
	})

	t.Run("should return a single pattern when there is no separator", func(t *testing.T) {
		t.Parallel()

		// when
		patterns := domain.SplitPatterns("g:a:jar")

		// then
		assert.Equal(t, []string{"g:a:jar"}, patterns)
	})
}

func TestPatternMatches(t *testing.T) {
	t.Parallel()

	coordinate := domain.ArtifactCoordinate{
		GroupID:    "org.example",
		ArtifactID: "widget",
		Type:       "jar",
		Classifier: "",
		Version:    "1.5",
	}

	t.Run("should match with wildcards in every segment", func(t *testing.T) {
		t.Parallel()

		// given
		pattern := domain.CompilePattern("*:*:*:*:*")

		// then
		assert.True(t, pattern.Matches(coordinate))
	})

	t.Run("should match missing trailing segments as anything", func(t *testing.T) {
		t.Parallel()

		// given
		pattern := domain.CompilePattern("org.example:widget")

		// then
		assert.True(t, pattern.Matches(coordinate))
	})

	t.Run("should match glob prefixes", func(t *testing.T) {
		t.Parallel()

		// given
		pattern := domain.CompilePattern("org.*:wid*")

		// then
		assert.True(t, pattern.Matches(coordinate))
	})

	t.Run("should match a range version segment by containment", func(t *testing.T) {
		t.Parallel()

		// given
		inside := domain.CompilePattern("org.example:widget:jar:*:[1.0,2.0)")
		outside := domain.CompilePattern("org.example:widget:jar:*:[2.0,3.0)")

		// then
		assert.True(t, inside.Matches(coordinate))
		assert.False(t, outside.Matches(coordinate))
	})

	t.Run("should reject a different groupId", func(t *testing.T) {
		t.Parallel()

		// given
		pattern := domain.CompilePattern("com.other:widget")

		// then
		assert.False(t, pattern.Matches(coordinate))
	})
}

func TestFilter(t *testing.T) {
	t.Parallel()

	coordinate := domain.ArtifactCoordinate{
		GroupID:    "org.example",
		ArtifactID: "widget",
		Type:       "jar",
		Version:    "1.0",
	}

	t.Run("should include everything when no filters exist", func(t *testing.T) {
		t.Parallel()

		// given
		filter := domain.NewFilter("", nil, "", nil)

		// then
		assert.True(t, filter.Included(coordinate))
	})

	t.Run("should exclude coordinates not matching any include pattern", func(t *testing.T) {
		t.Parallel()

		// given
		filter := domain.NewFilter("com.other:*", nil, "", nil)

		// then
		assert.False(t, filter.Included(coordinate))
	})

	t.Run("should drop an included coordinate that also matches an exclude", func(t *testing.T) {
		t.Parallel()

		// given
		filter := domain.NewFilter("org.example:*", nil, "org.example:widget", nil)

		// then
		assert.False(t, filter.Included(coordinate))
	})

	t.Run("should prefer the delimited string over the explicit list", func(t *testing.T) {
		t.Parallel()

		// given - the list alone would include the coordinate
		filter := domain.NewFilter("com.other:*", []string{"org.example:*"}, "", nil)

		// then
		assert.False(t, filter.Included(coordinate))
	})

	t.Run("should fall back to the explicit list when the string is absent", func(t *testing.T) {
		t.Parallel()

		// given
		filter := domain.NewFilter("", []string{"org.example:*"}, "", nil)

		// then
		assert.True(t, filter.Included(coordinate))
	})

	t.Run("should include everything for a nil filter", func(t *testing.T) {
		t.Parallel()

		// given
		var filter *domain.Filter

		// then
		assert.True(t, filter.Included(coordinate))
	})
}
