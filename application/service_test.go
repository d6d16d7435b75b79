package application_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvnup/mvnup/application"
	"github.com/mvnup/mvnup/domain"
	testdoubles "github.com/mvnup/mvnup/test"
)

func defaultOptions() application.Options {
	return application.Options{
		ProcessDependencyManagement: true,
		ProcessDependencies:         true,
		Scope:                       domain.ScopeAny,
		Filter:                      domain.NewFilter("", nil, "", nil),
	}
}

func TestReportServiceRun(t *testing.T) {
	t.Parallel()

	t.Run("should report both sections with shadowed dependencies removed", func(t *testing.T) {
		t.Parallel()

		// given
		project := &testdoubles.StubDescriptor{
			Artifact: "demo",
			Direct: []domain.Dependency{
				{GroupID: "org.example", ArtifactID: "managed", Type: "jar", Version: "1.0"},
				{GroupID: "org.example", ArtifactID: "direct", Type: "jar", Version: "1.0"},
			},
			Management: []domain.Dependency{
				{GroupID: "org.example", ArtifactID: "managed", Type: "jar", Version: "1.0"},
			},
		}
		resolver := &testdoubles.StubResolver{Versions: map[string][]string{
			"org.example:managed:jar:": {"1.0", "1.2"},
			"org.example:direct:jar:":  {"1.0", "2.0"},
		}}
		service := application.NewReportService(resolver)
		var out bytes.Buffer

		// when
		err := service.Run(context.Background(), project, defaultOptions(), &out)

		// then
		require.NoError(t, err)
		report := out.String()
		assert.Contains(t, report, "Dependency Management have newer versions")
		assert.Contains(t, report, "org.example:managed")
		assert.Contains(t, report, "1.0 -> 1.2")
		assert.Contains(t, report, "Dependencies have newer versions")
		assert.Contains(t, report, "org.example:direct")
		assert.Contains(t, report, "1.0 -> 2.0")
		// the managed dependency is reported once, under Dependency Management
		assert.Equal(t, 1, strings.Count(report, "org.example:managed"))
		assert.Equal(t, 2, resolver.Calls)
	})

	t.Run("should skip disabled sections", func(t *testing.T) {
		t.Parallel()

		// given
		project := &testdoubles.StubDescriptor{
			Artifact: "demo",
			Direct: []domain.Dependency{
				{GroupID: "g", ArtifactID: "a", Type: "jar", Version: "1.0"},
			},
		}
		resolver := &testdoubles.StubResolver{Versions: map[string][]string{}}
		service := application.NewReportService(resolver)
		opts := defaultOptions()
		opts.ProcessDependencies = false
		var out bytes.Buffer

		// when
		err := service.Run(context.Background(), project, opts, &out)

		// then
		require.NoError(t, err)
		assert.NotContains(t, out.String(), "g:a")
		assert.Equal(t, 1, resolver.Calls)
	})

	t.Run("should abort the run on a metadata error", func(t *testing.T) {
		t.Parallel()

		// given
		project := &testdoubles.StubDescriptor{
			Artifact: "demo",
			Direct: []domain.Dependency{
				{GroupID: "g", ArtifactID: "a", Type: "jar", Version: "1.0"},
			},
		}
		metadataErr := &domain.MetadataError{
			Coordinate: domain.ArtifactCoordinate{GroupID: "g", ArtifactID: "a"},
			Err:        assert.AnError,
		}
		resolver := &testdoubles.StubResolver{Err: metadataErr}
		service := application.NewReportService(resolver)
		var out bytes.Buffer

		// when
		err := service.Run(context.Background(), project, defaultOptions(), &out)

		// then - no partial report is emitted
		var target *domain.MetadataError
		require.ErrorAs(t, err, &target)
		assert.Empty(t, out.String())
	})

	t.Run("should surface a configuration error from reconciliation", func(t *testing.T) {
		t.Parallel()

		// given - a versionless management entry and no parent
		project := &testdoubles.StubDescriptor{
			Artifact: "demo",
			Management: []domain.Dependency{
				{GroupID: "g", ArtifactID: "a", Type: "jar"},
			},
		}
		service := application.NewReportService(&testdoubles.StubResolver{})
		var out bytes.Buffer

		// when
		err := service.Run(context.Background(), project, defaultOptions(), &out)

		// then
		var configErr *domain.ConfigurationError
		require.ErrorAs(t, err, &configErr)
	})

	t.Run("should fail on an unparseable dependency version", func(t *testing.T) {
		t.Parallel()

		// given - a direct dependency with no version and no managing entry
		project := &testdoubles.StubDescriptor{
			Artifact: "demo",
			Direct: []domain.Dependency{
				{GroupID: "g", ArtifactID: "a", Type: "jar"},
			},
		}
		resolver := &testdoubles.StubResolver{Versions: map[string][]string{}}
		service := application.NewReportService(resolver)
		var out bytes.Buffer

		// when
		err := service.Run(context.Background(), project, defaultOptions(), &out)

		// then
		var invalidErr *domain.InvalidVersionError
		require.ErrorAs(t, err, &invalidErr)
	})

	t.Run("should classify a ranged dependency against the range form", func(t *testing.T) {
		t.Parallel()

		// given
		project := &testdoubles.StubDescriptor{
			Artifact: "demo",
			Direct: []domain.Dependency{
				{GroupID: "g", ArtifactID: "ranged", Type: "jar", Version: "[1.0,2.0)"},
			},
		}
		resolver := &testdoubles.StubResolver{Versions: map[string][]string{
			"g:ranged:jar:": {"1.0", "1.5", "2.1"},
		}}
		service := application.NewReportService(resolver)
		var out bytes.Buffer

		// when
		err := service.Run(context.Background(), project, defaultOptions(), &out)

		// then
		require.NoError(t, err)
		assert.Contains(t, out.String(), "[1.0,2.0) -> 2.1")
	})
}
