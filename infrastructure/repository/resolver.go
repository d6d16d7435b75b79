package repository

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	logger "github.com/sirupsen/logrus"

	"github.com/mvnup/mvnup/domain"
)

const metadataRetryMax = 3

// Resolver fetches maven-metadata.xml from the registered repositories and
// merges the version lists per coordinate. Implements domain.VersionResolver.
// Transport retries live here; callers treat a failure as fatal.
type Resolver struct {
	registry *Registry
	client   *retryablehttp.Client
}

// NewResolver creates a resolver over the given registry.
func NewResolver(registry *Registry) *Resolver {
	client := retryablehttp.NewClient()
	client.RetryMax = metadataRetryMax
	client.Logger = nil // logrus carries the diagnostics
	return &Resolver{registry: registry, client: client}
}

// metadata mirrors the versioning section of maven-metadata.xml.
type metadata struct {
	XMLName  xml.Name `xml:"metadata"`
	Versions []string `xml:"versioning>versions>version"`
}

// LookupVersions resolves every dependency in deps against all registered
// repositories. The first repository-level failure aborts the whole call.
func (r *Resolver) LookupVersions(
	ctx context.Context,
	deps *domain.DependencySet,
	includeSubScopes bool,
) (map[string][]string, error) {
	_ = includeSubScopes // the update report never widens the lookup

	results := make(map[string][]string, deps.Len())
	for _, dep := range deps.All() {
		versions, err := r.lookupCoordinate(ctx, dep)
		if err != nil {
			return nil, &domain.MetadataError{Coordinate: dep.Coordinate(), Err: err}
		}
		results[dep.CoordinateKey()] = versions
	}
	return results, nil
}

func (r *Resolver) lookupCoordinate(ctx context.Context, dep domain.Dependency) ([]string, error) {
	seen := make(map[string]bool)
	var versions []string
	for _, repo := range r.registry.All() {
		list, err := r.fetchMetadata(ctx, repo, dep)
		if err != nil {
			return nil, err
		}
		for _, v := range list {
			if !seen[v] {
				seen[v] = true
				versions = append(versions, v)
			}
		}
	}
	sort.Slice(versions, func(i, j int) bool {
		return domain.Compare(versions[i], versions[j]) < 0
	})
	return versions, nil
}

// fetchMetadata retrieves the version list for a coordinate from one
// repository. A 404 means the repository does not host the artifact, which is
// not an error.
func (r *Resolver) fetchMetadata(
	ctx context.Context,
	repo domain.RemoteRepository,
	dep domain.Dependency,
) ([]string, error) {
	url := fmt.Sprintf(
		"%s/%s/%s/maven-metadata.xml",
		repo.URL,
		strings.ReplaceAll(dep.GroupID, ".", "/"),
		dep.ArtifactID,
	)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		logger.Debugf("no metadata for %s:%s in repository %q", dep.GroupID, dep.ArtifactID, repo.ID)
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata from %s: %w", url, err)
	}
	var meta metadata
	if unmarshalErr := xml.Unmarshal(body, &meta); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse metadata from %s: %w", url, unmarshalErr)
	}
	return meta.Versions, nil
}
