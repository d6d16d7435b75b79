package repository

import (
	"strings"

	"github.com/mvnup/mvnup/domain"
)

// CentralURL is the default repository every lookup falls back to.
const CentralURL = "https://repo.maven.apache.org/maven2"

// Registry manages the remote repositories consulted for version metadata.
// Repositories are kept in registration order and de-duplicated by URL.
type Registry struct {
	repos []domain.RemoteRepository
	seen  map[string]bool
}

// NewRegistry creates an empty registry. Callers decide whether Maven
// Central joins the lookup set.
func NewRegistry() *Registry {
	return &Registry{seen: make(map[string]bool)}
}

// Add registers a repository. Duplicate URLs and empty URLs are ignored.
func (r *Registry) Add(id, url string) {
	url = strings.TrimSuffix(url, "/")
	if url == "" || r.seen[url] {
		return
	}
	r.seen[url] = true
	r.repos = append(r.repos, domain.RemoteRepository{ID: id, URL: url})
}

// All returns every registered repository in registration order.
func (r *Registry) All() []domain.RemoteRepository {
	return r.repos
}

// Len returns the number of registered repositories.
func (r *Registry) Len() int {
	return len(r.repos)
}
