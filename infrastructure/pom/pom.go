package pom

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/mvnup/mvnup/domain"
)

const defaultType = "jar"

// model mirrors the subset of the pom.xml project element the report needs.
type model struct {
	XMLName              xml.Name        `xml:"project"`
	GroupID              string          `xml:"groupId"`
	ArtifactID           string          `xml:"artifactId"`
	Version              string          `xml:"version"`
	Parent               *parentRef      `xml:"parent"`
	Properties           properties      `xml:"properties"`
	Dependencies         []dependencyXML `xml:"dependencies>dependency"`
	DependencyManagement *managementXML  `xml:"dependencyManagement"`
	Repositories         []repositoryXML `xml:"repositories>repository"`
}

type parentRef struct {
	GroupID      string `xml:"groupId"`
	ArtifactID   string `xml:"artifactId"`
	Version      string `xml:"version"`
	RelativePath string `xml:"relativePath"`
}

type managementXML struct {
	Dependencies []dependencyXML `xml:"dependencies>dependency"`
}

type dependencyXML struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
	Type       string `xml:"type"`
	Classifier string `xml:"classifier"`
	Scope      string `xml:"scope"`
}

type repositoryXML struct {
	ID  string `xml:"id"`
	URL string `xml:"url"`
}

// properties decodes the free-form <properties> children into a map.
type properties map[string]string

func (p *properties) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	*p = map[string]string{}
	for {
		token, err := d.Token()
		if err != nil {
			return err
		}
		switch el := token.(type) {
		case xml.StartElement:
			var value string
			if decodeErr := d.DecodeElement(&value, &el); decodeErr != nil {
				return decodeErr
			}
			(*p)[el.Name.Local] = strings.TrimSpace(value)
		case xml.EndElement:
			if el.Name == start.Name {
				return nil
			}
		}
	}
}

// Project is a loaded project descriptor with its parent chain resolved from
// the local filesystem. Implements domain.ProjectDescriptor.
type Project struct {
	model  *model
	parent *Project
}

// Load reads a pom.xml and follows the parent's relativePath (default
// "../pom.xml"). A declared parent whose descriptor is not present locally
// still counts as a parent; its dependencyManagement is simply unavailable.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project descriptor %q: %w", path, err)
	}

	var m model
	if unmarshalErr := xml.Unmarshal(data, &m); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse project descriptor %q: %w", path, unmarshalErr)
	}

	project := &Project{model: &m}
	if m.Parent != nil {
		rel := m.Parent.RelativePath
		if rel == "" {
			rel = filepath.Join("..", "pom.xml")
		}
		parentPath := filepath.Join(filepath.Dir(path), rel)
		if info, statErr := os.Stat(parentPath); statErr == nil {
			if info.IsDir() {
				parentPath = filepath.Join(parentPath, "pom.xml")
			}
			parent, loadErr := Load(parentPath)
			if loadErr != nil {
				return nil, loadErr
			}
			project.parent = parent
		} else {
			logger.Debugf("parent descriptor not found at %q, treating parent as external", parentPath)
		}
	}
	return project, nil
}

// ArtifactID returns the project's artifactId.
func (p *Project) ArtifactID() string { return p.model.ArtifactID }

// GroupID returns the project's groupId, inherited from the parent when
// absent.
func (p *Project) GroupID() string {
	if p.model.GroupID == "" && p.model.Parent != nil {
		return p.model.Parent.GroupID
	}
	return p.model.GroupID
}

// Version returns the project's version, inherited from the parent when
// absent.
func (p *Project) Version() string {
	if p.model.Version == "" && p.model.Parent != nil {
		return p.model.Parent.Version
	}
	return p.model.Version
}

// HasParent reports whether the descriptor declares a parent.
func (p *Project) HasParent() bool { return p.model.Parent != nil }

// Dependencies returns the direct dependencies with properties interpolated.
func (p *Project) Dependencies() []domain.Dependency {
	return p.toDependencies(p.model.Dependencies)
}

// DependencyManagement returns the dependencyManagement entries, or nil when
// the section is absent.
func (p *Project) DependencyManagement() []domain.Dependency {
	if p.model.DependencyManagement == nil {
		return nil
	}
	return p.toDependencies(p.model.DependencyManagement.Dependencies)
}

// ParentDependencyManagement returns the parent's dependencyManagement
// entries when the parent descriptor was resolved locally.
func (p *Project) ParentDependencyManagement() []domain.Dependency {
	if p.parent == nil {
		return nil
	}
	return p.parent.DependencyManagement()
}

// Repositories returns the remote repositories declared by the project and
// its parents.
func (p *Project) Repositories() []domain.RemoteRepository {
	var repos []domain.RemoteRepository
	if p.parent != nil {
		repos = p.parent.Repositories()
	}
	for _, r := range p.model.Repositories {
		repos = append(repos, domain.RemoteRepository{ID: r.ID, URL: p.interpolate(r.URL)})
	}
	return repos
}

func (p *Project) toDependencies(entries []dependencyXML) []domain.Dependency {
	deps := make([]domain.Dependency, 0, len(entries))
	for _, e := range entries {
		depType := e.Type
		if depType == "" {
			depType = defaultType
		}
		deps = append(deps, domain.Dependency{
			GroupID:    p.interpolate(e.GroupID),
			ArtifactID: p.interpolate(e.ArtifactID),
			Type:       depType,
			Classifier: e.Classifier,
			Version:    p.interpolate(e.Version),
			Scope:      e.Scope,
		})
	}
	return deps
}

// propertyPattern matches ${name} placeholders.
var propertyPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// interpolate expands ${property} references against the project's properties
// and the built-in project.* values, walking up the parent chain. Unresolved
// references are left in place.
func (p *Project) interpolate(raw string) string {
	if raw == "" || !strings.Contains(raw, "${") {
		return raw
	}
	return propertyPattern.ReplaceAllStringFunc(raw, func(match string) string {
		name := propertyPattern.FindStringSubmatch(match)[1]
		if value, ok := p.property(name); ok {
			return value
		}
		logger.Warnf("property %q is not defined", name)
		return match
	})
}

func (p *Project) property(name string) (string, bool) {
	switch name {
	case "project.groupId":
		return p.GroupID(), true
	case "project.artifactId":
		return p.ArtifactID(), true
	case "project.version":
		return p.Version(), true
	}
	if value, ok := p.model.Properties[name]; ok {
		return value, true
	}
	if p.parent != nil {
		return p.parent.property(name)
	}
	return "", false
}
