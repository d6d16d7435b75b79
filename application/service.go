package application

import (
	"context"
	"fmt"
	"io"

	logger "github.com/sirupsen/logrus"

	"github.com/mvnup/mvnup/domain"
)

// Section labels of the report.
const (
	SectionDependencyManagement = "Dependency Management"
	SectionDependencies         = "Dependencies"
)

// ReportService orchestrates the full update report:
// filter -> reconcile -> resolve -> classify -> render.
type ReportService struct {
	resolver domain.VersionResolver
}

// NewReportService creates a service backed by the given resolver.
func NewReportService(resolver domain.VersionResolver) *ReportService {
	return &ReportService{resolver: resolver}
}

// Options holds the runtime options for a single report run.
type Options struct {
	ProcessDependencyManagement bool
	ProcessDependencies         bool
	Verbose                     bool
	AllowSnapshots              bool
	Scope                       domain.UpdateScope
	Filter                      *domain.Filter
}

// Run builds the working sets from the project descriptor and writes the
// report to out. All state is rebuilt per invocation; a resolver failure
// aborts the whole run.
func (s *ReportService) Run(
	ctx context.Context,
	project domain.ProjectDescriptor,
	opts Options,
	out io.Writer,
) error {
	mgmt, deps, err := domain.Reconcile(
		project.Dependencies(),
		project.DependencyManagement(),
		project.ParentDependencyManagement(),
		project.HasParent(),
		opts.ProcessDependencyManagement,
		opts.Filter,
	)
	if err != nil {
		return err
	}

	renderer := &Renderer{Project: project.ArtifactID(), Verbose: opts.Verbose}

	if opts.ProcessDependencyManagement {
		if sectionErr := s.reportSection(ctx, mgmt, SectionDependencyManagement, renderer, opts, out); sectionErr != nil {
			return sectionErr
		}
	}
	if opts.ProcessDependencies {
		if sectionErr := s.reportSection(ctx, deps, SectionDependencies, renderer, opts, out); sectionErr != nil {
			return sectionErr
		}
	}
	return nil
}

func (s *ReportService) reportSection(
	ctx context.Context,
	deps *domain.DependencySet,
	section string,
	renderer *Renderer,
	opts Options,
	out io.Writer,
) error {
	logger.Debugf("looking up versions for %d entries in %s", deps.Len(), section)

	versions, err := s.resolver.LookupVersions(ctx, deps, false)
	if err != nil {
		return err
	}

	results := make([]domain.ClassificationResult, 0, deps.Len())
	for _, dep := range deps.All() {
		current, parseErr := domain.ParseCurrent(dep.Version)
		if parseErr != nil {
			return parseErr
		}
		results = append(results, domain.Classify(
			dep.Coordinate(),
			current,
			versions[dep.CoordinateKey()],
			opts.Scope,
			opts.AllowSnapshots,
		))
	}

	for _, line := range renderer.Render(results, section) {
		if _, writeErr := fmt.Fprintln(out, line); writeErr != nil {
			return fmt.Errorf("failed to write report: %w", writeErr)
		}
	}
	return nil
}
