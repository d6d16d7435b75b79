package cmd

import (
	"go.uber.org/dig"

	"github.com/mvnup/mvnup/application"
	"github.com/mvnup/mvnup/domain"
	"github.com/mvnup/mvnup/infrastructure/repository"
)

// injectReportService wires the resolver stack through the DI container:
// registry -> resolver -> service.
func injectReportService(repos []domain.RemoteRepository) *application.ReportService {
	container := dig.New()

	must(container.Provide(func() *repository.Registry {
		registry := repository.NewRegistry()
		registry.Add("central", repository.CentralURL)
		for _, r := range repos {
			registry.Add(r.ID, r.URL)
		}
		return registry
	}))
	must(container.Provide(repository.NewResolver))
	must(container.Provide(func(r *repository.Resolver) domain.VersionResolver { return r }))
	must(container.Provide(application.NewReportService))

	var service *application.ReportService
	must(container.Invoke(func(s *application.ReportService) {
		service = s
	}))
	return service
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
