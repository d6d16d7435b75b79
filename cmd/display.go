package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mvnup/mvnup/application"
	"github.com/mvnup/mvnup/config"
	"github.com/mvnup/mvnup/domain"
	"github.com/mvnup/mvnup/infrastructure/pom"
)

var (
	pomPath                     string
	includesList                string
	excludesList                string
	allowSnapshots              bool
	scopeName                   string
	processDependencies         bool
	processDependencyManagement bool
	extraRepositories           []string
)

var displayCmd = &cobra.Command{
	Use:   "display",
	Short: "Display dependencies that have newer versions available",
	Long: `Read the project descriptor, look up every declared dependency and
dependency-management entry in the remote repositories, and print which
ones have newer versions available.

Include and exclude patterns follow "groupId:artifactId:type:classifier:version";
the version segment may be a range such as "[1.0,2.0)".`,
	RunE: runDisplay,
}

func init() {
	displayCmd.Flags().StringVar(&pomPath, "pom", "pom.xml",
		"Path to the project descriptor")
	displayCmd.Flags().StringVar(&includesList, "includes", "",
		"Comma-separated artifact patterns to include")
	displayCmd.Flags().StringVar(&excludesList, "excludes", "",
		"Comma-separated artifact patterns to exclude")
	displayCmd.Flags().BoolVar(&allowSnapshots, "allow-snapshots", false,
		"Consider snapshot versions as update candidates")
	displayCmd.Flags().StringVar(&scopeName, "scope", "any",
		"Update scope: any, major, minor, incremental, or subincremental")
	displayCmd.Flags().BoolVar(&processDependencies, "process-dependencies", true,
		"Process the dependencies section")
	displayCmd.Flags().BoolVar(&processDependencyManagement, "process-dependency-management", true,
		"Process the dependencyManagement section")
	displayCmd.Flags().StringArrayVar(&extraRepositories, "repository", nil,
		"Additional repository as id=url (repeatable)")
	rootCmd.AddCommand(displayCmd)
}

func runDisplay(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg := loadConfig()
	if verbose || cfg.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	project, err := pom.Load(pomPath)
	if err != nil {
		return err
	}

	opts, err := buildOptions(cmd, cfg)
	if err != nil {
		return err
	}

	repos, err := collectRepositories(cfg, project)
	if err != nil {
		return err
	}
	service := injectReportService(repos)

	return service.Run(ctx, project, opts, os.Stdout)
}

// loadConfig reads the configured file, falls back to auto-detection, and
// finally to defaults when nothing is found.
func loadConfig() *config.Config {
	path := configPath
	if path == "" {
		detected, err := config.FindConfigFile()
		if err != nil {
			logger.Debugf("no config file found, using defaults")
			return config.Default()
		}
		path = detected
	}
	cfg, err := config.Load(path)
	if err != nil {
		logger.Warnf("Failed to load config %q: %v", path, err)
		return config.Default()
	}
	logger.Debugf("loaded config from %q", path)
	return cfg
}

// buildOptions merges config values with command-line flags. Flags that were
// explicitly set win over the file.
func buildOptions(cmd *cobra.Command, cfg *config.Config) (application.Options, error) {
	opts := application.Options{
		ProcessDependencyManagement: cfg.IsProcessingDependencyManagement(),
		ProcessDependencies:         cfg.IsProcessingDependencies(),
		Verbose:                     verbose || cfg.Verbose,
		AllowSnapshots:              allowSnapshots || cfg.AllowSnapshots,
	}
	if cmd.Flags().Changed("process-dependency-management") {
		opts.ProcessDependencyManagement = processDependencyManagement
	}
	if cmd.Flags().Changed("process-dependencies") {
		opts.ProcessDependencies = processDependencies
	}

	name := scopeName
	if !cmd.Flags().Changed("scope") && cfg.Scope != "" {
		name = cfg.Scope
	}
	scope, err := domain.ParseScope(name)
	if err != nil {
		return application.Options{}, err
	}
	opts.Scope = scope

	includes, includesExplicit := includesList, cfg.Includes
	if includes == "" {
		includes = cfg.IncludesList
	}
	excludes, excludesExplicit := excludesList, cfg.Excludes
	if excludes == "" {
		excludes = cfg.ExcludesList
	}
	opts.Filter = domain.NewFilter(includes, includesExplicit, excludes, excludesExplicit)

	return opts, nil
}

// collectRepositories merges repositories from the config file, the project
// descriptor, and --repository flags.
func collectRepositories(cfg *config.Config, project *pom.Project) ([]domain.RemoteRepository, error) {
	var repos []domain.RemoteRepository
	for _, r := range cfg.Repositories {
		repos = append(repos, domain.RemoteRepository{ID: r.ID, URL: r.URL})
	}
	repos = append(repos, project.Repositories()...)
	for _, raw := range extraRepositories {
		id, url, found := strings.Cut(raw, "=")
		if !found || url == "" {
			return nil, fmt.Errorf("invalid --repository value %q, expected id=url", raw)
		}
		repos = append(repos, domain.RemoteRepository{ID: id, URL: url})
	}
	return repos, nil
}
