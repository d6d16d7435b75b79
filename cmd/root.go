package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "mvnup",
	Short: "Report available updates for Maven project dependencies",
	Long: `A CLI tool that reads a Maven project descriptor (pom.xml), checks the
configured remote repositories for newer versions of the declared
dependencies and dependency-management entries, and renders an aligned
report of what is outdated and what is already current.

This tool helps keep builds reproducible and current by:
- Resolving dependency-management versions through the parent chain
- Filtering artifacts with include/exclude patterns (version ranges supported)
- Classifying each dependency against the newest reachable version
- Reporting "Dependency Management" and "Dependencies" sections separately`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Path to config file (default: auto-detect)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Show dependencies that do not need updating and enable debug output")
}
