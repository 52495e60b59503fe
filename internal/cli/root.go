// Package cli provides the command-line interface for atlasdesc.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/ineffably/moxijs/internal/version"
)

var (
	// Global config file flag
	globalConfig string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "atlasdesc",
		Short: "Annotate sprite atlas frames with readable descriptions",
		Long: `Atlasdesc labels the frames of a sprite-sheet metadata document with
short human-readable descriptions for asset catalog browsing.

Each frame's filename is parsed into an asset type, size, and variant,
and the frame's region of the atlas image is sampled for an average
colour; together these produce labels like "Blue player ship v3 dmg2".`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// NewRootCmd returns the configured root command.
// This is called by main.main().
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&globalConfig, "config", "", "path to YAML config file with default asset paths")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(annotateCmd)
	rootCmd.AddCommand(listCmd)
}

// newLogger builds the command logger from the persistent verbosity
// flags. Diagnostics go to stderr so stdout stays machine-friendly.
func newLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")

	level := hclog.Info
	if verbose {
		level = hclog.Debug
	}
	if quiet {
		level = hclog.Error
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "atlasdesc",
		Output: os.Stderr,
		Level:  level,
	})
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
