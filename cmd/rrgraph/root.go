package main

import (
	"os"

	"github.com/spf13/cobra"

	"rrgraph/internal/config"
)

var (
	configPath string
	cfg        *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rrgraph",
	Short: "Build and inspect routing resource graphs.",
	Long: `rrgraph lays out channel tracks from a build spec, connects them, ` +
		`and writes the result as a Cap'n Proto routing resource graph. ` +
		`Graphs can also be stored and served over HTTP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if configPath != "" {
			cfg, _, err = config.LoadFromPath(configPath)
		} else {
			cfg, _, err = config.Load()
		}
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: search standard locations)")
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
