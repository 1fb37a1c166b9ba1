// Package cli implements the gapidx command-line driver (component C9):
// a cobra root command plus a query subcommand that builds an Index
// over a text file and answers gapped two-pattern queries read from
// stdin.
package cli

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:     "gapidx",
	Short:   "Gapped two-pattern search over a static text",
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "optional YAML config file supplying default gap bounds")
	rootCmd.AddCommand(queryCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
