// Package main is the entry point for the cb CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jacksmith/cb/internal/cli"
	"github.com/jacksmith/cb/internal/logger"
	"github.com/jacksmith/cb/internal/storage"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

// appLogger carries diagnostics about the data file. It is replaced by the
// root command once the logging flags are parsed.
var appLogger = logger.Discard()

var (
	rootDir       string
	rootLogLevel  string
	rootLogFormat string
	rootLogFile   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cb",
	Short: "cb - a personal contact book",
	Long: `cb keeps a list of contacts in a plain text file.

Each contact has a first and last name, a category such as Family,
Friend or Work, and any number of typed phone numbers and email
addresses. Contacts are stored one per line in contacts.dat.

Run "cb menu" for the interactive menu, or use the subcommands below.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		appLogger = logger.New(&logger.Options{
			Level:   rootLogLevel,
			Format:  rootLogFormat,
			Logfile: rootLogFile,
		})
		slog.SetDefault(appLogger)
	},
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "C", ".", "data directory holding the contact file")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "diagnostic level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&rootLogFormat, "log-format", "text", "diagnostic format (text, json)")
	rootCmd.PersistentFlags().StringVar(&rootLogFile, "log-file", "", "write diagnostics to a file instead of stderr")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("cb version {{.Version}}\n")
}

// openStorage opens the data directory named by --dir.
func openStorage() (*storage.Storage, error) {
	s, err := storage.Open(rootDir)
	if err != nil {
		return nil, err
	}
	return s.WithLogger(appLogger), nil
}
