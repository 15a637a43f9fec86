package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/cb/internal/cli"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Export all contacts as plain text",
	Long: `Export every contact with all of its fields.

This is a one-way export for viewing or sharing. With --raw the record
lines are printed exactly as they would be saved.

Examples:
  cb dump
  cb dump --raw > backup.dat`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

var dumpRaw bool

func init() {
	dumpCmd.Flags().BoolVar(&dumpRaw, "raw", false, "print record lines in file format")
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	s, err := openStorage()
	if err != nil {
		return err
	}

	b, err := s.LoadBook()
	if err != nil {
		return err
	}

	if dumpRaw {
		return b.Write(os.Stdout)
	}

	fmt.Printf("# %s\n", cli.Plural(b.Len(), "contact"))
	for _, c := range b.List() {
		fmt.Println()
		cli.PrintContact(os.Stdout, c)
	}
	return nil
}
