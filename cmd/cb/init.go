package main

import (
	"fmt"

	"github.com/jacksmith/cb/internal/storage"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty contact file",
	Long: `Create an empty contact file in the data directory.

The directory is created if it does not exist. The file name comes from
data_file in .cbconfig.yaml or CB_DATA_FILE, and defaults to contacts.dat.

Fails if the contact file already exists.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	s, err := storage.Init(rootDir)
	if err != nil {
		return err
	}

	path, err := s.DataPath()
	if err != nil {
		return err
	}
	fmt.Printf("Created %s\n", path)
	return nil
}
