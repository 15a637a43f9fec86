package main

import (
	"os"

	"github.com/jacksmith/cb/internal/cli"
	"github.com/jacksmith/cb/internal/model"
	"github.com/jacksmith/cb/internal/ops"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show contact details",
	Long: `Show every field of a contact.

The ID may be written as 7 or #7.`,
	Args:              cobra.ExactArgs(1),
	RunE:              runShow,
	ValidArgsFunction: completeContactIDs,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := model.ParseID(args[0])
	if err != nil {
		return err
	}

	s, err := openStorage()
	if err != nil {
		return err
	}

	c, err := ops.GetContact(s, id)
	if err != nil {
		return err
	}

	cli.PrintContact(os.Stdout, c)
	return nil
}
