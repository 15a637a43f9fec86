package main

import (
	"fmt"

	"github.com/jacksmith/cb/internal/model"
	"github.com/jacksmith/cb/internal/ops"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a contact",
	Long: `Delete a contact by ID.

If the file holds several contacts with the same ID, all of them are
removed. IDs are never reused.`,
	Args:              cobra.ExactArgs(1),
	RunE:              runDelete,
	ValidArgsFunction: completeContactIDs,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := model.ParseID(args[0])
	if err != nil {
		return err
	}

	s, err := openStorage()
	if err != nil {
		return err
	}

	if err := ops.DeleteContact(s, id); err != nil {
		return err
	}

	fmt.Printf("%s deleted.\n", model.FormatID(id))
	return nil
}
