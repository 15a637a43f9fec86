package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/cb/internal/cli"
	"github.com/jacksmith/cb/internal/ops"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List contacts",
	Long: `List contacts in the order they were added.

Examples:
  cb list
  cb list --category=Work`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listCategory string

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "only contacts in this category (case-insensitive)")
	listCmd.RegisterFlagCompletionFunc("category", completeCategories)
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openStorage()
	if err != nil {
		return err
	}

	contacts, err := ops.ListContacts(s, ops.ContactFilter{Category: listCategory})
	if err != nil {
		return err
	}

	if len(contacts) == 0 {
		fmt.Println("No contacts.")
		return nil
	}

	cli.ContactTable(contacts).Render(os.Stdout)
	return nil
}
