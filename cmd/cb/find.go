package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/cb/internal/cli"
	"github.com/jacksmith/cb/internal/ops"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find <last-name>",
	Short: "Find contacts by last name",
	Long: `List contacts whose last name matches exactly.

The match is case-sensitive. Use --details to print every field.

Examples:
  cb find Lovelace
  cb find Lovelace --details`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

var findDetails bool

func init() {
	findCmd.Flags().BoolVarP(&findDetails, "details", "d", false, "show full details for each match")
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	s, err := openStorage()
	if err != nil {
		return err
	}

	found, err := ops.FindContacts(s, args[0])
	if err != nil {
		return err
	}

	if len(found) == 0 {
		fmt.Printf("No contacts with last name %q.\n", args[0])
		return nil
	}

	if !findDetails {
		cli.ContactTable(found).Render(os.Stdout)
		return nil
	}

	for i, c := range found {
		if i > 0 {
			fmt.Println()
		}
		cli.PrintContact(os.Stdout, c)
	}
	return nil
}
