package main

import (
	"os"

	"github.com/jacksmith/cb/internal/menu"
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the interactive menu",
	Long: `Open the numbered menu for adding, searching, deleting, updating and
listing contacts.

Choices can be typed as a number (1-6) or as a word prefix such as "add"
or "li". The contact file is read once when the menu opens and written
back when you choose Exit or input ends.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command, args []string) error {
	s, err := openStorage()
	if err != nil {
		return err
	}

	sess, err := menu.New(s, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	return sess.WithLogger(appLogger).Run()
}
