package main

import (
	"fmt"

	"github.com/jacksmith/cb/internal/cli"
	"github.com/jacksmith/cb/internal/model"
	"github.com/jacksmith/cb/internal/ops"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a contact",
	Long: `Edit a contact's fields.

Use flags to change specific fields, or -i to edit in $EDITOR.
--phone and --email replace the whole list; the ID never changes.

Examples:
  cb edit 7 --last=King
  cb edit 7 --category=Family
  cb edit 7 --phone=Mobile:555-1111 --phone=Home:555-2222   # replaces phones
  cb edit 7 --clear-emails
  cb edit 7 -i                                              # open in $EDITOR`,
	Args:              cobra.ExactArgs(1),
	RunE:              runEdit,
	ValidArgsFunction: completeContactIDs,
}

var (
	editFirst       string
	editLast        string
	editCategory    string
	editPhones      []string
	editEmails      []string
	editClearPhones bool
	editClearEmails bool
	editInteractive bool
)

func init() {
	editCmd.Flags().StringVar(&editFirst, "first", "", "set first name")
	editCmd.Flags().StringVar(&editLast, "last", "", "set last name")
	editCmd.Flags().StringVarP(&editCategory, "category", "c", "", "set category")
	editCmd.Flags().StringArrayVarP(&editPhones, "phone", "p", nil, "replace phones, TYPE:NUMBER (can be repeated)")
	editCmd.Flags().StringArrayVarP(&editEmails, "email", "e", nil, "replace emails, TYPE:ADDRESS (can be repeated)")
	editCmd.Flags().BoolVar(&editClearPhones, "clear-phones", false, "remove all phones")
	editCmd.Flags().BoolVar(&editClearEmails, "clear-emails", false, "remove all emails")
	editCmd.Flags().BoolVarP(&editInteractive, "interactive", "i", false, "edit in $EDITOR")

	editCmd.RegisterFlagCompletionFunc("category", completeCategories)

	rootCmd.AddCommand(editCmd)
}

// editableContact is the YAML document shown by edit -i.
type editableContact struct {
	FirstName string        `yaml:"first_name"`
	LastName  string        `yaml:"last_name"`
	Category  string        `yaml:"category"`
	Phones    []model.Phone `yaml:"phones"`
	Emails    []model.Email `yaml:"emails"`
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := model.ParseID(args[0])
	if err != nil {
		return err
	}

	s, err := openStorage()
	if err != nil {
		return err
	}

	var changes ops.ContactChanges
	if editInteractive {
		changes, err = interactiveChanges(s, id)
		if err != nil {
			return err
		}
	} else {
		changes, err = flagChanges(cmd)
		if err != nil {
			return err
		}
	}

	c, err := ops.EditContact(s, id, changes)
	if err != nil {
		return err
	}

	fmt.Printf("%s updated.\n", model.FormatID(c.ID()))
	return nil
}

func flagChanges(cmd *cobra.Command) (ops.ContactChanges, error) {
	changes := ops.ContactChanges{}
	hasChanges := false

	if cmd.Flags().Changed("first") {
		changes.FirstName = &editFirst
		hasChanges = true
	}
	if cmd.Flags().Changed("last") {
		changes.LastName = &editLast
		hasChanges = true
	}
	if cmd.Flags().Changed("category") {
		changes.Category = &editCategory
		hasChanges = true
	}

	if editClearPhones || cmd.Flags().Changed("phone") {
		phones := parsePhones(editPhones)
		if editClearPhones {
			phones = nil
		}
		changes.Phones = &phones
		hasChanges = true
	}
	if editClearEmails || cmd.Flags().Changed("email") {
		emails := parseEmails(editEmails)
		if editClearEmails {
			emails = nil
		}
		changes.Emails = &emails
		hasChanges = true
	}

	if !hasChanges {
		return changes, fmt.Errorf("no changes specified")
	}
	return changes, nil
}

func interactiveChanges(s ops.Store, id int) (ops.ContactChanges, error) {
	c, err := ops.GetContact(s, id)
	if err != nil {
		return ops.ContactChanges{}, err
	}

	doc := editableContact{
		FirstName: c.FirstName(),
		LastName:  c.LastName(),
		Category:  c.Category(),
		Phones:    c.Phones(),
		Emails:    c.Emails(),
	}

	err = cli.EditYAML(&doc,
		fmt.Sprintf("Editing contact %s", model.FormatID(id)),
		"Phones and emails are replaced by the lists below.",
	)
	if err != nil {
		return ops.ContactChanges{}, err
	}

	return ops.ContactChanges{
		FirstName: &doc.FirstName,
		LastName:  &doc.LastName,
		Category:  &doc.Category,
		Phones:    &doc.Phones,
		Emails:    &doc.Emails,
	}, nil
}
