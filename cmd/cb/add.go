package main

import (
	"fmt"
	"strings"

	"github.com/jacksmith/cb/internal/cli"
	"github.com/jacksmith/cb/internal/model"
	"github.com/jacksmith/cb/internal/ops"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <first> [last]",
	Short: "Add a new contact",
	Long: `Add a new contact.

Phones and emails are given as TYPE:VALUE and can be repeated. Without a
type the default_phone_type or default_email_type from .cbconfig.yaml is
used. If --category is not given, default_category applies.

Examples:
  cb add Ada Lovelace --category=Work
  cb add Ada Lovelace --phone=Mobile:555-1111 --phone=Home:555-2222
  cb add Ada Lovelace --email=Work:ada@example.org
  cb add "" Babbage --phone=555-3333`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runAdd,
}

var (
	addCategory string
	addPhones   []string
	addEmails   []string
)

func init() {
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "contact category (Family, Friend, Work, ...)")
	addCmd.Flags().StringArrayVarP(&addPhones, "phone", "p", nil, "phone as TYPE:NUMBER (can be repeated)")
	addCmd.Flags().StringArrayVarP(&addEmails, "email", "e", nil, "email as TYPE:ADDRESS (can be repeated)")

	addCmd.RegisterFlagCompletionFunc("category", completeCategories)

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	in := ops.ContactInput{
		FirstName: args[0],
		Category:  addCategory,
		Phones:    parsePhones(addPhones),
		Emails:    parseEmails(addEmails),
	}
	if len(args) > 1 {
		in.LastName = args[1]
	}

	s, err := openStorage()
	if err != nil {
		return err
	}

	c, err := ops.AddContact(s, in)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", cli.Cyan(model.FormatID(c.ID())), c.FullName())
	return nil
}

// splitTyped splits "Type:value" at the first colon. A value without a
// colon has an empty type, which picks up the configured default.
func splitTyped(s string) (typ, value string) {
	typ, value, ok := strings.Cut(s, ":")
	if !ok {
		return "", strings.TrimSpace(s)
	}
	return strings.TrimSpace(typ), strings.TrimSpace(value)
}

func parsePhones(values []string) []model.Phone {
	var phones []model.Phone
	for _, v := range values {
		typ, number := splitTyped(v)
		phones = append(phones, model.Phone{Type: typ, Number: number})
	}
	return phones
}

func parseEmails(values []string) []model.Email {
	var emails []model.Email
	for _, v := range values {
		typ, address := splitTyped(v)
		emails = append(emails, model.Email{Type: typ, Address: address})
	}
	return emails
}
