package ops

import (
	"errors"
	"strings"

	"github.com/jacksmith/cb/internal/cli"
	"github.com/jacksmith/cb/internal/model"
	"github.com/jacksmith/cb/internal/storage"
)

// ContactInput contains the fields for a new contact.
// Empty category and entry types are filled from config defaults.
type ContactInput struct {
	FirstName string
	LastName  string
	Category  string
	Phones    []model.Phone
	Emails    []model.Email
}

// ContactChanges represents fields that can be updated on a contact.
// A nil field is left alone. Non-nil Phones or Emails replace the whole list.
type ContactChanges struct {
	FirstName *string
	LastName  *string
	Category  *string
	Phones    *[]model.Phone
	Emails    *[]model.Email
}

// ValidateName checks that at least one of first and last name is present.
func ValidateName(first, last string) error {
	if strings.TrimSpace(first) == "" && strings.TrimSpace(last) == "" {
		return &cli.ValidationError{Message: "a first or last name is required"}
	}
	return nil
}

// AddContact creates a new contact with the next free id and saves the book.
func AddContact(s Store, in ContactInput) (*model.Contact, error) {
	if err := ValidateName(in.FirstName, in.LastName); err != nil {
		return nil, err
	}

	cfg, err := s.LoadConfig()
	if err != nil {
		return nil, err
	}

	if in.Category == "" {
		in.Category = cfg.DefaultCategory
	}
	phones := withPhoneDefaults(in.Phones, cfg)
	emails := withEmailDefaults(in.Emails, cfg)

	if err := checkNames(in.FirstName, in.LastName, in.Category); err != nil {
		return nil, err
	}
	if err := checkEntries(phones, emails); err != nil {
		return nil, err
	}

	b, err := s.LoadBook()
	if err != nil {
		return nil, err
	}

	id, err := b.Allocate()
	if err != nil {
		return nil, err
	}
	c := model.NewContact(id, in.FirstName, in.LastName, in.Category)
	for _, p := range phones {
		c.AddPhone(p.Type, p.Number)
	}
	for _, e := range emails {
		c.AddEmail(e.Type, e.Address)
	}
	b.Add(c)

	if err := s.SaveBook(b); err != nil {
		return nil, err
	}
	return c, nil
}

// EditContact applies changes to the contact with the given id and saves
// the book. Returns the updated contact.
func EditContact(s Store, id int, changes ContactChanges) (*model.Contact, error) {
	cfg, err := s.LoadConfig()
	if err != nil {
		return nil, err
	}

	b, err := s.LoadBook()
	if err != nil {
		return nil, err
	}

	c, ok := b.FindByID(id)
	if !ok {
		return nil, notFound(id)
	}

	first, last, category := c.FirstName(), c.LastName(), c.Category()
	if changes.FirstName != nil {
		first = *changes.FirstName
	}
	if changes.LastName != nil {
		last = *changes.LastName
	}
	if changes.Category != nil {
		category = *changes.Category
	}

	if err := ValidateName(first, last); err != nil {
		return nil, err
	}
	if err := checkNames(first, last, category); err != nil {
		return nil, err
	}

	var phones []model.Phone
	var emails []model.Email
	if changes.Phones != nil {
		phones = withPhoneDefaults(*changes.Phones, cfg)
	}
	if changes.Emails != nil {
		emails = withEmailDefaults(*changes.Emails, cfg)
	}
	if err := checkEntries(phones, emails); err != nil {
		return nil, err
	}

	// Apply changes
	c.Update(first, last, category)
	if changes.Phones != nil {
		c.ClearPhones()
		for _, p := range phones {
			c.AddPhone(p.Type, p.Number)
		}
	}
	if changes.Emails != nil {
		c.ClearEmails()
		for _, e := range emails {
			c.AddEmail(e.Type, e.Address)
		}
	}

	if err := s.SaveBook(b); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteContact removes every contact with the given id and saves the book.
func DeleteContact(s Store, id int) error {
	b, err := s.LoadBook()
	if err != nil {
		return err
	}

	if !b.Delete(id) {
		return notFound(id)
	}

	return s.SaveBook(b)
}

// GetContact returns the contact with the given id.
func GetContact(s Store, id int) (*model.Contact, error) {
	b, err := s.LoadBook()
	if err != nil {
		return nil, err
	}

	c, ok := b.FindByID(id)
	if !ok {
		return nil, notFound(id)
	}
	return c, nil
}

func notFound(id int) error {
	return &cli.NotFoundError{Type: "contact", ID: model.FormatID(id)}
}

func withPhoneDefaults(phones []model.Phone, cfg *storage.Config) []model.Phone {
	out := make([]model.Phone, 0, len(phones))
	for _, p := range phones {
		if p.Type == "" {
			p.Type = cfg.DefaultPhoneType
		}
		out = append(out, p)
	}
	return out
}

func withEmailDefaults(emails []model.Email, cfg *storage.Config) []model.Email {
	out := make([]model.Email, 0, len(emails))
	for _, e := range emails {
		if e.Type == "" {
			e.Type = cfg.DefaultEmailType
		}
		out = append(out, e)
	}
	return out
}

// checkNames rejects name and category values that would break the record line.
func checkNames(first, last, category string) error {
	for _, f := range []struct{ name, value string }{
		{"first name", first},
		{"last name", last},
		{"category", category},
	} {
		if err := checkField(f.name, model.FieldName, f.value); err != nil {
			return err
		}
	}
	return nil
}

// checkEntries rejects phone and email entries that would break the record line.
func checkEntries(phones []model.Phone, emails []model.Email) error {
	for _, p := range phones {
		if err := checkField("phone type", model.FieldEntryType, p.Type); err != nil {
			return err
		}
		if err := checkField("phone number", model.FieldEntryValue, p.Number); err != nil {
			return err
		}
	}
	for _, e := range emails {
		if err := checkField("email type", model.FieldEntryType, e.Type); err != nil {
			return err
		}
		if err := checkField("email address", model.FieldEntryValue, e.Address); err != nil {
			return err
		}
	}
	return nil
}

func checkField(name string, f model.Field, value string) error {
	err := model.CheckField(f, value)
	if errors.Is(err, model.ErrReservedChar) {
		return &cli.ValidationError{Field: name, Message: err.Error()}
	}
	return err
}
