package ops

import (
	"strings"

	"github.com/jacksmith/cb/internal/model"
)

// ContactFilter specifies filtering criteria for listing contacts.
type ContactFilter struct {
	Category string // Case-insensitive category match. Empty = all.
}

// FindContacts returns the contacts whose last name matches exactly, in
// book order. The result is empty, not an error, when nothing matches.
func FindContacts(s Store, lastName string) ([]*model.Contact, error) {
	b, err := s.LoadBook()
	if err != nil {
		return nil, err
	}
	return b.FindByLastName(lastName), nil
}

// ListContacts returns the contacts matching filter in book order.
func ListContacts(s Store, filter ContactFilter) ([]*model.Contact, error) {
	b, err := s.LoadBook()
	if err != nil {
		return nil, err
	}

	all := b.List()
	if filter.Category == "" {
		return all, nil
	}

	result := []*model.Contact{}
	for _, c := range all {
		if strings.EqualFold(c.Category(), filter.Category) {
			result = append(result, c)
		}
	}
	return result, nil
}

// Categories returns the distinct categories in use, in order of first
// appearance. Empty categories are left out.
func Categories(s Store) ([]string, error) {
	b, err := s.LoadBook()
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	var cats []string
	for _, c := range b.List() {
		if c.Category() == "" || seen[c.Category()] {
			continue
		}
		seen[c.Category()] = true
		cats = append(cats, c.Category())
	}
	return cats, nil
}
