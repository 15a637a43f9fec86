// Package model defines the core data structures for cb.
package model

import "strings"

// Phone is a typed phone number, e.g. {"Mobile", "555-1111"}.
type Phone struct {
	Type   string `yaml:"type"`
	Number string `yaml:"number"`
}

// Email is a typed email address, e.g. {"Work", "ada@example.org"}.
type Email struct {
	Type    string `yaml:"type"`
	Address string `yaml:"address"`
}

// Contact is a single entry in the contact book.
// The ID is fixed at construction; everything else changes only through
// the mutation methods below.
type Contact struct {
	id        int
	firstName string
	lastName  string
	category  string
	phones    []Phone
	emails    []Email
}

// NewContact creates a contact with no phones or emails.
// No validation is performed on any field.
func NewContact(id int, firstName, lastName, category string) *Contact {
	return &Contact{
		id:        id,
		firstName: firstName,
		lastName:  lastName,
		category:  category,
	}
}

// ID returns the contact's identifier.
func (c *Contact) ID() int { return c.id }

// FirstName returns the contact's first name.
func (c *Contact) FirstName() string { return c.firstName }

// LastName returns the contact's last name.
func (c *Contact) LastName() string { return c.lastName }

// Category returns the free-text category label (Family, Friend, Work, ...).
func (c *Contact) Category() string { return c.category }

// FullName returns "First Last", trimmed when either part is empty.
func (c *Contact) FullName() string {
	return strings.TrimSpace(c.firstName + " " + c.lastName)
}

// Phones returns a copy of the contact's phone entries in insertion order.
func (c *Contact) Phones() []Phone {
	return append([]Phone(nil), c.phones...)
}

// Emails returns a copy of the contact's email entries in insertion order.
func (c *Contact) Emails() []Email {
	return append([]Email(nil), c.emails...)
}

// AddPhone appends a phone entry. Duplicates are allowed.
func (c *Contact) AddPhone(typ, number string) {
	c.phones = append(c.phones, Phone{Type: typ, Number: number})
}

// AddEmail appends an email entry. Duplicates are allowed.
func (c *Contact) AddEmail(typ, address string) {
	c.emails = append(c.emails, Email{Type: typ, Address: address})
}

// ClearPhones removes all phone entries.
func (c *Contact) ClearPhones() { c.phones = nil }

// ClearEmails removes all email entries.
func (c *Contact) ClearEmails() { c.emails = nil }

// Update replaces the name and category fields.
// Phones and emails are not touched.
func (c *Contact) Update(firstName, lastName, category string) {
	c.firstName = firstName
	c.lastName = lastName
	c.category = category
}

// RecordString returns the contact encoded as a single record line.
func (c *Contact) RecordString() string {
	return EncodeRecord(c)
}

// WithID returns a copy of the contact carrying a different id.
func (c *Contact) WithID(id int) *Contact {
	cp := *c
	cp.id = id
	cp.phones = c.Phones()
	cp.emails = c.Emails()
	return &cp
}
