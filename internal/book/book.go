// Package book holds the in-memory contact list and its id allocator.
package book

import (
	"errors"
	"slices"

	"github.com/jacksmith/cb/internal/model"
)

// Book is an ordered collection of contacts.
// Contacts are kept in insertion order and never re-sorted.
// The id counter only moves forward, so ids are not reused after a delete.
type Book struct {
	contacts []*model.Contact
	next     int
}

// New returns an empty book whose first allocated id is 1.
func New() *Book {
	return &Book{next: 1}
}

// ErrIDsExhausted is returned by Allocate once the counter has passed
// model.MaxID.
var ErrIDsExhausted = errors.New("no contact ids left")

// NextID returns the next unused id and advances the counter.
// The counter stops at model.MaxID+1; callers that must not reuse an id
// use Allocate instead.
func (b *Book) NextID() int {
	id := b.next
	if b.next <= model.MaxID {
		b.next++
	}
	return id
}

// Allocate is NextID with a bound check.
func (b *Book) Allocate() (int, error) {
	if b.next > model.MaxID {
		return 0, ErrIDsExhausted
	}
	return b.NextID(), nil
}

// Peek returns the id the next call to NextID will return.
func (b *Book) Peek() int {
	return b.next
}

// Add appends a contact. Id uniqueness is the caller's responsibility.
func (b *Book) Add(c *model.Contact) {
	b.contacts = append(b.contacts, c)
}

// admit appends a contact read from a file and moves the counter past its id.
// Decoded ids are at most model.MaxID, so id+1 cannot overflow.
func (b *Book) admit(c *model.Contact) {
	b.Add(c)
	b.next = max(b.next, c.ID()+1)
}

// FindByID returns the first contact with the given id.
// The returned pointer stays valid after later adds and deletes.
func (b *Book) FindByID(id int) (*model.Contact, bool) {
	for _, c := range b.contacts {
		if c.ID() == id {
			return c, true
		}
	}
	return nil, false
}

// FindByLastName returns every contact whose last name matches exactly
// (case-sensitive), in book order. The result is empty when nothing matches.
func (b *Book) FindByLastName(name string) []*model.Contact {
	result := []*model.Contact{}
	for _, c := range b.contacts {
		if c.LastName() == name {
			result = append(result, c)
		}
	}
	return result
}

// Delete removes every contact with the given id and reports whether
// anything was removed.
func (b *Book) Delete(id int) bool {
	before := len(b.contacts)
	b.contacts = slices.DeleteFunc(b.contacts, func(c *model.Contact) bool {
		return c.ID() == id
	})
	return len(b.contacts) < before
}

// List returns all contacts in insertion order.
// An empty book yields an empty, non-nil slice.
func (b *Book) List() []*model.Contact {
	return append([]*model.Contact{}, b.contacts...)
}

// Len returns the number of contacts.
func (b *Book) Len() int {
	return len(b.contacts)
}

// Replace puts c in the position held by old and reports whether old was
// in the book. The counter is not touched.
func (b *Book) Replace(old, c *model.Contact) bool {
	i := slices.Index(b.contacts, old)
	if i < 0 {
		return false
	}
	b.contacts[i] = c
	return true
}
