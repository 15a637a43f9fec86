package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContact(t *testing.T) {
	c := NewContact(1, "Ada", "Lovelace", "Work")

	assert.Equal(t, 1, c.ID())
	assert.Equal(t, "Ada", c.FirstName())
	assert.Equal(t, "Lovelace", c.LastName())
	assert.Equal(t, "Work", c.Category())
	assert.Empty(t, c.Phones())
	assert.Empty(t, c.Emails())
}

func TestContactFullName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", NewContact(1, "Ada", "Lovelace", "").FullName())
	assert.Equal(t, "Ada", NewContact(1, "Ada", "", "").FullName())
	assert.Equal(t, "Lovelace", NewContact(1, "", "Lovelace", "").FullName())
}

func TestContactPhonesAndEmails(t *testing.T) {
	t.Run("entries keep insertion order and duplicates", func(t *testing.T) {
		c := NewContact(1, "Ada", "Lovelace", "Work")
		c.AddPhone("Mobile", "555-1111")
		c.AddPhone("Home", "555-2222")
		c.AddPhone("Mobile", "555-1111")
		c.AddEmail("Work", "ada@example.org")

		assert.Equal(t, []Phone{
			{Type: "Mobile", Number: "555-1111"},
			{Type: "Home", Number: "555-2222"},
			{Type: "Mobile", Number: "555-1111"},
		}, c.Phones())
		assert.Equal(t, []Email{{Type: "Work", Address: "ada@example.org"}}, c.Emails())
	})

	t.Run("clear empties only the selected list", func(t *testing.T) {
		c := NewContact(1, "Ada", "Lovelace", "Work")
		c.AddPhone("Mobile", "555-1111")
		c.AddEmail("Work", "ada@example.org")

		c.ClearPhones()
		assert.Empty(t, c.Phones())
		assert.Len(t, c.Emails(), 1)

		c.ClearEmails()
		assert.Empty(t, c.Emails())
	})

	t.Run("accessors return copies", func(t *testing.T) {
		c := NewContact(1, "Ada", "Lovelace", "Work")
		c.AddPhone("Mobile", "555-1111")

		phones := c.Phones()
		phones[0].Number = "changed"

		assert.Equal(t, "555-1111", c.Phones()[0].Number)
	})

	t.Run("empty and odd-looking values are accepted", func(t *testing.T) {
		c := NewContact(1, "", "", "")
		c.AddPhone("", "not a number")
		c.AddEmail("", "")

		assert.Len(t, c.Phones(), 1)
		assert.Len(t, c.Emails(), 1)
	})
}

func TestContactUpdate(t *testing.T) {
	c := NewContact(4, "Bob", "Lee", "Friend")
	c.AddPhone("Mobile", "555-1111")

	c.Update("Robert", "Lee", "Work")

	assert.Equal(t, 4, c.ID())
	assert.Equal(t, "Robert", c.FirstName())
	assert.Equal(t, "Lee", c.LastName())
	assert.Equal(t, "Work", c.Category())
	assert.Len(t, c.Phones(), 1, "update must not touch phones")

	c.Update("Robert", "Lee", "Work")
	assert.Equal(t, "Robert", c.FirstName())
}

func TestContactWithID(t *testing.T) {
	c := NewContact(3, "Ada", "Lovelace", "Work")
	c.AddPhone("Mobile", "555-1111")

	cp := c.WithID(9)
	assert.Equal(t, 9, cp.ID())
	assert.Equal(t, 3, c.ID())
	assert.Equal(t, c.FullName(), cp.FullName())
	assert.Equal(t, c.Phones(), cp.Phones())

	cp.AddPhone("Work", "555-2222")
	assert.Len(t, c.Phones(), 1, "copy must not share entries with its source")
}
