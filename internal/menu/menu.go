// Package menu implements the interactive numbered menu.
//
// A session loads the book once, runs every operation against that copy in
// memory, and writes it back when the user exits or input ends.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jacksmith/cb/internal/book"
	"github.com/jacksmith/cb/internal/cli"
	"github.com/jacksmith/cb/internal/logger"
	"github.com/jacksmith/cb/internal/model"
	"github.com/jacksmith/cb/internal/ops"
	"github.com/jacksmith/cb/internal/storage"
)

// Menu choices, in the order they are numbered.
var choices = []string{"add", "search", "delete", "update", "list", "exit"}

var searchChoices = []string{"id", "last name"}

// errEOF ends the session when input runs out mid-prompt.
var errEOF = errors.New("end of input")

// sessionStore serves a single in-memory book to ops. Saving is deferred
// to the end of the session.
type sessionStore struct {
	book *book.Book
	cfg  *storage.Config
}

func (s *sessionStore) LoadBook() (*book.Book, error) { return s.book, nil }
func (s *sessionStore) SaveBook(*book.Book) error { return nil }
func (s *sessionStore) LoadConfig() (*storage.Config, error) { return s.cfg, nil }

// Session is one run of the interactive menu.
type Session struct {
	backing ops.Store
	store   *sessionStore
	in      *bufio.Scanner
	out     io.Writer
	logger  *slog.Logger
}

// New loads the book from store and prepares a session reading answers
// from in and writing prompts to out.
func New(store ops.Store, in io.Reader, out io.Writer) (*Session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	b, err := store.LoadBook()
	if err != nil {
		return nil, err
	}

	return &Session{
		backing: store,
		store:   &sessionStore{book: b, cfg: cfg},
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  logger.Discard(),
	}, nil
}

// WithLogger sets the logger for session diagnostics and returns s.
func (s *Session) WithLogger(l *slog.Logger) *Session {
	if l != nil {
		s.logger = l
	}
	return s
}

// Run shows the menu until the user exits or input ends, then saves.
func (s *Session) Run() error {
	fmt.Fprintf(s.out, "Loaded %s.\n", cli.Plural(s.store.book.Len(), "contact"))

	runErr := s.loop()

	if err := s.backing.SaveBook(s.store.book); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Saved %s.\n", cli.Plural(s.store.book.Len(), "contact"))

	if errors.Is(runErr, errEOF) {
		return nil
	}
	return runErr
}

func (s *Session) loop() error {
	for {
		s.showMenu()
		answer, err := s.prompt(fmt.Sprintf("Choice (1-%d): ", len(choices)))
		if err != nil {
			return err
		}

		choice, err := cli.MatchChoice(answer, choices)
		if err != nil {
			fmt.Fprintln(s.out, cli.FormatError(err))
			continue
		}
		s.logger.Debug("menu choice", "choice", choice)

		switch choice {
		case "add":
			err = s.add()
		case "search":
			err = s.search()
		case "delete":
			err = s.remove()
		case "update":
			err = s.update()
		case "list":
			err = s.list()
		case "exit":
			return nil
		}

		if errors.Is(err, errEOF) {
			return err
		}
		if err != nil {
			fmt.Fprintln(s.out, cli.FormatError(err))
		}
	}
}

func (s *Session) showMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, cli.Bold("Contact Book"))
	labels := []string{"Add contact", "Search contacts", "Delete contact", "Update contact", "List contacts", "Exit"}
	for i, label := range labels {
		fmt.Fprintf(s.out, "  %d. %s\n", i+1, label)
	}
}

// prompt writes label and returns the next input line, trimmed.
func (s *Session) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", errEOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// confirm asks a y/n question. Anything but y or yes is no.
func (s *Session) confirm(label string) (bool, error) {
	answer, err := s.prompt(label + " (y/n): ")
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}

// promptID asks for a contact id.
func (s *Session) promptID(label string) (int, error) {
	answer, err := s.prompt(label)
	if err != nil {
		return 0, err
	}
	return model.ParseID(answer)
}

func (s *Session) add() error {
	fmt.Fprintln(s.out, cli.Bold("Add contact"))

	var in ops.ContactInput
	var err error
	if in.FirstName, err = s.prompt("First name: "); err != nil {
		return err
	}
	if in.LastName, err = s.prompt("Last name: "); err != nil {
		return err
	}
	if in.Category, err = s.prompt("Category (Family/Friend/Work): "); err != nil {
		return err
	}
	if in.Phones, err = s.readPhones(); err != nil {
		return err
	}
	if in.Emails, err = s.readEmails(); err != nil {
		return err
	}

	c, err := ops.AddContact(s.store, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Added %s %s\n", cli.Cyan(model.FormatID(c.ID())), c.FullName())
	return nil
}

func (s *Session) readPhones() ([]model.Phone, error) {
	phones := []model.Phone{}
	for {
		more, err := s.confirm("Add phone number?")
		if err != nil || !more {
			return phones, err
		}
		typ, err := s.prompt("  Type (Mobile/Home/Work): ")
		if err != nil {
			return nil, err
		}
		number, err := s.prompt("  Number: ")
		if err != nil {
			return nil, err
		}
		phones = append(phones, model.Phone{Type: typ, Number: number})
	}
}

func (s *Session) readEmails() ([]model.Email, error) {
	emails := []model.Email{}
	for {
		more, err := s.confirm("Add email address?")
		if err != nil || !more {
			return emails, err
		}
		typ, err := s.prompt("  Type (Personal/Work): ")
		if err != nil {
			return nil, err
		}
		address, err := s.prompt("  Address: ")
		if err != nil {
			return nil, err
		}
		emails = append(emails, model.Email{Type: typ, Address: address})
	}
}

func (s *Session) search() error {
	fmt.Fprintln(s.out, cli.Bold("Search contacts"))
	for i, label := range searchChoices {
		fmt.Fprintf(s.out, "  %d. By %s\n", i+1, label)
	}
	answer, err := s.prompt("Choice: ")
	if err != nil {
		return err
	}
	by, err := cli.MatchChoice(answer, searchChoices)
	if err != nil {
		return err
	}

	if by == "id" {
		id, err := s.promptID("Contact id: ")
		if err != nil {
			return err
		}
		c, err := ops.GetContact(s.store, id)
		if err != nil {
			return err
		}
		cli.PrintContact(s.out, c)
		return nil
	}

	last, err := s.prompt("Last name: ")
	if err != nil {
		return err
	}
	found, err := ops.FindContacts(s.store, last)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		fmt.Fprintf(s.out, "No contacts with last name %q.\n", last)
		return nil
	}
	fmt.Fprintf(s.out, "Found %s:\n", cli.Plural(len(found), "contact"))
	for _, c := range found {
		cli.PrintContact(s.out, c)
	}
	return nil
}

func (s *Session) remove() error {
	fmt.Fprintln(s.out, cli.Bold("Delete contact"))
	id, err := s.promptID("Contact id: ")
	if err != nil {
		return err
	}
	if err := ops.DeleteContact(s.store, id); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Deleted %s\n", model.FormatID(id))
	return nil
}

func (s *Session) update() error {
	fmt.Fprintln(s.out, cli.Bold("Update contact"))
	id, err := s.promptID("Contact id: ")
	if err != nil {
		return err
	}
	c, err := ops.GetContact(s.store, id)
	if err != nil {
		return err
	}

	var changes ops.ContactChanges
	if changes.FirstName, err = s.keep("First name", c.FirstName()); err != nil {
		return err
	}
	if changes.LastName, err = s.keep("Last name", c.LastName()); err != nil {
		return err
	}
	if changes.Category, err = s.keep("Category", c.Category()); err != nil {
		return err
	}

	replace, err := s.confirm("Replace phone numbers?")
	if err != nil {
		return err
	}
	if replace {
		phones, err := s.readPhones()
		if err != nil {
			return err
		}
		changes.Phones = &phones
	}

	replace, err = s.confirm("Replace email addresses?")
	if err != nil {
		return err
	}
	if replace {
		emails, err := s.readEmails()
		if err != nil {
			return err
		}
		changes.Emails = &emails
	}

	if _, err := ops.EditContact(s.store, id, changes); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Updated %s\n", model.FormatID(id))
	return nil
}

// keep prompts with the current value shown. An empty answer keeps it and
// yields nil.
func (s *Session) keep(label, current string) (*string, error) {
	answer, err := s.prompt(fmt.Sprintf("%s [%s]: ", label, current))
	if err != nil || answer == "" {
		return nil, err
	}
	return &answer, nil
}

func (s *Session) list() error {
	contacts, err := ops.ListContacts(s.store, ops.ContactFilter{})
	if err != nil {
		return err
	}
	if len(contacts) == 0 {
		fmt.Fprintln(s.out, "No contacts.")
		return nil
	}
	cli.ContactTable(contacts).Render(s.out)
	return nil
}
