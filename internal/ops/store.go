// Package ops implements the contact book operations shared by the
// one-shot commands and the interactive menu.
package ops

import (
	"github.com/jacksmith/cb/internal/book"
	"github.com/jacksmith/cb/internal/storage"
)

// Store defines the persistence interface required by business logic operations.
// The concrete implementation is storage.Storage; the interactive menu uses an
// in-memory store that keeps one book for the whole session.
type Store interface {
	LoadBook() (*book.Book, error)
	SaveBook(b *book.Book) error
	LoadConfig() (*storage.Config, error)
}

// Inspector is implemented by stores that can report the lines skipped
// while loading.
type Inspector interface {
	Inspect() (*book.Book, book.LoadResult, error)
}

// inspect loads the book along with its skipped lines when s supports it.
func inspect(s Store) (*book.Book, []book.SkippedLine, error) {
	if in, ok := s.(Inspector); ok {
		b, res, err := in.Inspect()
		if err != nil {
			return nil, nil, err
		}
		return b, res.Skipped, nil
	}
	b, err := s.LoadBook()
	return b, nil, err
}
