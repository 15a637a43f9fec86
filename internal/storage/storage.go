// Package storage locates the contact file on disk and loads and saves it.
package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jacksmith/cb/internal/book"
	"github.com/jacksmith/cb/internal/logger"
)

// Storage provides access to a data directory holding the contact file
// and its optional .cbconfig.yaml and .env.
type Storage struct {
	root   string // path to the data directory
	logger *slog.Logger
}

// Open returns a Storage for the given directory.
// Returns error if the directory does not exist. A missing contact file is
// fine: the book simply starts empty.
func Open(dir string) (*Storage, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("data directory %s not found", dir)
		}
		return nil, fmt.Errorf("failed to access %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	return &Storage{root: dir, logger: logger.Discard()}, nil
}

// Init creates the data directory if needed and an empty contact file.
// Returns error if the contact file already exists.
func Init(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	s := &Storage{root: dir, logger: logger.Discard()}
	path, err := s.DataPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("contact file %s already exists", path)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to check for %s: %w", path, err)
	}

	if err := book.New().Save(path); err != nil {
		return nil, fmt.Errorf("failed to create contact file: %w", err)
	}

	return s, nil
}

// WithLogger sets the logger used for load/save diagnostics and returns s.
func (s *Storage) WithLogger(l *slog.Logger) *Storage {
	if l != nil {
		s.logger = l
	}
	return s
}

// Root returns the data directory.
func (s *Storage) Root() string {
	return s.root
}

// DataPath returns the path to the contact file, as configured.
func (s *Storage) DataPath() (string, error) {
	cfg, err := s.LoadConfig()
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(cfg.DataFile) {
		return cfg.DataFile, nil
	}
	return filepath.Join(s.root, cfg.DataFile), nil
}

// LoadBook reads the contact file into a new book.
// A missing file yields an empty book. Malformed lines are skipped and logged.
func (s *Storage) LoadBook() (*book.Book, error) {
	path, err := s.DataPath()
	if err != nil {
		return nil, err
	}

	b := book.New()
	res, err := b.Load(path)
	if err != nil {
		return nil, err
	}

	switch {
	case res.OpenErr == nil:
		s.logger.Debug("loaded contacts", "path", path, "count", res.Loaded)
	case errors.Is(res.OpenErr, os.ErrNotExist):
		s.logger.Info("no contact file found, starting empty", "path", path)
	default:
		s.logger.Warn("could not open contact file, starting empty", "path", path, "err", res.OpenErr)
	}
	for _, skipped := range res.Skipped {
		s.logger.Warn("skipped malformed line", "path", path, "line", skipped.Number, "err", skipped.Err)
	}

	return b, nil
}

// SaveBook writes the book to the contact file, replacing its contents.
func (s *Storage) SaveBook(b *book.Book) error {
	path, err := s.DataPath()
	if err != nil {
		return err
	}

	if err := b.Save(path); err != nil {
		s.logger.Error("could not save contacts", "path", path, "err", err)
		return err
	}

	s.logger.Debug("saved contacts", "path", path, "count", b.Len())
	return nil
}

// Inspect is LoadBook without logging, returning the load summary as well.
// Used by integrity checks that need the skipped lines.
func (s *Storage) Inspect() (*book.Book, book.LoadResult, error) {
	path, err := s.DataPath()
	if err != nil {
		return nil, book.LoadResult{}, err
	}

	b := book.New()
	res, err := b.Load(path)
	if err != nil {
		return nil, res, err
	}
	return b, res, nil
}
