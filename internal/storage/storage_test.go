package storage

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/jacksmith/cb/internal/book"
	"github.com/jacksmith/cb/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv keeps the developer's environment out of config resolution.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvDataFile, "")
	t.Setenv(EnvDefaultCategory, "")
}

func TestInit(t *testing.T) {
	clearEnv(t)

	t.Run("init in empty directory creates contact file", func(t *testing.T) {
		dir := t.TempDir()

		s, err := Init(dir)
		require.NoError(t, err)
		require.NotNil(t, s)

		info, err := os.Stat(filepath.Join(dir, "contacts.dat"))
		require.NoError(t, err)
		assert.Equal(t, int64(0), info.Size())
	})

	t.Run("init creates missing directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "book")

		_, err := Init(dir)
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(dir, "contacts.dat"))
		require.NoError(t, err)
	})

	t.Run("init twice returns error", func(t *testing.T) {
		dir := t.TempDir()

		_, err := Init(dir)
		require.NoError(t, err)

		_, err = Init(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("init honours configured data file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".cbconfig.yaml"), []byte("data_file: people.txt\n"), 0644))

		_, err := Init(dir)
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(dir, "people.txt"))
		require.NoError(t, err)
	})
}

func TestOpen(t *testing.T) {
	t.Run("open existing directory succeeds", func(t *testing.T) {
		dir := t.TempDir()

		s, err := Open(dir)
		require.NoError(t, err)
		require.NotNil(t, s)
		assert.Equal(t, dir, s.Root())
	})

	t.Run("open non-existent directory returns error", func(t *testing.T) {
		s, err := Open("/nonexistent/path")
		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("open a file returns error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

		s, err := Open(path)
		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "not a directory")
	})
}

func TestDataPath(t *testing.T) {
	clearEnv(t)

	t.Run("default is contacts.dat in root", func(t *testing.T) {
		dir := t.TempDir()
		s, err := Open(dir)
		require.NoError(t, err)

		path, err := s.DataPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "contacts.dat"), path)
	})

	t.Run("absolute data_file is used as is", func(t *testing.T) {
		dir := t.TempDir()
		abs := filepath.Join(t.TempDir(), "elsewhere.dat")
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".cbconfig.yaml"), []byte("data_file: "+abs+"\n"), 0644))

		s, err := Open(dir)
		require.NoError(t, err)

		path, err := s.DataPath()
		require.NoError(t, err)
		assert.Equal(t, abs, path)
	})
}

func TestLoadBook(t *testing.T) {
	clearEnv(t)

	t.Run("missing file yields empty book", func(t *testing.T) {
		s, err := Open(t.TempDir())
		require.NoError(t, err)

		b, err := s.LoadBook()
		require.NoError(t, err)
		assert.Equal(t, 0, b.Len())
	})

	t.Run("loads contacts and logs skipped lines", func(t *testing.T) {
		dir := t.TempDir()
		content := "1|Ada|Lovelace|Work|PHONES:|EMAILS:\nbroken\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "contacts.dat"), []byte(content), 0644))

		var logs bytes.Buffer
		s, err := Open(dir)
		require.NoError(t, err)
		s.WithLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))

		b, err := s.LoadBook()
		require.NoError(t, err)
		assert.Equal(t, 1, b.Len())
		assert.Contains(t, logs.String(), "skipped malformed line")
		assert.Contains(t, logs.String(), "line=2")
	})

	t.Run("logs when starting empty", func(t *testing.T) {
		var logs bytes.Buffer
		s, err := Open(t.TempDir())
		require.NoError(t, err)
		s.WithLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelInfo})))

		_, err = s.LoadBook()
		require.NoError(t, err)
		assert.Contains(t, logs.String(), "starting empty")
	})
}

func TestSaveBook(t *testing.T) {
	clearEnv(t)

	t.Run("save then load", func(t *testing.T) {
		s, err := Init(t.TempDir())
		require.NoError(t, err)

		b := book.New()
		c := model.NewContact(b.NextID(), "Bob", "Lee", "Friend")
		c.AddPhone("Mobile", "555-1111")
		b.Add(c)
		require.NoError(t, s.SaveBook(b))

		loaded, err := s.LoadBook()
		require.NoError(t, err)
		require.Equal(t, 1, loaded.Len())
		got, ok := loaded.FindByID(1)
		require.True(t, ok)
		assert.Equal(t, c.RecordString(), got.RecordString())
	})

	t.Run("unwritable data file returns error", func(t *testing.T) {
		dir := t.TempDir()
		cfg := "data_file: " + filepath.Join(dir, "no-such-dir", "contacts.dat") + "\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".cbconfig.yaml"), []byte(cfg), 0644))

		s, err := Open(dir)
		require.NoError(t, err)

		b := book.New()
		b.Add(model.NewContact(1, "Ada", "Lovelace", "Work"))

		err = s.SaveBook(b)
		require.Error(t, err)
		assert.Equal(t, 1, b.Len())
	})
}

func TestInspect(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "contacts.dat"), []byte("1|A|B|C\n2|x\n"), 0644))

	s, err := Open(dir)
	require.NoError(t, err)

	b, res, err := s.Inspect()
	require.NoError(t, err)
	assert.Equal(t, 1, b.Len())
	assert.Len(t, res.Skipped, 1)
}
