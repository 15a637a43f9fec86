package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	clearEnv(t)

	t.Run("no .cbconfig.yaml returns defaults", func(t *testing.T) {
		s, err := Open(t.TempDir())
		require.NoError(t, err)

		cfg, err := s.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, DefaultDataFile, cfg.DataFile)
		assert.Equal(t, DefaultDefaultCategory, cfg.DefaultCategory)
		assert.Equal(t, DefaultDefaultPhoneType, cfg.DefaultPhoneType)
		assert.Equal(t, DefaultDefaultEmailType, cfg.DefaultEmailType)
	})

	t.Run("full .cbconfig.yaml loads all values", func(t *testing.T) {
		dir := t.TempDir()
		s, err := Open(dir)
		require.NoError(t, err)

		configContent := `data_file: people.dat
default_category: Friend
default_phone_type: Home
default_email_type: Work
`
		err = os.WriteFile(filepath.Join(dir, ".cbconfig.yaml"), []byte(configContent), 0644)
		require.NoError(t, err)

		cfg, err := s.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "people.dat", cfg.DataFile)
		assert.Equal(t, "Friend", cfg.DefaultCategory)
		assert.Equal(t, "Home", cfg.DefaultPhoneType)
		assert.Equal(t, "Work", cfg.DefaultEmailType)
	})

	t.Run("partial .cbconfig.yaml merges with defaults", func(t *testing.T) {
		dir := t.TempDir()
		s, err := Open(dir)
		require.NoError(t, err)

		err = os.WriteFile(filepath.Join(dir, ".cbconfig.yaml"), []byte("default_category: Work\n"), 0644)
		require.NoError(t, err)

		cfg, err := s.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "Work", cfg.DefaultCategory)
		assert.Equal(t, DefaultDataFile, cfg.DataFile)                 // default
		assert.Equal(t, DefaultDefaultPhoneType, cfg.DefaultPhoneType) // default
	})

	t.Run("blank data_file falls back to default", func(t *testing.T) {
		dir := t.TempDir()
		s, err := Open(dir)
		require.NoError(t, err)

		err = os.WriteFile(filepath.Join(dir, ".cbconfig.yaml"), []byte("data_file: \"\"\n"), 0644)
		require.NoError(t, err)

		cfg, err := s.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, DefaultDataFile, cfg.DataFile)
	})

	t.Run("invalid YAML returns error with filename", func(t *testing.T) {
		dir := t.TempDir()
		s, err := Open(dir)
		require.NoError(t, err)

		configContent := `data_file: [invalid yaml
this is not valid
`
		err = os.WriteFile(filepath.Join(dir, ".cbconfig.yaml"), []byte(configContent), 0644)
		require.NoError(t, err)

		_, err = s.LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), ".cbconfig.yaml")
	})

	t.Run("empty .cbconfig.yaml returns defaults", func(t *testing.T) {
		dir := t.TempDir()
		s, err := Open(dir)
		require.NoError(t, err)

		err = os.WriteFile(filepath.Join(dir, ".cbconfig.yaml"), []byte(""), 0644)
		require.NoError(t, err)

		cfg, err := s.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})
}

func TestLoadConfigEnv(t *testing.T) {
	t.Run(".env file overrides config file", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		s, err := Open(dir)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(filepath.Join(dir, ".cbconfig.yaml"), []byte("default_category: Work\n"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CB_DEFAULT_CATEGORY=Family\nCB_DATA_FILE=family.dat\n"), 0644))

		cfg, err := s.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "Family", cfg.DefaultCategory)
		assert.Equal(t, "family.dat", cfg.DataFile)
	})

	t.Run("process environment overrides .env", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvDataFile, "from-env.dat")
		dir := t.TempDir()
		s, err := Open(dir)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CB_DATA_FILE=from-dotenv.dat\n"), 0644))

		cfg, err := s.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "from-env.dat", cfg.DataFile)
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "contacts.dat", cfg.DataFile)
	assert.Equal(t, "", cfg.DefaultCategory)
	assert.Equal(t, "Mobile", cfg.DefaultPhoneType)
	assert.Equal(t, "Personal", cfg.DefaultEmailType)
}

func TestConfigPath(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, ".cbconfig.yaml"), s.ConfigPath())
}
