package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	config := loadConfig(filepath.Join(t.TempDir(), "nope"))
	assert.Equal(t, defaultConfig(), config)

	assert.Equal(t, defaultConfig(), loadConfig(""))
}

func TestLoadConfigParsesKeys(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
# greeting settings
Recipient = Sam
question = Got a second?
image = ~/pics/us.png
video=/tmp/clip.gif
content = https://example.com/cards.yaml
savedir = ~/postcards
confirmations = false
numbers = TRUE
logfile = /tmp/kudos.log
not a setting
`)

	config := loadConfig(path)

	assert.Equal(t, "Sam", config.Recipient)
	assert.Equal(t, "Got a second?", config.Question)
	assert.Equal(t, filepath.Join(home, "pics/us.png"), config.Image)
	assert.Equal(t, "/tmp/clip.gif", config.Video)
	assert.Equal(t, "https://example.com/cards.yaml", config.Content)
	assert.Equal(t, filepath.Join(home, "postcards"), config.SaveDirectory)
	assert.False(t, config.Confirmations)
	assert.True(t, config.ShowNumbers)
	assert.Equal(t, "/tmp/kudos.log", config.LogFile)
}

func TestLoadConfigMakesRelativePathsAbsolute(t *testing.T) {
	path := writeConfig(t, "content = cards.yaml\n")

	config := loadConfig(path)

	assert.True(t, filepath.IsAbs(config.Content))
	assert.Equal(t, "cards.yaml", filepath.Base(config.Content))
}

func TestGetSavePath(t *testing.T) {
	config := defaultConfig()
	path, err := config.GetSavePath("card.png")
	require.NoError(t, err)
	assert.Equal(t, "card.png", path)

	dir := filepath.Join(t.TempDir(), "out")
	config.SaveDirectory = dir
	path, err = config.GetSavePath("card.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "card.png"), path)
	assert.DirExists(t, dir)
}

func TestGetSavePathReportsUnusableDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	config := defaultConfig()
	config.SaveDirectory = filepath.Join(blocker, "out")
	_, err := config.GetSavePath("card.png")
	assert.Error(t, err)
}

func TestPrompt(t *testing.T) {
	config := defaultConfig()
	config.Recipient = "Ada"
	assert.Contains(t, config.prompt(), "Ada")

	config.Question = "Coffee?"
	assert.Equal(t, "Coffee?", config.prompt())
}
