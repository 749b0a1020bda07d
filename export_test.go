package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportPostcardWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postcard.png")

	require.NoError(t, exportPostcard(path, defaultPicture("Sam"), 7, "Sam"))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, pictureSize+48, img.Bounds().Dx())
	assert.Equal(t, pictureSize+48+56, img.Bounds().Dy())
}

func TestExportPostcardWithoutPicture(t *testing.T) {
	err := exportPostcard(filepath.Join(t.TempDir(), "x.png"), nil, 1, "")
	assert.Error(t, err)
}

func TestPostcardCaption(t *testing.T) {
	assert.Equal(t, "Solved in 1 move by Sam", postcardCaption(1, "Sam"))
	assert.Equal(t, "Solved in 12 moves", postcardCaption(12, ""))
	assert.Equal(t, "Thank you, Sam", postcardCaption(0, "Sam"))
	assert.Equal(t, "Thank you", postcardCaption(0, ""))
	assert.NotContains(t, postcardCaption(0, "Sam"), "Solved")
}

func TestPostcardName(t *testing.T) {
	at := time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "kudos-postcard-20260214-093000.png", postcardName(at))
}
