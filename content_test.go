package main

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleContent = `
zeta:
  title: Last one
  text: "See you **soon**"
alpha:
  title: First one
  text: Thanks for the help
  label: work
  image: heart.png
`

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{255, 0, 0, 255})
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestParseContentSortsByKey(t *testing.T) {
	cards, err := parseContent([]byte(sampleContent))
	require.NoError(t, err)
	require.Len(t, cards, 2)

	assert.Equal(t, "alpha", cards[0].Key)
	assert.Equal(t, "First one", cards[0].Title)
	assert.Equal(t, "work", cards[0].Label)
	assert.Equal(t, "heart.png", cards[0].Image)
	assert.Equal(t, "zeta", cards[1].Key)
}

func TestParseContentAcceptsJSON(t *testing.T) {
	cards, err := parseContent([]byte(`{"b": {"text": "two"}, "a": {"title": "One", "text": "one"}}`))
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "One", cards[0].Title)
	assert.Equal(t, "b", cards[1].Title, "title falls back to the key")
}

func TestParseContentRejectsEmptyAndInvalid(t *testing.T) {
	_, err := parseContent([]byte(""))
	assert.Error(t, err)

	_, err = parseContent([]byte("- just\n- a list\n"))
	assert.Error(t, err)
}

func TestLoadContentFromFileResolvesImages(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "heart.png"))
	source := filepath.Join(dir, "cards.yaml")
	require.NoError(t, os.WriteFile(source, []byte(sampleContent), 0644))

	cards, err := loadContent(context.Background(), source)
	require.NoError(t, err)

	require.NotNil(t, cards[0].Picture)
	assert.Equal(t, 4, cards[0].Picture.Bounds().Dx())
	assert.Nil(t, cards[1].Picture)
}

func TestLoadContentMissingImageIsSoft(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "cards.yaml")
	require.NoError(t, os.WriteFile(source, []byte(sampleContent), 0644))

	cards, err := loadContent(context.Background(), source)
	require.NoError(t, err)
	assert.Nil(t, cards[0].Picture)
}

func TestLoadContentMissingFile(t *testing.T) {
	_, err := loadContent(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadContentOverHTTP(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/notes/cards.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleContent))
	})
	mux.HandleFunc("/notes/heart.png", func(w http.ResponseWriter, r *http.Request) {
		img := image.NewRGBA(image.Rect(0, 0, 2, 2))
		png.Encode(w, img)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	cards, err := loadContent(context.Background(), server.URL+"/notes/cards.yaml")
	require.NoError(t, err)
	require.Len(t, cards, 2)
	require.NotNil(t, cards[0].Picture)
	assert.Equal(t, 2, cards[0].Picture.Bounds().Dx())
}

func TestLoadContentHTTPError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, err := loadContent(context.Background(), server.URL+"/cards.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestLoadContentCmdReportsFailure(t *testing.T) {
	msg := loadContentCmd(filepath.Join(t.TempDir(), "missing.yaml"))()
	_, ok := msg.(contentErrMsg)
	assert.True(t, ok)
}

func TestResolveRef(t *testing.T) {
	assert.Equal(t, "/data/img/a.png", resolveRef("/data/cards.yaml", "img/a.png"))
	assert.Equal(t, "/abs/a.png", resolveRef("/data/cards.yaml", "/abs/a.png"))
	assert.Equal(t, "https://x.test/n/a.png", resolveRef("https://x.test/n/cards.yaml", "a.png"))
	assert.Equal(t, "https://cdn.test/a.png", resolveRef("/data/cards.yaml", "https://cdn.test/a.png"))
}

func TestBuiltinCardsHaveContent(t *testing.T) {
	cards := builtinCards()
	require.NotEmpty(t, cards)
	seen := map[string]bool{}
	for _, c := range cards {
		assert.NotEmpty(t, c.Title)
		assert.NotEmpty(t, c.Text)
		assert.NotEmpty(t, cardTeaser(c.Text))
		assert.False(t, seen[c.Key], "duplicate key %s", c.Key)
		seen[c.Key] = true
	}
}

func TestCardTeaser(t *testing.T) {
	assert.Equal(t, "the move", cardTeaser("- the move\n- the bad week"))
	assert.Equal(t, "it is good", cardTeaser("\n> **it** is good"))
	assert.Equal(t, "", cardTeaser("\n\n"))
}
