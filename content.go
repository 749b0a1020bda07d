package main

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"
)

const (
	contentTimeout  = 10 * time.Second
	maxContentBytes = 4 << 20
	contentFallback = "Could not load the notes right now. The cards below are still here for you."
)

// Card is one gratitude note in the gallery.
type Card struct {
	Key     string      `yaml:"-"`
	Title   string      `yaml:"title"`
	Text    string      `yaml:"text"`
	Image   string      `yaml:"image"`
	Label   string      `yaml:"label"`
	Picture image.Image `yaml:"-"`
}

type contentLoadedMsg struct {
	cards []Card
}

type contentErrMsg struct {
	err error
}

func builtinCards() []Card {
	return []Card{
		{Key: "patience", Title: "For your patience", Label: "every day",
			Text: "For every time you waited while I figured it out.\n\nYou never made me feel **slow**."},
		{Key: "coffee", Title: "For the coffee", Label: "mornings",
			Text: "The second cup you made without asking.\n\nIt was always *exactly* right."},
		{Key: "laughs", Title: "For the laughs", Label: "always",
			Text: "For the jokes that only work between us, and the ones that did not work at all."},
		{Key: "help", Title: "For the late nights", Label: "when it mattered",
			Text: "You stayed up, you read the draft, you said:\n\n> it is good, ship it."},
		{Key: "showing-up", Title: "For showing up", Label: "no matter what",
			Text: "- the move\n- the bad week\n- the good news\n\nYou were there for all of it."},
		{Key: "rest", Title: "For everything else", Label: "thank you",
			Text: "The list is longer than this gallery. Consider this the *short* version."},
	}
}

// loadContentCmd fetches the external card mapping in the background.
func loadContentCmd(source string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), contentTimeout)
		defer cancel()

		cards, err := loadContent(ctx, source)
		if err != nil {
			return contentErrMsg{err: err}
		}
		return contentLoadedMsg{cards: cards}
	}
}

// loadContent reads a key -> {title, text, image, label} mapping from a file
// path or http(s) URL. YAML and JSON are both accepted.
func loadContent(ctx context.Context, source string) ([]Card, error) {
	data, err := readSource(ctx, source)
	if err != nil {
		return nil, err
	}
	cards, err := parseContent(data)
	if err != nil {
		return nil, fmt.Errorf("parse content %s: %w", source, err)
	}
	for i := range cards {
		if cards[i].Image == "" {
			continue
		}
		// A missing card picture only costs that card its image.
		if pic, err := loadCardPicture(ctx, source, cards[i].Image); err == nil {
			cards[i].Picture = pic
		}
	}
	return cards, nil
}

func parseContent(data []byte) ([]Card, error) {
	var mapping map[string]Card
	if err := yaml.Unmarshal(data, &mapping); err != nil {
		return nil, err
	}
	if len(mapping) == 0 {
		return nil, fmt.Errorf("no cards defined")
	}

	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cards := make([]Card, 0, len(keys))
	for _, k := range keys {
		card := mapping[k]
		card.Key = k
		if card.Title == "" {
			card.Title = k
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func readSource(ctx context.Context, source string) ([]byte, error) {
	if !isRemote(source) {
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("read content: %w", err)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", source, resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxContentBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	return data, nil
}

// resolveRef interprets ref relative to the content source it came from.
func resolveRef(source, ref string) string {
	if isRemote(ref) || filepath.IsAbs(ref) {
		return ref
	}
	if isRemote(source) {
		base, err := url.Parse(source)
		if err != nil {
			return ref
		}
		rel, err := url.Parse(ref)
		if err != nil {
			return ref
		}
		return base.ResolveReference(rel).String()
	}
	return filepath.Join(filepath.Dir(source), ref)
}

func loadCardPicture(ctx context.Context, source, ref string) (image.Image, error) {
	data, err := readSource(ctx, resolveRef(source, ref))
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode card image %s: %w", ref, err)
	}
	return img, nil
}
