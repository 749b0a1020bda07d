package main

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"
)

func (m *model) openCard(index int) {
	if index < 0 || index >= len(m.cards) {
		return
	}
	m.mode = ModeModal
	m.modalCard = index
	m.cardCursor = index
	m.layoutModal()
	m.logger.Debug("Card opened", zap.String("card", m.cards[index].Key))
}

// closeModal hands focus back to the card that opened the modal.
func (m *model) closeModal() {
	if m.modalCard >= 0 && m.modalCard < len(m.cards) {
		m.cardCursor = m.modalCard
	}
	m.modalCard = -1
	m.mode = ModeNormal
}

// setCards swaps in a new card list. An open modal follows its card by key
// and closes when the card is gone.
func (m *model) setCards(cards []Card) {
	openKey := ""
	if m.mode == ModeModal && m.modalCard >= 0 && m.modalCard < len(m.cards) {
		openKey = m.cards[m.modalCard].Key
	}
	m.cards = cards

	if m.mode == ModeModal {
		m.modalCard = cardIndex(cards, openKey)
		if m.modalCard < 0 {
			m.closeModal()
		} else {
			m.cardCursor = m.modalCard
			m.layoutModal()
		}
	}
	if m.cardCursor >= len(m.cards) {
		m.cardCursor = 0
	}
}

func cardIndex(cards []Card, key string) int {
	if key == "" {
		return -1
	}
	for i, card := range cards {
		if card.Key == key {
			return i
		}
	}
	return -1
}

func (m *model) modalSize() (int, int) {
	if m.width <= 0 || m.height <= 0 {
		return 60, 12
	}
	w := clamp(m.width-12, 30, 72)
	h := clamp(m.height-18, 4, 20)
	return w, h
}

func (m *model) layoutModal() {
	if m.modalCard < 0 || m.modalCard >= len(m.cards) {
		return
	}
	w, h := m.modalSize()
	if m.renderer == nil || m.wrapWidth != w {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(w),
		)
		if err != nil {
			m.logger.Warn("Markdown renderer unavailable", zap.Error(err))
		} else {
			m.renderer = r
			m.wrapWidth = w
		}
	}

	text := m.cards[m.modalCard].Text
	if m.renderer != nil {
		if out, err := m.renderer.Render(text); err == nil {
			text = strings.Trim(out, "\n")
		}
	}

	m.viewport = viewport.New(w, h)
	m.viewport.SetContent(text)
}

func (m *model) handleModalKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.closeModal()
		return nil
	case key.Matches(msg, m.keys.Copy):
		m.copyCard()
		return nil
	case key.Matches(msg, m.keys.Restart):
		m.restart()
		return nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

func (m *model) copyCard() {
	card := m.cards[m.modalCard]
	if err := clipboard.WriteAll(card.Title + "\n\n" + card.Text); err != nil {
		m.errorMessage = "Clipboard unavailable"
		m.logger.Warn("Clipboard write failed", zap.Error(err))
		return
	}
	m.successMessage = "Copied \"" + card.Title + "\" to the clipboard"
}

// cardTeaser is the first readable line of the card text with markdown
// markers stripped.
func cardTeaser(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "#>-*+ ")
		line = strings.NewReplacer("**", "", "__", "", "*", "", "`", "").Replace(line)
		if line != "" {
			return line
		}
	}
	return ""
}

func (m model) renderCard(index int) string {
	card := m.cards[index]
	inner := cardWidth - 2
	lines := []string{
		titleStyle.Render(ansi.Truncate(card.Title, inner, "…")),
		mutedStyle.Render(ansi.Truncate(card.Label, inner, "…")),
		"",
		ansi.Truncate(cardTeaser(card.Text), inner, "…"),
	}
	style := cardStyle
	if index == m.cardCursor {
		style = cardFocusedStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m model) renderGallery() string {
	rows := make([]string, 0, (len(m.cards)+cardsPerRow-1)/cardsPerRow)
	for start := 0; start < len(m.cards); start += cardsPerRow {
		end := start + cardsPerRow
		if end > len(m.cards) {
			end = len(m.cards)
		}
		cells := make([]string, 0, cardsPerRow)
		for i := start; i < end; i++ {
			cells = append(cells, m.renderCard(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m model) renderModal() string {
	card := m.cards[m.modalCard]
	w, _ := m.modalSize()

	parts := []string{titleStyle.Render(card.Title)}
	if card.Label != "" {
		parts = append(parts, labelStyle.Render(card.Label))
	}
	if card.Picture != nil {
		cols := clamp(w/2, 8, 32)
		parts = append(parts, "", strings.Join(renderHalfBlocks(card.Picture, cols, cols/2), "\n"))
	}
	parts = append(parts, "", m.viewport.View())
	if m.successMessage != "" {
		parts = append(parts, doneStyle.Render(m.successMessage))
	} else if m.errorMessage != "" {
		parts = append(parts, errorStyle.Render(m.errorMessage))
	}

	box := modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height-footerLines, lipgloss.Center, lipgloss.Center, box)
}
