package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultTileWidth = 16

// tileSizeFor picks the largest tile that fits the window. Tiles keep square
// pixels: a cell is one pixel wide and two (half-block) pixels tall.
func tileSizeFor(width, height int) (int, int) {
	if width <= 0 || height <= 0 {
		return defaultTileWidth, defaultTileWidth / 2
	}
	w := (width-boardLeft*2)/gridSize - 2
	h := (height-boardTop-footerLines)/gridSize - 2
	if w > 2*h {
		w = 2 * h
	}
	if w > maxTileWidth {
		w = maxTileWidth
	}
	if w < minTileWidth {
		w = minTileWidth
	}
	w -= w % 2
	return w, w / 2
}

func (m *model) resizeTiles() {
	w, h := tileSizeFor(m.width, m.height)
	if w == m.tileW && h == m.tileH && m.tiles[0] != nil {
		return
	}
	m.tileW, m.tileH = w, h
	for piece, img := range m.pieces {
		m.tiles[piece] = renderHalfBlocks(img, w, h)
	}
}

func (m model) tileContent(piece int) string {
	if m.showNumbers {
		label := titleStyle.Render(strconv.Itoa(piece + 1))
		return lipgloss.Place(m.tileW, m.tileH, lipgloss.Center, lipgloss.Center, label)
	}
	return strings.Join(m.tiles[piece], "\n")
}

func (m model) renderBoard() string {
	board := m.puzzle.Board()
	solved := m.puzzle.IsSolved()
	selected := m.puzzle.Selected()

	rows := make([]string, 0, gridSize)
	for r := 0; r < gridSize; r++ {
		cells := make([]string, 0, gridSize)
		for c := 0; c < gridSize; c++ {
			index := r*gridSize + c
			style := tileStyle
			switch {
			case solved:
				style = tileSolvedStyle
			case index == selected:
				style = tileSelectedStyle
			case index == m.boardCursor:
				style = tileCursorStyle
			}
			cells = append(cells, style.Render(m.tileContent(board[index])))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

var puzzleButtons = []string{"Shuffle", "Continue"}

func (m model) renderPuzzleButtons() string {
	continueStyle := buttonDisabledStyle
	if m.puzzle.CanContinue() {
		continueStyle = buttonFocusedStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		buttonStyle.Render(puzzleButtons[0]),
		" ",
		continueStyle.Render(puzzleButtons[1]),
	)
}

func (m *model) puzzleButtonAt(x, y int) int {
	top := boardTop + gridSize*(m.tileH+2)
	return buttonAt(x, y, boardLeft, top, puzzleButtons)
}
