package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

var declineMessages = []string{
	"No worries. The yes button will still be here.",
	"Are you sure? It is a very small puzzle.",
	"Nine tiles. That is all. Promise.",
	"The puzzle is patient. Yes is right there.",
}

func (m *model) showScreen(screen Screen) {
	if !m.nav.Show(screen) {
		m.logger.Warn("Unknown screen", zap.Stringer("screen", screen))
		return
	}
	m.logger.Info("Screen shown", zap.Stringer("screen", screen), zap.Int("step", m.nav.Step()))
}

func (m *model) accept() {
	m.declineShown = false
	m.showScreen(ScreenPuzzle)
	m.resetPuzzle()
}

// decline leaves the question screen in place and only shows feedback.
func (m *model) decline() {
	m.declineShown = true
	m.declines++
	m.logger.Debug("Question declined", zap.Int("declines", m.declines))
}

func (m *model) declineMessage() string {
	if m.declines == 0 {
		return ""
	}
	return declineMessages[(m.declines-1)%len(declineMessages)]
}

func (m *model) resetPuzzle() {
	m.puzzle.Shuffle()
	m.boardCursor = 0
	m.status = m.puzzle.statusFor(SelectIgnored)
	board := m.puzzle.Board()
	m.logger.Info("Puzzle shuffled", zap.Ints("board", board[:]))
}

// requestShuffle asks before throwing away progress when confirmations are on.
func (m *model) requestShuffle() {
	if m.config.Confirmations && m.puzzle.Moves() > 0 && !m.puzzle.IsSolved() {
		m.mode = ModeConfirm
		m.confirmAction = ConfirmShuffle
		return
	}
	m.resetPuzzle()
}

func (m *model) selectTile(index int) {
	result := m.puzzle.Select(index)
	if result == SelectIgnored {
		return
	}
	m.status = m.puzzle.statusFor(result)
	if result == SelectSwapped || result == SelectSolved {
		m.afterSwap()
	}
}

func (m *model) afterSwap() {
	if m.puzzle.IsSolved() {
		m.status = m.puzzle.statusFor(SelectSolved)
		m.logger.Info("Puzzle solved", zap.Int("moves", m.puzzle.Moves()))
	}
}

// continueFromPuzzle is gated on the solved board; it moves on to the video
// when one is configured, otherwise straight to the gallery.
func (m *model) continueFromPuzzle() tea.Cmd {
	if !m.puzzle.CanContinue() {
		m.errorMessage = "Solve the puzzle to continue"
		return nil
	}
	next := m.nav.After(ScreenPuzzle)
	m.showScreen(next)
	if next == ScreenVideo && m.video != nil {
		m.videoCache = make(map[videoCacheKey][]string)
		return m.video.Start()
	}
	return nil
}

func (m *model) finishVideo() {
	if m.video != nil {
		m.video.Stop()
	}
	m.showScreen(ScreenGallery)
}

// restart goes back to the question from anywhere in the flow.
func (m *model) restart() {
	if m.video != nil {
		m.video.Stop()
	}
	if m.mode == ModeModal {
		m.closeModal()
	}
	m.mode = ModeNormal
	m.declineShown = false
	m.yesFocused = true
	m.help.ShowAll = false
	m.showScreen(ScreenQuestion)
}

func (m *model) savePostcard() {
	if !m.puzzle.IsSolved() {
		m.errorMessage = "Solve the puzzle first to save a postcard"
		return
	}
	path, err := m.config.GetSavePath(postcardName(time.Now()))
	if err != nil {
		m.errorMessage = fmt.Sprintf("Postcard failed: %v", err)
		m.logger.Error("Save directory unavailable", zap.String("dir", m.config.SaveDirectory), zap.Error(err))
		return
	}
	if err := exportPostcard(path, m.picture, m.puzzle.Moves(), m.config.Recipient); err != nil {
		m.errorMessage = fmt.Sprintf("Postcard failed: %v", err)
		m.logger.Error("Postcard export failed", zap.String("path", path), zap.Error(err))
		return
	}
	m.successMessage = fmt.Sprintf("Saved postcard to %s", path)
	m.logger.Info("Postcard saved", zap.String("path", path))
}
