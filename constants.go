package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeModal
	ModeConfirm
)

type Screen int

const (
	ScreenQuestion Screen = iota
	ScreenPuzzle
	ScreenVideo
	ScreenGallery
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmShuffle
)

type SelectResult int

const (
	SelectIgnored SelectResult = iota
	SelectMarked
	SelectCleared
	SelectSwapped
	SelectSolved
)

const (
	gridSize  = 3
	tileCount = gridSize * gridSize
	noTile    = -1

	minTileWidth = 8
	maxTileWidth = 24
	cardWidth    = 24
	cardHeight   = 5
	cardsPerRow  = 3
	boardTop     = 4 // title, progress dots, status line, blank line
	boardLeft    = 2
	galleryTop   = boardTop
	galleryLeft  = boardLeft
	footerLines  = 3
	maxUndoDepth = 64
)
