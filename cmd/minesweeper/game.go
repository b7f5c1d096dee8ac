package main

import (
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"minesweeper/internal/mines"
)

const headerHeight = 32

type game struct {
	board    *mines.Board
	rnd      *rand.Rand
	cellSize int
	th       theme
	font     font.Face
}

func newGame(board *mines.Board, rnd *rand.Rand, cellSize int) *game {
	return &game{
		board:    board,
		rnd:      rnd,
		cellSize: cellSize,
		th:       classic,
		font:     basicfont.Face7x13,
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.board.Width * g.cellSize, headerHeight + g.board.Height*g.cellSize
}

// cellAtCursor maps a window position to board coordinates, skipping
// the header strip.
func (g *game) cellAtCursor(mx, my int) (int, int, bool) {
	if mx < 0 || my < headerHeight {
		return 0, 0, false
	}
	x := mx / g.cellSize
	y := (my - headerHeight) / g.cellSize
	if !g.board.InBounds(x, y) {
		return 0, 0, false
	}
	return x, y, true
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.board.Reset(g.rnd)
		return nil
	}

	leftClick := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	rightClick := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)

	// once the game ends, any click deals a fresh board
	if g.board.GameOver() {
		if leftClick || rightClick {
			g.board.Reset(g.rnd)
		}
		return nil
	}

	mx, my := ebiten.CursorPosition()
	x, y, ok := g.cellAtCursor(mx, my)
	if !ok {
		return nil
	}

	switch {
	case leftClick:
		g.handleReveal(x, y)
	case rightClick:
		if err := g.board.ToggleFlag(x, y); err != nil {
			log.Debug("flag rejected: ", err)
		}
	}
	return nil
}

// handleReveal opens a hidden cell, or chords a revealed one. A lost
// game exposes the remaining mines.
func (g *game) handleReveal(x, y int) {
	var err error
	if g.board.At(x, y).Revealed {
		err = g.board.Chord(x, y)
	} else {
		err = g.board.Reveal(x, y)
	}
	if err != nil {
		log.Debug("move rejected: ", err)
		return
	}
	if g.board.GameOver() && !g.board.Victory() {
		g.board.RevealMines()
	}
}
