package main

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.th.BG)
	g.drawHeader(screen)
	for y := range g.board.Height {
		for x := range g.board.Width {
			g.drawCell(screen, x, y)
		}
	}
	if g.board.GameOver() {
		g.drawOverlay(screen)
	}
}

func (g *game) drawHeader(screen *ebiten.Image) {
	w := screen.Bounds().Dx()
	vector.StrokeLine(screen, 0, headerHeight, float32(w), headerHeight, 1, g.th.Grid, false)

	counter := fmt.Sprintf("Mines: %d", g.board.MinesRemaining())
	text.Draw(screen, counter, g.font, 8, 20, g.th.Text)

	hint := "R: restart"
	b := text.BoundString(g.font, hint)
	text.Draw(screen, hint, g.font, w-b.Dx()-8, 20, g.th.Grid)
}

func (g *game) drawCell(screen *ebiten.Image, x, y int) {
	var (
		c  = g.board.At(x, y)
		cs = g.cellSize
		px = x * cs
		py = headerHeight + y*cs
	)

	if c.Revealed {
		vector.DrawFilledRect(screen, float32(px), float32(py), float32(cs), float32(cs), g.th.CellRevealed, false)
		vector.StrokeRect(screen, float32(px), float32(py), float32(cs), float32(cs), 1, g.th.Grid, false)

		if c.Mine {
			vector.DrawFilledCircle(screen, float32(px+cs/2), float32(py+cs/2), float32(cs)/3, g.th.Mine, false)
			return
		}
		if c.Adjacent > 0 {
			drawTextCentered(screen, strconv.Itoa(c.Adjacent), g.font, px, py+(cs-13)/2, cs, numberColors[c.Adjacent])
		}
		return
	}

	drawRaisedRect(screen, px, py, cs, cs, g.th)

	if c.Flagged {
		g.drawFlag(screen, px, py)
		// cross out flags that turned out to be wrong
		if g.board.GameOver() && !c.Mine {
			vector.StrokeLine(screen, float32(px+4), float32(py+4), float32(px+cs-4), float32(py+cs-4), 2, g.th.WrongFlag, false)
			vector.StrokeLine(screen, float32(px+cs-4), float32(py+4), float32(px+4), float32(py+cs-4), 2, g.th.WrongFlag, false)
		}
	}
}

// drawFlag draws a pole with a pennant, scaled to the cell.
func (g *game) drawFlag(screen *ebiten.Image, px, py int) {
	var (
		cs   = float32(g.cellSize)
		x    = float32(px)
		y    = float32(py)
		pole = x + cs/2
	)
	vector.DrawFilledRect(screen, pole, y+cs/5, 2, cs*3/5, g.th.Text, false)
	vector.StrokeLine(screen, pole, y+cs/5, x+cs*4/5, y+cs*2/5, 2, g.th.Flag, false)
	vector.StrokeLine(screen, x+cs*4/5, y+cs*2/5, pole, y+cs*3/5, 2, g.th.Flag, false)
	vector.StrokeLine(screen, pole, y+cs/5, pole, y+cs*3/5, 2, g.th.Flag, false)
	vector.DrawFilledRect(screen, x+cs/4, y+cs*4/5-2, cs/2, 3, g.th.Text, false)
}

func (g *game) drawOverlay(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), g.th.Overlay, false)

	msg, clr := "GAME OVER", g.th.Loss
	if g.board.Victory() {
		msg, clr = "VICTORY!", g.th.Win
	}
	drawTextCentered(screen, msg, g.font, 0, h/2-20, w, clr)
	drawTextCentered(screen, "Press R or Click to Restart", g.font, 0, h/2+8, w, g.th.White)
}

func drawRaisedRect(screen *ebiten.Image, x, y, w, h int, th theme) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), th.BG, false)
	vector.StrokeLine(screen, float32(x), float32(y), float32(x+w), float32(y), 2, th.Light, false)
	vector.StrokeLine(screen, float32(x), float32(y), float32(x), float32(y+h), 2, th.Light, false)
	vector.StrokeLine(screen, float32(x+w), float32(y), float32(x+w), float32(y+h), 2, th.Dark, false)
	vector.StrokeLine(screen, float32(x), float32(y+h), float32(x+w), float32(y+h), 2, th.Dark, false)
}

func drawTextCentered(screen *ebiten.Image, s string, f font.Face, x, y, w int, clr color.Color) {
	b := text.BoundString(f, s)
	text.Draw(screen, s, f, x+(w-b.Dx())/2, y+13, clr)
}
