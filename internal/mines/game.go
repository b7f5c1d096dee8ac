package mines

import "github.com/sirupsen/logrus"

// Reveal opens the cell at (x, y). Opening a mine ends the game in
// defeat and exposes that mine alone. Opening a cell with no adjacent
// mines floods outwards over connected zero cells and their numbered
// boundary. Opening the last safe cell wins.
func (b *Board) Reveal(x, y int) error {
	if !b.InBounds(x, y) {
		return ErrOutOfBounds
	}
	if b.gameOver {
		return ErrGameOver
	}
	i := y*b.Width + x
	switch c := &b.cells[i]; {
	case c.Revealed:
		return ErrCellRevealed
	case c.Flagged:
		return ErrCellFlagged
	case c.Mine:
		c.Revealed = true
		b.revealed++
		b.gameOver = true
		Log.WithFields(logrus.Fields{"x": x, "y": y}).Debug("mine hit")
		return nil
	}

	// Work-list flood fill. A cell can be queued twice when two of its
	// zero neighbors are processed before it; the Revealed check on pop
	// keeps it from being counted twice.
	queue := []int{i}
	opened := 0
	for len(queue) > 0 {
		j := queue[0]
		queue = queue[1:]
		c := &b.cells[j]
		if c.Revealed {
			continue
		}
		c.Revealed = true
		b.revealed++
		opened++
		if c.Adjacent != 0 {
			continue
		}
		for n := range b.neighbors(j) {
			if nc := b.cells[n]; !nc.Revealed && !nc.Flagged {
				queue = append(queue, n)
			}
		}
	}
	Log.WithFields(logrus.Fields{"x": x, "y": y, "opened": opened}).Debug("cells opened")

	if b.revealed == b.Width*b.Height-b.MineCount {
		b.gameOver = true
		b.victory = true
	}
	return nil
}

// ToggleFlag flips the flag on an unrevealed cell.
func (b *Board) ToggleFlag(x, y int) error {
	if !b.InBounds(x, y) {
		return ErrOutOfBounds
	}
	if b.gameOver {
		return ErrGameOver
	}
	c := &b.cells[y*b.Width+x]
	if c.Revealed {
		return ErrCellRevealed
	}
	c.Flagged = !c.Flagged
	if c.Flagged {
		b.flags++
	} else {
		b.flags--
	}
	return nil
}

// Chord opens every unflagged hidden neighbor of a revealed cell,
// provided exactly Adjacent of its neighbors carry flags. Does nothing
// otherwise. A wrong flag makes this lose the game.
func (b *Board) Chord(x, y int) error {
	if !b.InBounds(x, y) {
		return ErrOutOfBounds
	}
	if b.gameOver {
		return ErrGameOver
	}
	i := y*b.Width + x
	c := b.cells[i]
	if !c.Revealed {
		return nil
	}
	flagged := 0
	var hidden []int
	for j := range b.neighbors(i) {
		switch n := b.cells[j]; {
		case n.Flagged:
			flagged++
		case !n.Revealed:
			hidden = append(hidden, j)
		}
	}
	if flagged != c.Adjacent {
		return nil
	}
	for _, j := range hidden {
		if b.gameOver {
			break
		}
		// a flood from an earlier neighbor may have opened this one
		if b.cells[j].Revealed {
			continue
		}
		if err := b.Reveal(j%b.Width, j/b.Width); err != nil {
			return err
		}
	}
	return nil
}

// Forfeit ends the game in defeat and exposes the remaining mines.
func (b *Board) Forfeit() {
	if b.gameOver {
		return
	}
	b.gameOver = true
	b.RevealMines()
}

// RevealMines exposes every unflagged mine on a finished board so the
// player can see what they missed. It does nothing while the game is
// still in progress.
func (b *Board) RevealMines() {
	if !b.gameOver {
		return
	}
	for i := range b.cells {
		if c := &b.cells[i]; c.Mine && !c.Flagged && !c.Revealed {
			c.Revealed = true
			b.revealed++
		}
	}
}

func (b *Board) GameOver() bool { return b.gameOver }

func (b *Board) Victory() bool { return b.victory }

// RevealedCount reports how many cells have been opened, mines
// included once the game is over.
func (b *Board) RevealedCount() int { return b.revealed }

func (b *Board) FlagCount() int { return b.flags }

// MinesRemaining is the classic counter: mines minus flags placed. It
// goes negative when the player overflags.
func (b *Board) MinesRemaining() int { return b.MineCount - b.flags }
