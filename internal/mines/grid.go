package mines

import "strings"

// cellRune maps one cell to the character shown to the player. Wrong
// flags are crossed out once the game is over.
func (b *Board) cellRune(c Cell) rune {
	switch {
	case b.gameOver && c.Flagged && !c.Mine:
		return 'X'
	case c.Flagged:
		return 'F'
	case !c.Revealed:
		return '-'
	case c.Mine:
		return '*'
	case c.Adjacent == 0:
		return '.'
	default:
		return rune('0' + c.Adjacent)
	}
}

// String renders the player's view of the field, one row per line.
func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.Height {
		for x := range b.Width {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(b.cellRune(b.cells[y*b.Width+x]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
