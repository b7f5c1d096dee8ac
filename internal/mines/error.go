package mines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrOutOfBounds          = errors.New("coordinates out of bounds")

	// ErrIllegalMove is the parent of every rejection that leaves the
	// board untouched; match with errors.Is.
	ErrIllegalMove  = errors.New("illegal move")
	ErrGameOver     = fmt.Errorf("%w: game is over", ErrIllegalMove)
	ErrCellRevealed = fmt.Errorf("%w: cell is already revealed", ErrIllegalMove)
	ErrCellFlagged  = fmt.Errorf("%w: cell is flagged", ErrIllegalMove)
)
