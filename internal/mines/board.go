package mines

import (
	"fmt"
	"iter"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Cell is a single square of the playing field.
type Cell struct {
	Mine     bool `json:"mine"`
	Revealed bool `json:"revealed"`
	Flagged  bool `json:"flagged"`
	Adjacent int  `json:"adjacent"`
}

type GameParams struct {
	Width     int `json:"width" schema:"width"`
	Height    int `json:"height" schema:"height"`
	MineCount int `json:"mines" schema:"mines"`
}

func (p GameParams) Validate() error {
	if p.Width < 1 || p.Height < 1 {
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d",
			ErrInvalidConfiguration, p.Width, p.Height)
	}
	if p.MineCount < 0 || p.MineCount >= p.Width*p.Height {
		return fmt.Errorf("%w: mine count must be within [0, %d), got %d",
			ErrInvalidConfiguration, p.Width*p.Height, p.MineCount)
	}
	return nil
}

func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d, %d mines", p.Width, p.Height, p.MineCount)
}

// Board is the full state of a single game. The zero value is not
// playable; construct with [New].
type Board struct {
	GameParams
	cells    []Cell
	revealed int
	flags    int
	gameOver bool
	victory  bool
}

// New deals a board with exactly params.MineCount mines placed by r,
// every cell equally likely to hold one.
func New(params GameParams, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	b := &Board{GameParams: params}
	b.Reset(r)
	return b, nil
}

// Reset deals a fresh field with the same parameters, discarding all
// progress.
func (b *Board) Reset(r *rand.Rand) {
	b.cells = make([]Cell, b.Width*b.Height)
	b.revealed = 0
	b.flags = 0
	b.gameOver = false
	b.victory = false
	b.placeMines(r)
	b.computeAdjacency()
	Log.WithFields(logrus.Fields{
		"width":  b.Width,
		"height": b.Height,
		"mines":  b.MineCount,
	}).Debug("board dealt")
}

// placeMines draws MineCount distinct cells from the candidate list by
// swapping each pick out of the sampled range.
func (b *Board) placeMines(r *rand.Rand) {
	candidates := make([]int, len(b.cells))
	for i := range candidates {
		candidates[i] = i
	}
	k := len(candidates)
	for range b.MineCount {
		j := r.IntN(k)
		b.cells[candidates[j]].Mine = true
		k--
		candidates[j] = candidates[k]
	}
}

func (b *Board) computeAdjacency() {
	for i := range b.cells {
		n := 0
		for j := range b.neighbors(i) {
			if b.cells[j].Mine {
				n++
			}
		}
		b.cells[i].Adjacent = n
	}
}

// neighbors yields the indices of the up-to-eight cells surrounding i.
func (b *Board) neighbors(i int) iter.Seq[int] {
	x, y := i%b.Width, i/b.Width
	return func(yield func(int) bool) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := x+dx, y+dy
				if nx < 0 || nx >= b.Width || ny < 0 || ny >= b.Height {
					continue
				}
				if !yield(ny*b.Width + nx) {
					return
				}
			}
		}
	}
}

func (b *Board) InBounds(x, y int) bool {
	return 0 <= x && x < b.Width && 0 <= y && y < b.Height
}

// At returns a copy of the cell at (x, y), or a zero Cell when the
// coordinates fall outside the field.
func (b *Board) At(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.Width+x]
}
