package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Log.SetLevel(logrus.DebugLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// testBoard assembles a board with mines at the given row-major
// indices, bypassing random placement.
func testBoard(t *testing.T, width, height int, mineAt ...int) *Board {
	t.Helper()
	b := &Board{GameParams: GameParams{
		Width:     width,
		Height:    height,
		MineCount: len(mineAt),
	}}
	b.cells = make([]Cell, width*height)
	for _, i := range mineAt {
		b.cells[i].Mine = true
	}
	b.computeAdjacency()
	return b
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params GameParams
	}{
		{name: "9x9(10)", params: GameParams{Width: 9, Height: 9, MineCount: 10}},
		{name: "16x16(40)", params: GameParams{Width: 16, Height: 16, MineCount: 40}},
		{name: "30x16(99)", params: GameParams{Width: 30, Height: 16, MineCount: 99}},
		{name: "20x15(30)", params: GameParams{Width: 20, Height: 15, MineCount: 30}},
		{name: "1x1(0)", params: GameParams{Width: 1, Height: 1, MineCount: 0}},
		{name: "5x5(24)", params: GameParams{Width: 5, Height: 5, MineCount: 24}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			b, err := New(test.params, testRand())
			require.NoError(t, err)

			mines := 0
			for i, c := range b.cells {
				assert.False(t, c.Revealed, "cell %d", i)
				assert.False(t, c.Flagged, "cell %d", i)
				if c.Mine {
					mines++
				}
			}
			assert.Equal(t, test.params.MineCount, mines)
			assert.False(t, b.GameOver())
			assert.False(t, b.Victory())
			assert.Equal(t, 0, b.RevealedCount())
			assert.Equal(t, 0, b.FlagCount())
			assert.Equal(t, test.params.MineCount, b.MinesRemaining())
		})
	}
}

func TestNewInvalidConfiguration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params GameParams
	}{
		{name: "zero width", params: GameParams{Width: 0, Height: 5, MineCount: 1}},
		{name: "zero height", params: GameParams{Width: 5, Height: 0, MineCount: 1}},
		{name: "negative dimensions", params: GameParams{Width: -3, Height: -3, MineCount: 1}},
		{name: "negative mines", params: GameParams{Width: 5, Height: 5, MineCount: -1}},
		{name: "mines fill the grid", params: GameParams{Width: 5, Height: 5, MineCount: 25}},
		{name: "more mines than cells", params: GameParams{Width: 5, Height: 5, MineCount: 26}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			b, err := New(test.params, testRand())
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
			assert.Nil(t, b)
		})
	}
}

// naiveAdjacency recounts neighboring mines with plain bounds checks.
func naiveAdjacency(b *Board, x, y int) (count int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx >= 0 && nx < b.Width && ny >= 0 && ny < b.Height &&
				b.cells[ny*b.Width+nx].Mine {
				count++
			}
		}
	}
	return
}

func TestAdjacency(t *testing.T) {
	t.Parallel()

	b, err := New(GameParams{Width: 30, Height: 16, MineCount: 99}, testRand())
	require.NoError(t, err)

	for y := range b.Height {
		for x := range b.Width {
			require.Equal(t, naiveAdjacency(b, x, y), b.At(x, y).Adjacent,
				"cell %d:%d", x, y)
		}
	}
}

func TestAdjacencyCountsForMines(t *testing.T) {
	t.Parallel()

	b := testBoard(t, 3, 3, 0, 1)
	assert.Equal(t, 1, b.At(0, 0).Adjacent)
	assert.Equal(t, 1, b.At(1, 0).Adjacent)
	assert.Equal(t, 2, b.At(1, 1).Adjacent)
	assert.Equal(t, 0, b.At(2, 2).Adjacent)
}

func TestNeighbors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		width, height int
		i             int
		want          []int
	}{
		{name: "3x3 corner", width: 3, height: 3, i: 0, want: []int{1, 3, 4}},
		{name: "3x3 edge", width: 3, height: 3, i: 1, want: []int{0, 2, 3, 4, 5}},
		{name: "3x3 center", width: 3, height: 3, i: 4, want: []int{0, 1, 2, 3, 5, 6, 7, 8}},
		{name: "1x1", width: 1, height: 1, i: 0, want: nil},
		{name: "5x1 middle", width: 5, height: 1, i: 2, want: []int{1, 3}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			b := testBoard(t, test.width, test.height)
			var got []int
			for j := range b.neighbors(test.i) {
				got = append(got, j)
			}
			assert.ElementsMatch(t, test.want, got)
		})
	}
}

func TestAt(t *testing.T) {
	t.Parallel()

	b := testBoard(t, 3, 3, 4)
	assert.True(t, b.At(1, 1).Mine)
	assert.Equal(t, 1, b.At(0, 0).Adjacent)
	assert.Equal(t, Cell{}, b.At(-1, 0))
	assert.Equal(t, Cell{}, b.At(3, 0))
	assert.Equal(t, Cell{}, b.At(0, 3))
}

func TestReset(t *testing.T) {
	t.Parallel()

	r := testRand()
	b, err := New(GameParams{Width: 9, Height: 9, MineCount: 10}, r)
	require.NoError(t, err)

	require.NoError(t, b.ToggleFlag(0, 0))
	require.NoError(t, b.Reveal(4, 4))

	b.Reset(r)

	assert.False(t, b.GameOver())
	assert.False(t, b.Victory())
	assert.Equal(t, 0, b.RevealedCount())
	assert.Equal(t, 0, b.FlagCount())

	mines := 0
	for i, c := range b.cells {
		assert.False(t, c.Revealed, "cell %d", i)
		assert.False(t, c.Flagged, "cell %d", i)
		if c.Mine {
			mines++
		}
	}
	assert.Equal(t, 10, mines)
}

func TestString(t *testing.T) {
	t.Parallel()

	b := testBoard(t, 3, 3, 8)
	require.NoError(t, b.Reveal(0, 0))
	assert.Equal(t, ". . .\n. 1 1\n. 1 -\n", b.String())

	b2 := testBoard(t, 2, 2, 3)
	require.NoError(t, b2.ToggleFlag(0, 1))
	require.NoError(t, b2.Reveal(0, 0))
	assert.Equal(t, "1 -\nF -\n", b2.String())

	b2.Forfeit()
	assert.Equal(t, "1 -\nX *\n", b2.String())
}
