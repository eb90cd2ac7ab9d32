package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reversi-local/types"
)

// boardFrom builds a board from up to eight rows of 'B', 'W' and '.'.
// Missing rows are empty.
func boardFrom(t *testing.T, turn types.Color, rows ...string) *Board {
	t.Helper()
	require.LessOrEqual(t, len(rows), Size)
	b := &Board{turn: turn}
	for y, row := range rows {
		require.Len(t, row, Size, "row %d", y)
		for x, r := range row {
			switch r {
			case 'B':
				b.grid[y][x] = types.Black
			case 'W':
				b.grid[y][x] = types.White
			}
		}
	}
	return b
}

const (
	fullB = "BBBBBBBB"
	fullW = "WWWWWWWW"
	empty = "........"
)

func TestNewBoardLayout(t *testing.T) {
	// When: a new board is created
	b := NewBoard()

	// Then: the four centre cells hold the standard layout and Black moves first
	assert.Equal(t, types.White, b.At(3, 3))
	assert.Equal(t, types.White, b.At(4, 4))
	assert.Equal(t, types.Black, b.At(4, 3))
	assert.Equal(t, types.Black, b.At(3, 4))
	assert.Equal(t, types.Black, b.Turn())
	assert.Equal(t, Scores{Black: 2, White: 2}, b.Scores())
	assert.Equal(t, 60, b.Count(types.Empty))
}

func TestBoardAtOutOfRange(t *testing.T) {
	b := NewBoard()

	assert.Equal(t, types.Empty, b.At(-1, 0))
	assert.Equal(t, types.Empty, b.At(0, 8))
	assert.False(t, InBounds(8, 0))
	assert.True(t, InBounds(7, 7))
}

func TestEvaluateMove(t *testing.T) {
	t.Run("opening move flips one stone", func(t *testing.T) {
		// Given: the opening position
		b := NewBoard()

		// When: Black probes (2,3)
		ev := EvaluateMove(b, 2, 3)

		// Then: the move is legal and flips exactly (3,3)
		assert.True(t, ev.Legal)
		assert.Equal(t, []types.BoardPos{{X: 3, Y: 3}}, ev.Flips)
	})

	t.Run("no bracket is illegal", func(t *testing.T) {
		b := NewBoard()

		ev := EvaluateMove(b, 0, 0)

		assert.False(t, ev.Legal)
		assert.Empty(t, ev.Flips)
	})

	t.Run("occupied cell is illegal", func(t *testing.T) {
		b := NewBoard()

		ev := EvaluateMove(b, 3, 3)

		assert.False(t, ev.Legal)
		assert.Empty(t, ev.Flips)
	})

	t.Run("out of range is illegal", func(t *testing.T) {
		b := NewBoard()

		assert.False(t, EvaluateMove(b, -1, 3).Legal)
		assert.False(t, EvaluateMove(b, 8, 3).Legal)
	})

	t.Run("run reaching the edge is not captured", func(t *testing.T) {
		b := boardFrom(t, types.Black, "WW......")

		assert.False(t, EvaluateMove(b, 2, 0).Legal)
	})

	t.Run("run ending on an empty cell is not captured", func(t *testing.T) {
		b := boardFrom(t, types.Black, ".W.B....", empty, empty)

		assert.False(t, EvaluateMove(b, 0, 0).Legal)
	})

	t.Run("flips follow direction then distance order", func(t *testing.T) {
		// Given: three capturable runs around (2,0)
		b := boardFrom(t, types.Black,
			"BW.WB...",
			"..W.....",
			"..B.....",
		)

		ev := EvaluateMove(b, 2, 0)

		require.True(t, ev.Legal)
		assert.Equal(t, []types.BoardPos{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 3, Y: 0}}, ev.Flips)
	})

	t.Run("longer run is listed nearest first", func(t *testing.T) {
		b := boardFrom(t, types.Black, "BWW.....")

		ev := EvaluateMove(b, 3, 0)

		require.True(t, ev.Legal)
		assert.Equal(t, []types.BoardPos{{X: 2, Y: 0}, {X: 1, Y: 0}}, ev.Flips)
	})
}

func TestEvaluateIsPure(t *testing.T) {
	// Given: the opening position
	b := NewBoard()
	before := *b

	// When: the same cell is evaluated twice
	first := EvaluateMove(b, 2, 3)
	second := EvaluateMove(b, 2, 3)

	// Then: the results are identical and the board is untouched
	assert.Equal(t, first, second)
	assert.Equal(t, before, *b)
}

func TestFlipsDependOnColor(t *testing.T) {
	b := NewBoard()

	assert.True(t, evaluateFor(b, 2, 3, types.Black).Legal)
	assert.False(t, evaluateFor(b, 2, 3, types.White).Legal)

	white := evaluateFor(b, 2, 4, types.White)
	require.True(t, white.Legal)
	assert.Equal(t, []types.BoardPos{{X: 3, Y: 4}}, white.Flips)
	assert.False(t, evaluateFor(b, 2, 4, types.Black).Legal)
}

func TestApplyMove(t *testing.T) {
	t.Run("legal move places and flips", func(t *testing.T) {
		b := NewBoard()

		ok := ApplyMove(b, 2, 3)

		require.True(t, ok)
		assert.Equal(t, types.Black, b.At(2, 3))
		assert.Equal(t, types.Black, b.At(3, 3))
		assert.Equal(t, Scores{Black: 4, White: 1}, b.Scores())
		// Then: the turn is not advanced by ApplyMove
		assert.Equal(t, types.Black, b.Turn())
	})

	t.Run("illegal move changes nothing", func(t *testing.T) {
		b := NewBoard()
		before := *b

		assert.False(t, ApplyMove(b, 0, 0))
		assert.False(t, ApplyMove(b, 3, 3))
		assert.Equal(t, before, *b)
	})
}

func TestLegalMoves(t *testing.T) {
	b := NewBoard()

	assert.Equal(t, []types.BoardPos{
		{X: 3, Y: 2}, {X: 2, Y: 3}, {X: 5, Y: 4}, {X: 4, Y: 5},
	}, LegalMoves(b, types.Black))
	assert.True(t, HasAnyLegalMove(b, types.Black))
	assert.True(t, HasAnyLegalMove(b, types.White))
	assert.Len(t, LegalMoves(b, types.White), 4)
}

func TestAdvanceTurn(t *testing.T) {
	t.Run("continue hands the turn over", func(t *testing.T) {
		b := NewBoard()
		require.True(t, ApplyMove(b, 2, 3))

		res := AdvanceTurnOrDetectEnd(b)

		assert.Equal(t, Continue, res.State)
		assert.Equal(t, types.White, b.Turn())
		assert.Equal(t, Scores{}, res.Scores)
	})

	t.Run("pass keeps the mover", func(t *testing.T) {
		// Given: Black can capture at (2,0) and afterwards White is stuck
		b := boardFrom(t, types.Black,
			"BW......",
			empty,
			"BW......",
			empty, empty, empty, empty,
			".......W",
		)

		// When: Black plays (2,0)
		require.True(t, ApplyMove(b, 2, 0))
		assert.Equal(t, types.Black, b.At(1, 0))
		res := AdvanceTurnOrDetectEnd(b)

		// Then: White has no reply, Black keeps the turn
		assert.Equal(t, Pass, res.State)
		assert.Equal(t, types.Black, b.Turn())
		assert.False(t, HasAnyLegalMove(b, types.White))
		assert.True(t, HasAnyLegalMove(b, types.Black))
	})

	t.Run("neither side can move ends the game", func(t *testing.T) {
		// Given: a full board
		b := boardFrom(t, types.White,
			fullB, fullB, fullB, fullB,
			"BBWWWWWW",
			fullW, fullW, fullW,
		)

		res := AdvanceTurnOrDetectEnd(b)

		assert.Equal(t, GameOver, res.State)
		assert.Equal(t, Scores{Black: 34, White: 30}, res.Scores)
		assert.Equal(t, BlackWins, Winner(res.Scores))
		// Then: the turn is left with the side that just moved
		assert.Equal(t, types.White, b.Turn())
	})

	t.Run("double pass with empty cells ends the game", func(t *testing.T) {
		// Given: the pass position after Black's reply at (2,2)
		b := boardFrom(t, types.Black,
			"BBB.....",
			empty,
			"BW......",
			empty, empty, empty, empty,
			".......W",
		)
		require.True(t, ApplyMove(b, 2, 2))

		res := AdvanceTurnOrDetectEnd(b)

		// Then: the game ends although the board is not full
		assert.Equal(t, GameOver, res.State)
		assert.Equal(t, Scores{Black: 6, White: 1}, res.Scores)
		assert.Positive(t, b.Count(types.Empty))
	})
}

func TestReset(t *testing.T) {
	fresh := NewBoard()

	tests := map[string]*Board{
		"mid-game": func() *Board {
			b := NewBoard()
			ApplyMove(b, 2, 3)
			AdvanceTurnOrDetectEnd(b)
			return b
		}(),
		"after pass": boardFrom(t, types.Black, "BBB.....", empty, "BW......"),
		"game over":  boardFrom(t, types.White, fullB, fullB, fullB, fullB, "BBWWWWWW", fullW, fullW, fullW),
	}
	for name, b := range tests {
		t.Run(name, func(t *testing.T) {
			Reset(b)
			assert.Equal(t, *fresh, *b)

			// Then: resetting twice is the same as once
			Reset(b)
			assert.Equal(t, *fresh, *b)
		})
	}
}

func TestWinner(t *testing.T) {
	assert.Equal(t, BlackWins, Winner(Scores{Black: 34, White: 30}))
	assert.Equal(t, WhiteWins, Winner(Scores{Black: 10, White: 54}))
	assert.Equal(t, Draw, Winner(Scores{Black: 32, White: 32}))

	assert.Equal(t, "Black (first) wins!", BlackWins.Label())
	assert.Equal(t, "White (second) wins!", WhiteWins.Label())
	assert.Equal(t, "Draw!", Draw.Label())
}
