package engine

import "reversi-local/types"

// Size is the side length of the board.
const Size = 8

// Board holds the grid and the side to move. Grid is indexed [y][x].
// Only the rule functions in this package mutate it.
type Board struct {
	grid [Size][Size]types.Color
	turn types.Color
}

// NewBoard returns a board in the standard starting position.
func NewBoard() *Board {
	b := &Board{}
	Reset(b)
	return b
}

// InBounds reports whether (x, y) lies on the board.
func InBounds(x, y int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size
}

// At returns the contents of cell (x, y). Out-of-range cells read as Empty.
func (b *Board) At(x, y int) types.Color {
	if !InBounds(x, y) {
		return types.Empty
	}
	return b.grid[y][x]
}

// Turn returns the side to move.
func (b *Board) Turn() types.Color {
	return b.turn
}

// Count returns the number of cells holding c.
func (b *Board) Count(c types.Color) int {
	n := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b.grid[y][x] == c {
				n++
			}
		}
	}
	return n
}

// Scores returns both stone counts.
func (b *Board) Scores() Scores {
	return Scores{Black: b.Count(types.Black), White: b.Count(types.White)}
}

func (b *Board) place(x, y int, c types.Color) {
	b.grid[y][x] = c
}

// rows copies the grid into a fresh slice-of-slices for a render snapshot.
func (b *Board) rows() [][]types.Color {
	out := make([][]types.Color, Size)
	for y := range out {
		row := make([]types.Color, Size)
		copy(row, b.grid[y][:])
		out[y] = row
	}
	return out
}
