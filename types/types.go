// Package types contains shared data structures for reversi-local.
package types

import "fmt"

// Color is the content of a board cell, or the side to move.
type Color uint8

const (
	Empty Color = iota
	Black
	White
)

// Opponent returns the other side. Empty has no opponent and maps to itself.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return "Empty"
}

// Phase of a game as seen by the renderer.
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhaseFinished Phase = "finished"
)

// BoardPos represents a position on the board. X is the column, Y the row.
type BoardPos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NoPos marks the absence of a position, e.g. no move played yet.
var NoPos = BoardPos{X: -1, Y: -1}

// String renders the position as a column letter and 1-based row, e.g. "c4".
func (p BoardPos) String() string {
	if p.X < 0 || p.Y < 0 {
		return "-"
	}
	return fmt.Sprintf("%c%d", rune('a'+p.X), p.Y+1)
}

// BoardState is a render snapshot of a Reversi board.
// Board is indexed as Board[y][x].
type BoardState struct {
	MoveNumber   int        `json:"move_number"`
	PlayerToMove Color      `json:"player_to_move"`
	Phase        Phase      `json:"phase"`
	Board        [][]Color  `json:"board"`
	Outcome      string     `json:"outcome"`
	LastMove     BoardPos   `json:"last_move"`
	BlackCount   int        `json:"black_count"`
	WhiteCount   int        `json:"white_count"`
	LegalMoves   []BoardPos `json:"legal_moves"`
}

// Finished returns true if the game is over.
func (b *BoardState) Finished() bool {
	return b.Phase == PhaseFinished
}

// Height returns the board height.
func (b *BoardState) Height() int {
	return len(b.Board)
}

// Width returns the board width.
func (b *BoardState) Width() int {
	if b.Height() == 0 {
		return 0
	}
	return len(b.Board[0])
}

// At returns the cell at (x, y), or Empty when out of range.
func (b *BoardState) At(x, y int) Color {
	if y < 0 || y >= b.Height() || x < 0 || x >= len(b.Board[y]) {
		return Empty
	}
	return b.Board[y][x]
}

// IsLegal reports whether (x, y) is among the snapshot's legal moves.
func (b *BoardState) IsLegal(x, y int) bool {
	for _, p := range b.LegalMoves {
		if p.X == x && p.Y == y {
			return true
		}
	}
	return false
}

// NewBoardState creates a new empty board of the given size.
func NewBoardState(size int) *BoardState {
	board := make([][]Color, size)
	for i := range board {
		board[i] = make([]Color, size)
	}
	return &BoardState{
		PlayerToMove: Black,
		Phase:        PhasePlaying,
		Board:        board,
		LastMove:     NoPos,
	}
}
