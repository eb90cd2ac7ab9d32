package engine

import "reversi-local/types"

// directions in the fixed scan order. Flip lists follow this order, then distance.
var directions = [8]struct{ dx, dy int }{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Evaluation is the result of probing a cell for the side to move.
type Evaluation struct {
	Legal bool
	Flips []types.BoardPos
}

// TurnState is the outcome of advancing the turn after an accepted move.
type TurnState int

const (
	// Continue means the opponent has a legal move and is now to move.
	Continue TurnState = iota
	// Pass means the opponent had no move; the same side moves again.
	Pass
	// GameOver means neither side can move.
	GameOver
)

func (s TurnState) String() string {
	switch s {
	case Continue:
		return "continue"
	case Pass:
		return "pass"
	case GameOver:
		return "game over"
	}
	return "unknown"
}

// Scores are the stone counts of both sides.
type Scores struct {
	Black int `json:"black"`
	White int `json:"white"`
}

// TurnResult is returned by AdvanceTurnOrDetectEnd. Scores is only set on GameOver.
type TurnResult struct {
	State  TurnState
	Scores Scores
}

// Result is the final verdict of a game.
type Result int

const (
	Draw Result = iota
	BlackWins
	WhiteWins
)

// Winner compares final counts strictly.
func Winner(s Scores) Result {
	switch {
	case s.Black > s.White:
		return BlackWins
	case s.White > s.Black:
		return WhiteWins
	}
	return Draw
}

// Label is the human readable verdict.
func (r Result) Label() string {
	switch r {
	case BlackWins:
		return "Black (first) wins!"
	case WhiteWins:
		return "White (second) wins!"
	}
	return "Draw!"
}

// EvaluateMove probes (x, y) for the side to move without changing the board.
func EvaluateMove(b *Board, x, y int) Evaluation {
	return evaluateFor(b, x, y, b.turn)
}

func evaluateFor(b *Board, x, y int, mover types.Color) Evaluation {
	if !InBounds(x, y) || b.grid[y][x] != types.Empty {
		return Evaluation{}
	}
	opp := mover.Opponent()
	var flips []types.BoardPos
	for _, d := range directions {
		var run []types.BoardPos
		cx, cy := x+d.dx, y+d.dy
		for InBounds(cx, cy) && b.grid[cy][cx] == opp {
			run = append(run, types.BoardPos{X: cx, Y: cy})
			cx += d.dx
			cy += d.dy
		}
		if len(run) > 0 && InBounds(cx, cy) && b.grid[cy][cx] == mover {
			flips = append(flips, run...)
		}
	}
	return Evaluation{Legal: len(flips) > 0, Flips: flips}
}

// ApplyMove places a stone for the side to move and flips the captured runs.
// It returns false and leaves the board untouched when the move is illegal.
// The turn is not advanced.
func ApplyMove(b *Board, x, y int) bool {
	ev := EvaluateMove(b, x, y)
	if !ev.Legal {
		return false
	}
	b.place(x, y, b.turn)
	for _, p := range ev.Flips {
		b.place(p.X, p.Y, b.turn)
	}
	return true
}

// HasAnyLegalMove reports whether c has at least one legal placement.
func HasAnyLegalMove(b *Board, c types.Color) bool {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if evaluateFor(b, x, y, c).Legal {
				return true
			}
		}
	}
	return false
}

// LegalMoves lists every legal placement for c in row-major order.
func LegalMoves(b *Board, c types.Color) []types.BoardPos {
	var moves []types.BoardPos
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if evaluateFor(b, x, y, c).Legal {
				moves = append(moves, types.BoardPos{X: x, Y: y})
			}
		}
	}
	return moves
}

// AdvanceTurnOrDetectEnd hands the turn to the opponent if they can move.
// Otherwise the mover keeps the turn (Pass), or the game ends when neither can.
func AdvanceTurnOrDetectEnd(b *Board) TurnResult {
	mover := b.turn
	b.turn = mover.Opponent()
	if HasAnyLegalMove(b, b.turn) {
		return TurnResult{State: Continue}
	}
	b.turn = mover
	if HasAnyLegalMove(b, mover) {
		return TurnResult{State: Pass}
	}
	return TurnResult{State: GameOver, Scores: b.Scores()}
}

// Reset restores the starting position with Black to move.
func Reset(b *Board) {
	b.grid = [Size][Size]types.Color{}
	b.grid[3][3] = types.White
	b.grid[4][4] = types.White
	b.grid[3][4] = types.Black
	b.grid[4][3] = types.Black
	b.turn = types.Black
}
