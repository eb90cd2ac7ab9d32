// Package engine implements Reversi rules and the game session driven by the UI.
package engine

import "reversi-local/types"

// GameEngine defines the interface the terminal UI uses to drive a game.
type GameEngine interface {
	// BoardState returns a snapshot of the current position.
	BoardState() *types.BoardState

	// PlayMove attempts a placement for the side to move.
	// Returns an error if the move is rejected; the position is then unchanged.
	PlayMove(x, y int) (TurnResult, error)

	// Reset starts a new game.
	Reset()

	// Config returns the configuration the game was started with.
	Config() GameConfig

	// OnMove registers a callback for every accepted move.
	OnMove(func(pos types.BoardPos, color types.Color, state *types.BoardState))

	// OnPass registers a callback for when a side has no legal move.
	OnPass(func(notice PassNotice))

	// OnGameEnd registers a callback for when neither side can move.
	OnGameEnd(func(summary Summary))
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	BlackName string // Label for the first player
	WhiteName string // Label for the second player
	ShowHints bool   // Mark legal moves on the board
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		BlackName: "Black",
		WhiteName: "White",
		ShowHints: true,
	}
}

// Name returns the configured label for c.
func (c GameConfig) Name(color types.Color) string {
	switch color {
	case types.Black:
		if c.BlackName != "" {
			return c.BlackName
		}
	case types.White:
		if c.WhiteName != "" {
			return c.WhiteName
		}
	}
	return color.String()
}
