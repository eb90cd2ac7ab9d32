package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"reversi-local/types"
)

var (
	ErrOutOfBounds = errors.New("position is off the board")
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over")
)

// PlayAgainPrompt is shown together with the final summary.
const PlayAgainPrompt = "Play again?"

// PassNotice describes a skipped turn.
type PassNotice struct {
	Skipped types.Color // Side that had no legal move
	ToMove  types.Color // Side that moves again
}

// Text renders the notice for a dialog using the player names in cfg.
func (n PassNotice) Text(cfg GameConfig) string {
	return fmt.Sprintf("%s has no legal move and passes.\n\n%s plays again.", cfg.Name(n.Skipped), cfg.Name(n.ToMove))
}

// Summary is the final score of a finished game.
type Summary struct {
	Scores Scores
	Result Result
}

// Text renders the summary for a dialog. Players named after their colour
// are not labelled twice.
func (s Summary) Text(cfg GameConfig) string {
	label := func(c types.Color) string {
		if name := cfg.Name(c); name != c.String() {
			return fmt.Sprintf("%s (%s)", name, c)
		}
		return c.String()
	}
	return fmt.Sprintf("%s: %d stones\n%s: %d stones\n\n%s",
		label(types.Black), s.Scores.Black,
		label(types.White), s.Scores.White,
		s.Result.Label())
}

// Session owns one board for the lifetime of the application.
// All calls happen on the UI event loop, so there is no locking.
type Session struct {
	ID         uuid.UUID
	cfg        GameConfig
	board      *Board
	logger     *slog.Logger
	lastMove   types.BoardPos
	moveNumber int
	finished   bool
	summary    Summary

	moveCallbacks []func(types.BoardPos, types.Color, *types.BoardState)
	passCallbacks []func(PassNotice)
	endCallbacks  []func(Summary)
}

var _ GameEngine = (*Session)(nil)

// NewSession starts a game in the opening position. A nil logger discards output.
func NewSession(cfg GameConfig, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Session{
		ID:       uuid.New(),
		cfg:      cfg,
		board:    NewBoard(),
		lastMove: types.NoPos,
	}
	s.logger = logger.With(slog.String("session", s.ID.String()))
	s.logger.Info("game started",
		slog.String("black", cfg.Name(types.Black)),
		slog.String("white", cfg.Name(types.White)))
	return s
}

// Config returns the configuration the session was created with.
func (s *Session) Config() GameConfig {
	return s.cfg
}

// Turn returns the side to move.
func (s *Session) Turn() types.Color {
	return s.board.Turn()
}

// Finished reports whether the game has ended.
func (s *Session) Finished() bool {
	return s.finished
}

// PlayMove attempts a placement for the side to move and advances the turn.
func (s *Session) PlayMove(x, y int) (TurnResult, error) {
	if s.finished {
		return TurnResult{}, ErrGameOver
	}
	if !InBounds(x, y) {
		return TurnResult{}, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}
	mover := s.board.Turn()
	pos := types.BoardPos{X: x, Y: y}
	if !ApplyMove(s.board, x, y) {
		s.logger.Debug("move rejected", slog.String("pos", pos.String()), slog.String("color", mover.String()))
		return TurnResult{}, fmt.Errorf("%w: %s cannot play %s", ErrIllegalMove, mover, pos)
	}
	s.lastMove = pos
	s.moveNumber++

	res := AdvanceTurnOrDetectEnd(s.board)
	if res.State == GameOver {
		s.finished = true
		s.summary = Summary{Scores: res.Scores, Result: Winner(res.Scores)}
	}
	s.logger.Debug("move played",
		slog.String("pos", pos.String()),
		slog.String("color", mover.String()),
		slog.Int("move", s.moveNumber),
		slog.String("next", res.State.String()))

	state := s.BoardState()
	for _, cb := range s.moveCallbacks {
		cb(pos, mover, state)
	}

	switch res.State {
	case Pass:
		notice := PassNotice{Skipped: mover.Opponent(), ToMove: mover}
		s.logger.Info("turn passed", slog.String("skipped", notice.Skipped.String()))
		for _, cb := range s.passCallbacks {
			cb(notice)
		}
	case GameOver:
		s.logger.Info("game over",
			slog.Int("black", res.Scores.Black),
			slog.Int("white", res.Scores.White),
			slog.String("result", s.summary.Result.Label()))
		for _, cb := range s.endCallbacks {
			cb(s.summary)
		}
	}
	return res, nil
}

// legalMoves lists the placements for the side to move. Empty once finished.
func (s *Session) legalMoves() []types.BoardPos {
	if s.finished {
		return nil
	}
	return LegalMoves(s.board, s.board.Turn())
}

// Reset returns to the opening position. Callbacks stay registered.
func (s *Session) Reset() {
	Reset(s.board)
	s.lastMove = types.NoPos
	s.moveNumber = 0
	s.finished = false
	s.summary = Summary{}
	s.logger.Info("game reset")
}

// BoardState returns a deep-copied snapshot of the current position.
func (s *Session) BoardState() *types.BoardState {
	scores := s.board.Scores()
	state := &types.BoardState{
		MoveNumber:   s.moveNumber,
		PlayerToMove: s.board.Turn(),
		Phase:        types.PhasePlaying,
		Board:        s.board.rows(),
		LastMove:     s.lastMove,
		BlackCount:   scores.Black,
		WhiteCount:   scores.White,
		LegalMoves:   s.legalMoves(),
	}
	if s.finished {
		state.Phase = types.PhaseFinished
		state.Outcome = s.summary.Result.Label()
	}
	return state
}

// OnMove registers a callback for every accepted move.
func (s *Session) OnMove(cb func(pos types.BoardPos, color types.Color, state *types.BoardState)) {
	s.moveCallbacks = append(s.moveCallbacks, cb)
}

// OnPass registers a callback for skipped turns.
func (s *Session) OnPass(cb func(notice PassNotice)) {
	s.passCallbacks = append(s.passCallbacks, cb)
}

// OnGameEnd registers a callback for the end of the game.
func (s *Session) OnGameEnd(cb func(summary Summary)) {
	s.endCallbacks = append(s.endCallbacks, cb)
}
