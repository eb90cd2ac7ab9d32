// Package ui specifies custom controls for tview to play Reversi in the terminal.
package ui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"reversi-local/config"
	"reversi-local/engine"
	"reversi-local/types"
)

// boardLeft is the column offset of the first cell, leaving room for row labels.
const boardLeft = 4

type ReversiBoardUI struct {
	Box        *tview.Box
	BoardState *types.BoardState
	hint       *tview.TextView
	cfg        *config.Config
	gameCfg    engine.GameConfig
	finished   bool
	selX       int
	selY       int
	notice     string
	eng        engine.GameEngine
	styles     []tcell.Color
	infoPanel  *GameInfoPanel
	focusMode  bool

	// top-left corner of the last draw, for mouse hit tests
	originX int
	originY int

	onPass     func(engine.PassNotice)
	onGameOver func(engine.Summary)
	onTurn     func(*types.BoardState)
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *ReversiBoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *ReversiBoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

// IsFocusMode returns true if focus mode is enabled.
func (g *ReversiBoardUI) IsFocusMode() bool {
	return g.focusMode
}

func (g *ReversiBoardUI) SelectedTile() *types.BoardPos {
	if g.selX == -1 && g.selY == -1 {
		return nil
	}
	return &types.BoardPos{X: g.selX, Y: g.selY}
}

func (g *ReversiBoardUI) MoveSelection(h, v int) {
	if g.BoardState.Finished() {
		g.ResetSelection()
		return
	}
	if g.SelectedTile() == nil {
		g.selX = g.BoardState.LastMove.X
		g.selY = g.BoardState.LastMove.Y
		if g.SelectedTile() == nil {
			// Nothing played yet, start on the first legal move
			g.selX, g.selY = engine.Size/2, engine.Size/2
			if len(g.BoardState.LegalMoves) > 0 {
				g.selX = g.BoardState.LegalMoves[0].X
				g.selY = g.BoardState.LegalMoves[0].Y
			}
		}
		return
	}
	if !engine.InBounds(g.selX+h, g.selY+v) {
		return
	}
	g.selX += h
	g.selY += v
}

func (g *ReversiBoardUI) ResetSelection() {
	g.selX = -1
	g.selY = -1
}

func NewReversiBoard(c *config.Config, hint *tview.TextView) *ReversiBoardUI {
	board := &ReversiBoardUI{
		Box:        tview.NewBox(),
		BoardState: types.NewBoardState(engine.Size),
		hint:       hint,
		selX:       -1,
		selY:       -1,
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(board.draw)
	board.Box.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		if action == tview.MouseLeftClick {
			board.HandleClick(event.Position())
		}
		return action, event
	})
	return board
}

func (g *ReversiBoardUI) draw(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
	g.originX, g.originY = x, y
	state := g.BoardState
	if state == nil || state.Width() == 0 {
		return x, y, 1, 1
	}
	sym := g.cfg.Theme.Symbols
	boardW, boardH := state.Width()*2, state.Height()

	for by := 0; by < state.Height(); by++ {
		for bx := 0; bx < state.Width(); bx++ {
			bg := g.styles[0]
			var fg tcell.Color
			var r rune
			switch state.At(bx, by) {
			case types.Black:
				r, fg = sym.BlackStone, g.styles[2]
			case types.White:
				r, fg = sym.WhiteStone, g.styles[3]
			default:
				r, fg = sym.EmptyCell, g.styles[1]
				if g.gameCfg.ShowHints && state.IsLegal(bx, by) {
					r, fg = sym.Hint, g.styles[4]
				}
			}
			if bx == g.selX && by == g.selY {
				if g.cfg.Theme.DrawCursorBackground {
					bg = g.styles[5]
				} else if state.At(bx, by) == types.Empty {
					r = sym.Cursor
				}
			} else if bx == state.LastMove.X && by == state.LastMove.Y && g.cfg.Theme.DrawLastPlayedBackground {
				bg = g.styles[6]
			}
			drawCell(screen, tcell.StyleDefault.Background(bg).Foreground(fg), r, bx, by, x+boardLeft, y)
		}
	}
	g.drawCoordinates(screen, x, y)
	return x, y, boardW + boardLeft, boardH + 1
}

// cellAt converts a screen position to a board cell using the last draw origin.
func (g *ReversiBoardUI) cellAt(sx, sy int) (int, int, bool) {
	dx := sx - g.originX - boardLeft
	dy := sy - g.originY
	if dx < 0 || dy < 0 {
		return 0, 0, false
	}
	bx, by := dx/2, dy
	if !engine.InBounds(bx, by) {
		return 0, 0, false
	}
	return bx, by, true
}

// HandleClick plays the cell under a left click. Clicks off the grid are ignored.
func (g *ReversiBoardUI) HandleClick(sx, sy int) bool {
	bx, by, ok := g.cellAt(sx, sy)
	if !ok {
		return false
	}
	g.selX, g.selY = bx, by
	return g.PlayMove(bx, by)
}

// ConnectEngine connects the board to a game engine.
func (g *ReversiBoardUI) ConnectEngine(e engine.GameEngine) {
	g.finished = false
	g.notice = ""
	g.eng = e
	g.gameCfg = e.Config()
	g.ResetSelection()

	e.OnMove(func(pos types.BoardPos, color types.Color, state *types.BoardState) {
		g.BoardState = state
		g.notice = ""
		g.refreshHint()
	})

	e.OnPass(func(notice engine.PassNotice) {
		g.notice = fmt.Sprintf("○ %s passed", g.gameCfg.Name(notice.Skipped))
		g.refreshHint()
		if g.onPass != nil {
			g.onPass(notice)
		}
	})

	e.OnGameEnd(func(summary engine.Summary) {
		g.finished = true
		g.ResetSelection()
		g.refreshHint()
		if g.onGameOver != nil {
			g.onGameOver(summary)
		}
	})

	if g.infoPanel != nil {
		g.infoPanel.SetNames(g.gameCfg.Name(types.Black), g.gameCfg.Name(types.White))
	}
	g.BoardState = e.BoardState()
	g.refreshHint()
}

// PlayMove attempts a move for the side to move and reports whether it was accepted.
func (g *ReversiBoardUI) PlayMove(x, y int) bool {
	if g.finished || g.eng == nil {
		return false
	}
	if _, err := g.eng.PlayMove(x, y); err != nil {
		switch {
		case errors.Is(err, engine.ErrIllegalMove):
			g.notice = fmt.Sprintf("✗ %s is not a legal move", types.BoardPos{X: x, Y: y})
		case errors.Is(err, engine.ErrGameOver):
			g.notice = "✗ the game is over"
		default:
			g.notice = "✗ " + err.Error()
		}
		g.refreshHint()
		return false
	}
	return true
}

// Reset starts a new game on the connected engine.
func (g *ReversiBoardUI) Reset() {
	if g.eng == nil {
		return
	}
	g.eng.Reset()
	g.finished = false
	g.notice = ""
	g.ResetSelection()
	g.BoardState = g.eng.BoardState()
	g.refreshHint()
}

// SetPassFunc sets the handler called when a side has to pass.
func (g *ReversiBoardUI) SetPassFunc(handler func(engine.PassNotice)) {
	g.onPass = handler
}

// SetGameOverFunc sets the handler called when the game ends.
func (g *ReversiBoardUI) SetGameOverFunc(handler func(engine.Summary)) {
	g.onGameOver = handler
}

// SetTurnFunc sets a handler called whenever the displayed position changes.
func (g *ReversiBoardUI) SetTurnFunc(handler func(*types.BoardState)) {
	g.onTurn = handler
}

func (g *ReversiBoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),        // 0
		tcell.PaletteColor(c.Theme.Colors.LineColor),         // 1
		tcell.PaletteColor(c.Theme.Colors.BlackColor),        // 2
		tcell.PaletteColor(c.Theme.Colors.WhiteColor),        // 3
		tcell.PaletteColor(c.Theme.Colors.HintColor),         // 4
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),     // 5
		tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG), // 6
	}
	g.cfg = c
}

func (g *ReversiBoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.SetBoardState(g.BoardState)
	}
	if g.onTurn != nil {
		g.onTurn(g.BoardState)
	}

	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}

	var statusLine, turnLine, controlsLine string

	if g.finished {
		statusLine = "───────── Game Complete ─────────\n\n"
		turnLine = fmt.Sprintf("  Result: %s\n", g.BoardState.Outcome)
		controlsLine = "\n  q · return to menu"
	} else {
		if g.notice != "" {
			statusLine = "  " + g.notice + "\n\n"
		}
		toMove := g.BoardState.PlayerToMove
		turnLine = fmt.Sprintf("  %s %s to move (%s)\n", stoneGlyph(toMove), g.gameCfg.Name(toMove), toMove)
		controlsLine = `
  click/⏎ play   hjkl/↑↓←→ move
         f focus   q quit`
	}

	g.hint.SetText(fmt.Sprintf("%s%s%s", statusLine, turnLine, controlsLine))
}

// IsFinished returns true if the game is over.
func (g *ReversiBoardUI) IsFinished() bool {
	return g.finished
}

func stoneGlyph(c types.Color) string {
	if c == types.White {
		return "○"
	}
	return "●"
}

// drawCell draws one 2-character cell
func drawCell(s tcell.Screen, c tcell.Style, r rune, x, y, l, t int) {
	s.SetContent(l+x*2, t+y, r, nil, c)
	s.SetContent(l+x*2+1, t+y, ' ', nil, c)
}

func (g *ReversiBoardUI) drawCoordinates(s tcell.Screen, x, y int) {
	hCoord := int('a')
	if g.cfg.Theme.FullWidthLetters {
		hCoord = int('ａ')
	}
	w, h := g.BoardState.Width(), g.BoardState.Height()

	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(g.styles[5])
	lpHighlight := tcell.StyleDefault.Background(g.styles[6])

	for ix := 0; ix < w; ix++ {
		_style := style
		if ix == g.selX {
			_style = highlight
		} else if ix == g.BoardState.LastMove.X {
			_style = lpHighlight
		}
		s.SetContent(x+boardLeft+(ix*2), y+h, rune(hCoord+ix), nil, _style)
		s.SetContent(x+boardLeft+(ix*2)+1, y+h, ' ', nil, _style)
	}

	for iy := 0; iy < h; iy++ {
		_style := style
		if iy == g.selY {
			_style = highlight
		} else if iy == g.BoardState.LastMove.Y {
			_style = lpHighlight
		}
		s.SetContent(x+2, y+iy, rune('1'+iy), nil, _style)
	}
}
