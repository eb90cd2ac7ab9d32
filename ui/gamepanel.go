package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"reversi-local/types"
)

// GameInfoPanel displays the score and turn alongside the board.
type GameInfoPanel struct {
	box        *tview.TextView
	boardState *types.BoardState
	blackName  string
	whiteName  string
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box:       tview.NewTextView(),
		blackName: types.Black.String(),
		whiteName: types.White.String(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetBoardState updates the panel with current board state.
func (p *GameInfoPanel) SetBoardState(state *types.BoardState) {
	p.boardState = state
	p.refresh()
}

// SetNames sets the player labels.
func (p *GameInfoPanel) SetNames(black, white string) {
	p.blackName = black
	p.whiteName = white
	p.refresh()
}

func (p *GameInfoPanel) refresh() {
	if p.boardState == nil {
		p.box.SetText("")
		return
	}
	s := p.boardState

	marker := func(c types.Color) string {
		if !s.Finished() && s.PlayerToMove == c {
			return "[yellow]>[-]"
		}
		return " "
	}

	var text string
	text += "[white::b]Score[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("%s[white]●[-] %-12s %2d\n", marker(types.Black), p.blackName, s.BlackCount)
	text += fmt.Sprintf("%s[dimgray]○[-] %-12s %2d\n", marker(types.White), p.whiteName, s.WhiteCount)

	text += "\n[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("[white]Move:[-:-:-] %d\n", s.MoveNumber)
	text += fmt.Sprintf("[white]Last:[-:-:-] %s\n", s.LastMove)
	if s.Finished() {
		text += fmt.Sprintf("\n[yellow::b]%s[-:-:-]\n", s.Outcome)
	} else {
		text += fmt.Sprintf("[white]Legal:[-:-:-] %d\n", len(s.LegalMoves))
	}

	p.box.SetText(text)
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *ReversiBoardUI, hint *tview.TextView) *tview.Flex {
	gameFrame := tview.NewFlex()
	RebuildNormalLayout(gameFrame, board, hint)
	return gameFrame
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form *tview.Flex, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)
	centered.AddItem(form, maxWidth, 0, true)
	centered.AddItem(nil, 0, 1, false)

	return centered
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *ReversiBoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	infoPanel := NewGameInfoPanel()
	infoPanel.SetNames(board.gameCfg.Name(types.Black), board.gameCfg.Name(types.White))
	board.infoPanel = infoPanel
	if board.BoardState != nil {
		infoPanel.SetBoardState(board.BoardState)
	}

	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false)

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 6, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, board *ReversiBoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	boardWidth := board.BoardState.Width()*2 + boardLeft
	boardHeight := board.BoardState.Height() + 1

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false)

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(board.Box, boardWidth, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	gameFrame.AddItem(centerRow, boardHeight, 0, true)
	gameFrame.AddItem(nil, 0, 1, false)
	gameFrame.AddItem(hint, 1, 0, false)
}
