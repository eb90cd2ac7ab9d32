package ui

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"reversi-local/config"
	"reversi-local/engine"
	"reversi-local/types"
)

const (
	pageSetup    = "setup"
	pageGame     = "gameview"
	pageColors   = "colors"
	pagePass     = "pass"
	pageGameOver = "gameover"

	buttonPlayAgain = "Play Again"
	buttonQuit      = "Quit"
)

// Options control how the application starts.
type Options struct {
	Game       engine.GameConfig // Defaults for the setup form and quick start
	QuickStart bool              // Skip the setup form
	Focus      bool              // Start in focus mode
}

// App wires the pages of the terminal UI around one game session.
type App struct {
	app       *tview.Application
	rootPage  *tview.Pages
	gameBoard *ReversiBoardUI
	gameFrame *tview.Flex
	gameHint  *tview.TextView
	colors    *ColorConfigUI
	logger    *slog.Logger
	session   *engine.Session
	title     string
}

// NewApp builds every page. Nothing is drawn until Run.
func NewApp(cfg *config.Config, logger *slog.Logger, opts Options) *App {
	a := &App{
		app:    tview.NewApplication(),
		logger: logger,
	}
	a.rootPage = tview.NewPages()
	a.rootPage.SetBorder(true)
	a.rootPage.SetBorderColor(MenuColors.Border)
	a.setTitle(" ◐ reversi ")

	a.gameHint = tview.NewTextView()
	a.gameHint.SetBorder(true)
	a.gameHint.SetBorderPadding(0, 0, 1, 1)
	a.gameHint.SetTitle(" Status ")
	a.gameHint.SetTitleAlign(tview.AlignLeft)
	a.gameBoard = NewReversiBoard(cfg, a.gameHint)
	a.gameBoard.SetPassFunc(a.showPass)
	a.gameBoard.SetGameOverFunc(a.showGameOver)
	a.gameBoard.SetTurnFunc(a.updateTitle)

	a.gameFrame = CreateGameLayout(a.gameBoard, a.gameHint)
	a.gameBoard.Box.SetInputCapture(a.boardInput)

	setupUI := NewGameSetup(opts.Game, a.StartGame, a.app.Stop, func() {
		a.rootPage.SwitchToPage(pageColors)
	})

	// Marker colours are saved in place; every exit reloads the board styles.
	closeColors := func() {
		a.gameBoard.SetConfig(cfg)
		a.rootPage.SwitchToPage(pageSetup)
	}
	colorConfig := NewColorConfig(cfg, nil, closeColors)
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			closeColors()
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})
	a.colors = colorConfig

	a.rootPage.AddPage(pageSetup, CreateCenteredForm(setupUI.Form(), 50), true, !opts.QuickStart)
	a.rootPage.AddPage(pageGame, a.gameFrame, true, opts.QuickStart)
	a.rootPage.AddPage(pageColors, colorConfig.Flex(), true, false)

	if opts.QuickStart {
		a.StartGame(opts.Game)
		if opts.Focus {
			a.gameBoard.SetFocusMode(true)
			BuildFocusLayout(a.gameFrame, a.gameBoard, a.gameHint)
		}
	}
	return a
}

// Run blocks until the user quits.
func (a *App) Run() error {
	a.app.EnableMouse(true)
	return a.app.SetRoot(a.rootPage, true).Run()
}

// StartGame begins a fresh session and shows the board.
func (a *App) StartGame(gameCfg engine.GameConfig) {
	a.session = engine.NewSession(gameCfg, a.logger)
	a.gameBoard.ConnectEngine(a.session)
	if !a.gameBoard.IsFocusMode() {
		RebuildNormalLayout(a.gameFrame, a.gameBoard, a.gameHint)
	}
	a.rootPage.SwitchToPage(pageGame)
	a.app.SetFocus(a.gameBoard.Box)
}

func (a *App) boardInput(event *tcell.EventKey) *tcell.EventKey {
	board := a.gameBoard
	if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
		if board.SelectedTile() != nil {
			board.ResetSelection()
		} else {
			a.setTitle(" ◐ reversi ")
			a.rootPage.SwitchToPage(pageSetup)
		}
		return nil
	}
	switch event.Key() {
	case tcell.KeyUp:
		board.MoveSelection(0, -1)
	case tcell.KeyDown:
		board.MoveSelection(0, 1)
	case tcell.KeyLeft:
		board.MoveSelection(-1, 0)
	case tcell.KeyRight:
		board.MoveSelection(1, 0)
	case tcell.KeyEnter:
		if sel := board.SelectedTile(); sel != nil {
			board.PlayMove(sel.X, sel.Y)
		}
	case tcell.KeyRune:
		switch event.Rune() {
		case 'h':
			board.MoveSelection(-1, 0)
		case 'j':
			board.MoveSelection(0, 1)
		case 'k':
			board.MoveSelection(0, -1)
		case 'l':
			board.MoveSelection(1, 0)
		case 'f':
			if board.ToggleFocusMode() {
				BuildFocusLayout(a.gameFrame, board, a.gameHint)
			} else {
				RebuildNormalLayout(a.gameFrame, board, a.gameHint)
			}
		}
	}
	return event
}

func (a *App) updateTitle(state *types.BoardState) {
	if state == nil || a.session == nil {
		return
	}
	if state.Finished() {
		a.setTitle(" ◐ reversi · game over ")
		return
	}
	name := a.session.Config().Name(state.PlayerToMove)
	a.setTitle(fmt.Sprintf(" ◐ reversi · %s to move ", name))
}

func (a *App) setTitle(title string) {
	a.title = title
	a.rootPage.SetTitle(title)
}

func (a *App) showPass(notice engine.PassNotice) {
	modal := newDialog().
		SetText(notice.Text(a.session.Config())).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			a.closeDialog(pagePass)
		})
	a.rootPage.AddPage(pagePass, modal, true, true)
}

func (a *App) showGameOver(summary engine.Summary) {
	modal := newDialog().
		SetText(a.summaryText(summary)).
		AddButtons([]string{buttonPlayAgain, buttonQuit}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			a.gameOverChoice(buttonLabel)
		})
	a.rootPage.AddPage(pageGameOver, modal, true, true)
}

func (a *App) summaryText(summary engine.Summary) string {
	return summary.Text(a.session.Config()) + "\n\n" + engine.PlayAgainPrompt
}

// gameOverChoice handles the buttons of the final dialog. Escape counts as Quit.
func (a *App) gameOverChoice(label string) {
	a.closeDialog(pageGameOver)
	if label == buttonPlayAgain {
		a.gameBoard.Reset()
		return
	}
	a.app.Stop()
}

func (a *App) closeDialog(name string) {
	a.rootPage.RemovePage(name)
	a.app.SetFocus(a.gameBoard.Box)
}

func newDialog() *tview.Modal {
	modal := tview.NewModal().
		SetBackgroundColor(MenuColors.DialogBG).
		SetTextColor(MenuColors.Title).
		SetButtonBackgroundColor(MenuColors.ButtonBG).
		SetButtonTextColor(MenuColors.ButtonText)
	return modal
}
