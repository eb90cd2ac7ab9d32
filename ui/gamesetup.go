// Package ui provides terminal UI components for reversi-local.
package ui

import (
	"strings"

	"github.com/rivo/tview"

	"reversi-local/engine"
)

const maxNameLength = 12

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	onStart  func(engine.GameConfig)
	onCancel func()
	onColors func()

	gameCfg engine.GameConfig
}

// NewGameSetup creates a new game setup form pre-filled with defaults.
func NewGameSetup(defaults engine.GameConfig, onStart func(engine.GameConfig), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:  onStart,
		onCancel: onCancel,
		onColors: onColors,
		gameCfg:  defaults,
	}

	acceptName := func(text string, lastChar rune) bool {
		return len([]rune(text)) <= maxNameLength && lastChar >= ' '
	}

	form := tview.NewForm()

	form.AddInputField("Black (first)", defaults.BlackName, maxNameLength+2, acceptName, func(text string) {
		setup.gameCfg.BlackName = strings.TrimSpace(text)
	})

	form.AddInputField("White (second)", defaults.WhiteName, maxNameLength+2, acceptName, func(text string) {
		setup.gameCfg.WhiteName = strings.TrimSpace(text)
	})

	form.AddCheckbox("Show legal moves", defaults.ShowHints, func(checked bool) {
		setup.gameCfg.ShowHints = checked
	})

	form.AddButton("Start Game", func() {
		onStart(setup.GameConfig())
	})

	form.AddButton("Board Color", func() {
		if onColors != nil {
			onColors()
		}
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetBorderColor(MenuColors.Border)
	form.SetTitleColor(MenuColors.Title)
	form.SetLabelColor(MenuColors.Label)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Space: toggle  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// GameConfig returns the configuration currently entered in the form.
// Blank names fall back to the colour names.
func (s *GameSetupUI) GameConfig() engine.GameConfig {
	cfg := s.gameCfg
	if cfg.BlackName == "" {
		cfg.BlackName = "Black"
	}
	if cfg.WhiteName == "" {
		cfg.WhiteName = "White"
	}
	return cfg
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}
