package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reversi-local/config"
	"reversi-local/engine"
	"reversi-local/types"
)

func TestGameSetupFallsBackToColorNames(t *testing.T) {
	var started *engine.GameConfig
	setup := NewGameSetup(engine.GameConfig{BlackName: "Ann", WhiteName: "Bob", ShowHints: true},
		func(cfg engine.GameConfig) { started = &cfg }, func() {}, nil)

	assert.Equal(t, "Ann", setup.GameConfig().BlackName)

	// When: both names are cleared
	setup.gameCfg.BlackName = ""
	setup.gameCfg.WhiteName = ""
	setup.onStart(setup.GameConfig())

	// Then: the colours stand in for the names
	require.NotNil(t, started)
	assert.Equal(t, "Black", started.BlackName)
	assert.Equal(t, "White", started.WhiteName)
	assert.True(t, started.ShowHints)
}

func TestColorConfigApply(t *testing.T) {
	t.Run("board color is saved and the screen closes", func(t *testing.T) {
		cfg := testConfig()
		saved, done := 0, false
		cc := NewColorConfig(cfg, func(c *config.Config) error { saved++; return nil }, func() { done = true })

		cc.apply(0)

		assert.Equal(t, boardColors[0].code, cfg.Theme.Colors.BoardColor)
		assert.Equal(t, 1, saved)
		assert.True(t, done)
	})

	t.Run("marker color returns to the board list", func(t *testing.T) {
		cfg := testConfig()
		done := false
		cc := NewColorConfig(cfg, func(c *config.Config) error { return nil }, func() { done = true })

		cc.ToggleMode()
		cc.apply(1)

		assert.Equal(t, lineColors[1].code, cfg.Theme.Colors.LineColor)
		assert.False(t, cc.editingLine)
		assert.False(t, done)
	})

	t.Run("save failure keeps the screen open", func(t *testing.T) {
		cfg := testConfig()
		done := false
		cc := NewColorConfig(cfg, func(c *config.Config) error { return errors.New("read-only") }, func() { done = true })

		cc.apply(2)

		assert.Error(t, cc.saveErr)
		assert.False(t, done)
	})
}

func TestGameInfoPanel(t *testing.T) {
	panel := NewGameInfoPanel()
	panel.SetNames("Ann", "Bob")

	state := types.NewBoardState(8)
	state.PlayerToMove = types.Black
	state.BlackCount, state.WhiteCount = 2, 2
	state.LastMove = types.NoPos
	state.LegalMoves = []types.BoardPos{{X: 3, Y: 2}, {X: 2, Y: 3}, {X: 5, Y: 4}, {X: 4, Y: 5}}
	panel.SetBoardState(state)

	text := panel.Box().GetText(true)
	assert.Contains(t, text, "Ann")
	assert.Contains(t, text, "Bob")
	assert.Contains(t, text, "Legal: 4")
	assert.Contains(t, text, "Last: -")

	state.Phase = types.PhaseFinished
	state.Outcome = engine.Draw.Label()
	panel.SetBoardState(state)

	text = panel.Box().GetText(true)
	assert.Contains(t, text, "Draw!")
	assert.NotContains(t, text, "Legal:")
}
