// Package ui provides terminal UI components for reversi-local.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"reversi-local/config"
	"reversi-local/types"
)

// ColorConfigUI provides a color configuration screen with live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	save      func(*config.Config) error
	onDone    func()
	saveErr   error

	// Current selection
	selectedBoardColor int
	selectedLineColor  int
	editingLine        bool // true = editing marker color, false = editing board color
}

// Felt colors to choose from
var boardColors = []struct {
	code int
	name string
}{
	{22, "Dark Green"},
	{28, "Felt Green"},
	{29, "Sea Green"},
	{34, "Green"},
	{35, "Jade"},
	{64, "Olive"},
	{65, "Moss"},
	{71, "Fern"},
	{23, "Teal"},
	{24, "Dark Cyan"},
	{17, "Navy Blue"},
	{94, "Saddle Brown"},
	{136, "Dark Brown"},
	{180, "Tan"},
	{236, "Charcoal"},
	{244, "Dark Gray"},
}

// Colors for empty-cell markers, darker or lighter than the felt
var lineColors = []struct {
	code int
	name string
}{
	{22, "Dark Green"},
	{16, "True Black"},
	{232, "Black"},
	{236, "Dark Gray"},
	{240, "Gray"},
	{108, "Sage"},
	{150, "Light Green"},
	{187, "Light Beige"},
	{250, "Light Gray"},
}

// NewColorConfig creates a new color configuration screen.
// save persists the chosen colors; nil means cfg.Save.
func NewColorConfig(cfg *config.Config, save func(*config.Config) error, onDone func()) *ColorConfigUI {
	if save == nil {
		save = (*config.Config).Save
	}
	cc := &ColorConfigUI{
		cfg:                cfg,
		save:               save,
		onDone:             onDone,
		selectedBoardColor: cfg.Theme.Colors.BoardColor,
		selectedLineColor:  cfg.Theme.Colors.LineColor,
		editingLine:        false,
	}

	// Create the color list
	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)

	// Populate with board colors initially
	cc.populateColorList()

	// Handle selection change (preview)
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.choose(index)
	})

	// Handle selection confirm (apply)
	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.apply(index)
	})

	// Create preview box
	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	// Layout: list on left, preview on right
	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

// populateColorList fills the list with appropriate colors based on editing mode.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	palette, current := boardColors, cc.selectedBoardColor
	cc.colorList.SetTitle(" Select Board Color (Tab: switch to markers) ")
	if cc.editingLine {
		palette, current = lineColors, cc.selectedLineColor
		cc.colorList.SetTitle(" Select Marker Color (Tab: switch to board) ")
	}
	for i, c := range palette {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range palette {
		if c.code == current {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

// choose previews the color at index without saving it.
func (cc *ColorConfigUI) choose(index int) {
	if cc.editingLine {
		if index >= 0 && index < len(lineColors) {
			cc.selectedLineColor = lineColors[index].code
		}
		return
	}
	if index >= 0 && index < len(boardColors) {
		cc.selectedBoardColor = boardColors[index].code
	}
}

// apply stores the previewed color. Confirming a marker color returns to the
// board list, confirming a board color leaves the screen.
func (cc *ColorConfigUI) apply(index int) {
	cc.choose(index)
	if cc.editingLine {
		cc.cfg.Theme.Colors.LineColor = cc.selectedLineColor
		cc.saveErr = cc.save(cc.cfg)
		cc.editingLine = false
		cc.populateColorList()
		return
	}
	cc.cfg.Theme.Colors.BoardColor = cc.selectedBoardColor
	cc.saveErr = cc.save(cc.cfg)
	if cc.saveErr != nil {
		cc.colorList.SetTitle(" Could not save config ")
		return
	}
	cc.onDone()
}

var previewStones = map[[2]int]types.Color{
	{2, 2}: types.White,
	{3, 2}: types.Black,
	{2, 3}: types.Black,
	{3, 3}: types.Black,
	{4, 3}: types.Black,
	{3, 4}: types.White,
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	const size = 6
	startX := x + 2
	startY := y + 1
	if width < size*2+4 || height < size+4 {
		return x, y, width, height
	}

	boardColor := tcell.PaletteColor(cc.selectedBoardColor)
	emptyStyle := tcell.StyleDefault.Background(boardColor).Foreground(tcell.PaletteColor(cc.selectedLineColor))
	blackStyle := tcell.StyleDefault.Background(boardColor).Foreground(tcell.PaletteColor(cc.cfg.Theme.Colors.BlackColor))
	whiteStyle := tcell.StyleDefault.Background(boardColor).Foreground(tcell.PaletteColor(cc.cfg.Theme.Colors.WhiteColor))
	sym := cc.cfg.Theme.Symbols

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			style, r := emptyStyle, sym.EmptyCell
			switch previewStones[[2]int{col, row}] {
			case types.Black:
				style, r = blackStyle, sym.BlackStone
			case types.White:
				style, r = whiteStyle, sym.WhiteStone
			}
			drawCell(screen, style, r, col, row, startX, startY)
		}
	}

	var info string
	if cc.editingLine {
		info = fmt.Sprintf("Markers: %d  Board: %d", cc.selectedLineColor, cc.selectedBoardColor)
	} else {
		info = fmt.Sprintf("Board: %d  Markers: %d", cc.selectedBoardColor, cc.selectedLineColor)
	}
	for i, ch := range info {
		if startX+i < x+width-1 {
			screen.SetContent(startX+i, startY+size+1, ch, nil, tcell.StyleDefault)
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between board color and marker color editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingLine = !cc.editingLine
	cc.populateColorList()
}
