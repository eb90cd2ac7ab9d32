package ui

import "github.com/gdamore/tcell/v2"

// MenuColors defines the palette for menus and dialogs.
var MenuColors = struct {
	Border     tcell.Color // Muted blue-gray for borders
	Title      tcell.Color // Bright white for titles
	Label      tcell.Color // Light gray for form labels
	Hint       tcell.Color // Dim gray for help text
	ButtonBG   tcell.Color // Button background
	ButtonText tcell.Color // Button text
	DialogBG   tcell.Color // Modal background
}{
	Border:     tcell.PaletteColor(60),
	Title:      tcell.PaletteColor(255),
	Label:      tcell.PaletteColor(250),
	Hint:       tcell.PaletteColor(245),
	ButtonBG:   tcell.PaletteColor(60),
	ButtonText: tcell.PaletteColor(255),
	DialogBG:   tcell.PaletteColor(236),
}
