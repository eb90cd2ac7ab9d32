package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: true,
		FullWidthLetters:         false,
		Colors: ConfigColors{
			BoardColor:        28,
			LineColor:         22,
			BlackColor:        232,
			WhiteColor:        255,
			HintColor:         150,
			CursorColorBG:     4,
			LastPlayedColorBG: 64,
		},
		Symbols: ConfigSymbols{
			BlackStone: '●',
			WhiteStone: '●',
			EmptyCell:  '·',
			Hint:       '∘',
			Cursor:     '·',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameDefaults{
			BlackName: "Black",
			WhiteName: "White",
			ShowHints: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
