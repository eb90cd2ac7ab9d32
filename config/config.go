package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

var (
	cfgFile = "reversi-local/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor        int `json:"board"`
	LineColor         int `json:"line"`
	BlackColor        int `json:"black"`
	WhiteColor        int `json:"white"`
	HintColor         int `json:"hint"`
	CursorColorBG     int `json:"cursor_bg"`
	LastPlayedColorBG int `json:"last_played_bg"`
}

type ConfigSymbols struct {
	BlackStone rune `json:"black"`
	WhiteStone rune `json:"white"`
	EmptyCell  rune `json:"empty"`
	Hint       rune `json:"hint"`
	Cursor     rune `json:"cursor"`
}

type Theme struct {
	DrawCursorBackground     bool          `json:"draw_cursor_bg"`
	DrawLastPlayedBackground bool          `json:"draw_last_played_bg"`
	FullWidthLetters         bool          `json:"fullwidth_letters"`
	Colors                   ConfigColors  `json:"colors"`
	Symbols                  ConfigSymbols `json:"symbols"`
}

// GameDefaults pre-fill the setup form and the --play quick start.
type GameDefaults struct {
	BlackName string `json:"black_name" env:"REVERSI_BLACK_NAME"`
	WhiteName string `json:"white_name" env:"REVERSI_WHITE_NAME"`
	ShowHints bool   `json:"show_hints" env:"REVERSI_SHOW_HINTS"`
}

// LogConfig controls the JSON log file. An empty File means the XDG state dir.
type LogConfig struct {
	Level string `json:"level" env:"REVERSI_LOG_LEVEL"`
	File  string `json:"file" env:"REVERSI_LOG_FILE"`
}

type Config struct {
	Theme Theme        `json:"theme"`
	Game  GameDefaults `json:"game"`
	Log   LogConfig    `json:"log"`
}

// InitConfig loads the user config from the XDG config dirs, falling back to
// the defaults when no file exists. Environment overrides apply either way.
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		absPath = ""
	}
	return Load(absPath)
}

// Load reads path over the defaults. An empty path only applies the environment.
func Load(path string) (*Config, error) {
	config := DefaultConfig
	if path != "" {
		if err := cleanenv.ReadConfig(path, &config); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&config); err != nil {
		return nil, fmt.Errorf("read config from environment: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	s := c.Theme.Symbols
	for _, r := range []rune{s.BlackStone, s.WhiteStone, s.EmptyCell, s.Hint, s.Cursor} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.Log.Level)}
	}
	return nil
}

// Save writes the theme to the user's XDG config dir.
func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("locate config file: %w", err)
	}
	return c.SaveTo(absPath)
}

// SaveTo stores c's theme in the file at path. Game and log settings are taken
// from the file as it is on disk, so environment and flag overrides never end
// up persisted.
func (c *Config) SaveTo(path string) error {
	stored, err := storedConfig(path)
	if err != nil {
		return err
	}
	stored.Theme = c.Theme
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return saveCfgFile(path, stored, 0664)
}

// storedConfig reads path over the defaults without applying the environment.
func storedConfig(path string) (*Config, error) {
	config := DefaultConfig
	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &config, nil
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, &config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &config, nil
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err = os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
