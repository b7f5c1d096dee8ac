package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"minesweeper/internal/mines"
)

type Config struct {
	Game     mines.GameParams `json:"game"`
	CellSize int              `json:"cell_size"`
	LogLevel string           `json:"log_level"`
	LogFile  string           `json:"log_file"`
}

func Default() Config {
	return Config{
		Game:     mines.GameParams{Width: 20, Height: 15, MineCount: 30},
		CellSize: 30,
		LogLevel: "info",
	}
}

func ReadConfig(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else {
		return json.Unmarshal(b, config)
	}
}

// Load builds the effective configuration: defaults, then the JSON
// file at path when one is given, then environment overrides on top.
func Load(path string) (Config, error) {
	config := Default()
	if path != "" {
		if err := ReadConfig(path, &config); err != nil {
			return config, fmt.Errorf("unable to read config file: %w", err)
		}
	}
	if err := config.applyEnv(); err != nil {
		return config, err
	}
	return config, nil
}

func intFromEnv(name string, dst *int) error {
	s, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("unable to parse %s: %w", name, err)
	}
	*dst = n
	return nil
}

func (c *Config) applyEnv() error {
	if err := intFromEnv("MINESWEEPER_WIDTH", &c.Game.Width); err != nil {
		return err
	}
	if err := intFromEnv("MINESWEEPER_HEIGHT", &c.Game.Height); err != nil {
		return err
	}
	if err := intFromEnv("MINESWEEPER_MINES", &c.Game.MineCount); err != nil {
		return err
	}
	if err := intFromEnv("MINESWEEPER_CELL_SIZE", &c.CellSize); err != nil {
		return err
	}
	if s, ok := os.LookupEnv("MINESWEEPER_LOG_LEVEL"); ok {
		c.LogLevel = s
	}
	if s, ok := os.LookupEnv("MINESWEEPER_LOG_FILE"); ok {
		c.LogFile = s
	}
	return nil
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// Level resolves the configured logrus level, forcing debug in
// development.
func (c Config) Level() logrus.Level {
	if Development() {
		return logrus.DebugLevel
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"width":     c.Game.Width,
		"height":    c.Game.Height,
		"mines":     c.Game.MineCount,
		"cell_size": c.CellSize,
		"log_level": c.LogLevel,
		"log_file":  c.LogFile,
	}
}
