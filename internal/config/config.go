package config

import (
	"os"
	"strconv"
	"strings"
)

// ColorMode selects whether output is styled.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config holds process-wide settings.
type Config struct {
	LogUseCases bool
	Color       ColorMode
	InputPath   string
}

// DefaultConfig returns a Config with use-case logging off and automatic
// colour detection.
func DefaultConfig() Config {
	return Config{
		LogUseCases: false,
		Color:       ColorAuto,
	}
}

// LoadConfig reads configuration from environment variables, falling back to
// defaults for unset or invalid values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("CONFPLAN_LOG_USE_CASES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogUseCases = b
		}
	}
	if v := os.Getenv("CONFPLAN_COLOR"); v != "" {
		switch mode := ColorMode(strings.ToLower(v)); mode {
		case ColorAuto, ColorAlways, ColorNever:
			cfg.Color = mode
		}
	}
	if v := os.Getenv("CONFPLAN_INPUT"); v != "" {
		cfg.InputPath = v
	}

	return cfg
}

// Styled resolves the colour mode against whether stdout is a terminal.
func (c Config) Styled(isTerminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}
