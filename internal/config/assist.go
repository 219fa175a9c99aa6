package config

import (
	"fmt"
	"strings"
)

// AssistPreset is a named level of player assistance.
type AssistPreset string

const (
	AssistEasy   AssistPreset = "easy"
	AssistNormal AssistPreset = "normal"
	AssistHard   AssistPreset = "hard"
	AssistCustom AssistPreset = "custom" // keep hint_limit and flags as written
)

// ParseAssistPreset validates a preset name. Empty means normal.
func ParseAssistPreset(s string) (AssistPreset, error) {
	switch p := AssistPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return AssistNormal, nil
	case AssistEasy, AssistNormal, AssistHard, AssistCustom:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown assist preset %q (easy, normal, hard, custom)", s)
	}
}

// HintLimitForPreset returns the hint cap for a preset.
func HintLimitForPreset(preset AssistPreset) int {
	switch preset {
	case AssistEasy:
		return 0
	case AssistHard:
		return -1
	default:
		return 3
	}
}

// ApplyAssistPreset modifies the config based on an assist preset.
func ApplyAssistPreset(cfg *Config, preset AssistPreset) {
	cfg.Game.Assist = preset
	if preset == AssistCustom {
		return
	}

	cfg.Game.HintLimit = HintLimitForPreset(preset)
	switch preset {
	case AssistHard:
		cfg.Game.HighlightConflicts = false
		cfg.Game.PreviewValidity = false
	default:
		cfg.Game.HighlightConflicts = true
		cfg.Game.PreviewValidity = true
	}
}
