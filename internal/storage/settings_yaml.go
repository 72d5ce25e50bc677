package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"pomodoross/internal/settings"
)

const settingsFileName = "settings.yaml"

type yamlWeights struct {
	KeyPress         *float64 `yaml:"key_press,omitempty"`
	KeyJustPressed   *float64 `yaml:"key_just_pressed,omitempty"`
	MousePressed     *float64 `yaml:"mouse_pressed,omitempty"`
	MouseJustPressed *float64 `yaml:"mouse_just_pressed,omitempty"`
	MouseMoveDivisor *float64 `yaml:"mouse_move_divisor,omitempty"`
}

type yamlSettings struct {
	Work             *yamlDuration `yaml:"work,omitempty"`
	Break            *yamlDuration `yaml:"break,omitempty"`
	Tick             *yamlDuration `yaml:"tick,omitempty"`
	ActivityCapacity int           `yaml:"activity_capacity,omitempty"`
	BlockInput       *bool         `yaml:"block_input,omitempty"`
	IdleResetEnabled *bool         `yaml:"idle_reset_enabled,omitempty"`
	IdleResetAfter   *yamlDuration `yaml:"idle_reset_after,omitempty"`
	IdleCheck        *yamlDuration `yaml:"idle_check_interval,omitempty"`
	Weights          *yamlWeights  `yaml:"weights,omitempty"`
}

// yamlDuration is stored as a Go duration string such as "25m0s" or "1.5s".
type yamlDuration time.Duration

func (value yamlDuration) MarshalYAML() (interface{}, error) {
	return time.Duration(value).String(), nil
}

func (value *yamlDuration) UnmarshalYAML(node *yaml.Node) error {
	var text string
	if err := node.Decode(&text); err != nil {
		return fmt.Errorf("line %d: duration must be a string: %w", node.Line, err)
	}
	parsed, err := time.ParseDuration(text)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*value = yamlDuration(parsed)
	return nil
}

func durationField(value time.Duration) *yamlDuration {
	field := yamlDuration(value)
	return &field
}

// ResolvePath returns path, or the per-user settings file when path is empty.
func ResolvePath(appName, path string) (string, error) {
	if path != "" {
		return path, nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettings reads settings from YAML.
// If the file does not exist, default settings are returned.
func LoadSettings(path string) (settings.Settings, error) {
	loaded := settings.Default()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return loaded, nil
		}
		return loaded, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return loaded, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&loaded, fileData)
	return loaded, nil
}

// SaveSettings writes settings to YAML, creating the directory if needed.
func SaveSettings(path string, current settings.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	weights := current.Weights
	fileData := yamlSettings{
		Work:             durationField(current.WorkDuration),
		Break:            durationField(current.BreakDuration),
		Tick:             durationField(current.TickInterval),
		ActivityCapacity: current.ActivityCapacity,
		BlockInput:       &current.BlockInput,
		IdleResetEnabled: &current.IdleResetEnabled,
		IdleResetAfter:   durationField(current.IdleResetAfter),
		IdleCheck:        durationField(current.IdleCheckInterval),
		Weights: &yamlWeights{
			KeyPress:         &weights.KeyPress,
			KeyJustPressed:   &weights.KeyJustPressed,
			MousePressed:     &weights.MousePressed,
			MouseJustPressed: &weights.MouseJustPressed,
			MouseMoveDivisor: &weights.MouseMoveDivisor,
		},
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(target *settings.Settings, fileData yamlSettings) {
	applyDuration(&target.WorkDuration, fileData.Work)
	applyDuration(&target.BreakDuration, fileData.Break)
	applyDuration(&target.TickInterval, fileData.Tick)
	applyDuration(&target.IdleResetAfter, fileData.IdleResetAfter)
	applyDuration(&target.IdleCheckInterval, fileData.IdleCheck)
	if fileData.ActivityCapacity > 0 {
		target.ActivityCapacity = fileData.ActivityCapacity
	}
	if fileData.BlockInput != nil {
		target.BlockInput = *fileData.BlockInput
	}
	if fileData.IdleResetEnabled != nil {
		target.IdleResetEnabled = *fileData.IdleResetEnabled
	}

	if fileData.Weights == nil {
		return
	}
	applyWeight(&target.Weights.KeyPress, fileData.Weights.KeyPress)
	applyWeight(&target.Weights.KeyJustPressed, fileData.Weights.KeyJustPressed)
	applyWeight(&target.Weights.MousePressed, fileData.Weights.MousePressed)
	applyWeight(&target.Weights.MouseJustPressed, fileData.Weights.MouseJustPressed)
	applyWeight(&target.Weights.MouseMoveDivisor, fileData.Weights.MouseMoveDivisor)
}

// Set durations are kept as written, including zero; Validate rejects them.
func applyDuration(target *time.Duration, value *yamlDuration) {
	if value == nil {
		return
	}
	*target = time.Duration(*value)
}

// Weights may be zero to ignore a kind; negative values are rejected.
func applyWeight(target *float64, value *float64) {
	if value == nil || *value < 0 {
		return
	}
	*target = *value
}
