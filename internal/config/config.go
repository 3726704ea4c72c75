// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/IndieDevYulin/ring-world/internal/anim"
	"github.com/IndieDevYulin/ring-world/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete ringworld configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// ManifestPath points at the YAML item manifest. Empty means the built-in
	// demo items.
	ManifestPath string `toml:"manifest_path" json:"manifest_path"`

	// Ring widget behavior
	Ring RingConfig `toml:"ring" json:"ring"`

	// Gesture classification timing
	Input InputConfig `toml:"input" json:"input"`

	// Frame pacing and terminal handling
	Render RenderConfig `toml:"render" json:"render"`

	// Colors and background mode
	Theme ThemeConfig `toml:"theme" json:"theme"`
}

// RingConfig controls the ring widget.
type RingConfig struct {
	// WindowSize is the number of visible slots. Must be odd and >= 1.
	WindowSize int `toml:"window_size" json:"window_size"`
	// Wrap selects wrapping navigation at the ends. When false, moves clamp.
	Wrap bool `toml:"wrap" json:"wrap"`
	// MoveDurationMS is the length of one move transition in milliseconds.
	MoveDurationMS int `toml:"move_duration_ms" json:"move_duration_ms"`
	// PositionEasing names the curve used for ring travel (see anim.EasingNames).
	PositionEasing string `toml:"position_easing" json:"position_easing"`
	// GenericEasing names the curve used by gauges and other scalar animators.
	GenericEasing string `toml:"generic_easing" json:"generic_easing"`
	// ShowDescription renders the centered item's description line.
	ShowDescription bool `toml:"show_description" json:"show_description"`
	// SeekEnabled enables the "/" type-ahead jump.
	SeekEnabled bool `toml:"seek_enabled" json:"seek_enabled"`
}

// MoveDuration returns the move transition length.
func (r RingConfig) MoveDuration() time.Duration {
	return time.Duration(r.MoveDurationMS) * time.Millisecond
}

// InputConfig controls gesture classification timing.
type InputConfig struct {
	// LongPressMS is how long the activate button must be held for a long
	// press, in milliseconds.
	LongPressMS int `toml:"long_press_ms" json:"long_press_ms"`
	// DoublePressMS is the double-press window in milliseconds. A second
	// press exactly on the boundary counts as a new single press.
	DoublePressMS int `toml:"double_press_ms" json:"double_press_ms"`
	// MoveRatePerSec throttles directional moves for noisy autorepeat
	// sources. Zero disables throttling.
	MoveRatePerSec float64 `toml:"move_rate_per_sec" json:"move_rate_per_sec"`
	// MoveBurst is the throttle burst size. Only meaningful with a rate.
	MoveBurst int `toml:"move_burst" json:"move_burst"`
}

// LongPress returns the long-press hold threshold.
func (i InputConfig) LongPress() time.Duration {
	return time.Duration(i.LongPressMS) * time.Millisecond
}

// DoublePress returns the double-press window.
func (i InputConfig) DoublePress() time.Duration {
	return time.Duration(i.DoublePressMS) * time.Millisecond
}

// RenderConfig controls frame pacing and terminal handling.
type RenderConfig struct {
	// FPS is the frame rate used while animations or gesture timers are live.
	FPS int `toml:"fps" json:"fps"`
	// AltScreen runs the demos on the terminal's alternate screen.
	AltScreen bool `toml:"alt_screen" json:"alt_screen"`
}

// FrameInterval returns the tick interval for the configured frame rate.
func (r RenderConfig) FrameInterval() time.Duration {
	if r.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(r.FPS)
}

// ThemeConfig controls colors and background mode.
type ThemeConfig struct {
	// Mode forces the background mode: "auto", "dark", or "light".
	Mode string `toml:"mode" json:"mode"`
	// Accent overrides the focus color, as "#RRGGBB". Empty keeps the
	// default accent.
	Accent string `toml:"accent" json:"accent"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version:      "1.0.0",
		ManifestPath: "",

		Ring: RingConfig{
			WindowSize:      5,
			Wrap:            true,
			MoveDurationMS:  150,
			PositionEasing:  "smoothstep",
			GenericEasing:   "cubic-out",
			ShowDescription: true,
			SeekEnabled:     true,
		},

		Input: InputConfig{
			LongPressMS:    400,
			DoublePressMS:  250,
			MoveRatePerSec: 0, // no throttle
			MoveBurst:      0,
		},

		Render: RenderConfig{
			FPS:       60,
			AltScreen: true,
		},

		Theme: ThemeConfig{
			Mode:   "auto",
			Accent: "",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the ringworld configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".ringworld"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	cfg := Default()
	var loadErr error

	// Try TOML first
	tomlPath, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := LoadTOML(cfg, tomlPath); err != nil {
				loadErr = fmt.Errorf("failed to load TOML config: %w", err)
			} else {
				cfg.ApplyEnvOverrides()
				if err := cfg.Validate(); err != nil {
					return nil, fmt.Errorf("invalid config: %w", err)
				}
				return cfg, nil
			}
		}
	}

	// Try JSON as fallback
	jsonPath, err := ConfigPathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			if err := LoadJSON(cfg, jsonPath); err != nil {
				loadErr = fmt.Errorf("failed to load JSON config: %w", err)
			} else {
				cfg.ApplyEnvOverrides()
				if err := cfg.Validate(); err != nil {
					return nil, fmt.Errorf("invalid config: %w", err)
				}
				return cfg, nil
			}
		}
	}

	// Apply environment overrides to defaults
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// Return defaults (with any load error for informational purposes)
	return cfg, loadErr
}

// LoadTOML loads configuration from a TOML file into cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return fillDefaults(cfg)
}

// LoadJSON loads configuration from a JSON file into cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return fillDefaults(cfg)
}

// LoadFromPath loads configuration from a specific file path with full
// validation. Keys absent from the file keep their default values.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		// Default to TOML
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// fillDefaults fills in any missing values with defaults.
func fillDefaults(cfg *Config) error {
	defaults := Default()

	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}

	// Ring
	if cfg.Ring.WindowSize == 0 {
		cfg.Ring.WindowSize = defaults.Ring.WindowSize
	}
	if cfg.Ring.MoveDurationMS == 0 {
		cfg.Ring.MoveDurationMS = defaults.Ring.MoveDurationMS
	}
	if cfg.Ring.PositionEasing == "" {
		cfg.Ring.PositionEasing = defaults.Ring.PositionEasing
	}
	if cfg.Ring.GenericEasing == "" {
		cfg.Ring.GenericEasing = defaults.Ring.GenericEasing
	}

	// Input
	if cfg.Input.LongPressMS == 0 {
		cfg.Input.LongPressMS = defaults.Input.LongPressMS
	}
	if cfg.Input.DoublePressMS == 0 {
		cfg.Input.DoublePressMS = defaults.Input.DoublePressMS
	}

	// Render
	if cfg.Render.FPS == 0 {
		cfg.Render.FPS = defaults.Render.FPS
	}

	// Theme
	if cfg.Theme.Mode == "" {
		cfg.Theme.Mode = defaults.Theme.Mode
	}

	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file, creating parent
// directories as needed.
// RELIABILITY: Atomic write with fsync prevents data loss on crash.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "# ringworld configuration file")
	fmt.Fprintln(&buf, "# Generated by ringworld - edit with care")
	fmt.Fprintln(&buf, "")

	encoder := toml.NewEncoder(&buf)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// SaveJSON saves the configuration to a JSON file, creating parent
// directories as needed.
func SaveJSON(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFileWithDir(path, data, 0600, 0755); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// accentPattern matches theme accent overrides: "#RRGGBB".
var accentPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	// Ring
	if c.Ring.WindowSize < 1 || c.Ring.WindowSize%2 == 0 {
		errs = append(errs, ValidationError{
			Field:   "ring.window_size",
			Message: fmt.Sprintf("must be odd and >= 1, got %d", c.Ring.WindowSize),
		})
	}
	if c.Ring.MoveDurationMS < 0 {
		errs = append(errs, ValidationError{
			Field:   "ring.move_duration_ms",
			Message: fmt.Sprintf("cannot be negative, got %d", c.Ring.MoveDurationMS),
		})
	}
	if c.Ring.PositionEasing != "" {
		if _, ok := anim.EasingByName(c.Ring.PositionEasing); !ok {
			errs = append(errs, ValidationError{
				Field: "ring.position_easing",
				Message: fmt.Sprintf("unknown easing '%s', must be one of: %s",
					c.Ring.PositionEasing, strings.Join(anim.EasingNames(), ", ")),
			})
		}
	}
	if c.Ring.GenericEasing != "" {
		if _, ok := anim.EasingByName(c.Ring.GenericEasing); !ok {
			errs = append(errs, ValidationError{
				Field: "ring.generic_easing",
				Message: fmt.Sprintf("unknown easing '%s', must be one of: %s",
					c.Ring.GenericEasing, strings.Join(anim.EasingNames(), ", ")),
			})
		}
	}

	// Input
	if c.Input.LongPressMS <= 0 {
		errs = append(errs, ValidationError{
			Field:   "input.long_press_ms",
			Message: fmt.Sprintf("must be positive, got %d", c.Input.LongPressMS),
		})
	}
	if c.Input.DoublePressMS <= 0 {
		errs = append(errs, ValidationError{
			Field:   "input.double_press_ms",
			Message: fmt.Sprintf("must be positive, got %d", c.Input.DoublePressMS),
		})
	}
	if c.Input.LongPressMS > 0 && c.Input.DoublePressMS >= c.Input.LongPressMS {
		errs = append(errs, ValidationError{
			Field:   "input.double_press_ms",
			Message: "double-press window must be shorter than the long-press threshold",
		})
	}
	if c.Input.MoveRatePerSec < 0 {
		errs = append(errs, ValidationError{
			Field:   "input.move_rate_per_sec",
			Message: fmt.Sprintf("cannot be negative, got %g", c.Input.MoveRatePerSec),
		})
	}
	if c.Input.MoveBurst < 0 {
		errs = append(errs, ValidationError{
			Field:   "input.move_burst",
			Message: fmt.Sprintf("cannot be negative, got %d", c.Input.MoveBurst),
		})
	}
	if c.Input.MoveBurst > 0 && c.Input.MoveRatePerSec == 0 {
		errs = append(errs, ValidationError{
			Field:   "input.move_burst",
			Message: "burst requires move_rate_per_sec to be set",
		})
	}

	// Render
	if c.Render.FPS < 1 || c.Render.FPS > 240 {
		errs = append(errs, ValidationError{
			Field:   "render.fps",
			Message: fmt.Sprintf("must be in 1..240, got %d", c.Render.FPS),
		})
	}

	// Theme
	validModes := map[string]bool{"auto": true, "dark": true, "light": true}
	if !validModes[strings.ToLower(c.Theme.Mode)] {
		errs = append(errs, ValidationError{
			Field:   "theme.mode",
			Message: fmt.Sprintf("invalid mode '%s', must be one of: auto, dark, light", c.Theme.Mode),
		})
	}
	if c.Theme.Accent != "" && !accentPattern.MatchString(c.Theme.Accent) {
		errs = append(errs, ValidationError{
			Field:   "theme.accent",
			Message: fmt.Sprintf("invalid accent '%s', must be #RRGGBB", c.Theme.Accent),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - RINGWORLD_MANIFEST: overrides manifest_path
//   - RINGWORLD_THEME: overrides theme.mode ("auto", "dark", "light")
//   - RINGWORLD_ACCENT: overrides theme.accent ("#RRGGBB")
//   - RINGWORLD_FPS: overrides render.fps
//   - RINGWORLD_WINDOW_SIZE: overrides ring.window_size
//   - RINGWORLD_EASING: overrides ring.position_easing
//   - RINGWORLD_NO_WRAP: set to "1" or "true" to clamp at the ends
//   - RINGWORLD_SEEK: set to "0" or "false" to disable type-ahead seek
func (c *Config) ApplyEnvOverrides() {
	if path := os.Getenv("RINGWORLD_MANIFEST"); path != "" {
		c.ManifestPath = path
	}

	if mode := os.Getenv("RINGWORLD_THEME"); mode != "" {
		c.Theme.Mode = mode
	}

	if accent := os.Getenv("RINGWORLD_ACCENT"); accent != "" {
		c.Theme.Accent = accent
	}

	if fps := os.Getenv("RINGWORLD_FPS"); fps != "" {
		if n, err := strconv.Atoi(fps); err == nil {
			c.Render.FPS = n
		}
	}

	if size := os.Getenv("RINGWORLD_WINDOW_SIZE"); size != "" {
		if n, err := strconv.Atoi(size); err == nil {
			c.Ring.WindowSize = n
		}
	}

	if easing := os.Getenv("RINGWORLD_EASING"); easing != "" {
		c.Ring.PositionEasing = easing
	}

	if noWrap := os.Getenv("RINGWORLD_NO_WRAP"); noWrap != "" {
		c.Ring.Wrap = !(noWrap == "1" || strings.ToLower(noWrap) == "true")
	}

	if seek := os.Getenv("RINGWORLD_SEEK"); seek != "" {
		c.Ring.SeekEnabled = !(seek == "0" || strings.ToLower(seek) == "false")
	}
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g.,
// "ring.window_size").
func (c *Config) Get(key string) (interface{}, error) {
	parts := strings.Split(key, ".")
	if len(parts) == 0 {
		return nil, errors.New("empty key")
	}

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)

		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})

		if !field.IsValid() {
			return nil, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			return field.Interface(), nil
		}

		if field.Kind() == reflect.Struct {
			v = field
		} else {
			return nil, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
	}

	return nil, fmt.Errorf("invalid key: %s", key)
}

// Set sets a configuration value using dot notation (e.g., "render.fps").
// String values are converted to the field's type.
func (c *Config) Set(key string, value interface{}) error {
	parts := strings.Split(key, ".")
	if len(parts) == 0 {
		return errors.New("empty key")
	}

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)

		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})

		if !field.IsValid() {
			return fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			if !field.CanSet() {
				return fmt.Errorf("field '%s' cannot be set", key)
			}
			return setFieldValue(field, value)
		}

		if field.Kind() == reflect.Struct {
			v = field
		} else {
			return fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
	}

	return fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field
// equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}

	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type
// conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	// Handle string input with type conversion
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Float64:
			floatVal, err := strconv.ParseFloat(strVal, 64)
			if err != nil {
				return fmt.Errorf("invalid float value: %v", err)
			}
			field.SetFloat(floatVal)
			return nil
		case reflect.Bool:
			boolVal := strVal == "1" || strings.ToLower(strVal) == "true" || strings.ToLower(strVal) == "yes"
			field.SetBool(boolVal)
			return nil
		}
	}

	// Direct assignment for matching types
	val := reflect.ValueOf(value)
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}

	// Type conversion for compatible types
	if val.Type().ConvertibleTo(field.Type()) {
		field.Set(val.Convert(field.Type()))
		return nil
	}

	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// GetAllKeys returns all configuration keys in dot notation.
func GetAllKeys() []string {
	return []string{
		"version",
		"manifest_path",
		"ring.window_size",
		"ring.wrap",
		"ring.move_duration_ms",
		"ring.position_easing",
		"ring.generic_easing",
		"ring.show_description",
		"ring.seek_enabled",
		"input.long_press_ms",
		"input.double_press_ms",
		"input.move_rate_per_sec",
		"input.move_burst",
		"render.fps",
		"render.alt_screen",
		"theme.mode",
		"theme.accent",
	}
}

// String returns a string representation of the config for debugging.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			// Log but don't fail - use defaults
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		}
		if cfg == nil {
			cfg = Default()
		}
		globalConfig = cfg
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// ReloadGlobal reloads the global configuration from disk. Thread-safe.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
	return nil
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
// This should only be used in tests to reset state between test runs.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
