package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"

	"native-messagebox/internal/msgbox"
)

const (
	AppDirName     = "msgbox"
	ConfigFileName = "config.json"
)

// Config holds the persisted defaults for the dialog the CLI shows.
type Config struct {
	Text     string   `json:"Text"`
	Title    string   `json:"Title"`
	Flags    []string `json:"Flags,omitempty" validate:"dive,required,msgbox_flag"`
	Strict   bool     `json:"Strict,omitempty"`
	Console  bool     `json:"Console,omitempty"`
	LogLevel string   `json:"LogLevel,omitempty" validate:"omitempty,oneof=debug info warn warning error"`
	LogFile  string   `json:"LogFile,omitempty"`

	path string
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		Text:     "Hello",
		Title:    "Title",
		Flags:    []string{"CANCEL_TRY_CONTINUE", "ICON_INFORMATION", "TEXT_RTL", "DEF_BUTTON3"},
		LogLevel: "warn",
	}
}

// DefaultPath is the config file location under the user's config home.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}

// Load reads the configuration at path, or DefaultPath when path is empty.
// A missing or empty file yields Default().
func Load(fs afero.Fs, path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	} else {
		path = ExpandPath(path)
	}
	cfg := Default()
	cfg.path = path

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.LogFile = ExpandPath(cfg.LogFile)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as indented JSON, creating the directory.
func (c *Config) Save(fs afero.Fs) error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.Validate(); err != nil {
		return err
	}
	path := c.ConfigPath()
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	payload, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := afero.WriteFile(fs, path, payload, 0o600); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// ConfigPath returns the full path to the settings file.
func (c *Config) ConfigPath() string {
	if c == nil {
		return ""
	}
	if c.path != "" {
		return c.path
	}
	return DefaultPath()
}

// Options resolves the configured flag names.
func (c *Config) Options() ([]msgbox.Flag, error) {
	return msgbox.ParseFlags(c.Flags)
}

// Request builds the dialog request described by the configuration.
func (c *Config) Request() (msgbox.Request, error) {
	opts, err := c.Options()
	if err != nil {
		return msgbox.Request{}, err
	}
	return msgbox.Request{Text: c.Text, Title: c.Title, Options: opts}, nil
}

// ValidationError reports the first invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
	Value   interface{}
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration field %s: %s", e.Field, e.Message)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("msgbox_flag", validateFlag)
	return v
}

func validateFlag(fl validator.FieldLevel) bool {
	_, err := msgbox.ParseFlag(fl.Field().String())
	return err == nil
}

// Validate checks level names and flag names.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			e := verrs[0]
			return ValidationError{
				Field:   e.Field(),
				Message: fmt.Sprintf("validation failed on tag '%s' with value '%v'", e.Tag(), e.Value()),
				Value:   e.Value(),
			}
		}
		return err
	}
	return nil
}

// ExpandPath expands environment variables, ~ and returns an absolute path.
func ExpandPath(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	expanded := os.ExpandEnv(trimmed)
	if strings.HasPrefix(expanded, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			expanded = filepath.Join(home, strings.TrimPrefix(expanded, "~"))
		}
	}
	expanded = filepath.Clean(expanded)
	if filepath.IsAbs(expanded) {
		return expanded
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return expanded
	}
	return abs
}
