// Package config resolves spinner settings from defaults, a settings
// file, the environment and task-list frontmatter.
package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	spinerrors "github.com/abatilo/spin/internal/errors"
	"github.com/abatilo/spin/internal/spinner"
	"github.com/abatilo/spin/internal/task"
	"github.com/abatilo/spin/internal/weights"
)

const (
	schemaURL = "https://github.com/abatilo/spin/settings.schema.json"

	envConfig = "SPIN_CONFIG"
	envBreak  = "SPIN_BREAK"
	envPolicy = "SPIN_POLICY"
	envPreset = "SPIN_PRESET"
)

//go:embed settings.schema.json
var schemaText string

//nolint:gochecknoglobals // compiled once per process
var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, strings.NewReader(schemaText)); err != nil {
		return nil, err
	}
	return c.Compile(schemaURL)
})

// Settings is one layer of configuration. Unset fields leave the lower
// layer untouched.
type Settings struct {
	Preset      string         `yaml:"preset,omitempty"`
	Policy      string         `yaml:"policy,omitempty"`
	Break       *float64       `yaml:"break,omitempty"`
	Multipliers map[string]int `yaml:"multipliers,omitempty"`
}

// IsZero reports whether the layer sets nothing.
func (s Settings) IsZero() bool {
	return s.Preset == "" && s.Policy == "" && s.Break == nil && len(s.Multipliers) == 0
}

// Config is the fully resolved configuration.
type Config struct {
	Multipliers weights.Multipliers
	Break       float64
	Policy      string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Multipliers: weights.DefaultMultipliers(),
		Break:       weights.DefaultBreak,
		Policy:      string(spinner.PolicyUnified),
	}
}

// ParseSettings decodes a YAML settings document and validates it against
// the settings schema. An empty document yields zero Settings.
func ParseSettings(source string, data []byte) (Settings, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Settings{}, spinerrors.SettingsError{Source: source, Err: err}
	}
	if doc == nil {
		return Settings{}, nil
	}

	if err := validate(doc); err != nil {
		return Settings{}, spinerrors.SettingsError{Source: source, Err: err}
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, spinerrors.SettingsError{Source: source, Err: err}
	}
	return s, nil
}

// validate checks a decoded YAML document against the schema. The document
// is round-tripped through JSON so the validator sees JSON value types.
func validate(doc any) error {
	schema, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compile settings schema: %w", err)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	var v any
	if err = json.Unmarshal(raw, &v); err != nil {
		return err
	}
	return schema.Validate(v)
}

// Apply layers s on top of c. The preset, when set, replaces the whole
// multiplier table before individual multipliers are overridden.
func (c *Config) Apply(s Settings) error {
	if s.Preset != "" {
		m, err := weights.Preset(s.Preset)
		if err != nil {
			return err
		}
		c.Multipliers = m
	}
	if len(s.Multipliers) > 0 {
		m := c.Multipliers.Clone()
		for name, v := range s.Multipliers {
			p, ok := task.ParsePriority(name)
			if !ok {
				return spinerrors.InvalidPriorityError{Value: name}
			}
			m[p] = v
		}
		c.Multipliers = m
	}
	if s.Break != nil {
		c.Break = *s.Break
	}
	if s.Policy != "" {
		c.Policy = s.Policy
	}
	return nil
}

// Validate checks the resolved configuration.
func (c Config) Validate() error {
	if err := c.Multipliers.Validate(); err != nil {
		return err
	}
	if _, err := weights.BreakFraction(c.Break); err != nil {
		return err
	}
	_, err := spinner.ParsePolicy(c.Policy)
	return err
}

// Load resolves defaults, then the settings file, then environment
// overrides. path may be empty, in which case $SPIN_CONFIG and then the
// user config directory are consulted; a missing default file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = envOrDefault(envConfig, "")
		explicit = path != ""
	}
	if !explicit {
		path = defaultPath()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			s, parseErr := ParseSettings(path, data)
			if parseErr != nil {
				return Config{}, parseErr
			}
			if err = cfg.Apply(s); err != nil {
				return Config{}, err
			}
		case errors.Is(err, os.ErrNotExist) && !explicit:
			// no settings file; defaults apply
		default:
			return Config{}, spinerrors.SettingsError{Source: path, Err: err}
		}
	}

	env, err := envSettings()
	if err != nil {
		return Config{}, err
	}
	if err = cfg.Apply(env); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// defaultPath returns <user config dir>/spin/config.yaml, or "" if the
// config directory cannot be determined.
func defaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "spin", "config.yaml")
}

func envSettings() (Settings, error) {
	s := Settings{
		Policy: envOrDefault(envPolicy, ""),
		Preset: envOrDefault(envPreset, ""),
	}
	if v := envOrDefault(envBreak, ""); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("%s parse error: %w", envBreak, err)
		}
		s.Break = &f
	}
	return s, nil
}

func envOrDefault(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
