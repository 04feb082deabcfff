// Package config handles loading and saving user configuration for folio.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/krisnawm/folio/internal/focus"
	"github.com/spf13/viper"
)

const (
	// FileName is the settings file inside the config directory.
	FileName = "folio.yaml"
	// ContentFileName is the optional content override inside the config directory.
	ContentFileName = "content.yaml"
	// EnvPrefix prefixes every environment override, e.g. FOLIO_THEME.
	EnvPrefix = "FOLIO"
)

// Theme names.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Highlight colours picked by the theme when none are configured.
var themeHighlight = map[string][2]string{
	ThemeDark:  {"cyan", "rgba(0,255,255,.5)"},
	ThemeLight: {"blue", "rgba(0,0,255,.3)"},
}

// Config holds all user configuration.
type Config struct {
	Dir     string      `mapstructure:"config_dir"`
	Theme   string      `mapstructure:"theme"`
	Content string      `mapstructure:"content"` // path to a content YAML; empty means built-in
	LogFile string      `mapstructure:"log_file"`
	Verbose bool        `mapstructure:"verbose"`
	Focus   FocusConfig `mapstructure:"focus"`
}

// FocusConfig configures the word-focus header.
type FocusConfig struct {
	Sentence    string        `mapstructure:"sentence"` // empty uses the content tagline
	Blur        float64       `mapstructure:"blur"`
	BorderColor string        `mapstructure:"border_color"`
	GlowColor   string        `mapstructure:"glow_color"`
	Transition  time.Duration `mapstructure:"transition"`
	Pause       time.Duration `mapstructure:"pause"`
}

// SetDefaults registers every key so environment overrides are picked up
// by Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("theme", ThemeLight)
	v.SetDefault("content", "")
	v.SetDefault("log_file", "")
	v.SetDefault("verbose", false)
	v.SetDefault("focus.sentence", "")
	v.SetDefault("focus.blur", focus.DefaultBlurIntensity)
	v.SetDefault("focus.border_color", "")
	v.SetDefault("focus.glow_color", "")
	v.SetDefault("focus.transition", focus.DefaultTransitionDuration)
	v.SetDefault("focus.pause", focus.DefaultPauseBetweenCycles)
}

// Setup points v at dir's settings file and environment variables and reads
// the file if there is one.
func Setup(v *viper.Viper, dir string) error {
	SetDefaults(v)
	v.Set("config_dir", dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	return nil
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	hook := mapstructure.ComposeDecodeHookFunc(durationHook, mapstructure.StringToSliceHookFunc(","))
	if err := v.Unmarshal(&cfg, viper.DecodeHook(hook)); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// durationHook accepts Go duration strings ("400ms") as well as plain
// numbers of seconds (0.4, "0.4") for duration fields.
func durationHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(time.Duration(0)) {
		return data, nil
	}
	switch from.Kind() {
	case reflect.String:
		s := strings.TrimSpace(reflect.ValueOf(data).String())
		if d, err := time.ParseDuration(s); err == nil {
			return d, nil
		}
		secs, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q", s)
		}
		return seconds(secs), nil
	case reflect.Float32, reflect.Float64:
		return seconds(reflect.ValueOf(data).Float()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32:
		return seconds(float64(reflect.ValueOf(data).Int())), nil
	}
	return data, nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Validate checks the theme and focus settings.
func (c *Config) Validate() error {
	if _, ok := themeHighlight[c.Theme]; !ok {
		return fmt.Errorf("invalid theme %q: want %q or %q", c.Theme, ThemeLight, ThemeDark)
	}
	if _, err := c.FocusConfig("").Validate(); err != nil {
		return fmt.Errorf("focus settings: %w", err)
	}
	return nil
}

// Dark reports whether the dark theme is selected.
func (c *Config) Dark() bool {
	return c.Theme == ThemeDark
}

// FocusConfig builds the animator configuration. tagline is used when no
// sentence is configured, and the default sentence when the tagline is blank
// too; highlight colours default per theme.
func (c *Config) FocusConfig(tagline string) focus.Config {
	fc := focus.Config{
		Sentence:           c.Focus.Sentence,
		BlurIntensity:      c.Focus.Blur,
		BorderColor:        c.Focus.BorderColor,
		GlowColor:          c.Focus.GlowColor,
		TransitionDuration: c.Focus.Transition,
		PauseBetweenCycles: c.Focus.Pause,
	}
	if fc.Sentence == "" {
		fc.Sentence = tagline
		if strings.TrimSpace(tagline) == "" {
			fc.Sentence = focus.DefaultSentence
		}
	}
	return c.ThemedFocus(fc, c.Dark())
}

// ThemedFocus fills fc's empty highlight colours from the given theme,
// unless the user configured them explicitly.
func (c *Config) ThemedFocus(fc focus.Config, dark bool) focus.Config {
	theme := ThemeLight
	if dark {
		theme = ThemeDark
	}
	colors := themeHighlight[theme]
	if c.Focus.BorderColor == "" {
		fc.BorderColor = colors[0]
	}
	if c.Focus.GlowColor == "" {
		fc.GlowColor = colors[1]
	}
	return fc
}

// ContentPath returns the content file to load: the configured path, else
// content.yaml in the config directory if present, else "".
func (c *Config) ContentPath() string {
	if c.Content != "" {
		return c.Content
	}
	if c.Dir == "" {
		return ""
	}
	p := filepath.Join(c.Dir, ContentFileName)
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}

// LogPath returns the log file path, defaulting to folio.log in the config
// directory.
func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	if c.Dir == "" {
		return ""
	}
	return filepath.Join(c.Dir, "folio.log")
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "folio"), nil
}

// WriteTemplate writes a commented settings file and the given content
// document into dir. Existing files are kept unless force is set. It
// returns the files it wrote.
func WriteTemplate(dir string, contentDoc []byte, force bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	files := []struct {
		name string
		data []byte
	}{
		{FileName, []byte(settingsTemplate)},
		{ContentFileName, contentDoc},
	}

	var written []string
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if _, err := os.Stat(path); err == nil && !force {
			continue
		}
		if err := os.WriteFile(path, f.data, 0644); err != nil {
			return written, fmt.Errorf("writing %s: %w", f.name, err)
		}
		written = append(written, path)
	}
	return written, nil
}

const settingsTemplate = `# folio settings
#
# Every key can be overridden from the environment with the FOLIO_ prefix,
# e.g. FOLIO_THEME=dark or FOLIO_FOCUS_PAUSE=2s.

# light or dark
theme: light

# Content file; leave empty to use content.yaml next to this file or the
# built-in portfolio.
content: ""

focus:
  # Words cycled by the header; empty uses the tagline from the content file.
  sentence: ""
  # Blur applied to words that are not in focus.
  blur: 5
  # Frame colours: CSS names, #rrggbb or rgba(r,g,b,a). Empty follows the theme.
  border_color: ""
  glow_color: ""
  # Durations accept Go syntax (400ms) or seconds (0.4).
  transition: 400ms
  pause: 1s
`
