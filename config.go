package bramble

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Default configuration values.
const (
	DefaultTextHeight  = 20.0
	DefaultMonoFont    = "16px Input Sans"
	DefaultCommentFont = "italic 16px Helvetica Neue"
)

// Config holds the settings of a RenderingState. Zero fields take their
// defaults.
type Config struct {
	// TextHeight is the height reported for every measured string. Text
	// height is not measured.
	TextHeight float64 `yaml:"text_height" toml:"text_height"`
	// MonoFont and CommentFont are CSS font shorthands for the two text
	// styles.
	MonoFont    string `yaml:"mono_font" toml:"mono_font"`
	CommentFont string `yaml:"comment_font" toml:"comment_font"`
	// CacheLimit bounds the measurement cache with LRU eviction. Zero keeps
	// every width forever, which is only safe for a fixed vocabulary.
	CacheLimit int `yaml:"cache_limit" toml:"cache_limit"`
	// Debug records host query timings and logs them on Close.
	Debug bool `yaml:"debug" toml:"debug"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		TextHeight:  DefaultTextHeight,
		MonoFont:    DefaultMonoFont,
		CommentFont: DefaultCommentFont,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.TextHeight <= 0 {
		c.TextHeight = d.TextHeight
	}
	if c.MonoFont == "" {
		c.MonoFont = d.MonoFont
	}
	if c.CommentFont == "" {
		c.CommentFont = d.CommentFont
	}
	if c.CacheLimit < 0 {
		c.CacheLimit = 0
	}
	return c
}

// ConfigFormat selects the encoding ParseConfig decodes.
type ConfigFormat string

const (
	FormatYAML ConfigFormat = "yaml"
	FormatTOML ConfigFormat = "toml"
)

// LoadConfig reads a YAML (.yaml, .yml) or TOML (.toml) file.
func LoadConfig(path string) (Config, error) {
	var format ConfigFormat
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = FormatYAML
	case ".toml":
		format = FormatTOML
	default:
		return Config{}, fmt.Errorf("bramble: config %s: unknown extension", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("bramble: config: %w", err)
	}
	return ParseConfig(data, format)
}

// ParseConfig decodes data and fills unset fields with defaults. Unknown
// keys are rejected.
func ParseConfig(data []byte, format ConfigFormat) (Config, error) {
	var c Config
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("bramble: parse yaml config: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&c); err != nil {
			return Config{}, fmt.Errorf("bramble: parse toml config: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("bramble: unknown config format %q", format)
	}
	return c.withDefaults(), nil
}
