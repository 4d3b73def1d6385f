package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/composable/internal/action"
	"github.com/dshills/composable/internal/compose"
	"github.com/dshills/composable/internal/engine"
	"github.com/dshills/composable/internal/input/key"
	"github.com/dshills/composable/internal/input/keymap"
)

// Config is the complete editor configuration.
type Config struct {
	Compose ComposeConfig `toml:"compose" yaml:"compose"`
	Editor  EditorConfig  `toml:"editor" yaml:"editor"`
	Log     LogConfig     `toml:"log" yaml:"log"`

	// Keymap maps a layer name to key specifications and the commands
	// they run. Entries are applied over the default keymaps.
	Keymap map[string]map[string]string `toml:"keymap" yaml:"keymap"`

	Plugins PluginConfig `toml:"plugins" yaml:"plugins"`
}

// ComposeConfig holds the composition settings.
type ComposeConfig struct {
	Repeat         bool              `toml:"repeat" yaml:"repeat"`
	MarkMode       bool              `toml:"mark_mode" yaml:"mark_mode"`
	DefaultObject  string            `toml:"default_object" yaml:"default_object"`
	DefaultObjects map[string]string `toml:"default_objects" yaml:"default_objects"`

	// Pairs lists motions and their directional counterparts. A file
	// that sets pairs replaces the whole list.
	Pairs [][]string `toml:"pairs" yaml:"pairs"`

	IndicatorColor  string `toml:"indicator_color" yaml:"indicator_color"`
	IndicatorCursor string `toml:"indicator_cursor" yaml:"indicator_cursor"`
	CommentPrefix   string `toml:"comment_prefix" yaml:"comment_prefix"`
}

// EditorConfig holds buffer settings.
type EditorConfig struct {
	IndentWidth  int  `toml:"indent_width" yaml:"indent_width"`
	ReadOnly     bool `toml:"read_only" yaml:"read_only"`
	KillRingSize int  `toml:"kill_ring_size" yaml:"kill_ring_size"`
	MarkRingSize int  `toml:"mark_ring_size" yaml:"mark_ring_size"`
	UndoLimit    int  `toml:"undo_limit" yaml:"undo_limit"`
}

// LogConfig selects the log level, format and destination.
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
	// File is the log destination: a path, or "stderr". Empty uses the
	// per-user cache directory.
	File string `toml:"file" yaml:"file"`
}

// PluginConfig lists Lua scripts loaded at startup.
type PluginConfig struct {
	Enabled bool     `toml:"enabled" yaml:"enabled"`
	Paths   []string `toml:"paths" yaml:"paths"`
}

// Cursor styles accepted by compose.indicator_cursor.
const (
	CursorUnderline = "underline"
	CursorBlock     = "block"
	CursorBar       = "bar"
)

var (
	logLevels    = []string{"debug", "info", "warn", "error"}
	logFormats   = []string{"text", "json"}
	cursorStyles = []string{CursorUnderline, CursorBlock, CursorBar}
)

// Default returns the built-in configuration.
func Default() *Config {
	pairs := make([][]string, 0, len(compose.DefaultPairs))
	for _, p := range compose.DefaultPairs {
		pairs = append(pairs, []string{p[0], p[1]})
	}
	return &Config{
		Compose: ComposeConfig{
			Repeat:          true,
			DefaultObject:   compose.DefaultObject,
			DefaultObjects:  map[string]string{},
			Pairs:           pairs,
			IndicatorColor:  "yellow",
			IndicatorCursor: CursorUnderline,
			CommentPrefix:   action.DefaultCommentPrefix,
		},
		Editor: EditorConfig{
			IndentWidth:  engine.DefaultIndentWidth,
			KillRingSize: engine.DefaultKillRingSize,
			MarkRingSize: engine.DefaultMarkRingSize,
			UndoLimit:    engine.DefaultMaxUndoEntries,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Keymap:  map[string]map[string]string{},
		Plugins: PluginConfig{Enabled: true},
	}
}

// DefaultPath returns the per-user configuration file path.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "composable", "config.toml")
}

// Format is a configuration file syntax.
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

// FormatFor picks the format from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Load reads path over Default and validates the result. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return parse(path, data, format)
}

// Parse decodes data over Default and validates the result.
func Parse(data []byte, format Format) (*Config, error) {
	return parse("<input>", data, format)
}

func parse(source string, data []byte, format Format) (*Config, error) {
	cfg := Default()
	defaults := cfg.Compose.Pairs
	cfg.Compose.Pairs = nil
	var err error
	switch format {
	case FormatYAML:
		err = decodeYAML(source, data, cfg)
	default:
		err = decodeTOML(source, data, cfg)
	}
	if err != nil {
		return nil, err
	}
	if cfg.Compose.Pairs == nil {
		cfg.Compose.Pairs = defaults
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeTOML(source string, data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		pe := &ParseError{Path: source, Err: err}
		var de *toml.DecodeError
		if errors.As(err, &de) {
			pe.Line, pe.Column = de.Position()
		}
		return pe
	}
	return nil
}

func decodeYAML(source string, data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return &ParseError{Path: source, Err: err}
	}
	return nil
}

// Encode writes the configuration in the given format.
func (c *Config) Encode(w io.Writer, format Format) error {
	if format == FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}
		return enc.Close()
	}
	return toml.NewEncoder(w).Encode(c)
}

// Validate checks every setting and returns the first failure.
func (c *Config) Validate() error {
	cc := c.Compose
	if cc.DefaultObject == "" {
		return &ValidationError{Path: "compose.default_object", Message: "must name a motion", Value: cc.DefaultObject, Code: ErrCodeRequiredMissing}
	}
	for i, p := range cc.Pairs {
		if len(p) != 2 || p[0] == "" || p[1] == "" {
			return &ValidationError{Path: fmt.Sprintf("compose.pairs[%d]", i), Message: "must be two command names", Value: p, Code: ErrCodeRequiredMissing}
		}
	}
	for name, motion := range cc.DefaultObjects {
		if motion == "" {
			return &ValidationError{Path: "compose.default_objects." + name, Message: "must name a motion", Value: motion, Code: ErrCodeRequiredMissing}
		}
	}
	if !slices.Contains(cursorStyles, cc.IndicatorCursor) {
		return &ValidationError{Path: "compose.indicator_cursor", Message: "must be one of " + strings.Join(cursorStyles, ", "), Value: cc.IndicatorCursor, Code: ErrCodeInvalidEnum}
	}
	if cc.IndicatorColor != "" && cc.IndicatorColor != "default" && tcell.GetColor(cc.IndicatorColor) == tcell.ColorDefault {
		return &ValidationError{Path: "compose.indicator_color", Message: "unknown colour", Value: cc.IndicatorColor, Code: ErrCodeInvalidEnum}
	}
	if cc.CommentPrefix == "" {
		return &ValidationError{Path: "compose.comment_prefix", Message: "must not be empty", Value: cc.CommentPrefix, Code: ErrCodeRequiredMissing}
	}

	if w := c.Editor.IndentWidth; w < 1 || w > 16 {
		return &ValidationError{Path: "editor.indent_width", Message: "must be between 1 and 16", Value: w, Code: ErrCodeOutOfRange}
	}
	for path, n := range map[string]int{
		"editor.kill_ring_size": c.Editor.KillRingSize,
		"editor.mark_ring_size": c.Editor.MarkRingSize,
		"editor.undo_limit":     c.Editor.UndoLimit,
	} {
		if n < 1 {
			return &ValidationError{Path: path, Message: "must be positive", Value: n, Code: ErrCodeOutOfRange}
		}
	}

	if !slices.Contains(logLevels, c.Log.Level) {
		return &ValidationError{Path: "log.level", Message: "must be one of " + strings.Join(logLevels, ", "), Value: c.Log.Level, Code: ErrCodeInvalidEnum}
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		return &ValidationError{Path: "log.format", Message: "must be one of " + strings.Join(logFormats, ", "), Value: c.Log.Format, Code: ErrCodeInvalidEnum}
	}

	for layer, bindings := range c.Keymap {
		if layer != keymap.GlobalLayer && layer != keymap.ObjectLayer {
			return &ValidationError{Path: "keymap." + layer, Message: "unknown layer", Value: layer, Code: ErrCodeInvalidEnum}
		}
		for spec, cmd := range bindings {
			path := "keymap." + layer + "." + spec
			if _, err := key.ParseSequence(spec); err != nil {
				return &ValidationError{Path: path, Message: err.Error(), Value: spec, Code: ErrCodeInvalidKey}
			}
			if cmd == "" {
				return &ValidationError{Path: path, Message: "must name a command", Value: cmd, Code: ErrCodeRequiredMissing}
			}
		}
	}
	return nil
}

// PairingTable builds a pairing table from compose.pairs.
func (c *Config) PairingTable() (*compose.PairingTable, error) {
	t := compose.NewPairingTable()
	for _, p := range c.Compose.Pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("pair %v: %w", p, compose.ErrEmptyName)
		}
		if err := t.AddPair(p[0], p[1]); err != nil {
			return nil, fmt.Errorf("pair %v: %w", p, err)
		}
	}
	return t, nil
}

// ComposeOptions converts the compose section to controller options.
func (c *Config) ComposeOptions() compose.Options {
	return compose.Options{
		Repeat:        c.Compose.Repeat,
		MarkMode:      c.Compose.MarkMode,
		DefaultObject: c.Compose.DefaultObject,
	}
}

// ApplyKeymaps binds every keymap entry into r. The layers must already
// be registered.
func (c *Config) ApplyKeymaps(r *keymap.Registry) error {
	for _, layer := range sortedKeys(c.Keymap) {
		bindings := c.Keymap[layer]
		for _, spec := range sortedKeys(bindings) {
			if err := r.Bind(layer, spec, bindings[spec]); err != nil {
				return fmt.Errorf("keymap.%s %q: %w", layer, spec, err)
			}
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
