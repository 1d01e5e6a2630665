package logger

import (
	"context"
	"io"
	"log/slog"

	"github.com/dmitrymomot/ctxlog/pkg/config"
)

// Config holds the recognised configuration options.
type Config struct {
	Format             Format `env:"LOGGER_FORMAT" envDefault:"json" yaml:"format" toml:"format"`
	IncludeContext     bool   `env:"LOGGER_CONTEXT" envDefault:"true" yaml:"context" toml:"context"`
	Level              Level  `env:"LOGGER_LEVEL" envDefault:"info" yaml:"level" toml:"level"`
	NewlineReplacement string `env:"LOGGER_CR_CHARACTER" envDefault:"↲" yaml:"cr_character" toml:"cr_character"`
}

// DefaultConfig returns the built-in defaults: JSON, context IDs included,
// info threshold.
func DefaultConfig() Config {
	return Config{
		Format:             FormatJSON,
		IncludeContext:     true,
		Level:              LevelInfo,
		NewlineReplacement: DefaultNewlineReplacement,
	}
}

// LoadConfig reads a YAML, TOML or .env file on top of the environment.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if err := config.LoadFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) formatterConfig() FormatterConfig {
	return FormatterConfig{
		Format:             c.Format,
		IncludeContext:     c.IncludeContext,
		NewlineReplacement: c.NewlineReplacement,
	}
}

// Option configures logger creation.
type Option func(*options)

type options struct {
	output     io.Writer
	base       *Config
	overrides  []func(*Config) error
	extractors []ContextExtractor
	normalizer Normalizer
}

// WithOutput sets the sink, ignoring nil writers.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithConfig uses cfg instead of loading the configuration from the
// environment. Field options still apply on top of it.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.base = &cfg
	}
}

// WithFormat overrides the output format. Unknown formats make New fail
// with ErrUnsupportedFormat.
func WithFormat(f Format) Option {
	return override(func(c *Config) error {
		c.Format = f
		return nil
	})
}

// WithIncludeContext controls whether context IDs are written.
func WithIncludeContext(include bool) Option {
	return override(func(c *Config) error {
		c.IncludeContext = include
		return nil
	})
}

// WithLevel overrides the threshold. v accepts anything ParseLevel does;
// invalid values make New fail with ErrInvalidLevel.
func WithLevel(v any) Option {
	return override(func(c *Config) error {
		lvl, err := ParseLevel(v)
		if err != nil {
			return err
		}
		c.Level = lvl
		return nil
	})
}

// WithNewlineReplacement overrides the token written instead of newlines in
// string format messages.
func WithNewlineReplacement(s string) Option {
	return override(func(c *Config) error {
		c.NewlineReplacement = s
		return nil
	})
}

// WithEnvironment applies per-environment defaults. Production and staging
// get JSON at info level, anything else is treated as development and gets
// the string format at debug level.
func WithEnvironment(env string) Option {
	return override(func(c *Config) error {
		switch env {
		case "production", "prod", "staging", "stage":
			c.Format = FormatJSON
			c.Level = LevelInfo
		default:
			c.Format = FormatString
			c.Level = LevelDebug
		}
		return nil
	})
}

// WithStrictMessages rejects calls that carry neither a message nor fields.
func WithStrictMessages() Option {
	return func(o *options) {
		o.normalizer.RequireMessage = true
	}
}

// WithContextExtractors registers functions that add fields from context.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) {
		for _, ex := range extractors {
			if ex != nil {
				o.extractors = append(o.extractors, ex)
			}
		}
	}
}

// WithContextValue adds the context value stored under key as field name.
func WithContextValue(name string, key any) Option {
	return func(o *options) {
		if name == "" || key == nil {
			return
		}
		o.extractors = append(o.extractors, func(ctx context.Context) (slog.Attr, bool) {
			if v := ctx.Value(key); v != nil {
				return slog.Any(name, v), true
			}
			return slog.Attr{}, false
		})
	}
}

func override(fn func(*Config) error) Option {
	return func(o *options) {
		o.overrides = append(o.overrides, fn)
	}
}

// resolveConfig returns the base configuration with all overrides applied.
func (o *options) resolveConfig() (Config, error) {
	var cfg Config
	if o.base != nil {
		cfg = *o.base
	} else if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}

	for _, fn := range o.overrides {
		if err := fn(&cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}
