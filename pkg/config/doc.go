// Package config loads typed configuration from the environment, .env files
// and YAML or TOML files.
//
// It wraps `github.com/caarlos0/env/v11` for struct tag based parsing,
// `github.com/joho/godotenv` for .env files, `gopkg.in/yaml.v3` and
// `github.com/pelletier/go-toml/v2` for configuration files. The logger uses
// it as its configuration source, but nothing in here is logger specific.
//
// # Environment
//
// Load parses the environment into any struct annotated with `env` tags and
// caches the result per type, so each configuration struct is parsed once for
// the lifetime of the process:
//
//	type LoggerConfig struct {
//	    Format string `env:"LOGGER_FORMAT" envDefault:"json"`
//	    Level  string `env:"LOGGER_LEVEL" envDefault:"info"`
//	}
//
//	var cfg LoggerConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// The default .env file is read on the first Load. LoadEnv reads additional
// files; the process environment always wins over file contents, and among
// several files the later one wins.
//
// # Files
//
// LoadFile fills a struct from a single file chosen by extension (.yaml, .yml,
// .toml or .env). For YAML and TOML, keys present in the file override the
// environment and envDefault values; absent keys keep them. LoadFile does not
// touch the cache.
//
// # Error Handling
//
// Sentinel errors can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`       – env vars or file contents could not be decoded.
//   - `ErrConfigNotLoaded`     – a concurrent first load failed.
//   - `ErrNilPointer`          – nil pointer passed to a loader.
//   - `ErrLoadingEnvFile`      – a .env file could not be read.
//   - `ErrReadingConfigFile`   – a YAML/TOML file could not be read.
//   - `ErrUnsupportedFileType` – LoadFile got an unknown extension.
//
// # Testing Helpers
//
// Use `ResetCache()` to clear the cache between tests or
// `ForceReloadConfig(&cfg)` to reparse one struct after the environment
// changed.
package config
