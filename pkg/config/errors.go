package config

import "errors"

// Package-specific errors
var (
	// ErrParsingConfig is returned when environment variables or file contents cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse configuration")

	// ErrConfigNotLoaded is returned when a cached config is missing after a successful parse
	ErrConfigNotLoaded = errors.New("configuration has not been loaded")

	// ErrNilPointer is returned when a nil pointer is provided to a loader
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrLoadingEnvFile is returned when a .env file cannot be read
	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrReadingConfigFile is returned when a YAML or TOML config file cannot be read
	ErrReadingConfigFile = errors.New("failed to read config file")

	// ErrUnsupportedFileType is returned for config files with an unknown extension
	ErrUnsupportedFileType = errors.New("unsupported config file type")
)
