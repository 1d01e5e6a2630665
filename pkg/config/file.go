package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type decoder func(data []byte, v any) error

var decoders = map[string]decoder{
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
	".toml": toml.Unmarshal,
}

// LoadFile fills v from a configuration file. The result is not cached.
//
// For .yaml, .yml and .toml files the struct is first populated from the
// environment (including envDefault values) and the file is decoded on top,
// so keys present in the file take precedence over the environment.
// For .env files (including names like .env.local) the variables are loaded with LoadEnv and the environment is
// parsed afterwards, so the process environment takes precedence.
func LoadFile[T any](path string, v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".env" || strings.HasPrefix(filepath.Base(path), ".env") {
		if err := LoadEnv(path); err != nil {
			return err
		}
		return parse(v)
	}

	decode, ok := decoders[ext]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFileType, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrReadingConfigFile, err)
	}

	if err := parse(v); err != nil {
		return err
	}
	if err := decode(data, v); err != nil {
		return errors.Join(ErrParsingConfig, fmt.Errorf("%s: %w", path, err))
	}
	return nil
}
