package logger

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
)

// Level is a severity rank. Higher ranks are more severe.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
	LevelUnknown
)

var levelNames = [...]string{
	LevelDebug:   "DEBUG",
	LevelInfo:    "INFO",
	LevelWarn:    "WARN",
	LevelError:   "ERROR",
	LevelFatal:   "FATAL",
	LevelUnknown: "UNKNOWN",
}

// String returns the upper-case level name. Ranks outside the named range
// are reported as UNKNOWN.
func (l Level) String() string {
	if l < LevelDebug || l > LevelUnknown {
		return levelNames[LevelUnknown]
	}
	return levelNames[l]
}

// Initial is the one letter severity tag written to every line.
func (l Level) Initial() string {
	return l.String()[:1]
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(l.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so configuration
// decoders accept level names.
func (l *Level) UnmarshalText(text []byte) error {
	lvl, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = lvl
	return nil
}

// slogLevel maps ranks linearly onto slog levels: Debug through Error land on
// slog's own constants, Fatal and Unknown continue in steps of four. Ranks
// too large for the mapping saturate at the ends of the int range.
func (l Level) slogLevel() slog.Level {
	n := int(l)
	switch {
	case n > math.MaxInt/4:
		return slog.Level(math.MaxInt)
	case n < math.MinInt/4+1:
		return slog.Level(math.MinInt)
	}
	return slog.Level((n - 1) * 4)
}

func levelFromSlog(l slog.Level) Level {
	n := int(l)
	rank := n / 4
	if n%4 != 0 && n < 0 {
		rank--
	}
	return Level(rank + 1)
}

// ParseLevel interprets v as a severity level.
//
// Integer values (and Level itself) are returned unchanged without range
// validation. slog.Level values are converted. Strings and fmt.Stringer
// values are matched case-insensitively against DEBUG, INFO, WARN, ERROR,
// FATAL and UNKNOWN. Anything else fails with ErrInvalidLevel.
func ParseLevel(v any) (Level, error) {
	switch val := v.(type) {
	case Level:
		return val, nil
	case slog.Level:
		return levelFromSlog(val), nil
	case int:
		return Level(val), nil
	case int8:
		return Level(val), nil
	case int16:
		return Level(val), nil
	case int32:
		return Level(val), nil
	case int64:
		return Level(val), nil
	case uint:
		return Level(val), nil
	case uint8:
		return Level(val), nil
	case uint16:
		return Level(val), nil
	case uint32:
		return Level(val), nil
	case uint64:
		return Level(val), nil
	case string:
		return levelFromName(val)
	case fmt.Stringer:
		return levelFromName(val.String())
	default:
		return 0, fmt.Errorf("%w: '%v' (%T)", ErrInvalidLevel, v, v)
	}
}

// MustParseLevel is like ParseLevel but panics on failure.
func MustParseLevel(v any) Level {
	lvl, err := ParseLevel(v)
	if err != nil {
		panic(err)
	}
	return lvl
}

func levelFromName(name string) (Level, error) {
	upper := strings.ToUpper(name)
	for i, n := range levelNames {
		if n == upper {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("%w: '%s'", ErrInvalidLevel, name)
}
