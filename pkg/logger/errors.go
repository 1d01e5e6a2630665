package logger

import "errors"

var (
	// ErrInvalidLevel is returned when a value cannot be interpreted as a severity level.
	ErrInvalidLevel = errors.New("logger: invalid log level")

	// ErrInvalidArguments is returned when a logging call does not match any accepted shape.
	ErrInvalidArguments = errors.New("logger: invalid arguments")

	// ErrEmptyMessage is returned by strict normalizers for records with neither message nor fields.
	ErrEmptyMessage = errors.New("logger: empty log message")

	// ErrUnsupportedFormat is returned when the configured output format is not known.
	ErrUnsupportedFormat = errors.New("logger: unsupported output format")

	// ErrInvalidNewlineReplacement is returned when the newline replacement would itself break a line.
	ErrInvalidNewlineReplacement = errors.New("logger: newline replacement must not contain a newline")

	// ErrEncodeRecord is returned when a record cannot be rendered.
	ErrEncodeRecord = errors.New("logger: failed to encode record")

	// ErrAlreadyInitialized is returned when the shared logger is reconfigured after construction.
	ErrAlreadyInitialized = errors.New("logger: default logger already initialized")
)
