package fontatlas

import "errors"

// ErrNilEngine is returned by Generate when no font engine is given.
var ErrNilEngine = errors.New("fontatlas: nil engine")

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "fontatlas: invalid config." + e.Field + ": " + e.Reason
}
