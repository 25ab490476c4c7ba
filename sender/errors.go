package sender

import (
	"fmt"
)

// ConfigurationError reports a sender that cannot run as configured. Nothing
// is sent until it is reconfigured.
type ConfigurationError struct {
	Component string
	Reason    string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: configuration error: %s", e.Component, e.Reason)
}

// EntityError wraps the failure of a single batch entry.
type EntityError struct {
	Index int
	Err   error
}

func (e *EntityError) Error() string {
	return fmt.Sprintf("entity %d: %v", e.Index, e.Err)
}

func (e *EntityError) Unwrap() error {
	return e.Err
}
