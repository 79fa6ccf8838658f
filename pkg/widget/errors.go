package widget

import (
	"errors"
	"fmt"
)

// ErrUnknownKind reports a widget kind this package does not implement.
var ErrUnknownKind = errors.New("unknown widget kind")

// InvalidValueError reports a native value whose shape does not match what
// the requested widget kind can represent.
type InvalidValueError struct {
	Kind   Kind
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value for %s widget: %s", e.Kind, e.Reason)
}

func invalidf(kind Kind, format string, args ...any) error {
	return &InvalidValueError{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}
