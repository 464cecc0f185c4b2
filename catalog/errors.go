// Package catalog defines the unified domain model, the provider capability contract,
// and the failure taxonomy shared by every component of the aggregation core.
package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable reports a provider that is not loaded. Expected for the optional
	// native provider; never logged as an error, never surfaced.
	ErrUnavailable = errors.New("provider unavailable")

	// ErrEmpty reports a call that succeeded but yielded no usable data. A control-flow
	// signal telling the dispatcher to fall through to the next source.
	ErrEmpty = errors.New("provider returned no usable data")
)

// CallError reports a provider call that raised. The dispatcher logs it as a warning
// with the capability name, converts it to an empty outcome, and falls through; it
// never reaches an API consumer.
type CallError struct {
	Provider   string
	Capability string
	Err        error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s: %s call raised: %s", e.Provider, e.Capability, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// TransportError reports that an adapter's own outbound request failed structurally,
// before any provider could answer. The only failure kind surfaced to API consumers,
// rendered as a server error with a route-specific machine code.
type TransportError struct {
	Capability string
	Err        error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s transport failure: %s", e.Capability, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Absorbed reports whether err is one of the expected fall-through signals: an absent
// provider, an empty outcome, or a raised provider call.
func Absorbed(err error) bool {
	if errors.Is(err, ErrUnavailable) || errors.Is(err, ErrEmpty) {
		return true
	}
	var callErr *CallError
	return errors.As(err, &callErr)
}
