package query

import (
	"errors"
	"fmt"
)

// Validation codes reported when a search is rejected before any request is made
const (
	CodeMissingCities = "missing-cities"
	CodeSameCity      = "same-city"
	CodeMissingSort   = "missing-sort"
)

// ValidationError rejects a search locally. The user has to correct the input.
type ValidationError struct {
	Code string
}

func (e *ValidationError) Error() string {
	return e.Code
}

// ErrNoRoutes is reported when the service answered with an empty list
var ErrNoRoutes = errors.New("no-routes-available")

// ErrUnknownCity is returned by SelectCity for names outside the loaded catalog
var ErrUnknownCity = errors.New("city is not in the catalog")

// TransportError wraps a network, HTTP or decoding failure from the route service.
// Its message is shown to the user as is.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func unknownCity(name string) error {
	return fmt.Errorf("%w: %s", ErrUnknownCity, name)
}
