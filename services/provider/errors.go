package provider

import "errors"

// ErrProviderNotFound is returned when no provider has the requested identifier.
var ErrProviderNotFound = errors.New("provider not found")
