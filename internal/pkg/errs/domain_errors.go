package errs

import "errors"

// Cross-layer sentinel errors, marked onto causes with Mark
var (
	// Catalog errors
	ErrProductNotFound = errors.New("product not found")
	ErrUpstreamCatalog = errors.New("catalog source unavailable")
)
