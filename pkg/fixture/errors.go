package fixture

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors for common error conditions
var (
	// Generation errors
	ErrNegativeEdgeCount = errors.New("edge count must not be negative")

	// Output errors. ErrFileExists wraps fs.ErrExist so callers can test either.
	ErrFileExists = fmt.Errorf("destination already exists: %w", fs.ErrExist)

	// Read-back errors
	ErrMalformedLine     = errors.New("malformed csv line")
	ErrUnknownObjectType = errors.New("unknown object type")
	ErrInvariantViolated = errors.New("fixture invariant violated")
)
