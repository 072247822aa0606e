package emby

import (
	"errors"
	"fmt"
)

// ErrDecode is returned by Connector implementations when a response body
// cannot be decoded as JSON. The resolver relies on it: Emby-protocol
// servers answer requests for unknown item ids with a non-JSON body, so a
// decode failure during identifier resolution means the id does not exist.
var ErrDecode = errors.New("response body is not valid JSON")

// LookupError indicates an identifier has no corresponding server record.
// It carries the offending id so callers can report which reference in a
// batch failed to resolve.
type LookupError struct {
	ID string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("no item with id %q", e.ID)
}
