// Where: pkg/shape/errors.go
// What: Usage errors raised by model mutation helpers.
package shape

import (
	"errors"
	"fmt"
)

// ErrDuplicateKey reports an insert into a map member that already holds the key.
var ErrDuplicateKey = errors.New("duplicate key")

// UsageError is a caller mistake detected at the call site. It is never a
// service condition.
type UsageError struct {
	Shape  string
	Member string
	Key    any
	Err    error
}

func (e *UsageError) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := fmt.Sprintf("%s.%s", e.Shape, e.Member)
	if e.Key != nil {
		base += fmt.Sprintf(" (key=%v)", e.Key)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *UsageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsUsage reports whether err is or wraps a *UsageError.
func IsUsage(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}
