package replay

import (
	"fmt"

	"github.com/osuushi/euclid/geom"
	"github.com/pkg/errors"
)

// Threading errors through the recursive point resolution would bury the
// unification logic. Instead, failures panic with an error, and Steps
// recovers and returns it.

// UnificationError means a replayed construction cannot be matched to the
// reference: a binding conflicts, an intersection vanished, or two distinct
// reference items landed on the same replay item.
type UnificationError struct {
	Reason string
}

func (e *UnificationError) Error() string {
	return "unification failed: " + e.Reason
}

// IsUnification reports whether err is (or wraps) a UnificationError.
func IsUnification(err error) bool {
	var target *UnificationError
	return errors.As(err, &target)
}

// Panic with a UnificationError.
func failf(format string, args ...interface{}) {
	panic(errors.WithStack(&UnificationError{Reason: fmt.Sprintf(format, args...)}))
}

// HandleReplayPanicRecover converts a recovered replay failure back into an
// error. Any other panic is re-raised.
func HandleReplayPanicRecover(r interface{}) error {
	if r != nil {
		if err, ok := r.(error); ok && (IsUnification(err) || geom.IsDegenerate(err)) {
			return err
		}
		panic(r)
	}
	return nil
}
