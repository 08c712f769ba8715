package geom

import (
	"fmt"

	"github.com/pkg/errors"
)

// DegenerateConstructionError means a tool application is geometrically
// invalid for its inputs (coincident points, a zero radius, and so on). It is
// never fatal: the caller treats the candidate as absent.
type DegenerateConstructionError struct {
	Tool   Tool
	Reason string
}

func (e *DegenerateConstructionError) Error() string {
	return fmt.Sprintf("degenerate %s construction: %s", e.Tool, e.Reason)
}

func degenerate(tool Tool, format string, args ...interface{}) error {
	return errors.WithStack(&DegenerateConstructionError{
		Tool:   tool,
		Reason: fmt.Sprintf(format, args...),
	})
}

// IsDegenerate reports whether err is (or wraps) a DegenerateConstructionError.
func IsDegenerate(err error) bool {
	var target *DegenerateConstructionError
	return errors.As(err, &target)
}
