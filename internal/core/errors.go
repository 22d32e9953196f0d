package core

import "fmt"

// UsageError reports a programming error in calling code: an invalid enum
// constant or an incompatible argument. It is raised with panic, never
// returned.
type UsageError struct {
	Op     string
	Detail string
}

func (e *UsageError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("usage error: %s: %s", e.Op, e.Detail)
}

// PanicUsage panics with a *UsageError.
func PanicUsage(op, format string, args ...any) {
	panic(&UsageError{Op: op, Detail: fmt.Sprintf(format, args...)})
}
