package column

import "fmt"

// InputError reports invalid geometric, material, or demand input.
type InputError struct {
	msg string
}

func (e *InputError) Error() string {
	return e.msg
}

func inputErrorf(format string, args ...any) *InputError {
	return &InputError{msg: fmt.Sprintf(format, args...)}
}

// NonConvergenceError reports a neutral-axis solve that failed to reach
// tolerance within its iteration budget. A wrong neutral-axis depth would
// silently corrupt the whole diagram, so this is fatal for the point.
type NonConvergenceError struct {
	Point      int
	Iterations int
	Residual   float64
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("neutral axis for point %d did not converge after %d iterations (residual %.6g)",
		e.Point, e.Iterations, e.Residual)
}
