package lgf

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax indicates malformed input. Concrete errors are *SyntaxError.
	ErrSyntax = errors.New("lgf: syntax error")

	// ErrUnknownNode indicates a reference to a label that no @nodes row defines.
	ErrUnknownNode = errors.New("lgf: unknown node")

	// ErrMissingMap indicates a requested node or arc column does not exist.
	ErrMissingMap = errors.New("lgf: missing map")

	// ErrMissingAttribute indicates a requested @attributes entry does not exist.
	ErrMissingAttribute = errors.New("lgf: missing attribute")

	// ErrValue indicates a map entry that does not parse as the requested type.
	ErrValue = errors.New("lgf: invalid value")
)

// SyntaxError reports malformed input at a 1-based line.
type SyntaxError struct {
	Line int
	Msg  string
}

// Error implements error.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("lgf: line %d: %s", e.Line, e.Msg)
}

// Unwrap lets errors.Is match ErrSyntax.
func (e *SyntaxError) Unwrap() error { return ErrSyntax }
