package engine

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidDimensions = errors.New("grouping requires one or two distinct dimensions")
	ErrInvalidSelection  = errors.New("invalid selection")
)

// SelectionError describes why a comparison cannot be evaluated on a view.
// It matches ErrInvalidSelection under errors.Is.
type SelectionError struct {
	Reason string
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidSelection.Error(), e.Reason)
}

func (e *SelectionError) Is(target error) bool {
	return target == ErrInvalidSelection
}

func invalidSelection(format string, args ...any) error {
	return &SelectionError{Reason: fmt.Sprintf(format, args...)}
}
