package repo

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrDataLoad       = errors.New("data load failed")
	ErrSourceNotFound = errors.New("dataset source not found")
	ErrMissingColumn  = errors.New("missing column")
	ErrMalformedValue = errors.New("malformed value")
)

// LoadError is fatal at startup. It matches ErrDataLoad under errors.Is and unwraps
// to the underlying cause.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s from %s: %v", ErrDataLoad.Error(), e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func (e *LoadError) Is(target error) bool {
	return target == ErrDataLoad
}
