package domain

import "errors"

var ErrNotFound = errors.New("not found")

// NotFoundError identifica qual entidade não existe.
type NotFoundError struct {
	Entity string
}

func (e NotFoundError) Error() string {
	return e.Entity + " not found"
}

func (e NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func NotFound(entity string) error {
	return NotFoundError{Entity: entity}
}
