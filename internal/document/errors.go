package document

import (
	"errors"
	"fmt"
)

var (
	// ErrPathNotFound is returned when an intermediate segment does not exist.
	ErrPathNotFound = errors.New("path segment does not exist")
	// ErrExpectedObject is returned when traversal must continue through a
	// value that is not an object.
	ErrExpectedObject = errors.New("expected object at path segment")
	// ErrExpectedObjectAtTarget is returned when the landing position of a
	// mutation is not an object.
	ErrExpectedObjectAtTarget = errors.New("expected object at target path")
	// ErrKeyAlreadyExists is returned by Insert on collision.
	ErrKeyAlreadyExists = errors.New("key already exists at target path, use replace instead")
	// ErrKeyDoesNotExist is returned by Replace when the key is absent.
	ErrKeyDoesNotExist = errors.New("key does not exist at target path, use add instead")
	// ErrSourceKeyNotFound is returned by Rename when the source is absent.
	ErrSourceKeyNotFound = errors.New("key not found during rename")
	// ErrUnexpectedValueType is returned by enumeration on a leaf that is
	// neither an object nor a string.
	ErrUnexpectedValueType = errors.New("unexpected value type")
)

// PathError records the failing segment, key or path alongside one of the
// Err* sentinels.
type PathError struct {
	Err  error
	Path string
	// Kind is set for ErrUnexpectedValueType and ErrExpectedObject*.
	Kind Kind
}

func (e *PathError) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnexpectedValueType), errors.Is(e.Err, ErrExpectedObject), errors.Is(e.Err, ErrExpectedObjectAtTarget):
		return fmt.Sprintf("%v '%s': found %s", e.Err, e.Path, e.Kind)
	default:
		return fmt.Sprintf("%v: '%s'", e.Err, e.Path)
	}
}

func (e *PathError) Unwrap() error { return e.Err }

func pathError(err error, path string) error {
	return &PathError{Err: err, Path: path}
}

func kindError(err error, path string, v Value) error {
	return &PathError{Err: err, Path: path, Kind: v.Kind()}
}
