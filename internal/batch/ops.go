package batch

import (
	"errors"
	"fmt"
	"sort"

	"github.com/agentic-research/lingo/internal/document"
)

// InsertByStem inserts the dotted path with the value the mapping holds for
// the file's stem.
func InsertByStem(path string, updates map[string]string) Mutation {
	segments, key := document.Split(path)
	return func(file string, doc document.Value) error {
		value, err := valueFor(file, updates)
		if err != nil {
			return err
		}
		return document.Insert(doc, segments, key, value)
	}
}

// ReplaceByStem overwrites the dotted path with the value the mapping holds
// for the file's stem.
func ReplaceByStem(path string, updates map[string]string) Mutation {
	segments, key := document.Split(path)
	return func(file string, doc document.Value) error {
		value, err := valueFor(file, updates)
		if err != nil {
			return err
		}
		return document.Replace(doc, segments, key, value)
	}
}

func valueFor(file string, updates map[string]string) (string, error) {
	stem, err := Stem(file)
	if err != nil {
		return "", err
	}
	value, ok := updates[stem]
	if !ok {
		return "", fmt.Errorf("%w: no value for '%s'", ErrMappingMismatch, stem)
	}
	return value, nil
}

// InsertAll inserts every dotted path of the mapping, in sorted order. All
// failures are reported together.
func InsertAll(updates map[string]string) Mutation {
	paths := make([]string, 0, len(updates))
	for p := range updates {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return func(_ string, doc document.Value) error {
		var errs []error
		for _, p := range paths {
			segments, key := document.Split(p)
			if err := document.Insert(doc, segments, key, updates[p]); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}
}

// RemovePaths removes each dotted path, continuing past failures.
func RemovePaths(paths ...string) Mutation {
	return func(_ string, doc document.Value) error {
		var errs []error
		for _, p := range paths {
			segments, key := document.Split(p)
			if err := document.Remove(doc, segments, key); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}
}

// Rename moves the value at from to to.
func Rename(from, to string) Mutation {
	return func(_ string, doc document.Value) error {
		return document.Rename(doc, from, to)
	}
}

// Normalize leaves the document as loaded so that saving rewrites it in
// canonical form.
func Normalize(string, document.Value) error {
	return nil
}
