// Package batch applies one edit across every file of a translation
// directory and checks that per-file inputs line up with the files.
package batch

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrEmptyPath is returned when a stem is requested for an empty path.
var ErrEmptyPath = errors.New("empty file path")

// Stem returns the base name of path without its final extension.
// A dotfile with no other dot keeps its full name.
func Stem(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	if ext == name {
		return name, nil
	}
	return strings.TrimSuffix(name, ext), nil
}

// ParseLimit turns a comma separated list of file names, with or without
// extension, into their unique stems in the order given.
func ParseLimit(list string) ([]string, error) {
	var stems []string
	seen := make(map[string]bool)
	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		stem, err := Stem(entry)
		if err != nil {
			return nil, err
		}
		if !seen[stem] {
			seen[stem] = true
			stems = append(stems, stem)
		}
	}
	return stems, nil
}
