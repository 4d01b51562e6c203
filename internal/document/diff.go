package document

import "fmt"

// Diff lists the leaf paths present on one side only.
type Diff struct {
	MissingInTarget    []string
	MissingInReference []string
}

// Empty reports whether both sides have the same leaf paths.
func (d Diff) Empty() bool {
	return len(d.MissingInTarget) == 0 && len(d.MissingInReference) == 0
}

// Compare computes the symmetric difference of the leaf path sets of
// reference and target. Both lists are sorted and duplicate-free.
func Compare(reference, target Value) (Diff, error) {
	refPaths, err := Paths(reference)
	if err != nil {
		return Diff{}, fmt.Errorf("reference: %w", err)
	}
	targetPaths, err := Paths(target)
	if err != nil {
		return Diff{}, fmt.Errorf("target: %w", err)
	}
	return Diff{
		MissingInTarget:    difference(refPaths, targetPaths),
		MissingInReference: difference(targetPaths, refPaths),
	}, nil
}

// difference returns the elements of a not in b, preserving a's order.
func difference(a, b []string) []string {
	seen := make(map[string]struct{}, len(b))
	for _, p := range b {
		seen[p] = struct{}{}
	}
	out := make([]string, 0)
	for _, p := range a {
		if _, ok := seen[p]; !ok {
			out = append(out, p)
		}
	}
	return out
}
