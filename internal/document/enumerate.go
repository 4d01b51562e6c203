package document

import (
	"sort"
	"strings"
)

// Leaf is a string value together with the path leading to it.
type Leaf struct {
	Path     string
	Segments []string
	Value    string
}

// Leaves flattens a tree of objects into its string leaves, sorted by path.
// Objects without string descendants contribute nothing. Any other value
// kind fails with ErrUnexpectedValueType, and a root that is not an object
// fails with ErrExpectedObject. When distinct key sequences join to the same
// dotted path only the first, in key order, is kept.
func Leaves(root Value) ([]Leaf, error) {
	if _, ok := root.(Object); !ok {
		return nil, kindError(ErrExpectedObject, "", root)
	}
	var leaves []Leaf
	if err := collect(root, nil, &leaves); err != nil {
		return nil, err
	}
	sort.SliceStable(leaves, func(i, j int) bool {
		return leaves[i].Path < leaves[j].Path
	})
	out := leaves[:0]
	for i, l := range leaves {
		if i > 0 && l.Path == leaves[i-1].Path {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

// Paths returns the sorted, duplicate-free dotted paths of all string leaves.
func Paths(root Value) ([]string, error) {
	leaves, err := Leaves(root)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(leaves))
	for i, l := range leaves {
		paths[i] = l.Path
	}
	return paths, nil
}

func collect(v Value, prefix []string, leaves *[]Leaf) error {
	switch t := v.(type) {
	case Object:
		for _, k := range t.Keys() {
			segments := make([]string, len(prefix)+1)
			copy(segments, prefix)
			segments[len(prefix)] = k
			if err := collect(t[k], segments, leaves); err != nil {
				return err
			}
		}
		return nil
	case String:
		*leaves = append(*leaves, Leaf{
			Path:     strings.Join(prefix, Separator),
			Segments: prefix,
			Value:    string(t),
		})
		return nil
	case Array, Number, Bool, Null:
		return kindError(ErrUnexpectedValueType, strings.Join(prefix, Separator), t)
	default:
		return pathError(ErrUnexpectedValueType, strings.Join(prefix, Separator))
	}
}
