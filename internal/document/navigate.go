package document

import "strings"

const rootName = "$"

// descend walks existing objects along segments without modifying the tree.
// An absent segment fails with ErrPathNotFound; a non-object found where more
// segments remain fails with ErrExpectedObject. The value at the end of the
// walk is returned whatever its kind.
func descend(root Value, segments []string) (Value, error) {
	cur := root
	for i, seg := range segments {
		obj, ok := cur.(Object)
		if !ok {
			// only reachable for a non-object root
			return nil, kindError(ErrExpectedObject, rootName, cur)
		}
		child, ok := obj[seg]
		if !ok {
			return nil, pathError(ErrPathNotFound, seg)
		}
		if i < len(segments)-1 {
			if _, ok := child.(Object); !ok {
				return nil, kindError(ErrExpectedObject, seg, child)
			}
		}
		cur = child
	}
	return cur, nil
}

// ensure walks segments creating empty objects for absent ones. A present
// non-object where more segments remain fails with ErrExpectedObject.
func ensure(root Value, segments []string) (Value, error) {
	if err := probe(root, segments); err != nil {
		return nil, err
	}
	cur := root
	for _, seg := range segments {
		obj := cur.(Object)
		child, ok := obj[seg]
		if !ok {
			child = NewObject()
			obj[seg] = child
		}
		cur = child
	}
	return cur, nil
}

// probe reports the error ensure would return, without creating anything.
// The landing position is not checked.
func probe(root Value, segments []string) error {
	cur := root
	for i, seg := range segments {
		obj, ok := cur.(Object)
		if !ok {
			return kindError(ErrExpectedObject, rootName, cur)
		}
		child, ok := obj[seg]
		if !ok {
			// everything below gets created
			return nil
		}
		if i < len(segments)-1 {
			if _, ok := child.(Object); !ok {
				return kindError(ErrExpectedObject, seg, child)
			}
		}
		cur = child
	}
	return nil
}

// landingObject resolves the object a mutation operates on after ensure.
func landingObject(root Value, segments []string) (Object, error) {
	cur, err := ensure(root, segments)
	if err != nil {
		return nil, err
	}
	obj, ok := cur.(Object)
	if !ok {
		return nil, kindError(ErrExpectedObjectAtTarget, targetName(segments), cur)
	}
	return obj, nil
}

func targetName(segments []string) string {
	if len(segments) == 0 {
		return rootName
	}
	return strings.Join(segments, Separator)
}

// Get returns the value addressed by segments, or false when any segment is
// absent or traverses a non-object.
func Get(root Value, segments []string) (Value, bool) {
	cur := root
	for _, seg := range segments {
		obj, ok := cur.(Object)
		if !ok {
			return nil, false
		}
		cur, ok = obj[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
