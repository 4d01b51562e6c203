package document

// Insert adds key with a string value under the object addressed by
// segments, creating missing intermediate objects. It never overwrites: an
// existing key of any kind fails with ErrKeyAlreadyExists.
func Insert(root Value, segments []string, key, value string) error {
	obj, err := landingObject(root, segments)
	if err != nil {
		return err
	}
	if _, ok := obj[key]; ok {
		return pathError(ErrKeyAlreadyExists, key)
	}
	obj[key] = String(value)
	return nil
}

// Remove deletes key, and with it the whole subtree below it, from the object
// addressed by segments. Removing an absent key is a no-op.
func Remove(root Value, segments []string, key string) error {
	cur, err := descend(root, segments)
	if err != nil {
		return err
	}
	obj, ok := cur.(Object)
	if !ok {
		return kindError(ErrExpectedObjectAtTarget, targetName(segments), cur)
	}
	delete(obj, key)
	return nil
}

// Replace overwrites an existing key with a string value. The previous value
// may be of any kind, including an object; the result is always a string leaf.
func Replace(root Value, segments []string, key, value string) error {
	cur, err := descend(root, segments)
	if err != nil {
		return err
	}
	obj, ok := cur.(Object)
	if !ok {
		if len(segments) > 0 {
			return kindError(ErrExpectedObject, segments[len(segments)-1], cur)
		}
		return kindError(ErrExpectedObjectAtTarget, rootName, cur)
	}
	if _, ok := obj[key]; !ok {
		return pathError(ErrKeyDoesNotExist, key)
	}
	obj[key] = String(value)
	return nil
}

// Rename moves the value at the dotted path from to the dotted path to.
// Missing objects on the destination side are created and whatever occupies
// the destination key is overwritten. When the source does not resolve the
// tree is untouched and ErrSourceKeyNotFound is returned. When the
// destination cannot be reached the moved value is put back at its source.
func Rename(root Value, from, to string) error {
	fromSegments, fromKey := Split(from)
	toSegments, toKey := Split(to)

	parent, value, err := take(root, fromSegments, fromKey)
	if err != nil {
		return pathError(ErrSourceKeyNotFound, from)
	}

	if err := place(root, toSegments, toKey, value); err != nil {
		parent[fromKey] = value
		return err
	}
	return nil
}

// take detaches and returns the value under key in the object addressed by
// segments, together with that object.
func take(root Value, segments []string, key string) (Object, Value, error) {
	cur, ok := Get(root, segments)
	if !ok {
		return nil, nil, pathError(ErrPathNotFound, targetName(segments))
	}
	obj, ok := cur.(Object)
	if !ok {
		return nil, nil, kindError(ErrExpectedObjectAtTarget, targetName(segments), cur)
	}
	value, ok := obj[key]
	if !ok {
		return nil, nil, pathError(ErrPathNotFound, key)
	}
	delete(obj, key)
	return obj, value, nil
}

// place stores value under key, overwriting unconditionally.
func place(root Value, segments []string, key string, value Value) error {
	if err := probe(root, segments); err != nil {
		return err
	}
	if cur, ok := Get(root, segments); ok {
		if _, isObject := cur.(Object); !isObject {
			return kindError(ErrExpectedObjectAtTarget, targetName(segments), cur)
		}
	}
	obj, err := landingObject(root, segments)
	if err != nil {
		return err
	}
	obj[key] = value
	return nil
}
