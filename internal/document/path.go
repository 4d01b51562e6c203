package document

import "strings"

// Separator joins the segments of a dotted path.
const Separator = "."

// Split divides a dotted path at its last separator into the intermediate
// segments and the final key. A path without a separator yields no segments
// and the whole string as the key. Splitting is purely syntactic: empty
// segments are kept as they are.
func Split(path string) (segments []string, key string) {
	i := strings.LastIndex(path, Separator)
	if i < 0 {
		return nil, path
	}
	return strings.Split(path[:i], Separator), path[i+len(Separator):]
}

