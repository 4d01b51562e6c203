package batch

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrMappingMismatch reports that the keys of an updates file do not line up
// with the files they target.
var ErrMappingMismatch = errors.New("updates file does not match target files")

// MismatchError lists the stems that lack an update and the update keys
// that name no file.
type MismatchError struct {
	Missing []string
	Extra   []string
}

func (e *MismatchError) Error() string {
	if len(e.Missing) > 0 {
		return "updates file misses " + quoteKeys(e.Missing)
	}
	return "updates file has additional " + quoteKeys(e.Extra)
}

func (e *MismatchError) Is(target error) bool {
	return target == ErrMappingMismatch
}

func quoteKeys(keys []string) string {
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = "'" + k + "'"
	}
	noun := "key"
	if len(keys) > 1 {
		noun = "keys"
	}
	return fmt.Sprintf("%s %s", strings.Join(quoted, ", "), noun)
}

// ValidateMapping requires a one-to-one match between update keys and the
// stems of files.
func ValidateMapping(updates map[string]string, files []string) error {
	stems := make(map[string]bool, len(files))
	for _, f := range files {
		stem, err := Stem(f)
		if err != nil {
			return err
		}
		stems[stem] = true
	}

	var missing, extra []string
	for stem := range stems {
		if _, ok := updates[stem]; !ok {
			missing = append(missing, stem)
		}
	}
	for key := range updates {
		if !stems[key] {
			extra = append(extra, key)
		}
	}
	return mismatch(missing, extra)
}

// ValidateSubset requires every stem to have an update. Extra update keys are
// allowed.
func ValidateSubset(updates map[string]string, stems []string) error {
	var missing []string
	for _, stem := range stems {
		if _, ok := updates[stem]; !ok {
			missing = append(missing, stem)
		}
	}
	return mismatch(missing, nil)
}

func mismatch(missing, extra []string) error {
	if len(missing) == 0 && len(extra) == 0 {
		return nil
	}
	sort.Strings(missing)
	sort.Strings(extra)
	return &MismatchError{Missing: missing, Extra: extra}
}

// Select keeps the files whose stem is in stems. An empty stems keeps all.
func Select(files, stems []string) ([]string, error) {
	if len(stems) == 0 {
		return files, nil
	}
	want := make(map[string]bool, len(stems))
	for _, s := range stems {
		want[s] = true
	}
	var out []string
	for _, f := range files {
		stem, err := Stem(f)
		if err != nil {
			return nil, err
		}
		if want[stem] {
			out = append(out, f)
		}
	}
	return out, nil
}
