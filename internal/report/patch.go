package report

import (
	"fmt"
	"io"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/pmezard/go-difflib/difflib"
)

// PatchFormat selects how a pending change is shown.
type PatchFormat string

const (
	// FormatDiff is a unified text diff of the file.
	FormatDiff PatchFormat = "diff"
	// FormatMergePatch is an RFC 7386 JSON merge patch.
	FormatMergePatch PatchFormat = "patch"
)

// ParsePatchFormat validates a user supplied format name.
func ParsePatchFormat(s string) (PatchFormat, error) {
	switch PatchFormat(s) {
	case FormatDiff, "":
		return FormatDiff, nil
	case FormatMergePatch:
		return FormatMergePatch, nil
	default:
		return "", fmt.Errorf("unknown diff format %q (want %q or %q)", s, FormatDiff, FormatMergePatch)
	}
}

// WritePatch shows the change that turning before into after makes to path.
func WritePatch(w io.Writer, path string, before, after []byte, format PatchFormat) error {
	switch format {
	case FormatMergePatch:
		patch, err := jsonpatch.CreateMergePatch(before, after)
		if err != nil {
			return fmt.Errorf("merge patch for %s: %w", path, err)
		}
		fmt.Fprintf(w, "%s: %s\n", path, patch)
		return nil
	default:
		text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(string(before)),
			B:        difflib.SplitLines(string(after)),
			FromFile: "a/" + path,
			ToFile:   "b/" + path,
			Context:  3,
		})
		if err != nil {
			return fmt.Errorf("diff for %s: %w", path, err)
		}
		fmt.Fprint(w, text)
		return nil
	}
}
