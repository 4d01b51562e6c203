// Package report renders human-readable command output.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/agentic-research/lingo/internal/document"
	"github.com/olekukonko/tablewriter"
)

const none = "-"

// WriteDiff prints the paths missing on each side of a comparison under two
// headings. An empty side prints a single dash.
func WriteDiff(w io.Writer, reference, target string, d document.Diff) {
	fmt.Fprintf(w, "\nMissing in target %s (present in %s):\n\n", target, reference)
	writeList(w, d.MissingInTarget)
	fmt.Fprintf(w, "\nMissing in reference %s (present in %s):\n\n", reference, target)
	writeList(w, d.MissingInReference)
}

// WriteUnused prints unused leaf paths, one per line.
func WriteUnused(w io.Writer, paths []string) {
	fmt.Fprint(w, "Unused paths (some might be false positives!):\n\n")
	writeList(w, paths)
}

func writeList(w io.Writer, items []string) {
	if len(items) == 0 {
		fmt.Fprintln(w, none)
		return
	}
	for _, item := range items {
		fmt.Fprintln(w, item)
	}
}

// SummaryRow is one target file of a directory-wide comparison.
type SummaryRow struct {
	File    string
	Missing int
	Extra   int
}

// WriteSummary renders a table of per-file difference counts.
func WriteSummary(w io.Writer, reference string, rows []SummaryRow) error {
	fmt.Fprintf(w, "\nSummary against %s:\n\n", reference)
	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		data = append(data, []string{r.File, strconv.Itoa(r.Missing), strconv.Itoa(r.Extra)})
	}
	table := tablewriter.NewWriter(w)
	table.Header("File", "Missing", "Extra")
	if err := table.Bulk(data); err != nil {
		return fmt.Errorf("summary table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("summary table: %w", err)
	}
	return nil
}
