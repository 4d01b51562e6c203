package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/agentic-research/lingo/internal/document"
	"github.com/agentic-research/lingo/internal/report"
	"github.com/spf13/cobra"
)

func newCompareCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "compare",
		Short:   "List the paths present in only one of two files",
		Example: `  lingo compare --reference lang/en.json --target lang/sv.json`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := e.config()
			if err != nil {
				return err
			}
			if err := requireValues(map[string]string{"reference": cfg.Reference, "target": cfg.Target}); err != nil {
				return err
			}
			st := e.store()
			reference, err := st.Load(cfg.Reference)
			if err != nil {
				return err
			}
			target, err := st.Load(cfg.Target)
			if err != nil {
				return err
			}
			d, err := document.Compare(reference, target)
			if err != nil {
				return err
			}
			report.WriteDiff(cmd.OutOrStdout(), cfg.Reference, cfg.Target, d)
			return nil
		},
	}
	cmd.Flags().String("reference", "", "file the target is checked against")
	cmd.Flags().String("target", "", "file to check")
	return cmd
}

func newCompareAllCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare-all",
		Short: "Compare every file in a directory against the first one",
		Long: `Compare every translation file of a directory against the first file in name
order. Exits with status 1 when any file differs from the reference.`,
		Example: `  lingo compare-all --where lang/`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := e.config()
			if err != nil {
				return err
			}
			if err := requireValues(map[string]string{"where": cfg.Where}); err != nil {
				return err
			}
			st := e.store()
			files, err := st.ListFiles(cfg.Where)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(files) < 2 {
				fmt.Fprintf(out, "nothing to compare: %s holds %d file(s)\n", cfg.Where, len(files))
				return nil
			}

			refPath := files[0]
			reference, err := st.Load(refPath)
			if err != nil {
				return err
			}

			var (
				rows      []report.SummaryRow
				errs      []error
				different bool
			)
			for _, path := range files[1:] {
				target, err := st.Load(path)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				d, err := document.Compare(reference, target)
				if err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", path, err))
					continue
				}
				report.WriteDiff(out, refPath, path, d)
				rows = append(rows, report.SummaryRow{
					File:    filepath.Base(path),
					Missing: len(d.MissingInTarget),
					Extra:   len(d.MissingInReference),
				})
				different = different || !d.Empty()
			}

			if err := report.WriteSummary(out, filepath.Base(refPath), rows); err != nil {
				errs = append(errs, err)
			}
			if err := errors.Join(errs...); err != nil {
				return err
			}
			if different {
				return errDifferences
			}
			return nil
		},
	}
	cmd.Flags().String("where", "", "directory of translation files")
	return cmd
}
