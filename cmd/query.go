package cmd

import (
	"errors"
	"fmt"

	"github.com/agentic-research/lingo/internal/query"
	"github.com/spf13/cobra"
)

func newQueryCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Evaluate a JSONPath expression against every file",
		Example: `  lingo query --expr '$.menu.*' --where lang/
  lingo query --expr '$..open' --where lang/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := e.config()
			if err != nil {
				return err
			}
			if err := requireValues(map[string]string{"expr": cfg.Expr, "where": cfg.Where}); err != nil {
				return err
			}
			w, err := query.Compile(cfg.Expr)
			if err != nil {
				return err
			}
			st := e.store()
			files, err := st.ListFiles(cfg.Where)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var errs []error
			for _, path := range files {
				data, err := st.LoadRaw(path)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				for _, m := range w.Query(data) {
					fmt.Fprintf(out, "%s\t%s\t%s\n", path, m.Location, m.JSON())
				}
			}
			return errors.Join(errs...)
		},
	}
	cmd.Flags().String("expr", "", "JSONPath expression")
	cmd.Flags().String("where", "", "directory of translation files")
	return cmd
}
