package cmd

import (
	"github.com/agentic-research/lingo/api"
	"github.com/agentic-research/lingo/internal/batch"
	"github.com/agentic-research/lingo/internal/report"
	"github.com/agentic-research/lingo/internal/scan"
	"github.com/agentic-research/lingo/internal/unused"
	"github.com/spf13/cobra"
)

func newListUnusedCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-unused-keys",
		Short: "List translations a source tree never mentions",
		Long: `List the leaves of a translation file whose text (or, with --match path, whose
dotted path) does not occur literally in any file of a source tree. The search is
a plain substring match, so review the result before acting on it.`,
		Example: `  lingo list-unused-keys --translations lang/en.json --source src/ --keep 'errors.**'`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := e.config()
			if err != nil {
				return err
			}
			paths, err := e.findUnused(cfg)
			if err != nil {
				return err
			}
			report.WriteUnused(cmd.OutOrStdout(), paths)
			return nil
		},
	}
	unusedFlags(cmd)
	return cmd
}

func newRemoveUnusedCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-unused-keys",
		Short: "Remove translations a source tree never mentions from every file",
		Long: `Detect unused leaves against the --translations file as list-unused-keys does,
then remove each of them from every translation file in --where. Use --dry-run
to review the removals first.`,
		Example: `  lingo remove-unused-keys --translations lang/en.json --source src/ --where lang/ --dry-run`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := e.config()
			if err != nil {
				return err
			}
			if err := requireValues(map[string]string{"where": cfg.Where}); err != nil {
				return err
			}
			paths, err := e.findUnused(cfg)
			if err != nil {
				return err
			}
			report.WriteUnused(cmd.OutOrStdout(), paths)
			if len(paths) == 0 {
				return nil
			}
			files, err := e.store().ListFiles(cfg.Where)
			if err != nil {
				return err
			}
			return e.apply(cmd, cfg, files, removePolicy, batch.RemovePaths(paths...))
		},
	}
	unusedFlags(cmd)
	cmd.Flags().String("where", "", "directory of translation files to remove unused keys from")
	return cmd
}

func unusedFlags(cmd *cobra.Command) {
	cmd.Flags().String("translations", "", "translation file whose keys are checked")
	cmd.Flags().String("source", "", "root of the source tree to search")
	cmd.Flags().StringSlice("keep", nil, "glob of dotted paths never reported as unused (repeatable)")
	cmd.Flags().String("match", string(unused.MatchValue), "literal searched per key: value or path")
	cmd.Flags().Bool("hidden", false, "search hidden files and directories too")
	cmd.Flags().Bool("no-ignore", false, "do not respect .gitignore, .ignore and .git/info/exclude")
}

func (e *env) findUnused(cfg *api.Config) ([]string, error) {
	if err := requireValues(map[string]string{"translations": cfg.Translations, "source": cfg.Source}); err != nil {
		return nil, err
	}
	match, err := unused.ParseMatch(cfg.Match)
	if err != nil {
		return nil, err
	}
	doc, err := e.store().Load(cfg.Translations)
	if err != nil {
		return nil, err
	}
	scanner := scan.New(e.fs, scan.Options{Hidden: cfg.Hidden, NoIgnore: cfg.NoIgnore})
	d, err := unused.NewDetector(scanner, match, cfg.Keep)
	if err != nil {
		return nil, err
	}
	return d.Find(doc, cfg.Source)
}
