package cmd

import (
	"github.com/agentic-research/lingo/api"
	"github.com/agentic-research/lingo/internal/batch"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

func newAddToManyCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-to-many",
		Short: "Add a key to every file in a directory",
		Long: `Add a key to every translation file in a directory. The value for each
file is read from an updates file keyed by file stem, e.g. {"en": "Hello", "sv": "Hej"}.
Existing keys are never overwritten; use replace for that.`,
		Example: `  lingo add-to-many --key greeting.hello --from updates.json --where lang/`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := e.config()
			if err != nil {
				return err
			}
			return e.bulk(cmd, cfg, batch.InsertByStem)
		},
	}
	bulkFlags(cmd, "dotted path of the key to add")
	return cmd
}

func newAddToSingleCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-to-single",
		Short: "Add every path of an updates file to one file",
		Long: `Add every entry of an updates file, keyed by dotted path, to a single
translation file. The file is written only when every insert succeeds.`,
		Example: `  lingo add-to-single --from new-keys.json --where lang/en.json`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := e.config()
			if err != nil {
				return err
			}
			if err := requireValues(map[string]string{"from": cfg.From, "where": cfg.Where}); err != nil {
				return err
			}
			updates, err := e.store().LoadUpdates(cfg.From)
			if err != nil {
				return err
			}
			return e.apply(cmd, cfg, []string{cfg.Where}, batch.Policy{}, batch.InsertAll(updates))
		},
	}
	cmd.Flags().String("from", "", "updates file mapping dotted paths to values")
	cmd.Flags().String("where", "", "translation file to update")
	return cmd
}

func bulkFlags(cmd *cobra.Command, keyUsage string) {
	cmd.Flags().String("key", "", keyUsage)
	cmd.Flags().String("from", "", "updates file mapping file stems to values")
	cmd.Flags().String("where", "", "directory of translation files")
	cmd.Flags().String("files", "", "comma separated subset of files to update, e.g. en,sv.json")
}

// bulk validates an updates file against the directory and applies one
// stem-keyed edit to every selected file.
func (e *env) bulk(cmd *cobra.Command, cfg *api.Config, op func(string, map[string]string) batch.Mutation) error {
	if err := requireValues(map[string]string{"key": cfg.Key, "from": cfg.From, "where": cfg.Where}); err != nil {
		return err
	}
	st := e.store()
	updates, err := st.LoadUpdates(cfg.From)
	if err != nil {
		return err
	}
	files, err := st.ListFiles(cfg.Where)
	if err != nil {
		return err
	}

	stems, err := batch.ParseLimit(cfg.Files)
	if err != nil {
		return err
	}
	if len(stems) > 0 {
		if err := batch.ValidateSubset(updates, stems); err != nil {
			return err
		}
		selected, err := batch.Select(files, stems)
		if err != nil {
			return err
		}
		if len(selected) < len(stems) {
			klog.Warningf("only %d of %d listed files exist in %s", len(selected), len(stems), cfg.Where)
		}
		files = selected
	} else if err := batch.ValidateMapping(updates, files); err != nil {
		return err
	}

	return e.apply(cmd, cfg, files, batch.Policy{}, op(cfg.Key, updates))
}
