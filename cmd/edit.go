package cmd

import (
	"github.com/agentic-research/lingo/internal/batch"
	"github.com/spf13/cobra"
)

func newReplaceCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replace",
		Short: "Replace the value of an existing key in every file",
		Long: `Overwrite an existing key in every translation file of a directory with the
value an updates file holds for the file's stem. Absent keys are an error; use
add-to-many for those.`,
		Example: `  lingo replace --key greeting.hello --from updates.json --where lang/ --files en,sv`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := e.config()
			if err != nil {
				return err
			}
			return e.bulk(cmd, cfg, batch.ReplaceByStem)
		},
	}
	bulkFlags(cmd, "dotted path of the key to replace")
	return cmd
}

func newRemoveCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a key and everything below it from every file",
		Long: `Remove a key, with its whole subtree, from every translation file of a
directory. Files that do not have the key are left as they are.`,
		Example: `  lingo remove --key menu.legacy --where lang/`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := e.config()
			if err != nil {
				return err
			}
			if err := requireValues(map[string]string{"key": cfg.Key, "where": cfg.Where}); err != nil {
				return err
			}
			files, err := e.store().ListFiles(cfg.Where)
			if err != nil {
				return err
			}
			return e.apply(cmd, cfg, files, removePolicy, batch.RemovePaths(cfg.Key))
		},
	}
	cmd.Flags().String("key", "", "dotted path of the key to remove")
	cmd.Flags().String("where", "", "directory of translation files")
	return cmd
}

var removePolicy = batch.Policy{SaveOnError: true, Tolerate: batch.TolerateMissing}

func newRenameCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Move a key to a new path in every file",
		Long: `Move the value at one dotted path to another in every translation file of a
directory. Missing objects on the destination side are created and an existing
destination key is overwritten.`,
		Example: `  lingo rename --from menu.open --to menu.file.open --where lang/`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := e.config()
			if err != nil {
				return err
			}
			if err := requireValues(map[string]string{"from": cfg.RenameFrom, "to": cfg.RenameTo, "where": cfg.Where}); err != nil {
				return err
			}
			files, err := e.store().ListFiles(cfg.Where)
			if err != nil {
				return err
			}
			return e.apply(cmd, cfg, files, batch.Policy{}, batch.Rename(cfg.RenameFrom, cfg.RenameTo))
		},
	}
	cmd.Flags().String("from", "", "dotted path to move")
	cmd.Flags().String("to", "", "dotted path to move it to")
	bindAs(cmd, "from", "rename-from")
	bindAs(cmd, "to", "rename-to")
	cmd.Flags().String("where", "", "directory of translation files")
	return cmd
}

func newSortCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sort",
		Short:   "Rewrite every file with keys sorted at every level",
		Example: `  lingo sort --where lang/`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := e.config()
			if err != nil {
				return err
			}
			if err := requireValues(map[string]string{"where": cfg.Where}); err != nil {
				return err
			}
			files, err := e.store().ListFiles(cfg.Where)
			if err != nil {
				return err
			}
			return e.apply(cmd, cfg, files, batch.Policy{}, batch.Normalize)
		},
	}
	cmd.Flags().String("where", "", "directory of translation files")
	return cmd
}
