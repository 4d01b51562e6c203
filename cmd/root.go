package cmd

import (
	"errors"
	goflag "flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/agentic-research/lingo/api"
	"github.com/agentic-research/lingo/internal/batch"
	"github.com/agentic-research/lingo/internal/report"
	"github.com/agentic-research/lingo/internal/store"
	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/helper/chroot"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

const (
	envPrefix  = "LINGO"
	configName = ".lingo"

	// configKey is a flag annotation naming the config key the flag is
	// bound to when it differs from the flag name.
	configKey = "lingo_config_key"
)

// errDifferences makes the process exit non-zero after a comparison report
// without printing anything further.
var errDifferences = errors.New("differences found")

// env is shared by the commands of one invocation.
type env struct {
	v  *viper.Viper
	fs billy.Filesystem
}

// NewRootCmd builds the command tree. All file access goes through fs.
func NewRootCmd(fs billy.Filesystem) *cobra.Command {
	e := &env{v: viper.New(), fs: fs}
	var cfgFile string

	root := &cobra.Command{
		Use:           "lingo",
		Short:         "Lingo: structural maintenance for JSON translation files",
		Long:          "Lingo edits, sorts and reconciles a directory of structurally parallel JSON translation files, and finds keys a code base no longer uses.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(e.v, cmd, cfgFile)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ./"+configName+".yaml)")
	pf.Bool("dry-run", false, "print the changes instead of writing them")
	pf.String("diff-format", string(report.FormatDiff), "dry-run output: diff (unified) or patch (JSON merge patch)")

	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	pf.AddGoFlagSet(klogFlags)

	root.AddCommand(
		newAddToManyCmd(e),
		newAddToSingleCmd(e),
		newRemoveCmd(e),
		newReplaceCmd(e),
		newRenameCmd(e),
		newSortCmd(e),
		newCompareCmd(e),
		newCompareAllCmd(e),
		newListUnusedCmd(e),
		newRemoveUnusedCmd(e),
		newQueryCmd(e),
	)
	return root
}

// Execute runs the root command against the local file system.
func Execute() {
	defer klog.Flush()
	root := NewRootCmd(newOSFilesystem())
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errDifferences) {
			fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		}
		klog.Flush()
		os.Exit(1)
	}
}

// localFS is the process file system. Relative paths resolve against the
// working directory and absolute paths are used as given.
type localFS struct {
	*osfs.ChrootOS
}

func newOSFilesystem() billy.Filesystem {
	return localFS{osfs.Default}
}

func (fs localFS) Chroot(path string) (billy.Filesystem, error) {
	return chroot.New(fs, path), nil
}

func (localFS) Root() string {
	return ""
}

func (localFS) Chmod(name string, mode os.FileMode) error {
	return os.Chmod(name, mode)
}

// initConfig layers flags over LINGO_* variables over the config file.
func initConfig(v *viper.Viper, cmd *cobra.Command, cfgFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	} else {
		klog.V(1).Infof("using config file %s", v.ConfigFileUsed())
	}

	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := f.Name
		if k := f.Annotations[configKey]; len(k) > 0 {
			key = k[0]
		}
		if bindErr := v.BindPFlag(key, f); bindErr != nil && err == nil {
			err = bindErr
		}
	})
	return err
}

// bindAs binds a flag to a config key other than its own name.
func bindAs(cmd *cobra.Command, flag, key string) {
	if err := cmd.Flags().SetAnnotation(flag, configKey, []string{key}); err != nil {
		panic(err)
	}
}

func (e *env) config() (*api.Config, error) {
	var cfg api.Config
	if err := e.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}

func (e *env) store() *store.Store {
	return store.New(e.fs)
}

// apply runs a mutation over files and prints a one line summary.
func (e *env) apply(cmd *cobra.Command, cfg *api.Config, files []string, policy batch.Policy, m batch.Mutation) error {
	format, err := report.ParsePatchFormat(cfg.DiffFormat)
	if err != nil {
		return err
	}
	r := &batch.Runner{
		Store:  e.store(),
		Out:    cmd.OutOrStdout(),
		DryRun: cfg.DryRun,
		Format: format,
	}
	res, err := r.Apply(files, policy, m)

	verb := "updated"
	if cfg.DryRun {
		verb = "would update"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d of %d files", verb, len(res.Changed), len(files))
	if len(res.Failed) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), " (%d failed)", len(res.Failed))
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return err
}

// requireValues fails when any named setting resolved to an empty string.
func requireValues(values map[string]string) error {
	var missing []string
	for name, v := range values {
		if v == "" {
			missing = append(missing, `"`+name+`"`)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return fmt.Errorf("required flag(s) %s not set", strings.Join(missing, ", "))
}
