package api

// Config holds the resolved settings of one lingo invocation. Every field
// can come from a command line flag, a LINGO_* environment variable or the
// project config file (.lingo.yaml), under the key named in its tag.
type Config struct {
	// Where is the directory of translation files, or the single file for
	// add-to-single.
	Where string `mapstructure:"where"`
	// Key is the dotted path a bulk edit operates on.
	Key string `mapstructure:"key"`
	// From is the updates file for add-to-many and replace.
	From string `mapstructure:"from"`
	// RenameFrom and RenameTo are the source and destination paths of a
	// rename. Their flags are --from and --to.
	RenameFrom string `mapstructure:"rename-from"`
	RenameTo   string `mapstructure:"rename-to"`
	// Files restricts a bulk edit to a comma separated list of file stems.
	Files string `mapstructure:"files"`

	Reference string `mapstructure:"reference"`
	Target    string `mapstructure:"target"`

	// Translations is the reference file whose leaves are checked for use.
	Translations string `mapstructure:"translations"`
	// Source is the root of the code tree searched for translation literals.
	Source string `mapstructure:"source"`
	// Keep lists glob patterns of paths never reported as unused.
	Keep []string `mapstructure:"keep"`
	// Match is "value" or "path".
	Match    string `mapstructure:"match"`
	Hidden   bool   `mapstructure:"hidden"`
	NoIgnore bool   `mapstructure:"no-ignore"`

	// Expr is a JSONPath expression.
	Expr string `mapstructure:"expr"`

	DryRun     bool   `mapstructure:"dry-run"`
	DiffFormat string `mapstructure:"diff-format"`
}
