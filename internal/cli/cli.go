package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	cmdopt "github.com/cardinalby/go-cmd-opt"
	"github.com/cardinalby/go-cmd-opt/cmdargs"
	"github.com/spf13/cobra"
)

const longDescription = `cmdopt answers a single query about the arguments following "--" and prints
the result to stdout, one value per line.

Keys are the arguments starting with the prefix ("--" by default) and at least
3 characters long. Values are the arguments following a key up to the next key.

Exit codes:
  0  the query succeeded
  1  the key is absent, has no value or the value can't be converted
  2  invalid usage`

type options struct {
	keyPrefix string
	debug     bool
}

// scalarQuery looks up a single value and formats it for output
type scalarQuery func(store cmdopt.ArgStore, key string) (string, error)

// vectorQuery looks up all values of a key and formats them for output
type vectorQuery func(store cmdopt.ArgStore, key string) ([]string, error)

// Execute runs cmdopt with `args` (without program name) writing query results to `output`.
// Returned error is *ExitError
func Execute(args []string, output io.Writer, logLevel *slog.LevelVar) error {
	if args == nil {
		// cobra falls back to os.Args for nil
		args = []string{}
	}
	rootCmd := NewRootCommand(output, logLevel)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr
		}
		return usageError(err.Error())
	}
	return nil
}

// NewRootCommand builds the cmdopt command tree
func NewRootCommand(output io.Writer, logLevel *slog.LevelVar) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "cmdopt <query> [KEY] -- [ARGS...]",
		Short:         "Look up typed option values in a command line",
		Long:          longDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.debug && logLevel != nil {
				logLevel.Set(slog.LevelDebug)
			}
		},
	}
	rootCmd.SetOut(output)
	rootCmd.PersistentFlags().StringVarP(
		&opts.keyPrefix, "prefix", "p", cmdargs.DefaultKeyPrefix, "Prefix marking keys in ARGS",
	)
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		newScalarCommand("int", "Print the integer following KEY", opts,
			func(store cmdopt.ArgStore, key string) (string, error) {
				res, err := store.LookupInt(key)
				return strconv.Itoa(res), err
			}),
		newScalarCommand("double", "Print the number following KEY", opts,
			func(store cmdopt.ArgStore, key string) (string, error) {
				res, err := store.LookupDouble(key)
				return formatFloat(res), err
			}),
		newScalarCommand("string", "Print the value following KEY", opts,
			func(store cmdopt.ArgStore, key string) (string, error) {
				return store.LookupString(key)
			}),
		newScalarCommand("bool", `Print "false" if KEY is followed by "0", "true" otherwise`, opts,
			func(store cmdopt.ArgStore, key string) (string, error) {
				res, err := store.LookupBool(key)
				return strconv.FormatBool(res), err
			}),
		newVectorCommand("ints", "Print integers following all occurrences of KEY", opts,
			func(store cmdopt.ArgStore, key string) ([]string, error) {
				res, err := store.LookupIntVector(key)
				lines := make([]string, len(res))
				for i, v := range res {
					lines[i] = strconv.Itoa(v)
				}
				return lines, err
			}),
		newVectorCommand("doubles", "Print numbers following all occurrences of KEY", opts,
			func(store cmdopt.ArgStore, key string) ([]string, error) {
				res, err := store.LookupDoubleVector(key)
				lines := make([]string, len(res))
				for i, v := range res {
					lines[i] = formatFloat(v)
				}
				return lines, err
			}),
		newVectorCommand("strings", "Print values following all occurrences of KEY", opts,
			func(store cmdopt.ArgStore, key string) ([]string, error) {
				return store.LookupStringVector(key)
			}),
		newExistsCommand(opts),
		newKeysCommand(opts),
	)

	return rootCmd
}

func newScalarCommand(name, short string, opts *options, query scalarQuery) *cobra.Command {
	var defaultVal string
	cmd := &cobra.Command{
		Use:   name + " KEY -- [ARGS...]",
		Short: short,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, store, err := opts.prepare(cmd, args)
			if err != nil {
				return err
			}
			value, err := query(store, key)
			if err != nil {
				if errors.Is(err, cmdopt.ErrKeyNotFound) && cmd.Flags().Changed("default") {
					slog.Debug("Key not found, printing default.", "key", key, "default", defaultVal)
					return printLines(cmd.OutOrStdout(), defaultVal)
				}
				return opts.queryError(store, key, err)
			}
			slog.Debug("Value found.", "key", key, "value", value)
			return printLines(cmd.OutOrStdout(), value)
		},
	}
	cmd.Flags().StringVarP(&defaultVal, "default", "d", "", "Value printed if KEY is absent")
	return cmd
}

func newVectorCommand(name, short string, opts *options, query vectorQuery) *cobra.Command {
	return &cobra.Command{
		Use:   name + " KEY -- [ARGS...]",
		Short: short,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, store, err := opts.prepare(cmd, args)
			if err != nil {
				return err
			}
			values, err := query(store, key)
			if err != nil {
				return opts.queryError(store, key, err)
			}
			slog.Debug("Values found.", "key", key, "count", len(values))
			return printLines(cmd.OutOrStdout(), values...)
		},
	}
}

func newExistsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "exists KEY -- [ARGS...]",
		Short: "Exit with 0 if KEY is present, 1 otherwise",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, store, err := opts.prepare(cmd, args)
			if err != nil {
				return err
			}
			if !store.KeyExists(key) {
				slog.Debug("Key is absent.", "key", key)
				return &ExitError{Code: ExitCodeQueryFailed}
			}
			return nil
		},
	}
}

func newKeysCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "keys -- [ARGS...]",
		Short: "Print names of the keys present in ARGS",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			queried, err := splitQueryArgs(cmd, args, 0)
			if err != nil {
				return err
			}
			store := opts.newStore(queried)
			return printLines(cmd.OutOrStdout(), store.Keys()...)
		},
	}
}

// prepare extracts KEY and builds the store from arguments following "--"
func (o *options) prepare(cmd *cobra.Command, args []string) (string, cmdopt.ArgStore, error) {
	queried, err := splitQueryArgs(cmd, args, 1)
	if err != nil {
		return "", cmdopt.ArgStore{}, err
	}
	if args[0] == "" {
		return "", cmdopt.ArgStore{}, usageError("KEY must not be empty")
	}
	return args[0], o.newStore(queried), nil
}

func (o *options) newStore(queried []string) cmdopt.ArgStore {
	slog.Debug("Building argument store.", "prefix", o.keyPrefix, "args", len(queried))
	return cmdopt.NewFromArgs(queried, cmdopt.WithKeyPrefix(o.keyPrefix))
}

func (o *options) queryError(store cmdopt.ArgStore, key string, err error) *ExitError {
	if errors.Is(err, cmdopt.ErrInvalidArgument) {
		return usageError(err.Error())
	}
	if errors.Is(err, cmdopt.ErrKeyNotFound) {
		if suggestion := suggestKey(key, store.Keys()); suggestion != "" {
			slog.Debug("Suggesting similar key.", "key", key, "suggestion", suggestion)
			return queryFailed(fmt.Errorf(`%w (did you mean "%s%s"?)`, err, store.KeyPrefix(), suggestion))
		}
	}
	return queryFailed(err)
}

// splitQueryArgs separates `positional` arguments of the command from the queried ARGS following "--"
func splitQueryArgs(cmd *cobra.Command, args []string, positional int) ([]string, error) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		dash = len(args)
	}
	if dash != positional {
		return nil, usageError(fmt.Sprintf(
			`%s expects %d argument(s) before "--", got %d`, cmd.Name(), positional, dash,
		))
	}
	return args[dash:], nil
}

func printLines(output io.Writer, lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(output, line); err != nil {
			return err
		}
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
