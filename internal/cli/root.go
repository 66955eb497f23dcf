// Package cli implements the motorpool command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mesh-intelligence/motorpool/internal/composer"
	"github.com/mesh-intelligence/motorpool/internal/paths"
	"github.com/mesh-intelligence/motorpool/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir  string
	permissive bool
	verbose    bool
	jsonMode   bool
}

// app is the state shared by one command tree: flags plus what
// PersistentPreRunE builds from them.
type app struct {
	flags    rootFlags
	logger   *zap.Logger
	config   types.Config
	composer *composer.Composer
}

// NewRootCmd creates the top-level "motorpool" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "motorpool",
		Short: "Compose vehicles from a base and capabilities",
		Long: `motorpool assembles vehicle entities from a base (make, model, year)
plus passenger and cargo capabilities, and prints a layered description.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/motorpool)")
	root.PersistentFlags().BoolVar(&a.flags.permissive, "permissive", false, "drop fields no layer claims instead of failing")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &exitError{code: exitUserError, err: err}
	})

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newComposeCmd(a))
	root.AddCommand(newKindsCmd(a))

	return root
}

// setup builds the logger, loads config.yaml, and creates the composer.
func (a *app) setup(cmd *cobra.Command) error {
	if cmd.Name() == "version" {
		return nil
	}

	a.logger = newLogger(cmd.ErrOrStderr(), a.flags.verbose)

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return &exitError{code: exitSysError, err: fmt.Errorf("resolve config dir: %w", err)}
	}
	a.flags.configDir = configDir

	cfg, err := loadConfig(configDir)
	if err != nil {
		return &exitError{code: exitSysError, err: err}
	}
	if a.flags.permissive {
		cfg.UnconsumedFields = types.PolicyPermissive
	}
	a.logger.Debug("config loaded",
		zap.String("config_dir", configDir),
		zap.String("unconsumed_fields", cfg.UnconsumedFields))

	c, err := composer.New(cfg, composer.WithLogger(a.logger))
	if err != nil {
		return &exitError{code: exitUserError, err: fmt.Errorf("config: %w", err)}
	}
	a.config = cfg
	a.composer = c
	return nil
}

// newLogger builds a zap logger with the production JSON encoding, writing
// to w (the command's stderr). Debug level is enabled by --verbose.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)
	return zap.New(core, zap.AddCaller(), zap.ErrorOutput(zapcore.Lock(zapcore.AddSync(w))))
}

// exitError carries a process exit code with the error to print.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// exitCode maps an error from the command tree to a process exit code.
// System failures (config and file I/O, encoding) are tagged with an
// exitError where they happen; everything else, including cobra flag and
// argument errors, is a user error.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(exitCode(err))
}
