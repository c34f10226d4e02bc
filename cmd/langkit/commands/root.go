package commands

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/langkit/pkg/catalog"
	"github.com/dmitrymomot/langkit/pkg/config"
	"github.com/dmitrymomot/langkit/pkg/logger"
)

// ErrChecksFailed is returned by run when at least one check fails.
var ErrChecksFailed = errors.New("one or more checks failed")

type app struct {
	cfg      Config
	log      *slog.Logger
	registry *catalog.Registry
	logLevel string
	envFile  string
}

// Execute runs the CLI against the process arguments and standard streams.
func Execute() error {
	return NewRootCommand(os.Stdout, os.Stderr).Execute()
}

// NewRootCommand builds the command tree writing command output to stdout
// and logs to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{registry: catalog.Default()}

	root := &cobra.Command{
		Use:           "langkit",
		Short:         "Run the langkit catalogue of language behavior checks",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.envFile != "" {
				if err := config.LoadEnv(a.envFile); err != nil {
					return err
				}
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if a.logLevel != "" {
				cfg.LogLevel = a.logLevel
			}
			log, err := newLogger(cfg, stderr, cmd.Name())
			if err != nil {
				return err
			}
			logger.SetAsDefault(log)
			a.cfg, a.log = cfg, log
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "load settings from this .env file (set variables win)")

	root.AddCommand(listCmd(a), runCmd(a))
	return root
}
