package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pbaille/addressjournal/internal/api"
	"github.com/pbaille/addressjournal/internal/config"
	"github.com/pbaille/addressjournal/internal/domain"
	"github.com/pbaille/addressjournal/internal/logic"
	"github.com/pbaille/addressjournal/internal/model"
	"github.com/pbaille/addressjournal/internal/parser"
	"github.com/pbaille/addressjournal/internal/store"
)

var (
	dbPath     string
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "aj",
		Short:        "Address book and journal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("db") {
				cfg.DBPath = dbPath
			}

			logger, err = newLogger(cfg.LogLevel, verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", filepath.Join(config.DefaultDir(), "config.yaml"), "config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(replCmd())
	rootCmd.AddCommand(execCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(configCmd())
	return rootCmd
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zc.Build()
}

// storage is what the CLI needs from a database: the pipeline's
// persistence plus a way to release it.
type storage interface {
	logic.Storage
	Close() error
}

// openStore is swapped out in tests.
var openStore = func(path string) (storage, error) {
	s, err := store.New(path)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// openLogic loads the database into a fresh pipeline. The returned close
// function saves when autosave is off, then releases the database.
func openLogic() (*logic.Logic, func() error, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return nil, nil, fmt.Errorf("create db dir: %w", err)
	}
	s, err := openStore(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}

	l := logic.New(parser.New(), model.New(),
		logic.WithStorage(s, cfg.Autosave),
		logic.WithLogger(logger))
	if err := l.Load(); err != nil {
		s.Close()
		return nil, nil, err
	}

	closeFn := func() error {
		var saveErr error
		if !cfg.Autosave {
			saveErr = l.Save()
		}
		if err := s.Close(); err != nil {
			return errors.Join(saveErr, fmt.Errorf("close database: %w", err))
		}
		return saveErr
	}
	return l, closeFn, nil
}

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read commands interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, closeFn, err := openLogic()
			if err != nil {
				return err
			}
			err = runREPL(l, cmd.InOrStdin(), cmd.OutOrStdout())
			return errors.Join(err, closeFn())
		},
	}
}

func execCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec [command line]",
		Short: "Run a single command",
		Example: `  aj exec add in/c n/Alex Yeoh p/87438807 t/friends
  aj exec find in/j c/Alex`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			l, closeFn, err := openLogic()
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, closeFn()) }()

			res, err := l.Execute(strings.Join(args, " "))
			if res.Feedback != "" {
				fmt.Fprintln(cmd.OutOrStdout(), res.Feedback)
			}
			return err
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "list [c|j]",
		Short:     "Print every contact or journal entry",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(domain.ScopeContacts), string(domain.ScopeJournal)},
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			scope, err := domain.NewScope(args[0])
			if err != nil {
				return err
			}

			l, closeFn, err := openLogic()
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, closeFn()) }()

			printList(cmd.OutOrStdout(), l.Model(), scope)
			return nil
		},
	}
}

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the loopback API server",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if !cmd.Flags().Changed("addr") {
				addr = cfg.ServeAddr
			}

			l, closeFn, err := openLogic()
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, closeFn()) }()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return api.New(l, addr, logger).Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "server address (overrides config)")
	return cmd
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(configPath); err == nil && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", configPath)
			}
			if err := cfg.Save(configPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	cmd.AddCommand(initCmd)
	return cmd
}
