package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/satriahrh/wordd"
	"github.com/satriahrh/wordd/config"
	"github.com/satriahrh/wordd/server"
	"github.com/satriahrh/wordd/service"
)

const shutdownTimeout = 10 * time.Second

type options struct {
	configFile string
	envFile    string
	shareDir   string
	langs      []string
	totalTiles int
	rackSize   int
	listen     string
	logFile    string
	verbose    bool
}

func main() {
	if err := newRootCmd(&options{}).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "wordd",
		Short:        "Word game daemon serving random letters, words and word checks",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "YAML configuration file")
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file read before the environment")
	flags.StringVar(&opts.shareDir, "share-dir", "", "directory holding words/<lang>/ lists")
	flags.StringSliceVar(&opts.langs, "langs", nil, "comma separated language codes")
	flags.IntVar(&opts.totalTiles, "total-tiles", 0, "tiles per bag, blanks included")
	flags.IntVar(&opts.rackSize, "rack-size", 0, "letters per rack and longest word kept")
	flags.StringVar(&opts.listen, "listen", "", "address to listen on")
	flags.StringVar(&opts.logFile, "log-file", "", "also write logs to this file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(newProfileCmd(opts))
	return cmd
}

func newProfileCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "profile <lang>",
		Short: "Build one language profile and print its summary as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			cfg.Languages = []string{args[0]}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			registry, err := wordd.Load(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			profile, _ := registry.Lookup(args[0])

			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			defer encoder.Close()
			return encoder.Encode(profile.Summary())
		},
	}
}

// loadConfig layers the flags the user set on top of config.Load.
func loadConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg, err := config.Load(opts.configFile, opts.envFile)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("share-dir") {
		cfg.ShareDir = opts.shareDir
	}
	if flags.Changed("langs") {
		cfg.Languages = opts.langs
	}
	if flags.Changed("total-tiles") {
		cfg.TotalTiles = opts.totalTiles
	}
	if flags.Changed("rack-size") {
		cfg.RackSize = opts.rackSize
	}
	if flags.Changed("listen") {
		cfg.ListenAddr = opts.listen
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if flags.Changed("verbose") {
		cfg.Verbose = opts.verbose
	}
	return cfg, cfg.Validate()
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	if cfg.Verbose {
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if cfg.LogFile != "" {
		zapConfig.OutputPaths = append(zapConfig.OutputPaths, cfg.LogFile)
	}
	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func serve(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry, err := wordd.Load(ctx, cfg, logger)
	if err != nil {
		return err
	}
	svc := service.NewService(registry, service.Options{
		CacheSize: cfg.CandidateCacheSize,
		MaxCount:  cfg.MaxCount,
	}, logger)
	httpServer := &http.Server{
		Addr: cfg.ListenAddr,
		Handler: server.NewRouter(svc, server.Options{
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		}, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", cfg.ListenAddr), zap.Strings("langs", cfg.Languages))
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return httpServer.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
