package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Iamhimanshu008/DeepCSAT-Ecommerce/internal/config"
	"github.com/Iamhimanshu008/DeepCSAT-Ecommerce/internal/feedback"
	"github.com/Iamhimanshu008/DeepCSAT-Ecommerce/internal/model"
	"github.com/Iamhimanshu008/DeepCSAT-Ecommerce/internal/predict"
	"github.com/Iamhimanshu008/DeepCSAT-Ecommerce/internal/server"
	"github.com/Iamhimanshu008/DeepCSAT-Ecommerce/internal/session"
)

const defaultConfigContent = `server:
  host: "127.0.0.1"
  port: 8501

model:
  dir: "./model"

feedback:
  path: "./feedback.txt"

log:
  level: "info"
`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:   "deepcsat",
		Short: "DeepCSAT e-commerce CSAT dashboard",
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file path")

	root.AddCommand(newInitCmd())
	root.AddCommand(newServeCmd(&cfgPath))

	return root
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(config.DefaultPath); err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "exists", config.DefaultPath)
				return nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return err
			}
			if err := os.WriteFile(config.DefaultPath, []byte(defaultConfigContent), 0o644); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "created", config.DefaultPath)
			return nil
		},
	}
}

func newServeCmd(cfgPath *string) *cobra.Command {
	var host string
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if port != 0 {
				cfg.Server.Port = port
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := newLogger(cfg.Log.Level)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			// The session is useless without both model objects; refuse
			// to start rather than serve a partial UI.
			arts, err := model.Load(cfg.Model.Dir)
			if err != nil {
				logger.Error("model artifacts not found, run the training pipeline first",
					zap.String("dir", cfg.Model.Dir), zap.Error(err))
				return err
			}

			srv, err := server.New(
				cfg,
				logger,
				session.NewManager(session.DefaultTTL),
				predict.New(arts.Preprocessor, arts.Classifier),
				feedback.NewRecorder(cfg.Feedback.Path),
			)
			if err != nil {
				return err
			}

			logger.Info("dashboard listening", zap.String("addr", cfg.Addr()))
			return srv.ListenAndServe(cfg.Addr())
		},
	}
	cmd.Flags().StringVar(&host, "host", "", "server host (overrides config)")
	cmd.Flags().IntVar(&port, "port", 0, "server port (overrides config)")
	return cmd
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}
