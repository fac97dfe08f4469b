package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/agenthands/cardsmith/internal/config"
	"github.com/agenthands/cardsmith/internal/server"
)

const defaultConfigPath = "config/config.toml"

var (
	cfgFile string
	port    string
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "cardsmith",
	Short: "cardsmith - pick and fill the best card for a user query",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zc.Build()
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
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			logger.Info("No .env file found, using environment")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if port != "" {
			cfg.Server.Port = port
		}

		srv, err := server.NewServer(context.Background(), cfg, logger)
		if err != nil {
			return err
		}

		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		return srv.SetupRouter().Run(":" + cfg.Server.Port)
	},
}

// loadConfig reads the config file and applies env overrides. A missing file at
// the default location is not an error.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	cfg, err := config.Load(path)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, fs.ErrNotExist):
		logger.Warn("config file not found, using defaults", zap.String("path", path))
		cfg = config.Default()
	default:
		return nil, err
	}

	cfg.ApplyEnv(os.Getenv)
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default "+defaultConfigPath+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "listen port, overrides config and PORT")
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
