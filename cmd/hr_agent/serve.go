package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/hr-copilot/internal/config"
	"github.com/jonathan/hr-copilot/internal/server"
)

var (
	serveConfigPath string
	serveAddr       string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Start an HTTP server exposing POST /query, POST /auth/token, and GET /health.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (environment variables win)")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides LISTEN_ADDR)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if serveAddr != "" {
		cfg.ListenAddr = serveAddr
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	sup, closer, err := buildSupervisor(context.Background(), cfg, logger)
	if err != nil {
		return err
	}
	defer closer()

	srv, err := server.New(sup, server.Config{
		ListenAddr: cfg.ListenAddr,
		MaxHistory: cfg.MaxHistory,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
