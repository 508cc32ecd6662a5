package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/cv-screener/internal/logger"
	"github.com/jonathan/cv-screener/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the scored candidate corpus: ranking, filtering, search and question answering.`,
	RunE:  runServe,
}

var (
	serveCandidates string
	serveJob        string
	servePort       int
)

func init() {
	serveCmd.Flags().StringVarP(&serveCandidates, "candidates", "c", "", "Path to candidates JSON file")
	serveCmd.Flags().StringVarP(&serveJob, "job", "j", "", "Path to job description JSON file")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	scored, job, err := loadScoredCorpus(cmd.Context(), cfg, serveCandidates, serveJob)
	if err != nil {
		return err
	}
	log.Info("corpus scored",
		zap.Int("candidates", len(scored)),
		zap.String("job", job.Title),
	)

	srv := server.New(server.Config{Port: cfg.Port, SearchSeed: cfg.SearchSeed}, scored, job, log)
	return srv.Start()
}
