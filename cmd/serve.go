package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/tabled/internal/ingest"
	logpkg "github.com/KaramelBytes/tabled/internal/log"
	"github.com/KaramelBytes/tabled/internal/server"
	"github.com/KaramelBytes/tabled/internal/store"
)

var (
	serveListen string
	serveData   string
	serveSample bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dataset HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			return errors.New("configuration not loaded")
		}
		if cmd.Flags().Changed("listen") {
			cfg.ListenAddr = serveListen
		}
		if cmd.Flags().Changed("data") {
			cfg.DataDir = serveData
		}
		if cmd.Flags().Changed("sample") {
			cfg.SeedSample = serveSample
		}

		logger := logpkg.NewLogger(cfg.LogLevel, cfg.LogFormat)

		st := store.New()
		if cfg.SeedSample {
			st.Put(server.SampleDataset())
			logger.Info("seeded sample dataset")
		}
		if cfg.DataDir != "" {
			if err := preload(st, cfg.DataDir, logger); err != nil {
				return err
			}
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(cfg, st, logger)
		return srv.ListenAndServe(ctx)
	},
}

// preload loads every decodable file in dir into the store. Files no
// decoder recognizes are skipped with a log line rather than failing
// startup.
func preload(st *store.Store, dir string, logger *logrus.Logger) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read data dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !ingest.Supported(e.Name()) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		ds, err := ingest.DecodeFile(path)
		if err != nil {
			logger.Warnf("skipping %s: %v", e.Name(), err)
			continue
		}
		st.Put(ds)
	}
	return nil
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "listen address (overrides config)")
	serveCmd.Flags().StringVar(&serveData, "data", "", "directory of CSV/TSV/JSON files to preload")
	serveCmd.Flags().BoolVar(&serveSample, "sample", false, "seed the built-in sample dataset")
	rootCmd.AddCommand(serveCmd)
}
