package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tracefold/config"
	"github.com/katalvlaran/tracefold/internal/logging"
	"github.com/katalvlaran/tracefold/learn"
	"github.com/katalvlaran/tracefold/metrics"
)

var learnCmd = &cobra.Command{
	Use:   "learn [trace files...]",
	Short: "Learn one automaton per trace file",
	Long: `Reads each YAML trace file, generalizes its traces and prints a summary
line per file. With --dot-dir the learned graphs are written as Graphviz files.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLearn,
}

func init() {
	learnCmd.Flags().String("dot-dir", "", "directory for <name>.dot outputs")
	learnCmd.Flags().String("metrics-addr", "", "serve Prometheus metrics on this address while learning")
	rootCmd.AddCommand(learnCmd)
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	c := config.Default()
	if path != "" {
		var err error
		if c, err = config.Load(path); err != nil {
			return c, err
		}
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		c.LogLevel = lvl
	}
	if addr, _ := cmd.Flags().GetString("metrics-addr"); addr != "" {
		c.MetricsAddr = addr
	}

	return c, c.Validate()
}

func runLearn(cmd *cobra.Command, args []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	level, _ := logging.ParseLevel(c.LogLevel)
	logger := logging.New(level)

	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg)
	if err != nil {
		return err
	}
	if c.MetricsAddr != "" {
		srv := &http.Server{Addr: c.MetricsAddr, Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server stopped", "error", err)
			}
		}()
		defer srv.Close()
		logger.Info("serving metrics", "addr", c.MetricsAddr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reports, err := learn.Run(ctx, c, args, logger, collector)
	if err != nil {
		return err
	}

	dotDir, _ := cmd.Flags().GetString("dot-dir")
	out := cmd.OutOrStdout()
	for _, r := range reports {
		fmt.Fprintf(out, "%s\t%s\tnodes=%d edges=%d loops=%d cost=%g\n",
			r.Name, r.Result, r.Nodes, r.Edges, r.Loops, r.Cost)
		if dotDir == "" {
			continue
		}
		base := strings.TrimSuffix(filepath.Base(r.Name), filepath.Ext(r.Name))
		if err := os.WriteFile(filepath.Join(dotDir, base+".dot"), r.DOT, 0o644); err != nil {
			return fmt.Errorf("write dot: %w", err)
		}
	}

	return nil
}
