// Command scheduler is a thin CLI over the engine package: it reads a
// GenerateRequest JSON document on standard input and writes the
// GenerationResult JSON to standard output, per spec.md §6.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noah-isme/schedule-engine/internal/dto"
	"github.com/noah-isme/schedule-engine/internal/engine"
	"github.com/noah-isme/schedule-engine/pkg/config"
	"github.com/noah-isme/schedule-engine/pkg/logger"
	"github.com/noah-isme/schedule-engine/pkg/metrics"
)

var (
	solverType     string
	maxTimeSeconds int
	optimize       bool
	logLevel       string
	logFormat      string
	metricsEnabled bool
)

func main() {
	cmd := &cobra.Command{
		Use:   "scheduler",
		Short: "Generate a conflict-free course schedule from a JSON request on stdin",
		RunE:  run,
	}

	cmd.Flags().StringVar(&solverType, "solver", "", "override config.solver_type (csp|greedy|hybrid)")
	cmd.Flags().IntVar(&maxTimeSeconds, "max-time", 0, "override config.max_time_seconds")
	cmd.Flags().BoolVar(&optimize, "optimize", false, "run the conflict analyzer and include its output")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "override the configured log level")
	cmd.Flags().StringVar(&logFormat, "log-format", "", "override the configured log format (json|console)")
	cmd.Flags().BoolVar(&metricsEnabled, "metrics", false, "register and print the Prometheus registry's summary on exit")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyFlagOverrides(cfg)

	zapLogger, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	var reg *metrics.Registry
	if cfg.MetricsEnabled || metricsEnabled {
		reg = metrics.New()
	}

	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	var req dto.GenerateRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		if err := writeResult(cmd.OutOrStdout(), dto.GenerationResult{Success: false, Error: "validation"}); err != nil {
			return err
		}
		os.Exit(1)
	}
	applyRequestOverrides(&req, cfg)

	eng := engine.New(zapLogger, engine.WithMetrics(reg))
	result := eng.Generate(req)

	if err := writeResult(cmd.OutOrStdout(), result); err != nil {
		return err
	}
	if reg != nil {
		if err := reg.WriteTo(cmd.ErrOrStderr()); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	if !result.Success {
		os.Exit(1)
	}
	return nil
}

func applyFlagOverrides(cfg *config.Config) {
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}
}

func applyRequestOverrides(req *dto.GenerateRequest, cfg *config.Config) {
	if req.Config.SolverType == "" {
		req.Config.SolverType = cfg.DefaultSolver
	}
	if solverType != "" {
		req.Config.SolverType = solverType
	}
	if req.Config.MaxTimeSeconds <= 0 {
		req.Config.MaxTimeSeconds = cfg.DefaultMaxSeconds
	}
	if maxTimeSeconds > 0 {
		req.Config.MaxTimeSeconds = maxTimeSeconds
	}
	if optimize {
		req.Config.Optimize = true
	}
}

func writeResult(w io.Writer, result dto.GenerationResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
