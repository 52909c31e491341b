package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-grade-report/internal/models"
	"github.com/noah-isme/sma-grade-report/internal/service"
	"github.com/noah-isme/sma-grade-report/pkg/config"
	appErrors "github.com/noah-isme/sma-grade-report/pkg/errors"
	"github.com/noah-isme/sma-grade-report/pkg/logger"
	"github.com/noah-isme/sma-grade-report/pkg/storage"
)

var runFlags struct {
	dir         string
	names       string
	courses     string
	output      string
	format      string
	metricsFile string
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate the course grade report",
	Long:  "Flags override the matching environment variables (REPORT_DIR, NAMES_FILE, COURSES_FILE, REPORT_FILE, REPORT_FORMAT, METRICS_FILE).",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&runFlags.dir, "dir", "", "Base directory for relative file names")
	f.StringVar(&runFlags.names, "names", "", "Name directory file (studentId,studentName)")
	f.StringVar(&runFlags.courses, "courses", "", "Course grade file (studentId,courseCode,test1,test2,test3,finalExam)")
	f.StringVarP(&runFlags.output, "output", "o", "", "Report file to write")
	f.StringVar(&runFlags.format, "format", "", "Report format: text or pdf")
	f.StringVar(&runFlags.metricsFile, "metrics-file", "", "Write Prometheus textfile metrics here after the run")
}

func runReport(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyRunFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logr.Sync() //nolint:errcheck

	store, err := storage.NewLocalStorage(cfg.Report.Dir)
	if err != nil {
		return fmt.Errorf("open report directory: %w", err)
	}

	metrics := service.NewMetricsService()
	pipeline := service.NewPipeline(store, service.PipelineConfig{Format: models.ReportFormat(cfg.Report.Format)}, metrics, logr)

	result, err := pipeline.Run(cmd.Context(), service.RunRequest{
		NamesFile:   cfg.Report.NamesFile,
		CoursesFile: cfg.Report.CoursesFile,
		OutputFile:  cfg.Report.OutputFile,
	})
	if err != nil {
		appErr := appErrors.FromError(err)
		return fmt.Errorf("%s stage failed: %w", appErr.Stage, err)
	}

	if cfg.Metrics.File != "" {
		if err := metrics.WriteTextfile(cfg.Metrics.File); err != nil {
			// the report is already written; a metrics failure does not fail the run
			logr.Warn("metrics textfile not written",
				zap.String("path", cfg.Metrics.File),
				zap.Error(appErrors.Wrap(err, appErrors.ErrMetricsUnwritable.Code, appErrors.ErrMetricsUnwritable.Stage, appErrors.ErrMetricsUnwritable.Message)),
			)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", result.OutputPath)
	return nil
}

func applyRunFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("dir") {
		cfg.Report.Dir = runFlags.dir
	}
	if f.Changed("names") {
		cfg.Report.NamesFile = runFlags.names
	}
	if f.Changed("courses") {
		cfg.Report.CoursesFile = runFlags.courses
	}
	if f.Changed("output") {
		cfg.Report.OutputFile = runFlags.output
	}
	if f.Changed("format") {
		cfg.Report.Format = strings.ToLower(strings.TrimSpace(runFlags.format))
	}
	if f.Changed("metrics-file") {
		cfg.Metrics.File = runFlags.metricsFile
	}
}
