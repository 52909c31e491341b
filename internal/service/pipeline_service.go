package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-grade-report/internal/models"
	appErrors "github.com/noah-isme/sma-grade-report/pkg/errors"
	applog "github.com/noah-isme/sma-grade-report/pkg/logger"
)

type fileStorage interface {
	Open(filename string) (io.ReadCloser, error)
	Create(filename string) (io.WriteCloser, error)
	Path(filename string) string
}

// PipelineConfig tunes report generation.
type PipelineConfig struct {
	Format models.ReportFormat
}

// RunRequest names the files used by one run, relative to the storage root.
type RunRequest struct {
	NamesFile   string
	CoursesFile string
	OutputFile  string
}

// RunResult captures what a successful run produced.
type RunResult struct {
	RunID       string
	OutputPath  string
	Format      models.ReportFormat
	Names       LoadStats
	Courses     LoadStats
	Students    int
	Enrollments int
	Duration    time.Duration
}

// Pipeline loads the name directory, then the course grades, then writes the
// sorted report. Stages run strictly one after another.
type Pipeline struct {
	storage   fileStorage
	cfg       PipelineConfig
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewPipeline constructs a Pipeline.
func NewPipeline(storage fileStorage, cfg PipelineConfig, metrics *MetricsService, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Format == "" {
		cfg.Format = models.ReportFormatText
	}
	return &Pipeline{
		storage:   storage,
		cfg:       cfg,
		validator: newRecordValidator(nil),
		metrics:   metrics,
		logger:    logger,
	}
}

// Run executes one batch. Content problems in the inputs are logged and
// skipped; an error is returned only when a stage cannot read or write its
// file, and it is always an *errors.Error naming that stage.
func (p *Pipeline) Run(ctx context.Context, req RunRequest) (*RunResult, error) {
	if !p.cfg.Format.Valid() {
		return nil, appErrors.Clone(appErrors.ErrInvalidConfig, fmt.Sprintf("unsupported report format %q", p.cfg.Format))
	}

	start := time.Now()
	runID := uuid.NewString()
	logger := applog.ForRun(p.logger, runID)
	logger.Info("report run started",
		zap.String("names_file", req.NamesFile),
		zap.String("courses_file", req.CoursesFile),
		zap.String("output_file", req.OutputFile),
	)

	names, nameStats, err := p.loadNames(ctx, req.NamesFile, NewNameDirectoryLoader(p.validator, logger, p.metrics))
	if err != nil {
		logger.Error("name directory stage failed", zap.Error(err))
		return nil, err
	}

	enrollments, courseStats, err := p.loadEnrollments(ctx, req.CoursesFile, names, NewEnrollmentLoader(logger, p.metrics))
	if err != nil {
		logger.Error("course grades stage failed", zap.Error(err))
		return nil, err
	}

	writer := NewReportWriter(p.cfg.Format, logger, nil, nil)
	if err := p.writeReport(req.OutputFile, enrollments, writer); err != nil {
		logger.Error("report stage failed", zap.Error(err))
		return nil, err
	}

	finished := time.Now()
	result := &RunResult{
		RunID:       runID,
		OutputPath:  p.storage.Path(req.OutputFile),
		Format:      p.cfg.Format,
		Names:       nameStats,
		Courses:     courseStats,
		Students:    len(names),
		Enrollments: len(enrollments),
		Duration:    finished.Sub(start),
	}
	p.metrics.ObserveRun(result.Duration, result.Enrollments, finished)

	logger.Info("report run finished",
		zap.String("output", result.OutputPath),
		zap.Int("students", result.Students),
		zap.Int("enrollments", result.Enrollments),
		zap.Int("names_skipped", nameStats.Skipped),
		zap.Int("courses_skipped", courseStats.Skipped),
		zap.Duration("duration", result.Duration),
	)
	return result, nil
}

func (p *Pipeline) loadNames(ctx context.Context, filename string, loader *NameDirectoryLoader) (models.NameDirectory, LoadStats, error) {
	src, err := p.storage.Open(filename)
	if err != nil {
		return nil, LoadStats{}, appErrors.Wrap(err, appErrors.ErrNamesUnreadable.Code, appErrors.ErrNamesUnreadable.Stage, "open name directory "+filename)
	}
	defer src.Close() //nolint:errcheck

	names, stats, err := loader.Load(ctx, src)
	if err != nil {
		return nil, stats, appErrors.Wrap(err, appErrors.ErrNamesUnreadable.Code, appErrors.ErrNamesUnreadable.Stage, "load name directory "+filename)
	}
	return names, stats, nil
}

func (p *Pipeline) loadEnrollments(ctx context.Context, filename string, names models.NameDirectory, loader *EnrollmentLoader) ([]models.Enrollment, LoadStats, error) {
	src, err := p.storage.Open(filename)
	if err != nil {
		return nil, LoadStats{}, appErrors.Wrap(err, appErrors.ErrCoursesUnreadable.Code, appErrors.ErrCoursesUnreadable.Stage, "open course grades "+filename)
	}
	defer src.Close() //nolint:errcheck

	enrollments, stats, err := loader.Load(ctx, src, names)
	if err != nil {
		return nil, stats, appErrors.Wrap(err, appErrors.ErrCoursesUnreadable.Code, appErrors.ErrCoursesUnreadable.Stage, "load course grades "+filename)
	}
	return enrollments, stats, nil
}

func (p *Pipeline) writeReport(filename string, enrollments []models.Enrollment, writer *ReportWriter) error {
	dst, err := p.storage.Create(filename)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrReportUnwritable.Code, appErrors.ErrReportUnwritable.Stage, "create report "+filename)
	}
	writeErr := writer.Write(dst, enrollments)
	closeErr := dst.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		return appErrors.Wrap(err, appErrors.ErrReportUnwritable.Code, appErrors.ErrReportUnwritable.Stage, "write report "+filename)
	}
	return nil
}
