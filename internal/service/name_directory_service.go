package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-grade-report/internal/models"
)

const nameFieldCount = 2

type nameRecord struct {
	StudentID string `validate:"studentid"`
	Name      string
}

// NameDirectoryLoader parses `studentId,studentName` lines into a NameDirectory.
type NameDirectoryLoader struct {
	validator *validator.Validate
	logger    *zap.Logger
	metrics   lineRecorder
}

// NewNameDirectoryLoader constructs NameDirectoryLoader.
func NewNameDirectoryLoader(validate *validator.Validate, logger *zap.Logger, metrics lineRecorder) *NameDirectoryLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &NameDirectoryLoader{
		validator: newRecordValidator(validate),
		logger:    logger,
		metrics:   metrics,
	}
}

// Load reads every line of r. Malformed lines are reported and skipped; only a
// read failure is returned as an error. Later entries for an id replace
// earlier ones.
func (l *NameDirectoryLoader) Load(ctx context.Context, r io.Reader) (models.NameDirectory, LoadStats, error) {
	names := make(models.NameDirectory)
	var stats LoadStats
	err := scanLines(ctx, r, func(lineNo int, raw string) {
		stats.Lines++
		l.metrics.ObserveLine(models.SourceNames)
		if isBlank(raw) {
			stats.Blank++
			return
		}
		record, issue := l.parseLine(lineNo, raw)
		if issue != nil {
			stats.Skipped++
			reportIssue(l.logger, l.metrics, *issue)
			return
		}
		names[record.StudentID] = record.Name
		stats.Accepted++
	})
	if err != nil {
		return nil, stats, fmt.Errorf("read name directory: %w", err)
	}
	l.logger.Debug("name directory loaded",
		zap.Int("lines", stats.Lines),
		zap.Int("skipped", stats.Skipped),
		zap.Int("students", len(names)),
	)
	return names, stats, nil
}

func (l *NameDirectoryLoader) parseLine(lineNo int, raw string) (nameRecord, *models.LineIssue) {
	fields := splitFields(raw)
	if len(fields) != nameFieldCount {
		return nameRecord{}, newIssue(models.SourceNames, lineNo, raw, models.IssueFieldCount,
			fmt.Sprintf("expected %d fields, got %d", nameFieldCount, len(fields)))
	}
	record := nameRecord{
		StudentID: strings.TrimSpace(fields[0]),
		Name:      strings.TrimSpace(fields[1]),
	}
	if err := l.validator.Struct(record); err != nil {
		return nameRecord{}, newIssue(models.SourceNames, lineNo, raw, models.IssueInvalidStudentID,
			fmt.Sprintf("student id %q must be exactly 9 digits", record.StudentID))
	}
	return record, nil
}
