package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/sma-grade-report/internal/models"
)

const courseFieldCount = 6

var scoreColumns = [4]string{"test1", "test2", "test3", "finalExam"}

var errNonFiniteScore = errors.New("score is not a finite number")

// EnrollmentLoader parses `studentId,courseCode,test1,test2,test3,finalExam`
// lines and resolves each student against a NameDirectory.
type EnrollmentLoader struct {
	logger  *zap.Logger
	metrics lineRecorder
}

// NewEnrollmentLoader constructs EnrollmentLoader.
func NewEnrollmentLoader(logger *zap.Logger, metrics lineRecorder) *EnrollmentLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &EnrollmentLoader{logger: logger, metrics: metrics}
}

// Load returns the valid enrollments of r in file order. Malformed or
// unresolvable lines are reported and skipped; only a read failure is returned
// as an error.
func (l *EnrollmentLoader) Load(ctx context.Context, r io.Reader, names models.NameDirectory) ([]models.Enrollment, LoadStats, error) {
	enrollments := make([]models.Enrollment, 0)
	var stats LoadStats
	err := scanLines(ctx, r, func(lineNo int, raw string) {
		stats.Lines++
		l.metrics.ObserveLine(models.SourceCourses)
		if isBlank(raw) {
			stats.Blank++
			return
		}
		enrollment, issue := parseEnrollmentLine(lineNo, raw, names)
		if issue != nil {
			stats.Skipped++
			reportIssue(l.logger, l.metrics, *issue)
			return
		}
		enrollments = append(enrollments, enrollment)
		stats.Accepted++
	})
	if err != nil {
		return nil, stats, fmt.Errorf("read course grades: %w", err)
	}
	l.logger.Debug("course grades loaded",
		zap.Int("lines", stats.Lines),
		zap.Int("skipped", stats.Skipped),
		zap.Int("enrollments", len(enrollments)),
	)
	return enrollments, stats, nil
}

func parseEnrollmentLine(lineNo int, raw string, names models.NameDirectory) (models.Enrollment, *models.LineIssue) {
	fields := splitFields(raw)
	if len(fields) != courseFieldCount {
		return models.Enrollment{}, newIssue(models.SourceCourses, lineNo, raw, models.IssueFieldCount,
			fmt.Sprintf("expected %d fields, got %d", courseFieldCount, len(fields)))
	}

	var scores [4]float64
	var invalid []string
	for i, field := range fields[2:] {
		score, err := parseScore(field)
		if err != nil {
			invalid = append(invalid, scoreColumns[i])
			continue
		}
		scores[i] = score
	}
	if len(invalid) > 0 {
		return models.Enrollment{}, newIssue(models.SourceCourses, lineNo, raw, models.IssueInvalidScore,
			"invalid number in "+strings.Join(invalid, ", "))
	}

	studentID := strings.TrimSpace(fields[0])
	name, ok := names.Lookup(studentID)
	if !ok {
		return models.Enrollment{}, newIssue(models.SourceCourses, lineNo, raw, models.IssueUnknownStudent,
			fmt.Sprintf("student id %q not found in name directory", studentID))
	}

	return models.NewEnrollment(studentID, name, strings.TrimSpace(fields[1]),
		scores[0], scores[1], scores[2], scores[3]), nil
}

func parseScore(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNonFiniteScore
	}
	return v, nil
}
