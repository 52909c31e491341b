package service

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/sma-grade-report/internal/models"
)

// LoadStats summarises how the lines of one input file were handled.
type LoadStats struct {
	Lines    int
	Blank    int
	Skipped  int
	Accepted int
}

type lineRecorder interface {
	ObserveLine(source models.Source)
	ObserveSkip(source models.Source, kind models.IssueKind)
}

type nopRecorder struct{}

func (nopRecorder) ObserveLine(models.Source)                   {}
func (nopRecorder) ObserveSkip(models.Source, models.IssueKind) {}

// scanLines feeds each line of r to fn with its 1-based number. Lines have no
// length limit. A trailing "\n" or "\r\n" is dropped, and a final line without
// a terminator is still delivered.
func scanLines(ctx context.Context, r io.Reader, fn func(lineNo int, raw string)) error {
	reader := bufio.NewReader(r)
	lineNo := 0
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if line == "" && err != nil {
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		lineNo++
		fn(lineNo, strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"))
		if err != nil {
			return nil
		}
	}
}

// splitFields splits a line on commas and drops trailing empty fields, so
// "123456789,Alice," has two fields. Leading and inner empty fields are kept.
func splitFields(raw string) []string {
	fields := strings.Split(raw, ",")
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}

func isBlank(raw string) bool {
	return strings.TrimSpace(raw) == ""
}

func newIssue(source models.Source, lineNo int, raw string, kind models.IssueKind, reason string) *models.LineIssue {
	return &models.LineIssue{Source: source, Line: lineNo, Raw: raw, Kind: kind, Reason: reason}
}

// reportIssue writes a skipped-line diagnostic. Nothing is retained.
func reportIssue(logger *zap.Logger, recorder lineRecorder, issue models.LineIssue) {
	logger.Warn("skipped input line",
		zap.String("source", string(issue.Source)),
		zap.Int("line", issue.Line),
		zap.String("kind", string(issue.Kind)),
		zap.String("reason", issue.Reason),
		zap.String("raw", issue.Raw),
	)
	recorder.ObserveSkip(issue.Source, issue.Kind)
}
