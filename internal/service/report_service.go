package service

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/sma-grade-report/internal/models"
	"github.com/noah-isme/sma-grade-report/pkg/export"
)

// ReportHeader is the first line of every text report.
const ReportHeader = "Student ID,Student Name,Course Code,Final grade (test 1,2,3-3x20%, final exam 40%)"

const reportTitle = "Course Grade Report"

// reportColumns splits the header into its four column titles; the last one
// carries commas of its own.
var reportColumns = strings.SplitN(ReportHeader, ",", 4)

type textRenderer interface {
	Render(w io.Writer, data export.Dataset) error
}

type pdfRenderer interface {
	Render(w io.Writer, data export.Dataset, title string) error
}

// ReportWriter sorts enrollments by student id and serialises them.
type ReportWriter struct {
	format models.ReportFormat
	text   textRenderer
	pdf    pdfRenderer
	logger *zap.Logger
}

// NewReportWriter constructs ReportWriter. Nil renderers fall back to the
// exporters in pkg/export.
func NewReportWriter(format models.ReportFormat, logger *zap.Logger, text textRenderer, pdf pdfRenderer) *ReportWriter {
	if format == "" {
		format = models.ReportFormatText
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if text == nil {
		text = export.NewTextExporter(",")
	}
	if pdf == nil {
		pdf = export.NewPDFExporter(time.Time{})
	}
	return &ReportWriter{format: format, text: text, pdf: pdf, logger: logger}
}

// Write stable-sorts enrollments in place by student id and renders the
// header plus one line per enrollment to dst.
func (w *ReportWriter) Write(dst io.Writer, enrollments []models.Enrollment) error {
	slices.SortStableFunc(enrollments, models.CompareByStudentID)

	rows := make([][]string, 0, len(enrollments))
	for _, e := range enrollments {
		rows = append(rows, e.Fields())
	}
	dataset := export.Dataset{Headers: reportColumns, Rows: rows}

	var err error
	switch w.format {
	case models.ReportFormatText:
		err = w.text.Render(dst, dataset)
	case models.ReportFormatPDF:
		err = w.pdf.Render(dst, dataset, reportTitle)
	default:
		err = fmt.Errorf("unsupported format %s", w.format)
	}
	if err != nil {
		return err
	}
	w.logger.Debug("report rendered", zap.String("format", string(w.format)), zap.Int("rows", len(rows)))
	return nil
}
