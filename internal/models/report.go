package models

// ReportFormat enumerates supported report encodings.
type ReportFormat string

const (
	ReportFormatText ReportFormat = "text"
	ReportFormatPDF  ReportFormat = "pdf"
)

// Valid reports whether the format is supported.
func (f ReportFormat) Valid() bool {
	switch f {
	case ReportFormatText, ReportFormatPDF:
		return true
	default:
		return false
	}
}
