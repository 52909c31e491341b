package models

import "fmt"

// Source identifies which input file a line came from.
type Source string

const (
	SourceNames   Source = "names"
	SourceCourses Source = "courses"
)

// IssueKind classifies why an input line was skipped.
type IssueKind string

const (
	IssueFieldCount       IssueKind = "FIELD_COUNT"
	IssueInvalidStudentID IssueKind = "INVALID_STUDENT_ID"
	IssueInvalidScore     IssueKind = "INVALID_SCORE"
	IssueUnknownStudent   IssueKind = "UNKNOWN_STUDENT"
)

// LineIssue describes a recoverable problem with a single input line.
type LineIssue struct {
	Source Source
	Line   int
	Raw    string
	Kind   IssueKind
	Reason string
}

func (i LineIssue) String() string {
	return fmt.Sprintf("%s line %d: %s: %q", i.Source, i.Line, i.Reason, i.Raw)
}
