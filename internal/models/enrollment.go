package models

import (
	"math"
	"strconv"
	"strings"
)

// Grade weights: three tests at 20% each, final exam at 40%.
const (
	TestWeight      = 0.2
	FinalExamWeight = 0.4
)

// Enrollment captures one student's scores in one course together with the
// weighted final grade derived from them. Values are immutable once built.
type Enrollment struct {
	studentID   string
	studentName string
	courseCode  string
	test1       float64
	test2       float64
	test3       float64
	finalExam   float64
	finalGrade  float64
}

// NewEnrollment builds an Enrollment and computes its final grade.
func NewEnrollment(studentID, studentName, courseCode string, test1, test2, test3, finalExam float64) Enrollment {
	return Enrollment{
		studentID:   studentID,
		studentName: studentName,
		courseCode:  courseCode,
		test1:       test1,
		test2:       test2,
		test3:       test3,
		finalExam:   finalExam,
		finalGrade:  WeightedGrade(test1, test2, test3, finalExam),
	}
}

// WeightedGrade applies the 3x20% test and 40% final exam weighting.
func WeightedGrade(test1, test2, test3, finalExam float64) float64 {
	return test1*TestWeight + test2*TestWeight + test3*TestWeight + finalExam*FinalExamWeight
}

func (e Enrollment) StudentID() string   { return e.studentID }
func (e Enrollment) StudentName() string { return e.studentName }
func (e Enrollment) CourseCode() string  { return e.courseCode }
func (e Enrollment) Test1() float64      { return e.test1 }
func (e Enrollment) Test2() float64      { return e.test2 }
func (e Enrollment) Test3() float64      { return e.test3 }
func (e Enrollment) FinalExam() float64  { return e.finalExam }
func (e Enrollment) FinalGrade() float64 { return e.finalGrade }

// Fields returns the report columns for the enrollment in output order.
func (e Enrollment) Fields() []string {
	return []string{e.studentID, e.studentName, e.courseCode, FormatGrade(e.finalGrade)}
}

// String renders the enrollment as a single report line.
func (e Enrollment) String() string {
	return strings.Join(e.Fields(), ",")
}

// CompareByStudentID orders enrollments lexicographically by student id.
func CompareByStudentID(a, b Enrollment) int {
	return strings.Compare(a.studentID, b.studentID)
}

// FormatGrade rounds half away from zero to one decimal place.
func FormatGrade(grade float64) string {
	rounded := math.Round(grade*10) / 10
	if rounded == 0 {
		// drop the sign of negative zero
		rounded = 0
	}
	return strconv.FormatFloat(rounded, 'f', 1, 64)
}
