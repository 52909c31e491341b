package models

// NameDirectory maps a 9-digit student id to the student's display name.
type NameDirectory map[string]string

// Lookup resolves a student id to its display name.
func (d NameDirectory) Lookup(studentID string) (string, bool) {
	name, ok := d[studentID]
	return name, ok
}
