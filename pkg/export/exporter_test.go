package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTextExporterWritesFieldsVerbatim(t *testing.T) {
	data := Dataset{
		Headers: []string{"Student ID", "Final grade (test 1,2,3-3x20%, final exam 40%)"},
		Rows: [][]string{
			{"123456789", "82.0"},
			{"223456789", "\"quoted\""},
		},
	}
	buf := &bytes.Buffer{}
	require.NoError(t, NewTextExporter(",").Render(buf, data))

	want := "Student ID,Final grade (test 1,2,3-3x20%, final exam 40%)\n" +
		"123456789,82.0\n" +
		"223456789,\"quoted\"\n"
	require.Equal(t, want, buf.String())
}

func TestTextExporterHeaderOnly(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, NewTextExporter("").Render(buf, Dataset{Headers: []string{"a", "b"}}))
	require.Equal(t, "a,b\n", buf.String())
}

func TestExportersRequireHeaders(t *testing.T) {
	require.Error(t, NewTextExporter(",").Render(&bytes.Buffer{}, Dataset{}))
	require.Error(t, NewPDFExporter(time.Time{}).Render(&bytes.Buffer{}, Dataset{}, "x"))
}

func TestPDFExporterRender(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	data := Dataset{
		Headers: []string{"Student ID", "Student Name"},
		Rows:    [][]string{{"123456789", "Zoë"}},
	}

	buf := &bytes.Buffer{}
	require.NoError(t, NewPDFExporter(created).Render(buf, data, "Course Report"))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	require.Contains(t, buf.String(), "%%EOF")
}
