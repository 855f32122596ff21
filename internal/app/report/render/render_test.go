package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/yigit/college/internal/app/models"
)

var sampleRows = []models.EnrollmentReportRow{
	{
		EnrollmentID:   "E001",
		StudentDetails: models.StudentDetails{FirstName: "Joe", LastName: "Smith"},
		ClassDetails:   models.ClassDetails{CourseName: "Quantum Computing 101", DateTime: "Mon 9AM", Location: "Room 101"},
	},
	{
		EnrollmentID:   "E002",
		StudentDetails: models.StudentDetails{FirstName: "Joe", LastName: "Smith"},
		ClassDetails:   models.ClassDetails{CourseName: "Galactic Astrogation 101", DateTime: "Wed 11AM", Location: "Room 102"},
	},
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "json", sampleRows[:1]))

	assert.Equal(t, `[
  {
    "enrollmentId": "E001",
    "studentDetails": {
      "firstName": "Joe",
      "lastName": "Smith"
    },
    "classDetails": {
      "courseName": "Quantum Computing 101",
      "dateTime": "Mon 9AM",
      "location": "Room 101"
    }
  }
]
`, buf.String())
}

func TestWrite_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "json", nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "yaml", sampleRows))

	var decoded []models.EnrollmentReportRow
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleRows, decoded)
	assert.Contains(t, buf.String(), "enrollmentId: E001")
}

func TestWrite_XLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "xlsx", sampleRows))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Enrollment ID", "First Name", "Last Name", "Course", "Meeting Time", "Location"}, rows[0])
	assert.Equal(t, []string{"E002", "Joe", "Smith", "Galactic Astrogation 101", "Wed 11AM", "Room 102"}, rows[2])
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, "csv", sampleRows)
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/json", ContentType("json"))
	assert.Equal(t, "application/yaml", ContentType("yaml"))
	assert.Contains(t, ContentType("xlsx"), "spreadsheetml")
}
