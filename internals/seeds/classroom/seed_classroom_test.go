package classroom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDataset(t *testing.T) {
	ds, err := LoadDataset()
	require.NoError(t, err)

	assert.Len(t, ds.Departments, 5)
	assert.Len(t, ds.Subjects, 8)
	assert.Len(t, ds.Users, 10)
	assert.Len(t, ds.Classes, 6)
	assert.Len(t, ds.Enrollments, 12)
}

func TestDatasetCheck_DanglingReferences(t *testing.T) {
	ds := &Dataset{
		Departments: []DepartmentSeed{{Code: "CS", Name: "Computer Science"}},
		Subjects:    []SubjectSeed{{Department: "EE", Code: "EE101", Name: "Circuits"}},
	}
	assert.ErrorContains(t, ds.Check(), "unknown department")

	ds.Subjects[0].Department = "CS"
	ds.Users = []UserSeed{{ID: "teacher-1", Role: "teacher"}}
	ds.Classes = []ClassSeed{{Subject: "EE101", Teacher: "teacher-1", InviteCode: "X", Schedules: map[string]string{"Monday": "11:00-10:00"}}}
	assert.ErrorContains(t, ds.Check(), "class X")

	ds.Classes[0].Schedules = map[string]string{"Monday": "10:00-11:00"}
	ds.Enrollments = []EnrollmentSeed{{Student: "student-9", Class: "X"}}
	assert.ErrorContains(t, ds.Check(), "unknown student")

	ds.Enrollments = []EnrollmentSeed{{Student: "teacher-1", Class: "X"}}
	assert.NoError(t, ds.Check())
}
