package dto

import (
	"regexp"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classroom_backend/internals/features/classroom/classes/model"
)

func TestGenerateInviteCode(t *testing.T) {
	re := regexp.MustCompile(`^[A-Z0-9]{8}$`)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code := GenerateInviteCode()
		assert.Regexp(t, re, code)
		seen[code] = true
	}
	assert.Greater(t, len(seen), 45)
}

func TestCapacityUsedPercent(t *testing.T) {
	assert.Equal(t, 0.0, CapacityUsedPercent(3, 0))
	assert.Equal(t, 10.0, CapacityUsedPercent(3, 30))
	assert.Equal(t, 33.3, CapacityUsedPercent(1, 3))
	assert.Equal(t, 66.7, CapacityUsedPercent(2, 3))
	assert.Equal(t, 150.0, CapacityUsedPercent(3, 2))
}

func TestCreateClassRequest_Defaults(t *testing.T) {
	req := CreateClassRequest{SubjectID: 1, TeacherID: "teacher-1", Name: "Intro"}
	req.Normalize()
	require.NoError(t, req.Validate())

	m := req.ToModel()
	assert.Equal(t, DefaultCapacity, m.Capacity)
	assert.Equal(t, "active", m.Status)
	assert.Len(t, m.InviteCode, 8)
	assert.NotNil(t, m.Schedules.Data())
	assert.Empty(t, m.Schedules.Data())
}

func TestCreateClassRequest_Validate(t *testing.T) {
	zero := 0
	bad := "paused"

	req := CreateClassRequest{SubjectID: 1, TeacherID: "t", Name: "n", Capacity: &zero}
	assert.Error(t, req.Validate())

	req = CreateClassRequest{SubjectID: 1, TeacherID: "t", Name: "n", Status: &bad}
	assert.Error(t, req.Validate())

	req = CreateClassRequest{SubjectID: 1, TeacherID: "t", Name: "n",
		Schedules: map[string]string{"Monday": "12:00-10:00"}}
	assert.Error(t, req.Validate())

	req = CreateClassRequest{SubjectID: 1, TeacherID: "t", Name: "n",
		Schedules: map[string]string{"Monday": "10:00-11:30", "Wednesday": "10:00-11:30"}}
	assert.NoError(t, req.Validate())
}

func TestUpdateClassRequest_TriState(t *testing.T) {
	var req UpdateClassRequest
	require.NoError(t, sonic.Unmarshal([]byte(`{"capacity":40,"description":null,"schedules":null}`), &req))
	require.NoError(t, req.Validate())

	u := req.Updates()
	assert.Equal(t, 40, u["capacity"])
	assert.Nil(t, u["description"])
	assert.Contains(t, u, "description")
	assert.Contains(t, u, "schedules")
	assert.NotContains(t, u, "name")
	assert.NotContains(t, u, "status")

	req = UpdateClassRequest{}
	assert.Empty(t, req.Updates())
}

func TestUpdateClassRequest_Rejects(t *testing.T) {
	for _, body := range []string{
		`{"capacity":0}`,
		`{"capacity":null}`,
		`{"status":"paused"}`,
		`{"inviteCode":""}`,
		`{"name":null}`,
		`{"schedules":{"Someday":"10:00-11:00"}}`,
	} {
		var req UpdateClassRequest
		require.NoError(t, sonic.Unmarshal([]byte(body), &req), body)
		assert.Error(t, req.Validate(), body)
	}
}

func TestFromRow(t *testing.T) {
	name := "Intro to Programming"
	code := "CS101"
	teacher := "Dr. John Smith"
	row := model.ClassRow{
		ClassModel: model.ClassModel{
			ID: 1, SubjectID: 1, TeacherID: "teacher-1", Capacity: 30,
		},
		SubjectName:      &name,
		SubjectCode:      &code,
		TeacherName:      &teacher,
		TotalEnrollments: 3,
	}

	out := FromRow(row)
	require.NotNil(t, out.Subject)
	require.NotNil(t, out.Teacher)
	assert.Equal(t, "CS101", out.Subject.Code)
	assert.Equal(t, "teacher-1", out.Teacher.ID)
	assert.Equal(t, 10.0, out.CapacityUsedPercent)
	assert.NotNil(t, out.Schedules)
}
