package controller

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	classModel "classroom_backend/internals/features/classroom/classes/model"
	"classroom_backend/internals/features/classroom/enrollments/dto"
	"classroom_backend/internals/features/classroom/enrollments/model"
)

var (
	students = map[string]string{"student-1": "Alice Williams", "student-2": "Bob Davis"}
	classes  = map[int64]string{1: "Intro to Programming - Fall 2024", 6: "Calculus I - Fall 2024"}
)

type fakeEnrollmentRepo struct {
	rows   map[int64]model.EnrollmentModel
	nextID int64
	query  dto.ListQuery
}

func newFakeRepo() *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{rows: map[int64]model.EnrollmentModel{}, nextID: 1}
}

func (r *fakeEnrollmentRepo) row(m model.EnrollmentModel) model.EnrollmentRow {
	row := model.EnrollmentRow{EnrollmentModel: m}
	if name, ok := students[m.StudentID]; ok {
		role := "student"
		row.StudentName = &name
		row.StudentRole = &role
	}
	if name, ok := classes[m.ClassID]; ok {
		row.ClassName = &name
		row.ClassSchedules = datatypes.NewJSONType(classModel.Schedules{"Monday": "10:00-11:30"})
	}
	return row
}

func (r *fakeEnrollmentRepo) List(_ context.Context, q dto.ListQuery) ([]model.EnrollmentRow, int64, error) {
	r.query = q
	out := []model.EnrollmentRow{}
	for _, m := range r.rows {
		if q.ClassID != nil && m.ClassID != *q.ClassID {
			continue
		}
		if q.StudentID != nil && m.StudentID != *q.StudentID {
			continue
		}
		out = append(out, r.row(m))
	}
	return out, int64(len(out)), nil
}

func (r *fakeEnrollmentRepo) GetByID(_ context.Context, id int64) (*model.EnrollmentRow, error) {
	m, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	row := r.row(m)
	return &row, nil
}

func (r *fakeEnrollmentRepo) Create(_ context.Context, m *model.EnrollmentModel) error {
	if _, ok := students[m.StudentID]; !ok {
		return &pgconn.PgError{Code: "23503"}
	}
	if _, ok := classes[m.ClassID]; !ok {
		return &pgconn.PgError{Code: "23503"}
	}
	m.ID = r.nextID
	r.nextID++
	r.rows[m.ID] = *m
	return nil
}

func (r *fakeEnrollmentRepo) Update(ctx context.Context, id int64, updates map[string]any) (*model.EnrollmentRow, error) {
	m, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if v, ok := updates["class_id"]; ok {
		m.ClassID = v.(int64)
	}
	if v, ok := updates["student_id"]; ok {
		m.StudentID = v.(string)
	}
	r.rows[id] = m
	return r.GetByID(ctx, id)
}

func (r *fakeEnrollmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.rows, id)
	return nil
}

func newApp(repo *fakeEnrollmentRepo) *fiber.App {
	app := fiber.New()
	ctl := NewEnrollmentController(repo, zap.NewNop())
	app.Get("/enrollments", ctl.List)
	app.Get("/enrollments/:id", ctl.GetByID)
	app.Post("/enrollments", ctl.Create)
	app.Patch("/enrollments/:id", ctl.Patch)
	app.Delete("/enrollments/:id", ctl.Delete)
	return app
}

func call(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	out := map[string]any{}
	if len(raw) > 0 {
		require.NoError(t, sonic.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func TestCreate_EmbedsStudentAndClass(t *testing.T) {
	status, body := call(t, newApp(newFakeRepo()), "POST", "/enrollments", `{"studentId":"student-1","classId":1}`)
	require.Equal(t, 201, status)

	student := body["student"].(map[string]any)
	assert.Equal(t, "Alice Williams", student["name"])
	assert.Equal(t, "student", student["role"])

	class := body["class"].(map[string]any)
	assert.Equal(t, "Intro to Programming - Fall 2024", class["name"])
	assert.Equal(t, map[string]any{"Monday": "10:00-11:30"}, class["schedules"])
}

func TestCreate_DuplicatePairAccepted(t *testing.T) {
	repo := newFakeRepo()
	app := newApp(repo)
	for i := 0; i < 2; i++ {
		status, _ := call(t, app, "POST", "/enrollments", `{"studentId":"student-1","classId":1}`)
		require.Equal(t, 201, status)
	}
	assert.Len(t, repo.rows, 2)
}

func TestCreate_UnknownClassIsInternal(t *testing.T) {
	status, body := call(t, newApp(newFakeRepo()), "POST", "/enrollments", `{"studentId":"student-1","classId":42}`)
	assert.Equal(t, 500, status)
	assert.Equal(t, "Failed to create enrollment", body["error"])
}

func TestCreate_Validation(t *testing.T) {
	status, body := call(t, newApp(newFakeRepo()), "POST", "/enrollments", `{"classId":1}`)
	assert.Equal(t, 422, status)
	assert.Equal(t, "studentId is required", body["error"])
}

func TestList_FiltersByClassAndStudent(t *testing.T) {
	repo := newFakeRepo()
	app := newApp(repo)
	call(t, app, "POST", "/enrollments", `{"studentId":"student-1","classId":1}`)
	call(t, app, "POST", "/enrollments", `{"studentId":"student-2","classId":1}`)
	call(t, app, "POST", "/enrollments", `{"studentId":"student-1","classId":6}`)

	status, body := call(t, app, "GET", "/enrollments?classId=1", "")
	require.Equal(t, 200, status)
	assert.EqualValues(t, 2, body["total"])

	status, body = call(t, app, "GET", "/enrollments?student=student-1&classId=6", "")
	require.Equal(t, 200, status)
	assert.EqualValues(t, 1, body["total"])
	assert.Equal(t, "e.created_at DESC, e.id DESC", repo.query.Order)
}

func TestPatchAndDelete(t *testing.T) {
	app := newApp(newFakeRepo())
	call(t, app, "POST", "/enrollments", `{"studentId":"student-1","classId":1}`)

	status, body := call(t, app, "PATCH", "/enrollments/1", `{"classId":6}`)
	require.Equal(t, 200, status)
	assert.EqualValues(t, 6, body["classId"])
	assert.Equal(t, "student-1", body["studentId"])

	status, body = call(t, app, "DELETE", "/enrollments/1", "")
	assert.Equal(t, 200, status)
	assert.Equal(t, "Enrollment deleted successfully", body["message"])

	status, body = call(t, app, "GET", "/enrollments/1", "")
	assert.Equal(t, 404, status)
	assert.Equal(t, "Enrollment not found", body["error"])
}
