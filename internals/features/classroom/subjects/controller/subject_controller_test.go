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
	"gorm.io/gorm"

	"classroom_backend/internals/features/classroom/subjects/dto"
	"classroom_backend/internals/features/classroom/subjects/model"
)

// departments known to the fake; anything else is an FK violation
var departments = map[int64]string{1: "Computer Science", 2: "Electrical Engineering"}

type fakeSubjectRepo struct {
	rows   map[int64]model.SubjectModel
	nextID int64
	query  dto.ListQuery
}

func newFakeRepo() *fakeSubjectRepo {
	return &fakeSubjectRepo{rows: map[int64]model.SubjectModel{}, nextID: 1}
}

func (r *fakeSubjectRepo) row(m model.SubjectModel) model.SubjectRow {
	row := model.SubjectRow{SubjectModel: m}
	if name, ok := departments[m.DepartmentID]; ok {
		row.DepartmentName = &name
	}
	return row
}

func (r *fakeSubjectRepo) List(_ context.Context, q dto.ListQuery) ([]model.SubjectRow, int64, error) {
	r.query = q
	out := []model.SubjectRow{}
	for _, m := range r.rows {
		if q.DepartmentID != nil && m.DepartmentID != *q.DepartmentID {
			continue
		}
		out = append(out, r.row(m))
	}
	return out, int64(len(out)), nil
}

func (r *fakeSubjectRepo) GetByID(_ context.Context, id int64) (*model.SubjectRow, error) {
	m, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	row := r.row(m)
	return &row, nil
}

func (r *fakeSubjectRepo) Create(_ context.Context, m *model.SubjectModel) error {
	if _, ok := departments[m.DepartmentID]; !ok {
		return &pgconn.PgError{Code: "23503"}
	}
	m.ID = r.nextID
	r.nextID++
	r.rows[m.ID] = *m
	return nil
}

func (r *fakeSubjectRepo) Update(ctx context.Context, id int64, updates map[string]any) (*model.SubjectRow, error) {
	m, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if v, ok := updates["department_id"]; ok {
		m.DepartmentID = v.(int64)
	}
	if v, ok := updates["name"]; ok {
		m.Name = v.(string)
	}
	if v, ok := updates["code"]; ok {
		m.Code = v.(string)
	}
	r.rows[id] = m
	return r.GetByID(ctx, id)
}

func (r *fakeSubjectRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.rows, id)
	return nil
}

func newApp(repo *fakeSubjectRepo) *fiber.App {
	app := fiber.New()
	ctl := NewSubjectController(repo, zap.NewNop())
	app.Get("/subjects", ctl.List)
	app.Get("/subjects/:id", ctl.GetByID)
	app.Post("/subjects", ctl.Create)
	app.Patch("/subjects/:id", ctl.Patch)
	app.Delete("/subjects/:id", ctl.Delete)
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

func TestCreate_EmbedsDepartment(t *testing.T) {
	status, body := call(t, newApp(newFakeRepo()), "POST", "/subjects",
		`{"departmentId":1,"code":"CS101","name":"Introduction to Programming"}`)
	require.Equal(t, 201, status)
	dept, ok := body["department"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Computer Science", dept["name"])
	assert.EqualValues(t, 0, body["totalClasses"])
}

func TestCreate_UnknownDepartmentIsInternal(t *testing.T) {
	status, body := call(t, newApp(newFakeRepo()), "POST", "/subjects",
		`{"departmentId":99,"code":"X1","name":"Ghost"}`)
	assert.Equal(t, 500, status)
	assert.Equal(t, "Failed to create subject", body["error"])
}

func TestCreate_MissingDepartment(t *testing.T) {
	status, body := call(t, newApp(newFakeRepo()), "POST", "/subjects", `{"code":"X1","name":"Ghost"}`)
	assert.Equal(t, 422, status)
	assert.Equal(t, "departmentId is required", body["error"])
}

func TestList_Filters(t *testing.T) {
	repo := newFakeRepo()
	app := newApp(repo)
	call(t, app, "POST", "/subjects", `{"departmentId":1,"code":"CS101","name":"Intro"}`)
	call(t, app, "POST", "/subjects", `{"departmentId":2,"code":"EE101","name":"Circuits"}`)

	status, body := call(t, app, "GET", "/subjects?departmentId=2&department=%20Electrical%20", "")
	require.Equal(t, 200, status)
	assert.EqualValues(t, 1, body["total"])
	require.NotNil(t, repo.query.Department)
	assert.Equal(t, "Electrical", *repo.query.Department)

	status, _ = call(t, app, "GET", "/subjects?departmentId=abc", "")
	assert.Equal(t, 422, status)
}

func TestPatch_MovesDepartment(t *testing.T) {
	app := newApp(newFakeRepo())
	call(t, app, "POST", "/subjects", `{"departmentId":1,"code":"CS101","name":"Intro"}`)

	status, body := call(t, app, "PATCH", "/subjects/1", `{"departmentId":2}`)
	require.Equal(t, 200, status)
	assert.EqualValues(t, 2, body["departmentId"])
	assert.Equal(t, "Intro", body["name"])
	assert.Equal(t, "Electrical Engineering", body["department"].(map[string]any)["name"])

	status, _ = call(t, app, "PATCH", "/subjects/1", `{"departmentId":null}`)
	assert.Equal(t, 422, status)
}

func TestGetAndDelete_NotFound(t *testing.T) {
	app := newApp(newFakeRepo())
	status, body := call(t, app, "GET", "/subjects/7", "")
	assert.Equal(t, 404, status)
	assert.Equal(t, "Subject not found", body["error"])

	status, _ = call(t, app, "DELETE", "/subjects/7", "")
	assert.Equal(t, 404, status)
}
