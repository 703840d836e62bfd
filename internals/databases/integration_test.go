//go:build integration

package databases_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"classroom_backend/internals/configs"
	database "classroom_backend/internals/databases"
	classDTO "classroom_backend/internals/features/classroom/classes/dto"
	classRepo "classroom_backend/internals/features/classroom/classes/repository"
	deptDTO "classroom_backend/internals/features/classroom/departments/dto"
	deptModel "classroom_backend/internals/features/classroom/departments/model"
	deptRepo "classroom_backend/internals/features/classroom/departments/repository"
	enrollDTO "classroom_backend/internals/features/classroom/enrollments/dto"
	enrollRepo "classroom_backend/internals/features/classroom/enrollments/repository"
	statsRepo "classroom_backend/internals/features/classroom/stats/repository"
	authRepo "classroom_backend/internals/features/users/auth/repository"
	helper "classroom_backend/internals/helpers"
	"classroom_backend/internals/seeds/classroom"
)

// Run with: TEST_DATABASE_URL=postgres://... go test -tags integration ./internals/databases/
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	log := zap.NewNop()
	db, err := database.Open(configs.DBConfig{
		URL:             url,
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxIdleTime: time.Minute,
		ConnMaxLifetime: 5 * time.Minute,
	}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.RunMigrations(db, log))

	ds, err := classroom.LoadDataset()
	require.NoError(t, err)
	_, err = classroom.SeedClassroom(context.Background(), db, ds, "password123", log)
	require.NoError(t, err)
	return db
}

func TestSeedIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	ds, err := classroom.LoadDataset()
	require.NoError(t, err)

	sum, err := classroom.SeedClassroom(context.Background(), db, ds, "password123", zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, classroom.Summary{}, sum)
}

func TestDepartmentRepository_TotalsAndSearch(t *testing.T) {
	db := openTestDB(t)
	repo := deptRepo.NewDepartmentRepository(db)
	ctx := context.Background()

	rows, total, err := repo.List(ctx, deptDTO.ListQuery{
		Search: "cs",
		Paging: helper.NewPaging(1, 10, helper.MaxLimit),
		Order:  "d.code ASC, d.id ASC",
	})
	require.NoError(t, err)
	require.GreaterOrEqual(t, total, int64(1))

	var cs *deptModel.DepartmentRow
	for i := range rows {
		if rows[i].Code == "CS" {
			cs = &rows[i]
		}
	}
	require.NotNil(t, cs)
	assert.GreaterOrEqual(t, cs.TotalSubjects, int64(3))

	_, err = repo.GetByID(ctx, -1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDepartmentRepository_CRUD(t *testing.T) {
	db := openTestDB(t)
	repo := deptRepo.NewDepartmentRepository(db)
	ctx := context.Background()

	code := "TMP" + time.Now().Format("150405.000")
	m := deptModel.DepartmentModel{Code: code, Name: "Temporary"}
	require.NoError(t, repo.Create(ctx, &m))
	require.NotZero(t, m.ID)

	dup := deptModel.DepartmentModel{Code: code, Name: "Again"}
	err := repo.Create(ctx, &dup)
	require.Error(t, err)
	assert.Equal(t, helper.KindConflict, helper.FromDBError(err, "Department", "x").Kind)

	row, err := repo.Update(ctx, m.ID, map[string]any{"name": "Renamed", "description": nil})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", row.Name)
	assert.Nil(t, row.Description)

	require.NoError(t, repo.Delete(ctx, m.ID))
	assert.ErrorIs(t, repo.Delete(ctx, m.ID), gorm.ErrRecordNotFound)
}

func TestClassRepository_JoinedRow(t *testing.T) {
	db := openTestDB(t)
	repo := classRepo.NewClassRepository(db)
	ctx := context.Background()

	status := "active"
	rows, _, err := repo.List(ctx, classDTO.ListQuery{
		Search: "CS101-FALL",
		Status: &status,
		Paging: helper.NewPaging(1, 10, helper.MaxLimit),
		Order:  "c.created_at DESC, c.id DESC",
	})
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	r := rows[0]
	require.NotNil(t, r.SubjectCode)
	assert.Equal(t, "CS101", *r.SubjectCode)
	require.NotNil(t, r.TeacherName)
	assert.Equal(t, "Dr. John Smith", *r.TeacherName)
	assert.GreaterOrEqual(t, r.TotalEnrollments, int64(3))
	assert.Equal(t, "10:00-11:30", r.Schedules.Data()["Monday"])
}

func TestEnrollmentRepository_StudentFilter(t *testing.T) {
	db := openTestDB(t)
	repo := enrollRepo.NewEnrollmentRepository(db)

	student := "student-1"
	rows, total, err := repo.List(context.Background(), enrollDTO.ListQuery{
		StudentID: &student,
		Paging:    helper.NewPaging(1, 10, helper.MaxLimit),
		Order:     "e.created_at DESC, e.id DESC",
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, total, int64(2))
	for _, r := range rows {
		assert.Equal(t, "student-1", r.StudentID)
		require.NotNil(t, r.SubjectCode)
	}
}

func TestStatsOverview(t *testing.T) {
	db := openTestDB(t)

	ov, err := statsRepo.NewStatsRepository(db).Overview(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ov.Users, int64(10))
	assert.Equal(t, ov.Users, ov.Admins+ov.Teachers+ov.Students)
	assert.GreaterOrEqual(t, ov.Enrollments, int64(12))
}

func TestAuthRepository_Blacklist(t *testing.T) {
	db := openTestDB(t)
	repo := authRepo.NewAuthRepository(db)
	ctx := context.Background()

	tok := "integration-" + time.Now().Format(time.RFC3339Nano)
	require.NoError(t, repo.BlacklistToken(ctx, tok, time.Now().Add(-time.Minute)))
	require.NoError(t, repo.BlacklistToken(ctx, tok, time.Now().Add(-time.Minute)))

	ok, err := repo.IsBlacklisted(ctx, tok)
	require.NoError(t, err)
	assert.True(t, ok)

	n, err := repo.CleanupExpiredBlacklist(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, int64(1))

	ok, err = repo.IsBlacklisted(ctx, tok)
	require.NoError(t, err)
	assert.False(t, ok)

	acc, err := repo.FindAccount(ctx, "admin-1")
	require.NoError(t, err)
	assert.NotEmpty(t, acc.PasswordHash)
}
