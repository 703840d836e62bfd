package classroom

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"classroom_backend/internals/constants"
	classModel "classroom_backend/internals/features/classroom/classes/model"
	deptModel "classroom_backend/internals/features/classroom/departments/model"
	enrollModel "classroom_backend/internals/features/classroom/enrollments/model"
	subjectModel "classroom_backend/internals/features/classroom/subjects/model"
	userModel "classroom_backend/internals/features/classroom/users/model"
	authModel "classroom_backend/internals/features/users/auth/model"
	authService "classroom_backend/internals/features/users/auth/service"
	helper "classroom_backend/internals/helpers"
)

//go:embed data_classroom.json
var dataClassroom []byte

type DepartmentSeed struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type SubjectSeed struct {
	Department  string  `json:"department"` // department code
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type UserSeed struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type ClassSeed struct {
	Subject    string            `json:"subject"` // subject code
	Teacher    string            `json:"teacher"` // user id
	InviteCode string            `json:"inviteCode"`
	Name       string            `json:"name"`
	Capacity   int               `json:"capacity"`
	Schedules  map[string]string `json:"schedules"`
}

type EnrollmentSeed struct {
	Student string `json:"student"` // user id
	Class   string `json:"class"`   // invite code
}

type Dataset struct {
	Departments []DepartmentSeed `json:"departments"`
	Subjects    []SubjectSeed    `json:"subjects"`
	Users       []UserSeed       `json:"users"`
	Classes     []ClassSeed      `json:"classes"`
	Enrollments []EnrollmentSeed `json:"enrollments"`
}

// Summary counts rows actually inserted; reruns report zeros.
type Summary struct {
	Departments int64
	Subjects    int64
	Users       int64
	Classes     int64
	Enrollments int64
}

func LoadDataset() (*Dataset, error) {
	var ds Dataset
	if err := sonic.Unmarshal(dataClassroom, &ds); err != nil {
		return nil, fmt.Errorf("decode classroom seed: %w", err)
	}
	return &ds, ds.Check()
}

// Check verifies every reference in the dataset resolves inside it.
func (ds *Dataset) Check() error {
	depts := map[string]bool{}
	for _, d := range ds.Departments {
		depts[d.Code] = true
	}
	subjects := map[string]bool{}
	for _, s := range ds.Subjects {
		if !depts[s.Department] {
			return fmt.Errorf("subject %s: unknown department %q", s.Code, s.Department)
		}
		subjects[s.Code] = true
	}
	roles := map[string]string{}
	for _, u := range ds.Users {
		roles[u.ID] = u.Role
	}
	classes := map[string]bool{}
	for _, c := range ds.Classes {
		if !subjects[c.Subject] {
			return fmt.Errorf("class %s: unknown subject %q", c.InviteCode, c.Subject)
		}
		if _, ok := roles[c.Teacher]; !ok {
			return fmt.Errorf("class %s: unknown teacher %q", c.InviteCode, c.Teacher)
		}
		if err := helper.ValidateSchedules(c.Schedules); err != nil {
			return fmt.Errorf("class %s: %w", c.InviteCode, err)
		}
		classes[c.InviteCode] = true
	}
	for _, e := range ds.Enrollments {
		if _, ok := roles[e.Student]; !ok {
			return fmt.Errorf("enrollment: unknown student %q", e.Student)
		}
		if !classes[e.Class] {
			return fmt.Errorf("enrollment: unknown class %q", e.Class)
		}
	}
	return nil
}

// SeedClassroom inserts the dataset, skipping rows whose natural key
// (code, id, invite code, student/class pair) already exists. Every seeded
// user gets an email/password account with password.
func SeedClassroom(ctx context.Context, db *gorm.DB, ds *Dataset, password string, log *zap.Logger) (Summary, error) {
	var sum Summary
	db = db.WithContext(ctx)

	// departments
	depts := make([]deptModel.DepartmentModel, 0, len(ds.Departments))
	for _, d := range ds.Departments {
		depts = append(depts, deptModel.DepartmentModel{Code: d.Code, Name: d.Name, Description: d.Description})
	}
	res := db.Clauses(onConflictNothing("code")).Create(&depts)
	if res.Error != nil {
		return sum, fmt.Errorf("seed departments: %w", res.Error)
	}
	sum.Departments = res.RowsAffected

	deptIDs, err := idsByKey[deptModel.DepartmentModel](db, "code")
	if err != nil {
		return sum, err
	}

	// subjects
	subjects := make([]subjectModel.SubjectModel, 0, len(ds.Subjects))
	for _, s := range ds.Subjects {
		subjects = append(subjects, subjectModel.SubjectModel{
			DepartmentID: deptIDs[s.Department],
			Code:         s.Code,
			Name:         s.Name,
			Description:  s.Description,
		})
	}
	res = db.Clauses(onConflictNothing("code")).Create(&subjects)
	if res.Error != nil {
		return sum, fmt.Errorf("seed subjects: %w", res.Error)
	}
	sum.Subjects = res.RowsAffected

	subjectIDs, err := idsByKey[subjectModel.SubjectModel](db, "code")
	if err != nil {
		return sum, err
	}

	// users + accounts
	hash, err := authService.HashPassword(password)
	if err != nil {
		return sum, fmt.Errorf("hash seed password: %w", err)
	}
	users := make([]userModel.UserModel, 0, len(ds.Users))
	accounts := make([]authModel.AccountModel, 0, len(ds.Users))
	for _, u := range ds.Users {
		users = append(users, userModel.UserModel{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, EmailVerified: true})
		accounts = append(accounts, authModel.AccountModel{UserID: u.ID, PasswordHash: hash})
	}
	res = db.Clauses(clause.OnConflict{DoNothing: true}).Create(&users)
	if res.Error != nil {
		return sum, fmt.Errorf("seed users: %w", res.Error)
	}
	sum.Users = res.RowsAffected
	if err := db.Clauses(onConflictNothing("user_id")).Create(&accounts).Error; err != nil {
		return sum, fmt.Errorf("seed accounts: %w", err)
	}

	// classes
	classes := make([]classModel.ClassModel, 0, len(ds.Classes))
	for _, c := range ds.Classes {
		classes = append(classes, classModel.ClassModel{
			SubjectID:  subjectIDs[c.Subject],
			TeacherID:  c.Teacher,
			InviteCode: c.InviteCode,
			Name:       c.Name,
			Capacity:   c.Capacity,
			Status:     constants.ClassActive,
			Schedules:  datatypes.NewJSONType(classModel.Schedules(c.Schedules)),
		})
	}
	res = db.Clauses(onConflictNothing("invite_code")).Create(&classes)
	if res.Error != nil {
		return sum, fmt.Errorf("seed classes: %w", res.Error)
	}
	sum.Classes = res.RowsAffected

	classIDs, err := idsByKey[classModel.ClassModel](db, "invite_code")
	if err != nil {
		return sum, err
	}

	// enrollments have no unique key, so existing pairs are checked one by one
	for _, e := range ds.Enrollments {
		classID := classIDs[e.Class]
		var existing enrollModel.EnrollmentModel
		err := db.Select("id").Where("student_id = ? AND class_id = ?", e.Student, classID).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return sum, fmt.Errorf("seed enrollments: %w", err)
		}
		if err := db.Create(&enrollModel.EnrollmentModel{StudentID: e.Student, ClassID: classID}).Error; err != nil {
			return sum, fmt.Errorf("seed enrollments: %w", err)
		}
		sum.Enrollments++
	}

	log.Info("classroom seeded",
		zap.Int64("departments", sum.Departments),
		zap.Int64("subjects", sum.Subjects),
		zap.Int64("users", sum.Users),
		zap.Int64("classes", sum.Classes),
		zap.Int64("enrollments", sum.Enrollments),
	)
	return sum, nil
}

func onConflictNothing(column string) clause.OnConflict {
	return clause.OnConflict{Columns: []clause.Column{{Name: column}}, DoNothing: true}
}

// idsByKey maps a unique text column to the row id for table T.
func idsByKey[T any](db *gorm.DB, column string) (map[string]int64, error) {
	var rows []struct {
		ID  int64
		Key string
	}
	var m T
	if err := db.Model(&m).Select("id, " + column + " AS key").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("resolve %s ids: %w", column, err)
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Key] = r.ID
	}
	return out, nil
}
