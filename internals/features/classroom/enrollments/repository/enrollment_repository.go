package repository

import (
	"context"

	"gorm.io/gorm"

	"classroom_backend/internals/features/classroom/enrollments/dto"
	"classroom_backend/internals/features/classroom/enrollments/model"
	"classroom_backend/internals/helpers/filter"
)

type EnrollmentRepository interface {
	List(ctx context.Context, q dto.ListQuery) ([]model.EnrollmentRow, int64, error)
	GetByID(ctx context.Context, id int64) (*model.EnrollmentRow, error)
	Create(ctx context.Context, m *model.EnrollmentModel) error
	Update(ctx context.Context, id int64, updates map[string]any) (*model.EnrollmentRow, error)
	Delete(ctx context.Context, id int64) error
}

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func ListFilter(q dto.ListQuery) *filter.Builder {
	f := filter.New().Search(q.Search, "u.name", "u.email")
	if q.StudentID != nil {
		f.EqualsIf("e.student_id", *q.StudentID, true)
	}
	if q.ClassID != nil {
		f.EqualsIf("e.class_id", *q.ClassID, true)
	}
	return f
}

func (r *enrollmentRepository) base(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("enrollments AS e").
		Joins("LEFT JOIN users u ON u.id = e.student_id").
		Joins("LEFT JOIN classes c ON c.id = e.class_id")
}

func (r *enrollmentRepository) detailed(ctx context.Context) *gorm.DB {
	return r.base(ctx).
		Select(`e.*,
			u.name AS student_name,
			u.email AS student_email,
			u.image AS student_image,
			u.role AS student_role,
			c.subject_id AS class_subject_id,
			c.teacher_id AS class_teacher_id,
			c.name AS class_name,
			c.invite_code AS class_invite_code,
			c.capacity AS class_capacity,
			c.status AS class_status,
			COALESCE(c.schedules, '{}'::jsonb) AS class_schedules,
			s.code AS subject_code,
			s.name AS subject_name,
			s.department_id AS subject_department_id`).
		Joins("LEFT JOIN subjects s ON s.id = c.subject_id")
}

func (r *enrollmentRepository) List(ctx context.Context, q dto.ListQuery) ([]model.EnrollmentRow, int64, error) {
	f := ListFilter(q)

	var total int64
	if err := f.Apply(r.base(ctx)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	rows := make([]model.EnrollmentRow, 0, q.Paging.Limit)
	err := f.Apply(r.detailed(ctx)).
		Order(q.Order).
		Limit(q.Paging.Limit).
		Offset(q.Paging.Offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *enrollmentRepository) GetByID(ctx context.Context, id int64) (*model.EnrollmentRow, error) {
	var row model.EnrollmentRow
	res := r.detailed(ctx).Where("e.id = ?", id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *enrollmentRepository) Create(ctx context.Context, m *model.EnrollmentModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *enrollmentRepository) Update(ctx context.Context, id int64, updates map[string]any) (*model.EnrollmentRow, error) {
	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&model.EnrollmentModel{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetByID(ctx, id)
}

func (r *enrollmentRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.EnrollmentModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
