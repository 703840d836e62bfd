package repository

import (
	"context"

	"gorm.io/gorm"

	"classroom_backend/internals/features/classroom/classes/dto"
	"classroom_backend/internals/features/classroom/classes/model"
	"classroom_backend/internals/helpers/filter"
)

type ClassRepository interface {
	List(ctx context.Context, q dto.ListQuery) ([]model.ClassRow, int64, error)
	GetByID(ctx context.Context, id int64) (*model.ClassRow, error)
	Create(ctx context.Context, m *model.ClassModel) error
	Update(ctx context.Context, id int64, updates map[string]any) (*model.ClassRow, error)
	// Delete removes the class; its enrollments go with it (ON DELETE CASCADE).
	Delete(ctx context.Context, id int64) error
}

type classRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func ListFilter(q dto.ListQuery) *filter.Builder {
	f := filter.New().
		Search(q.Search, "c.name", "c.invite_code").
		ContainsIf("s.name", q.Subject).
		ContainsIf("u.name", q.Teacher)
	if q.SubjectID != nil {
		f.EqualsIf("c.subject_id", *q.SubjectID, true)
	}
	if q.TeacherID != nil {
		f.EqualsIf("c.teacher_id", *q.TeacherID, true)
	}
	if q.Status != nil {
		f.EqualsIf("c.status", *q.Status, true)
	}
	return f
}

func (r *classRepository) base(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("classes AS c").
		Joins("LEFT JOIN subjects s ON s.id = c.subject_id").
		Joins("LEFT JOIN users u ON u.id = c.teacher_id")
}

func (r *classRepository) detailed(ctx context.Context) *gorm.DB {
	return r.base(ctx).
		Select(`c.*,
			s.code AS subject_code,
			s.name AS subject_name,
			s.department_id AS subject_department_id,
			u.name AS teacher_name,
			u.email AS teacher_email,
			u.image AS teacher_image,
			COUNT(e.id) AS total_enrollments`).
		Joins("LEFT JOIN enrollments e ON e.class_id = c.id").
		Group("c.id, s.id, u.id")
}

func (r *classRepository) List(ctx context.Context, q dto.ListQuery) ([]model.ClassRow, int64, error) {
	f := ListFilter(q)

	var total int64
	if err := f.Apply(r.base(ctx)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	rows := make([]model.ClassRow, 0, q.Paging.Limit)
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

func (r *classRepository) GetByID(ctx context.Context, id int64) (*model.ClassRow, error) {
	var row model.ClassRow
	res := r.detailed(ctx).Where("c.id = ?", id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *classRepository) Create(ctx context.Context, m *model.ClassModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *classRepository) Update(ctx context.Context, id int64, updates map[string]any) (*model.ClassRow, error) {
	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&model.ClassModel{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetByID(ctx, id)
}

func (r *classRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.ClassModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
