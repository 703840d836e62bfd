package repository

import (
	"context"

	"gorm.io/gorm"

	"classroom_backend/internals/features/classroom/subjects/dto"
	"classroom_backend/internals/features/classroom/subjects/model"
	"classroom_backend/internals/helpers/filter"
)

type SubjectRepository interface {
	List(ctx context.Context, q dto.ListQuery) ([]model.SubjectRow, int64, error)
	GetByID(ctx context.Context, id int64) (*model.SubjectRow, error)
	Create(ctx context.Context, m *model.SubjectModel) error
	Update(ctx context.Context, id int64, updates map[string]any) (*model.SubjectRow, error)
	Delete(ctx context.Context, id int64) error
}

type subjectRepository struct {
	db *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{db: db}
}

func ListFilter(q dto.ListQuery) *filter.Builder {
	f := filter.New().
		Search(q.Search, "s.name", "s.code").
		ContainsIf("d.name", q.Department)
	if q.DepartmentID != nil {
		f.EqualsIf("s.department_id", *q.DepartmentID, true)
	}
	return f
}

func (r *subjectRepository) base(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("subjects AS s").
		Joins("LEFT JOIN departments d ON d.id = s.department_id")
}

func (r *subjectRepository) detailed(ctx context.Context) *gorm.DB {
	return r.base(ctx).
		Select(`s.*,
			d.code AS department_code,
			d.name AS department_name,
			d.description AS department_description,
			COUNT(c.id) AS total_classes`).
		Joins("LEFT JOIN classes c ON c.subject_id = s.id").
		Group("s.id, d.id")
}

func (r *subjectRepository) List(ctx context.Context, q dto.ListQuery) ([]model.SubjectRow, int64, error) {
	f := ListFilter(q)

	var total int64
	if err := f.Apply(r.base(ctx)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	rows := make([]model.SubjectRow, 0, q.Paging.Limit)
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

func (r *subjectRepository) GetByID(ctx context.Context, id int64) (*model.SubjectRow, error) {
	var row model.SubjectRow
	res := r.detailed(ctx).Where("s.id = ?", id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *subjectRepository) Create(ctx context.Context, m *model.SubjectModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *subjectRepository) Update(ctx context.Context, id int64, updates map[string]any) (*model.SubjectRow, error) {
	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&model.SubjectModel{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetByID(ctx, id)
}

func (r *subjectRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.SubjectModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
