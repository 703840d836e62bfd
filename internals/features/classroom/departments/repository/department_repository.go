package repository

import (
	"context"

	"gorm.io/gorm"

	"classroom_backend/internals/features/classroom/departments/dto"
	"classroom_backend/internals/features/classroom/departments/model"
	"classroom_backend/internals/helpers/filter"
)

type DepartmentRepository interface {
	List(ctx context.Context, q dto.ListQuery) ([]model.DepartmentRow, int64, error)
	GetByID(ctx context.Context, id int64) (*model.DepartmentRow, error)
	Create(ctx context.Context, m *model.DepartmentModel) error
	Update(ctx context.Context, id int64, updates map[string]any) (*model.DepartmentRow, error)
	Delete(ctx context.Context, id int64) error
}

type departmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func ListFilter(q dto.ListQuery) *filter.Builder {
	return filter.New().Search(q.Search, "d.name", "d.code")
}

func (r *departmentRepository) withTotals(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("departments AS d").
		Select("d.*, COUNT(s.id) AS total_subjects").
		Joins("LEFT JOIN subjects s ON s.department_id = d.id").
		Group("d.id")
}

func (r *departmentRepository) List(ctx context.Context, q dto.ListQuery) ([]model.DepartmentRow, int64, error) {
	f := ListFilter(q)

	var total int64
	if err := f.Apply(r.db.WithContext(ctx).Table("departments AS d")).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	rows := make([]model.DepartmentRow, 0, q.Paging.Limit)
	err := f.Apply(r.withTotals(ctx)).
		Order(q.Order).
		Limit(q.Paging.Limit).
		Offset(q.Paging.Offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *departmentRepository) GetByID(ctx context.Context, id int64) (*model.DepartmentRow, error) {
	var row model.DepartmentRow
	res := r.withTotals(ctx).Where("d.id = ?", id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *departmentRepository) Create(ctx context.Context, m *model.DepartmentModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *departmentRepository) Update(ctx context.Context, id int64, updates map[string]any) (*model.DepartmentRow, error) {
	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&model.DepartmentModel{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetByID(ctx, id)
}

func (r *departmentRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.DepartmentModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
