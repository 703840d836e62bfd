package repository

import (
	"context"

	"gorm.io/gorm"

	"classroom_backend/internals/features/classroom/users/dto"
	"classroom_backend/internals/features/classroom/users/model"
	"classroom_backend/internals/helpers/filter"
)

type UserRepository interface {
	List(ctx context.Context, q dto.ListQuery) ([]model.UserModel, int64, error)
	GetByID(ctx context.Context, id string) (*model.UserModel, error)
	Create(ctx context.Context, m *model.UserModel) error
	Update(ctx context.Context, id string, updates map[string]any) (*model.UserModel, error)
	Delete(ctx context.Context, id string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// ListFilter translates the list query into WHERE clauses.
func ListFilter(q dto.ListQuery) *filter.Builder {
	return filter.New().
		Search(q.Search, "name", "email").
		EqualsIf("role", q.Role, q.Role != "")
}

func (r *userRepository) List(ctx context.Context, q dto.ListQuery) ([]model.UserModel, int64, error) {
	f := ListFilter(q)

	var total int64
	if err := f.Apply(r.db.WithContext(ctx).Model(&model.UserModel{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	rows := make([]model.UserModel, 0, q.Paging.Limit)
	err := f.Apply(r.db.WithContext(ctx).Model(&model.UserModel{})).
		Order(q.Order).
		Limit(q.Paging.Limit).
		Offset(q.Paging.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*model.UserModel, error) {
	var m model.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *userRepository) Create(ctx context.Context, m *model.UserModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *userRepository) Update(ctx context.Context, id string, updates map[string]any) (*model.UserModel, error) {
	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetByID(ctx, id)
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
