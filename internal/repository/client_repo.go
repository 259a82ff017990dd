package repository

import (
	"context"

	"github.com/layebamba/Fadj-MA/internal/dto"
	"github.com/layebamba/Fadj-MA/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientRepository interface {
	Create(ctx context.Context, c *model.Client) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Client, error)
	List(ctx context.Context, filter dto.ClientFilter) ([]model.Client, int64, error)
	Update(ctx context.Context, c *model.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
	SalesCount(ctx context.Context, id uuid.UUID) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type clientRepo struct{ db *gorm.DB }

func NewClientRepository(db *gorm.DB) ClientRepository { return &clientRepo{db: db} }

func (r *clientRepo) Create(ctx context.Context, c *model.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clientRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	var c model.Client
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *clientRepo) List(ctx context.Context, filter dto.ClientFilter) ([]model.Client, int64, error) {
	var clients []model.Client
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Client{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("first_name ILIKE ? OR last_name ILIKE ? OR phone ILIKE ?", pattern, pattern, pattern)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("last_name ASC, first_name ASC").
		Offset(offset).Limit(filter.Limit).
		Find(&clients).Error
	return clients, total, err
}

func (r *clientRepo) Update(ctx context.Context, c *model.Client) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// Delete removes the client. Sales referencing it keep their history with
// client_id set to NULL (audit trail is preserved on purpose).
func (r *clientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Client{}, id).Error
}

func (r *clientRepo) SalesCount(ctx context.Context, id uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Sale{}).Where("client_id = ?", id).Count(&n).Error
	return n, err
}

func (r *clientRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Client{}).Count(&n).Error
	return n, err
}
