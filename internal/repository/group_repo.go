package repository

import (
	"context"

	"github.com/layebamba/Fadj-MA/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GroupRepository interface {
	Create(ctx context.Context, g *model.MedicineGroup) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.MedicineGroup, error)
	List(ctx context.Context) ([]model.MedicineGroup, error)
	Update(ctx context.Context, g *model.MedicineGroup) error
	Delete(ctx context.Context, id uuid.UUID) error
	MedicinesCount(ctx context.Context, id uuid.UUID) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type groupRepo struct{ db *gorm.DB }

func NewGroupRepository(db *gorm.DB) GroupRepository { return &groupRepo{db: db} }

func (r *groupRepo) Create(ctx context.Context, g *model.MedicineGroup) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *groupRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.MedicineGroup, error) {
	var g model.MedicineGroup
	err := r.db.WithContext(ctx).First(&g, id).Error
	return &g, err
}

func (r *groupRepo) List(ctx context.Context) ([]model.MedicineGroup, error) {
	var groups []model.MedicineGroup
	err := r.db.WithContext(ctx).Order("name ASC").Find(&groups).Error
	return groups, err
}

func (r *groupRepo) Update(ctx context.Context, g *model.MedicineGroup) error {
	return r.db.WithContext(ctx).Save(g).Error
}

// Delete removes the group; the FK on medicines is ON DELETE SET NULL so
// referencing medicines simply lose their group.
func (r *groupRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.MedicineGroup{}, id).Error
}

func (r *groupRepo) MedicinesCount(ctx context.Context, id uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Medicine{}).Where("group_id = ?", id).Count(&n).Error
	return n, err
}

func (r *groupRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.MedicineGroup{}).Count(&n).Error
	return n, err
}
