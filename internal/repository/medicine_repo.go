package repository

import (
	"context"
	"time"

	"github.com/layebamba/Fadj-MA/internal/dto"
	"github.com/layebamba/Fadj-MA/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MedicineRepository defines the data access contract for the catalog.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type MedicineRepository interface {
	Create(ctx context.Context, m *model.Medicine) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Medicine, error)
	FindByMedicineID(ctx context.Context, code string) (*model.Medicine, error)
	List(ctx context.Context, filter dto.MedicineFilter) ([]model.Medicine, int64, error)
	Update(ctx context.Context, m *model.Medicine) error
	Delete(ctx context.Context, id uuid.UUID) error
	SaleItemsCount(ctx context.Context, id uuid.UUID) (int64, error)

	// Derived stock-health queries
	LowStock(ctx context.Context) ([]model.Medicine, error)
	ExpiringBetween(ctx context.Context, from, to time.Time) ([]model.Medicine, error)
	ExpiredBefore(ctx context.Context, day time.Time) ([]model.Medicine, error)

	// Used inside the sale transaction — callers must pass the tx instance
	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Medicine, error)
	UpdateStockTx(tx *gorm.DB, id uuid.UUID, delta int) error

	// Report aggregates
	Count(ctx context.Context) (int64, error)
	CountAvailable(ctx context.Context) (int64, error)
	CountLowStock(ctx context.Context) (int64, error)
	TopByStock(ctx context.Context, limit int) ([]model.Medicine, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type medicineRepo struct{ db *gorm.DB }

func NewMedicineRepository(db *gorm.DB) MedicineRepository { return &medicineRepo{db: db} }

func (r *medicineRepo) DB() *gorm.DB { return r.db }

func (r *medicineRepo) Create(ctx context.Context, m *model.Medicine) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *medicineRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Medicine, error) {
	var m model.Medicine
	err := r.db.WithContext(ctx).
		Preload("Group").Preload("Supplier").Preload("CreatedBy").
		First(&m, id).Error
	return &m, err
}

func (r *medicineRepo) FindByMedicineID(ctx context.Context, code string) (*model.Medicine, error) {
	var m model.Medicine
	err := r.db.WithContext(ctx).Where("medicine_id = ?", code).First(&m).Error
	return &m, err
}

func (r *medicineRepo) List(ctx context.Context, filter dto.MedicineFilter) ([]model.Medicine, int64, error) {
	var medicines []model.Medicine
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Medicine{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("name ILIKE ? OR medicine_id ILIKE ?", pattern, pattern)
	}
	if filter.GroupID != "" {
		q = q.Where("group_id = ?", filter.GroupID)
	}
	if filter.SupplierID != "" {
		q = q.Where("supplier_id = ?", filter.SupplierID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "name ASC"
	switch filter.Ordering {
	case "-name":
		order = "name DESC"
	case "stock_quantity":
		order = "stock_quantity ASC"
	case "-stock_quantity":
		order = "stock_quantity DESC"
	case "expiration_date":
		order = "expiration_date ASC NULLS LAST"
	case "-expiration_date":
		order = "expiration_date DESC NULLS LAST"
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Group").Preload("Supplier").Preload("CreatedBy").
		Order(order).
		Offset(offset).Limit(filter.Limit).
		Find(&medicines).Error
	return medicines, total, err
}

func (r *medicineRepo) Update(ctx context.Context, m *model.Medicine) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *medicineRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Medicine{}, id).Error
}

func (r *medicineRepo) SaleItemsCount(ctx context.Context, id uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.SaleItem{}).Where("medicine_id = ?", id).Count(&n).Error
	return n, err
}

func (r *medicineRepo) LowStock(ctx context.Context) ([]model.Medicine, error) {
	var medicines []model.Medicine
	err := r.db.WithContext(ctx).
		Where("stock_quantity <= min_stock_alert").
		Order("stock_quantity ASC").
		Find(&medicines).Error
	return medicines, err
}

func (r *medicineRepo) ExpiringBetween(ctx context.Context, from, to time.Time) ([]model.Medicine, error) {
	var medicines []model.Medicine
	err := r.db.WithContext(ctx).
		Where("expiration_date IS NOT NULL AND expiration_date >= ? AND expiration_date <= ?", from, to).
		Order("expiration_date ASC").
		Find(&medicines).Error
	return medicines, err
}

func (r *medicineRepo) ExpiredBefore(ctx context.Context, day time.Time) ([]model.Medicine, error) {
	var medicines []model.Medicine
	err := r.db.WithContext(ctx).
		Where("expiration_date IS NOT NULL AND expiration_date < ?", day).
		Order("expiration_date ASC").
		Find(&medicines).Error
	return medicines, err
}

// FindByIDForUpdateTx locks the medicine row FOR UPDATE for the duration of
// the surrounding transaction. Stock checks done on the returned value are
// therefore safe against concurrent sales.
func (r *medicineRepo) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Medicine, error) {
	var m model.Medicine
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, id).Error
	return &m, err
}

func (r *medicineRepo) UpdateStockTx(tx *gorm.DB, id uuid.UUID, delta int) error {
	return tx.Model(&model.Medicine{}).Where("id = ?", id).
		Update("stock_quantity", gorm.Expr("stock_quantity + ?", delta)).Error
}

func (r *medicineRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Medicine{}).Count(&n).Error
	return n, err
}

func (r *medicineRepo) CountAvailable(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Medicine{}).Where("stock_quantity > 0").Count(&n).Error
	return n, err
}

func (r *medicineRepo) CountLowStock(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Medicine{}).
		Where("stock_quantity <= min_stock_alert").Count(&n).Error
	return n, err
}

func (r *medicineRepo) TopByStock(ctx context.Context, limit int) ([]model.Medicine, error) {
	var medicines []model.Medicine
	err := r.db.WithContext(ctx).Order("stock_quantity DESC").Limit(limit).Find(&medicines).Error
	return medicines, err
}
