package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/layebamba/Fadj-MA/internal/dto"
	"github.com/layebamba/Fadj-MA/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SaleRepository is append-only by design: no update or delete methods exist
// for sales or sale items.
type SaleRepository interface {
	Create(ctx context.Context, tx *gorm.DB, s *model.Sale) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error)
	NextSaleNumber(ctx context.Context, tx *gorm.DB) (string, error)
	List(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, int64, error)
	ListToday(ctx context.Context, from time.Time) ([]model.Sale, error)
	CountAndRevenue(ctx context.Context, since *time.Time) (int64, decimal.Decimal, error)
	TotalQuantitySold(ctx context.Context) (int64, error)
	ListItems(ctx context.Context, filter dto.SaleItemFilter) ([]model.SaleItem, int64, error)
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) DB() *gorm.DB { return r.db }

func (r *saleRepo) Create(ctx context.Context, tx *gorm.DB, s *model.Sale) error {
	return tx.WithContext(ctx).Create(s).Error
}

func (r *saleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).
		Preload("Items.Medicine").Preload("Client").Preload("SoldBy").
		First(&s, id).Error
	return &s, err
}

// NextSaleNumber draws from a PostgreSQL sequence so concurrent sales can
// never be assigned the same number.
func (r *saleRepo) NextSaleNumber(ctx context.Context, tx *gorm.DB) (string, error) {
	var num int64
	if err := tx.WithContext(ctx).Raw("SELECT nextval('sales_sale_number_seq')").Scan(&num).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("VNT-%06d", num), nil
}

func (r *saleRepo) List(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, int64, error) {
	var sales []model.Sale
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Sale{})

	if filter.Date != "" {
		q = q.Where("DATE(created_at) = ?", filter.Date)
	}
	if filter.ClientID != "" {
		q = q.Where("client_id = ?", filter.ClientID)
	}
	if filter.PaymentMethod != "" {
		q = q.Where("payment_method = ?", filter.PaymentMethod)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Items.Medicine").Preload("Client").Preload("SoldBy").
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&sales).Error
	return sales, total, err
}

// ListToday returns the sales of the day starting at `from`. The caller
// supplies the boundary so the listing and the daily stats agree on what
// "today" means regardless of the database timezone.
func (r *saleRepo) ListToday(ctx context.Context, from time.Time) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", from, from.AddDate(0, 0, 1)).
		Preload("Items.Medicine").Preload("Client").Preload("SoldBy").
		Order("created_at DESC").
		Find(&sales).Error
	return sales, err
}

// CountAndRevenue aggregates sale count and summed total_amount, optionally
// restricted to sales created at or after `since`.
func (r *saleRepo) CountAndRevenue(ctx context.Context, since *time.Time) (int64, decimal.Decimal, error) {
	var row struct {
		Count   int64
		Revenue decimal.Decimal
	}
	q := r.db.WithContext(ctx).Model(&model.Sale{}).
		Select("COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS revenue")
	if since != nil {
		q = q.Where("created_at >= ?", *since)
	}
	err := q.Scan(&row).Error
	return row.Count, row.Revenue, err
}

func (r *saleRepo) TotalQuantitySold(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.SaleItem{}).
		Select("COALESCE(SUM(quantity), 0)").Scan(&total).Error
	return total, err
}

func (r *saleRepo) ListItems(ctx context.Context, filter dto.SaleItemFilter) ([]model.SaleItem, int64, error) {
	var items []model.SaleItem
	var total int64

	q := r.db.WithContext(ctx).Model(&model.SaleItem{})
	if filter.MedicineID != "" {
		q = q.Where("medicine_id = ?", filter.MedicineID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Medicine").
		Order("id").
		Offset(offset).Limit(filter.Limit).
		Find(&items).Error
	return items, total, err
}
