package dto

import "github.com/shopspring/decimal"

// ─── Requests ────────────────────────────────────────────────────────────────

type SaleItemRequest struct {
	MedicineID string          `json:"medicine"   validate:"required,uuid"`
	Quantity   int             `json:"quantity"   validate:"required,min=1"`
	UnitPrice  decimal.Decimal `json:"unit_price" validate:"min=0"`
}

type CreateSaleRequest struct {
	ClientID      *string           `json:"client"         validate:"omitempty,uuid"`
	PaymentMethod string            `json:"payment_method" validate:"required,oneof=cash card mobile check"`
	Notes         string            `json:"notes"`
	Items         []SaleItemRequest `json:"items"          validate:"required,min=1,dive"`
}

// SaleFilter is bound from the query string of GET /v1/sales.
type SaleFilter struct {
	Date          string `form:"date"           validate:"omitempty,datetime=2006-01-02"`
	ClientID      string `form:"client_id"      validate:"omitempty,uuid"`
	PaymentMethod string `form:"payment_method" validate:"omitempty,oneof=cash card mobile check"`
	Page          int    `form:"page,default=1"   validate:"min=1"`
	Limit         int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type SaleItemFilter struct {
	MedicineID string `form:"medicine_id" validate:"omitempty,uuid"`
	Page       int    `form:"page,default=1"   validate:"min=1"`
	Limit      int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type SaleItemResponse struct {
	ID           string          `json:"id"`
	MedicineID   string          `json:"medicine"`
	MedicineName string          `json:"medicine_name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalPrice   decimal.Decimal `json:"total_price"`
}

type SaleResponse struct {
	ID            string             `json:"id"`
	SaleNumber    string             `json:"sale_number"`
	ClientID      *string            `json:"client"`
	ClientName    string             `json:"client_name,omitempty"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	PaymentMethod string             `json:"payment_method"`
	Notes         string             `json:"notes,omitempty"`
	SoldByID      *string            `json:"sold_by"`
	SoldByName    string             `json:"sold_by_name,omitempty"`
	Items         []SaleItemResponse `json:"items"`
	CreatedAt     string             `json:"created_at"`
}

type SaleListResponse struct {
	Data  []SaleResponse `json:"data"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

type SaleItemListResponse struct {
	Data  []SaleItemResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// PeriodStats is one row of GET /v1/sales/stats.
type PeriodStats struct {
	Count   int64           `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}

type SaleStatsResponse struct {
	Today   PeriodStats `json:"today"`
	AllTime PeriodStats `json:"all_time"`
}
