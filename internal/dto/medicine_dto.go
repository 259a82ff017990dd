package dto

import "github.com/shopspring/decimal"

type CreateMedicineRequest struct {
	Name       string  `json:"name"        validate:"required,max=255"`
	MedicineID string  `json:"medicine_id" validate:"omitempty,max=50"` // generated when empty
	GroupID    *string `json:"group"       validate:"omitempty,uuid"`
	SupplierID *string `json:"supplier"    validate:"omitempty,uuid"`

	StockQuantity int `json:"stock_quantity" validate:"min=0"`
	MinStockAlert int `json:"min_stock_alert" validate:"min=0"`

	Composition        string `json:"composition"`
	Manufacturer       string `json:"manufacturer"`
	ConsumptionType    string `json:"consumption_type"    validate:"omitempty,oneof=oral injection topique inhalation"`
	PharmaceuticalForm string `json:"pharmaceutical_form" validate:"omitempty,oneof=comprime gelule sirop creme pommade injection gouttes suppositoire autre"`
	ExpirationDate     string `json:"expiration_date"     validate:"omitempty,datetime=2006-01-02"`
	Description        string `json:"description"`
	DosageInfo         string `json:"dosage_info"`
	ActiveIngredients  string `json:"active_ingredients"`
	SideEffects        string `json:"side_effects"`

	PurchasePrice decimal.Decimal `json:"purchase_price" validate:"min=0"`
	SellingPrice  decimal.Decimal `json:"selling_price"  validate:"required,min=0"`
}

type UpdateMedicineRequest struct {
	Name       string  `json:"name"     validate:"omitempty,max=255"`
	GroupID    *string `json:"group"    validate:"omitempty,uuid"`
	SupplierID *string `json:"supplier" validate:"omitempty,uuid"`

	StockQuantity *int `json:"stock_quantity"  validate:"omitempty,min=0"`
	MinStockAlert *int `json:"min_stock_alert" validate:"omitempty,min=0"`

	Composition        *string `json:"composition"`
	Manufacturer       *string `json:"manufacturer"`
	ConsumptionType    string  `json:"consumption_type"    validate:"omitempty,oneof=oral injection topique inhalation"`
	PharmaceuticalForm string  `json:"pharmaceutical_form" validate:"omitempty,oneof=comprime gelule sirop creme pommade injection gouttes suppositoire autre"`
	ExpirationDate     *string `json:"expiration_date"     validate:"omitempty,datetime=2006-01-02"`
	Description        *string `json:"description"`
	DosageInfo         *string `json:"dosage_info"`
	ActiveIngredients  *string `json:"active_ingredients"`
	SideEffects        *string `json:"side_effects"`

	PurchasePrice *decimal.Decimal `json:"purchase_price" validate:"omitempty,min=0"`
	SellingPrice  *decimal.Decimal `json:"selling_price"  validate:"omitempty,min=0"`
}

// MedicineFilter is bound from the query string of GET /v1/medicines.
type MedicineFilter struct {
	Search     string `form:"search"`   // matches name or medicine_id
	GroupID    string `form:"group"    validate:"omitempty,uuid"`
	SupplierID string `form:"supplier" validate:"omitempty,uuid"`
	Ordering   string `form:"ordering" validate:"omitempty,oneof=name -name stock_quantity -stock_quantity expiration_date -expiration_date"`
	Page       int    `form:"page,default=1"   validate:"min=1"`
	Limit      int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type MedicineResponse struct {
	ID             string            `json:"id"`
	MedicineID     string            `json:"medicine_id"`
	Name           string            `json:"name"`
	Group          *string           `json:"group"`
	GroupDetail    *GroupResponse    `json:"group_detail,omitempty"`
	Supplier       *string           `json:"supplier"`
	SupplierDetail *SupplierResponse `json:"supplier_detail,omitempty"`

	StockQuantity int  `json:"stock_quantity"`
	MinStockAlert int  `json:"min_stock_alert"`
	IsLowStock    bool `json:"is_low_stock"`

	Composition        string  `json:"composition,omitempty"`
	Manufacturer       string  `json:"manufacturer,omitempty"`
	ConsumptionType    string  `json:"consumption_type"`
	PharmaceuticalForm string  `json:"pharmaceutical_form"`
	ExpirationDate     *string `json:"expiration_date"`
	Description        string  `json:"description,omitempty"`
	DosageInfo         string  `json:"dosage_info,omitempty"`
	ActiveIngredients  string  `json:"active_ingredients,omitempty"`
	SideEffects        string  `json:"side_effects,omitempty"`

	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	ProfitMargin  decimal.Decimal `json:"profit_margin"`
	ImagePath     *string         `json:"image,omitempty"`

	CreatedBy     *string `json:"created_by"`
	CreatedByName string  `json:"created_by_name,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type MedicineListResponse struct {
	Data  []MedicineResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
