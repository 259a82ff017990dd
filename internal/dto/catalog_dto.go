package dto

// ─── Medicine groups ─────────────────────────────────────────────────────────

type CreateGroupRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description"`
}

type UpdateGroupRequest struct {
	Name        string  `json:"name"        validate:"omitempty,max=100"`
	Description *string `json:"description"`
}

type GroupResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	MedicinesCount int64  `json:"medicines_count"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// ─── Suppliers ───────────────────────────────────────────────────────────────

type CreateSupplierRequest struct {
	Name    string `json:"name"    validate:"required,max=255,person_name"`
	Phone   string `json:"phone"   validate:"required,sn_phone"`
	Email   string `json:"email"   validate:"required,lower_email"`
	Address string `json:"address" validate:"required"`
}

type UpdateSupplierRequest struct {
	Name    string  `json:"name"    validate:"omitempty,max=255,person_name"`
	Phone   string  `json:"phone"   validate:"omitempty,sn_phone"`
	Email   string  `json:"email"   validate:"omitempty,lower_email"`
	Address *string `json:"address"`
}

type SupplierResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	MedicinesCount int64  `json:"medicines_count"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}
