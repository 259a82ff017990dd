package service

import (
	"context"
	"errors"
	"time"

	"github.com/layebamba/Fadj-MA/internal/dto"
	"github.com/layebamba/Fadj-MA/internal/model"
	"github.com/layebamba/Fadj-MA/internal/repository"

	"github.com/google/uuid"
)

type SupplierService interface {
	Create(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.SupplierResponse, error)
	List(ctx context.Context) ([]dto.SupplierResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateSupplierRequest) (*dto.SupplierResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type supplierService struct {
	repo repository.SupplierRepository
}

func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func (s *supplierService) Create(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier := &model.Supplier{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	}
	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, supplier), nil
}

func (s *supplierService) GetByID(ctx context.Context, id uuid.UUID) (*dto.SupplierResponse, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("Fournisseur introuvable")
	}
	return s.toResponse(ctx, supplier), nil
}

func (s *supplierService) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	suppliers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		resp = append(resp, *s.toResponse(ctx, &suppliers[i]))
	}
	return resp, nil
}

func (s *supplierService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("Fournisseur introuvable")
	}
	if req.Name != "" {
		supplier.Name = req.Name
	}
	if req.Phone != "" {
		supplier.Phone = req.Phone
	}
	if req.Email != "" {
		supplier.Email = req.Email
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}
	if err := s.repo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, supplier), nil
}

// Delete removes the supplier; its medicines stay with supplier set to NULL.
func (s *supplierService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("Fournisseur introuvable")
	}
	return s.repo.Delete(ctx, id)
}

func (s *supplierService) toResponse(ctx context.Context, sp *model.Supplier) *dto.SupplierResponse {
	count, _ := s.repo.MedicinesCount(ctx, sp.ID)
	return &dto.SupplierResponse{
		ID:             sp.ID.String(),
		Name:           sp.Name,
		Phone:          sp.Phone,
		Email:          sp.Email,
		Address:        sp.Address,
		MedicinesCount: count,
		CreatedAt:      sp.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      sp.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
