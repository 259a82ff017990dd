package service

import (
	"context"
	"errors"
	"time"

	"github.com/layebamba/Fadj-MA/internal/dto"
	"github.com/layebamba/Fadj-MA/internal/model"
	"github.com/layebamba/Fadj-MA/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GroupService interface {
	Create(ctx context.Context, req dto.CreateGroupRequest) (*dto.GroupResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.GroupResponse, error)
	List(ctx context.Context) ([]dto.GroupResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateGroupRequest) (*dto.GroupResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type groupService struct {
	repo repository.GroupRepository
}

func NewGroupService(repo repository.GroupRepository) GroupService {
	return &groupService{repo: repo}
}

func (s *groupService) Create(ctx context.Context, req dto.CreateGroupRequest) (*dto.GroupResponse, error) {
	group := &model.MedicineGroup{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, group); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.New("Un groupe avec ce nom existe déjà")
		}
		return nil, err
	}
	return s.toResponse(ctx, group), nil
}

func (s *groupService) GetByID(ctx context.Context, id uuid.UUID) (*dto.GroupResponse, error) {
	group, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("Groupe introuvable")
	}
	return s.toResponse(ctx, group), nil
}

func (s *groupService) List(ctx context.Context) ([]dto.GroupResponse, error) {
	groups, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.GroupResponse, 0, len(groups))
	for i := range groups {
		resp = append(resp, *s.toResponse(ctx, &groups[i]))
	}
	return resp, nil
}

func (s *groupService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateGroupRequest) (*dto.GroupResponse, error) {
	group, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("Groupe introuvable")
	}
	if req.Name != "" {
		group.Name = req.Name
	}
	if req.Description != nil {
		group.Description = *req.Description
	}
	if err := s.repo.Update(ctx, group); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.New("Un groupe avec ce nom existe déjà")
		}
		return nil, err
	}
	return s.toResponse(ctx, group), nil
}

// Delete removes the group; its medicines stay and lose their group reference.
func (s *groupService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("Groupe introuvable")
	}
	return s.repo.Delete(ctx, id)
}

func (s *groupService) toResponse(ctx context.Context, g *model.MedicineGroup) *dto.GroupResponse {
	count, _ := s.repo.MedicinesCount(ctx, g.ID)
	return &dto.GroupResponse{
		ID:             g.ID.String(),
		Name:           g.Name,
		Description:    g.Description,
		MedicinesCount: count,
		CreatedAt:      g.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      g.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
