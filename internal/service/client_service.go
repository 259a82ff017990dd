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

type ClientService interface {
	Create(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ClientResponse, error)
	List(ctx context.Context, filter dto.ClientFilter) (*dto.ClientListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateClientRequest) (*dto.ClientResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type clientService struct {
	repo repository.ClientRepository
}

func NewClientService(repo repository.ClientRepository) ClientService {
	return &clientService{repo: repo}
}

func (s *clientService) Create(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error) {
	client := &model.Client{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Gender:    req.Gender,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
	}
	if req.BirthDate != "" {
		bd, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return nil, errors.New("Date de naissance invalide")
		}
		client.BirthDate = &bd
	}
	if err := s.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, client), nil
}

func (s *clientService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ClientResponse, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("Client introuvable")
	}
	return s.toResponse(ctx, client), nil
}

func (s *clientService) List(ctx context.Context, filter dto.ClientFilter) (*dto.ClientListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	clients, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		data = append(data, *s.toResponse(ctx, &clients[i]))
	}
	return &dto.ClientListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *clientService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("Client introuvable")
	}
	if req.FirstName != "" {
		client.FirstName = req.FirstName
	}
	if req.LastName != "" {
		client.LastName = req.LastName
	}
	if req.Gender != "" {
		client.Gender = req.Gender
	}
	if req.Phone != "" {
		client.Phone = req.Phone
	}
	if req.Email != "" {
		client.Email = req.Email
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.BirthDate != nil {
		if *req.BirthDate == "" {
			client.BirthDate = nil
		} else {
			bd, err := time.Parse("2006-01-02", *req.BirthDate)
			if err != nil {
				return nil, errors.New("Date de naissance invalide")
			}
			client.BirthDate = &bd
		}
	}
	if err := s.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, client), nil
}

// Delete removes the client; past sales keep their history with client NULL.
func (s *clientService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("Client introuvable")
	}
	return s.repo.Delete(ctx, id)
}

func (s *clientService) toResponse(ctx context.Context, c *model.Client) *dto.ClientResponse {
	count, _ := s.repo.SalesCount(ctx, c.ID)
	var birthDate *string
	if c.BirthDate != nil {
		bd := c.BirthDate.Format("2006-01-02")
		birthDate = &bd
	}
	return &dto.ClientResponse{
		ID:             c.ID.String(),
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		FullName:       c.FullName(),
		Gender:         c.Gender,
		BirthDate:      birthDate,
		Phone:          c.Phone,
		Email:          c.Email,
		Address:        c.Address,
		PurchasesCount: count,
		CreatedAt:      c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      c.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
