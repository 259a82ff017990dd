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

// expiringSoonDays is the look-ahead window of GET /v1/medicines/expiring_soon.
const expiringSoonDays = 30

type MedicineService interface {
	Create(ctx context.Context, createdBy uuid.UUID, req dto.CreateMedicineRequest) (*dto.MedicineResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.MedicineResponse, error)
	List(ctx context.Context, filter dto.MedicineFilter) (*dto.MedicineListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateMedicineRequest) (*dto.MedicineResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	LowStock(ctx context.Context) ([]dto.MedicineResponse, error)
	ExpiringSoon(ctx context.Context) ([]dto.MedicineResponse, error)
	Expired(ctx context.Context) ([]dto.MedicineResponse, error)
}

type medicineService struct {
	repo         repository.MedicineRepository
	groupRepo    repository.GroupRepository
	supplierRepo repository.SupplierRepository
}

func NewMedicineService(
	repo repository.MedicineRepository,
	groupRepo repository.GroupRepository,
	supplierRepo repository.SupplierRepository,
) MedicineService {
	return &medicineService{repo: repo, groupRepo: groupRepo, supplierRepo: supplierRepo}
}

func (s *medicineService) Create(ctx context.Context, createdBy uuid.UUID, req dto.CreateMedicineRequest) (*dto.MedicineResponse, error) {
	groupID, err := s.resolveGroup(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}
	supplierID, err := s.resolveSupplier(ctx, req.SupplierID)
	if err != nil {
		return nil, err
	}

	medicineID := req.MedicineID
	if medicineID == "" {
		medicineID = model.GenerateMedicineID()
	}

	consumptionType := req.ConsumptionType
	if consumptionType == "" {
		consumptionType = "oral"
	}
	pharmaceuticalForm := req.PharmaceuticalForm
	if pharmaceuticalForm == "" {
		pharmaceuticalForm = "comprime"
	}

	createdByID := createdBy
	m := &model.Medicine{
		MedicineID:         medicineID,
		Name:               req.Name,
		GroupID:            groupID,
		SupplierID:         supplierID,
		StockQuantity:      req.StockQuantity,
		MinStockAlert:      req.MinStockAlert,
		Composition:        req.Composition,
		Manufacturer:       req.Manufacturer,
		ConsumptionType:    consumptionType,
		PharmaceuticalForm: pharmaceuticalForm,
		Description:        req.Description,
		DosageInfo:         req.DosageInfo,
		ActiveIngredients:  req.ActiveIngredients,
		SideEffects:        req.SideEffects,
		PurchasePrice:      req.PurchasePrice,
		SellingPrice:       req.SellingPrice,
		CreatedByID:        &createdByID,
	}
	if req.MinStockAlert == 0 {
		m.MinStockAlert = 10
	}
	if req.ExpirationDate != "" {
		exp, err := time.Parse("2006-01-02", req.ExpirationDate)
		if err != nil {
			return nil, errors.New("Date d'expiration invalide")
		}
		m.ExpirationDate = &exp
	}

	if err := s.repo.Create(ctx, m); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.New("Un médicament avec cet identifiant existe déjà")
		}
		return nil, err
	}

	// Reload with associations for the response
	created, err := s.repo.FindByID(ctx, m.ID)
	if err != nil {
		return medicineToResponse(m), nil
	}
	return medicineToResponse(created), nil
}

func (s *medicineService) GetByID(ctx context.Context, id uuid.UUID) (*dto.MedicineResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("Médicament introuvable")
	}
	return medicineToResponse(m), nil
}

func (s *medicineService) List(ctx context.Context, filter dto.MedicineFilter) (*dto.MedicineListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	medicines, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.MedicineResponse, 0, len(medicines))
	for i := range medicines {
		data = append(data, *medicineToResponse(&medicines[i]))
	}
	return &dto.MedicineListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *medicineService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateMedicineRequest) (*dto.MedicineResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("Médicament introuvable")
	}

	if req.Name != "" {
		m.Name = req.Name
	}
	if req.GroupID != nil {
		groupID, err := s.resolveGroup(ctx, req.GroupID)
		if err != nil {
			return nil, err
		}
		m.GroupID = groupID
	}
	if req.SupplierID != nil {
		supplierID, err := s.resolveSupplier(ctx, req.SupplierID)
		if err != nil {
			return nil, err
		}
		m.SupplierID = supplierID
	}
	if req.StockQuantity != nil {
		m.StockQuantity = *req.StockQuantity
	}
	if req.MinStockAlert != nil {
		m.MinStockAlert = *req.MinStockAlert
	}
	if req.Composition != nil {
		m.Composition = *req.Composition
	}
	if req.Manufacturer != nil {
		m.Manufacturer = *req.Manufacturer
	}
	if req.ConsumptionType != "" {
		m.ConsumptionType = req.ConsumptionType
	}
	if req.PharmaceuticalForm != "" {
		m.PharmaceuticalForm = req.PharmaceuticalForm
	}
	if req.ExpirationDate != nil {
		if *req.ExpirationDate == "" {
			m.ExpirationDate = nil
		} else {
			exp, err := time.Parse("2006-01-02", *req.ExpirationDate)
			if err != nil {
				return nil, errors.New("Date d'expiration invalide")
			}
			m.ExpirationDate = &exp
		}
	}
	if req.Description != nil {
		m.Description = *req.Description
	}
	if req.DosageInfo != nil {
		m.DosageInfo = *req.DosageInfo
	}
	if req.ActiveIngredients != nil {
		m.ActiveIngredients = *req.ActiveIngredients
	}
	if req.SideEffects != nil {
		m.SideEffects = *req.SideEffects
	}
	if req.PurchasePrice != nil {
		m.PurchasePrice = *req.PurchasePrice
	}
	if req.SellingPrice != nil {
		m.SellingPrice = *req.SellingPrice
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return medicineToResponse(m), nil
}

// Delete refuses to remove a medicine referenced by sale items: the sales
// history must stay intact.
func (s *medicineService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("Médicament introuvable")
	}
	n, err := s.repo.SaleItemsCount(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return errors.New("Impossible de supprimer un médicament déjà vendu")
	}
	return s.repo.Delete(ctx, id)
}

func (s *medicineService) LowStock(ctx context.Context) ([]dto.MedicineResponse, error) {
	medicines, err := s.repo.LowStock(ctx)
	if err != nil {
		return nil, err
	}
	return medicinesToResponses(medicines), nil
}

// ExpiringSoon lists medicines whose expiration date falls within the next
// 30 days, today included.
func (s *medicineService) ExpiringSoon(ctx context.Context) ([]dto.MedicineResponse, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	medicines, err := s.repo.ExpiringBetween(ctx, today, today.AddDate(0, 0, expiringSoonDays))
	if err != nil {
		return nil, err
	}
	return medicinesToResponses(medicines), nil
}

func (s *medicineService) Expired(ctx context.Context) ([]dto.MedicineResponse, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	medicines, err := s.repo.ExpiredBefore(ctx, today)
	if err != nil {
		return nil, err
	}
	return medicinesToResponses(medicines), nil
}

func (s *medicineService) resolveGroup(ctx context.Context, raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	gid, err := uuid.Parse(*raw)
	if err != nil {
		return nil, errors.New("Groupe invalide")
	}
	if _, err := s.groupRepo.FindByID(ctx, gid); err != nil {
		return nil, errors.New("Groupe introuvable")
	}
	return &gid, nil
}

func (s *medicineService) resolveSupplier(ctx context.Context, raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	sid, err := uuid.Parse(*raw)
	if err != nil {
		return nil, errors.New("Fournisseur invalide")
	}
	if _, err := s.supplierRepo.FindByID(ctx, sid); err != nil {
		return nil, errors.New("Fournisseur introuvable")
	}
	return &sid, nil
}

func medicinesToResponses(medicines []model.Medicine) []dto.MedicineResponse {
	resp := make([]dto.MedicineResponse, 0, len(medicines))
	for i := range medicines {
		resp = append(resp, *medicineToResponse(&medicines[i]))
	}
	return resp
}

func medicineToResponse(m *model.Medicine) *dto.MedicineResponse {
	resp := &dto.MedicineResponse{
		ID:                 m.ID.String(),
		MedicineID:         m.MedicineID,
		Name:               m.Name,
		StockQuantity:      m.StockQuantity,
		MinStockAlert:      m.MinStockAlert,
		IsLowStock:         m.IsLowStock(),
		Composition:        m.Composition,
		Manufacturer:       m.Manufacturer,
		ConsumptionType:    m.ConsumptionType,
		PharmaceuticalForm: m.PharmaceuticalForm,
		Description:        m.Description,
		DosageInfo:         m.DosageInfo,
		ActiveIngredients:  m.ActiveIngredients,
		SideEffects:        m.SideEffects,
		PurchasePrice:      m.PurchasePrice,
		SellingPrice:       m.SellingPrice,
		ProfitMargin:       m.ProfitMargin(),
		ImagePath:          m.ImagePath,
		CreatedAt:          m.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:          m.UpdatedAt.UTC().Format(time.RFC3339),
	}

	if m.ExpirationDate != nil {
		exp := m.ExpirationDate.Format("2006-01-02")
		resp.ExpirationDate = &exp
	}
	if m.GroupID != nil {
		gid := m.GroupID.String()
		resp.Group = &gid
	}
	if m.Group != nil {
		resp.GroupDetail = &dto.GroupResponse{
			ID:          m.Group.ID.String(),
			Name:        m.Group.Name,
			Description: m.Group.Description,
			CreatedAt:   m.Group.CreatedAt.UTC().Format(time.RFC3339),
			UpdatedAt:   m.Group.UpdatedAt.UTC().Format(time.RFC3339),
		}
	}
	if m.SupplierID != nil {
		sid := m.SupplierID.String()
		resp.Supplier = &sid
	}
	if m.Supplier != nil {
		resp.SupplierDetail = &dto.SupplierResponse{
			ID:        m.Supplier.ID.String(),
			Name:      m.Supplier.Name,
			Phone:     m.Supplier.Phone,
			Email:     m.Supplier.Email,
			Address:   m.Supplier.Address,
			CreatedAt: m.Supplier.CreatedAt.UTC().Format(time.RFC3339),
			UpdatedAt: m.Supplier.UpdatedAt.UTC().Format(time.RFC3339),
		}
	}
	if m.CreatedByID != nil {
		uid := m.CreatedByID.String()
		resp.CreatedBy = &uid
	}
	if m.CreatedBy != nil {
		resp.CreatedByName = m.CreatedBy.FullName()
	}
	return resp
}
