package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/layebamba/Fadj-MA/internal/dto"
	"github.com/layebamba/Fadj-MA/internal/model"
	"github.com/layebamba/Fadj-MA/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// trackingMedicineRepo extends the in-memory stub with the knobs the catalog
// tests need: a fake sale-items count and capture of the expiry window bounds.
type trackingMedicineRepo struct {
	*stubMedicineRepo
	saleItemsCount int64
	capturedFrom   time.Time
	capturedTo     time.Time
}

func (r *trackingMedicineRepo) SaleItemsCount(_ context.Context, _ uuid.UUID) (int64, error) {
	return r.saleItemsCount, nil
}

func (r *trackingMedicineRepo) ExpiringBetween(_ context.Context, from, to time.Time) ([]model.Medicine, error) {
	r.capturedFrom = from
	r.capturedTo = to
	return nil, nil
}

// stubGroupRepo backs group existence checks.
type stubGroupRepo struct {
	groups map[uuid.UUID]*model.MedicineGroup
}

func newStubGroupRepo() *stubGroupRepo {
	return &stubGroupRepo{groups: make(map[uuid.UUID]*model.MedicineGroup)}
}

func (r *stubGroupRepo) Create(_ context.Context, g *model.MedicineGroup) error {
	for _, existing := range r.groups {
		if existing.Name == g.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	r.groups[g.ID] = g
	return nil
}

func (r *stubGroupRepo) FindByID(_ context.Context, id uuid.UUID) (*model.MedicineGroup, error) {
	g, ok := r.groups[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return g, nil
}

func (r *stubGroupRepo) List(_ context.Context) ([]model.MedicineGroup, error) { return nil, nil }
func (r *stubGroupRepo) Update(_ context.Context, _ *model.MedicineGroup) error { return nil }
func (r *stubGroupRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.groups, id)
	return nil
}
func (r *stubGroupRepo) MedicinesCount(_ context.Context, _ uuid.UUID) (int64, error) { return 0, nil }
func (r *stubGroupRepo) Count(_ context.Context) (int64, error)                       { return 0, nil }

var _ repository.GroupRepository = (*stubGroupRepo)(nil)

// stubSupplierRepo backs supplier existence checks.
type stubSupplierRepo struct {
	suppliers map[uuid.UUID]*model.Supplier
}

func newStubSupplierRepo() *stubSupplierRepo {
	return &stubSupplierRepo{suppliers: make(map[uuid.UUID]*model.Supplier)}
}

func (r *stubSupplierRepo) Create(_ context.Context, s *model.Supplier) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.suppliers[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return s, nil
}

func (r *stubSupplierRepo) List(_ context.Context) ([]model.Supplier, error)  { return nil, nil }
func (r *stubSupplierRepo) Update(_ context.Context, _ *model.Supplier) error { return nil }
func (r *stubSupplierRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.suppliers, id)
	return nil
}
func (r *stubSupplierRepo) MedicinesCount(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}
func (r *stubSupplierRepo) Count(_ context.Context) (int64, error) { return 0, nil }

var _ repository.SupplierRepository = (*stubSupplierRepo)(nil)

func buildMedicineSvc() (MedicineService, *trackingMedicineRepo, *stubGroupRepo, *stubSupplierRepo) {
	repo := &trackingMedicineRepo{stubMedicineRepo: newStubMedicineRepo()}
	groupRepo := newStubGroupRepo()
	supplierRepo := newStubSupplierRepo()
	svc := NewMedicineService(repo, groupRepo, supplierRepo)
	return svc, repo, groupRepo, supplierRepo
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestCreateMedicine_GeneratesIdentifier(t *testing.T) {
	svc, _, _, _ := buildMedicineSvc()

	resp, err := svc.Create(context.Background(), uuid.New(), dto.CreateMedicineRequest{
		Name:         "Paracétamol 500mg",
		SellingPrice: decimal.RequireFromString("750"),
	})
	require.NoError(t, err)
	assert.Contains(t, resp.MedicineID, "D06ID")
	assert.Equal(t, "oral", resp.ConsumptionType)
	assert.Equal(t, "comprime", resp.PharmaceuticalForm)
	assert.Equal(t, 10, resp.MinStockAlert)
}

func TestCreateMedicine_KeepsProvidedIdentifier(t *testing.T) {
	svc, _, _, _ := buildMedicineSvc()

	resp, err := svc.Create(context.Background(), uuid.New(), dto.CreateMedicineRequest{
		Name:         "Coartem 20/120mg",
		MedicineID:   "MED-2024-002",
		SellingPrice: decimal.RequireFromString("5000"),
	})
	require.NoError(t, err)
	assert.Equal(t, "MED-2024-002", resp.MedicineID)
}

func TestCreateMedicine_UnknownGroup(t *testing.T) {
	svc, _, _, _ := buildMedicineSvc()

	unknown := uuid.New().String()
	_, err := svc.Create(context.Background(), uuid.New(), dto.CreateMedicineRequest{
		Name:         "Amoxicilline 1g",
		GroupID:      &unknown,
		SellingPrice: decimal.RequireFromString("3000"),
	})
	assert.ErrorContains(t, err, "Groupe introuvable")
}

func TestCreateMedicine_UnknownSupplier(t *testing.T) {
	svc, _, _, _ := buildMedicineSvc()

	unknown := uuid.New().String()
	_, err := svc.Create(context.Background(), uuid.New(), dto.CreateMedicineRequest{
		Name:         "Amoxicilline 1g",
		SupplierID:   &unknown,
		SellingPrice: decimal.RequireFromString("3000"),
	})
	assert.ErrorContains(t, err, "Fournisseur introuvable")
}

func TestCreateMedicine_ResolvesGroupAndSupplier(t *testing.T) {
	svc, repo, groupRepo, supplierRepo := buildMedicineSvc()

	group := &model.MedicineGroup{Name: "Antibiotiques"}
	require.NoError(t, groupRepo.Create(context.Background(), group))
	supplier := &model.Supplier{Name: "Sodipharm Sénégal", Phone: "771456789", Email: "info@sodipharm.sn"}
	require.NoError(t, supplierRepo.Create(context.Background(), supplier))

	gid, sid := group.ID.String(), supplier.ID.String()
	resp, err := svc.Create(context.Background(), uuid.New(), dto.CreateMedicineRequest{
		Name:         "Augmentin 1g",
		GroupID:      &gid,
		SupplierID:   &sid,
		SellingPrice: decimal.RequireFromString("5500"),
	})
	require.NoError(t, err)

	stored := repo.medicines[uuid.MustParse(resp.ID)]
	require.NotNil(t, stored.GroupID)
	require.NotNil(t, stored.SupplierID)
	assert.Equal(t, group.ID, *stored.GroupID)
	assert.Equal(t, supplier.ID, *stored.SupplierID)
}

func TestDeleteMedicine_RefusedWhenSold(t *testing.T) {
	svc, repo, _, _ := buildMedicineSvc()
	m := seedMedicine(repo.stubMedicineRepo, "Paracétamol 500mg", 10, 2, "750")
	repo.saleItemsCount = 3

	err := svc.Delete(context.Background(), m.ID)
	assert.ErrorContains(t, err, "Impossible de supprimer un médicament déjà vendu")
	assert.Contains(t, repo.medicines, m.ID)
}

func TestDeleteMedicine_AllowedWhenNeverSold(t *testing.T) {
	svc, repo, _, _ := buildMedicineSvc()
	m := seedMedicine(repo.stubMedicineRepo, "Vitamine C 1000mg", 10, 2, "1200")

	require.NoError(t, svc.Delete(context.Background(), m.ID))
	assert.NotContains(t, repo.medicines, m.ID)
}

func TestExpiringSoon_WindowBounds(t *testing.T) {
	svc, repo, _, _ := buildMedicineSvc()

	_, err := svc.ExpiringSoon(context.Background())
	require.NoError(t, err)

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	assert.Equal(t, today, repo.capturedFrom, "window starts at local midnight today")
	assert.Equal(t, today.AddDate(0, 0, 30), repo.capturedTo, "window spans 30 days inclusive")
}

func TestUpdateMedicine_PartialFields(t *testing.T) {
	svc, repo, _, _ := buildMedicineSvc()
	m := seedMedicine(repo.stubMedicineRepo, "Metformine 850mg", 180, 35, "2200")
	m.PurchasePrice = decimal.RequireFromString("1500")

	newStock := 150
	resp, err := svc.Update(context.Background(), m.ID, dto.UpdateMedicineRequest{
		StockQuantity: &newStock,
	})
	require.NoError(t, err)
	assert.Equal(t, 150, resp.StockQuantity)
	// untouched fields preserved
	assert.Equal(t, "Metformine 850mg", resp.Name)
	assert.Equal(t, "2200", resp.SellingPrice.String())
}
