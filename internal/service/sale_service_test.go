package service

import (
	"context"
	"errors"
	"fmt"
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

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubSaleRepo is an in-memory SaleRepository for testing.
type stubSaleRepo struct {
	sales   map[uuid.UUID]*model.Sale
	saleSeq int64

	// captured day boundaries, to check both endpoints share one clock
	todayFrom  time.Time
	statsSince *time.Time
}

func newStubSaleRepo() *stubSaleRepo {
	return &stubSaleRepo{sales: make(map[uuid.UUID]*model.Sale)}
}

func (r *stubSaleRepo) Create(_ context.Context, _ *gorm.DB, s *model.Sale) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.CreatedAt = time.Now()
	r.sales[s.ID] = s
	return nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return s, nil
}

func (r *stubSaleRepo) NextSaleNumber(_ context.Context, _ *gorm.DB) (string, error) {
	r.saleSeq++
	return fmt.Sprintf("VNT-%06d", r.saleSeq), nil
}

func (r *stubSaleRepo) List(_ context.Context, _ dto.SaleFilter) ([]model.Sale, int64, error) {
	out := make([]model.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *stubSaleRepo) ListToday(_ context.Context, from time.Time) ([]model.Sale, error) {
	r.todayFrom = from
	out := make([]model.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubSaleRepo) CountAndRevenue(_ context.Context, since *time.Time) (int64, decimal.Decimal, error) {
	if since != nil {
		r.statsSince = since
	}
	total := decimal.Zero
	for _, s := range r.sales {
		total = total.Add(s.TotalAmount)
	}
	return int64(len(r.sales)), total, nil
}

func (r *stubSaleRepo) TotalQuantitySold(_ context.Context) (int64, error) {
	var n int64
	for _, s := range r.sales {
		for _, it := range s.Items {
			n += int64(it.Quantity)
		}
	}
	return n, nil
}

func (r *stubSaleRepo) ListItems(_ context.Context, filter dto.SaleItemFilter) ([]model.SaleItem, int64, error) {
	var items []model.SaleItem
	for _, s := range r.sales {
		for _, it := range s.Items {
			if filter.MedicineID != "" && it.MedicineID.String() != filter.MedicineID {
				continue
			}
			items = append(items, it)
		}
	}
	return items, int64(len(items)), nil
}

func (r *stubSaleRepo) DB() *gorm.DB { return nil }

var _ repository.SaleRepository = (*stubSaleRepo)(nil)

// stubMedicineRepo keeps medicines in memory and tracks stock mutations.
type stubMedicineRepo struct {
	medicines map[uuid.UUID]*model.Medicine
}

func newStubMedicineRepo() *stubMedicineRepo {
	return &stubMedicineRepo{medicines: make(map[uuid.UUID]*model.Medicine)}
}

func (r *stubMedicineRepo) Create(_ context.Context, m *model.Medicine) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.medicines[m.ID] = m
	return nil
}

func (r *stubMedicineRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Medicine, error) {
	m, ok := r.medicines[id]
	if !ok {
		return nil, errors.New("not found")
	}
	copied := *m
	return &copied, nil
}

func (r *stubMedicineRepo) FindByMedicineID(_ context.Context, code string) (*model.Medicine, error) {
	for _, m := range r.medicines {
		if m.MedicineID == code {
			return m, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubMedicineRepo) List(_ context.Context, _ dto.MedicineFilter) ([]model.Medicine, int64, error) {
	out := make([]model.Medicine, 0, len(r.medicines))
	for _, m := range r.medicines {
		out = append(out, *m)
	}
	return out, int64(len(out)), nil
}

func (r *stubMedicineRepo) Update(_ context.Context, m *model.Medicine) error {
	r.medicines[m.ID] = m
	return nil
}

func (r *stubMedicineRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.medicines, id)
	return nil
}

func (r *stubMedicineRepo) SaleItemsCount(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *stubMedicineRepo) LowStock(_ context.Context) ([]model.Medicine, error) { return nil, nil }
func (r *stubMedicineRepo) ExpiringBetween(_ context.Context, _, _ time.Time) ([]model.Medicine, error) {
	return nil, nil
}
func (r *stubMedicineRepo) ExpiredBefore(_ context.Context, _ time.Time) ([]model.Medicine, error) {
	return nil, nil
}

func (r *stubMedicineRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Medicine, error) {
	m, ok := r.medicines[id]
	if !ok {
		return nil, errors.New("not found")
	}
	copied := *m
	return &copied, nil
}

func (r *stubMedicineRepo) UpdateStockTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	m, ok := r.medicines[id]
	if !ok {
		return errors.New("not found")
	}
	m.StockQuantity += delta
	return nil
}

func (r *stubMedicineRepo) Count(_ context.Context) (int64, error)          { return 0, nil }
func (r *stubMedicineRepo) CountAvailable(_ context.Context) (int64, error) { return 0, nil }
func (r *stubMedicineRepo) CountLowStock(_ context.Context) (int64, error)  { return 0, nil }
func (r *stubMedicineRepo) TopByStock(_ context.Context, _ int) ([]model.Medicine, error) {
	return nil, nil
}
func (r *stubMedicineRepo) DB() *gorm.DB { return nil }

var _ repository.MedicineRepository = (*stubMedicineRepo)(nil)

// stubClientRepo only needs FindByID for the sale flow.
type stubClientRepo struct {
	clients map[uuid.UUID]*model.Client
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[uuid.UUID]*model.Client)}
}

func (r *stubClientRepo) Create(_ context.Context, c *model.Client) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clients[c.ID] = c
	return nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return c, nil
}

func (r *stubClientRepo) List(_ context.Context, _ dto.ClientFilter) ([]model.Client, int64, error) {
	return nil, 0, nil
}
func (r *stubClientRepo) Update(_ context.Context, _ *model.Client) error     { return nil }
func (r *stubClientRepo) Delete(_ context.Context, _ uuid.UUID) error         { return nil }
func (r *stubClientRepo) SalesCount(_ context.Context, _ uuid.UUID) (int64, error) { return 0, nil }
func (r *stubClientRepo) Count(_ context.Context) (int64, error)              { return 0, nil }

var _ repository.ClientRepository = (*stubClientRepo)(nil)

// ── Helpers ───────────────────────────────────────────────────────────────────

func seedMedicine(repo *stubMedicineRepo, name string, stock, alert int, sellingPrice string) *model.Medicine {
	m := &model.Medicine{
		ID:            uuid.New(),
		MedicineID:    model.GenerateMedicineID(),
		Name:          name,
		StockQuantity: stock,
		MinStockAlert: alert,
		SellingPrice:  decimal.RequireFromString(sellingPrice),
	}
	repo.medicines[m.ID] = m
	return m
}

func buildSaleSvc() (SaleService, *stubSaleRepo, *stubMedicineRepo, *stubClientRepo) {
	saleRepo := newStubSaleRepo()
	medicineRepo := newStubMedicineRepo()
	clientRepo := newStubClientRepo()
	svc := NewSaleService(saleRepo, medicineRepo, clientRepo, nil)
	return svc, saleRepo, medicineRepo, clientRepo
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestCreateSale_TotalsAndStock(t *testing.T) {
	svc, saleRepo, medicineRepo, _ := buildSaleSvc()
	para := seedMedicine(medicineRepo, "Paracétamol 500mg", 100, 10, "750")
	amox := seedMedicine(medicineRepo, "Amoxicilline 1g", 50, 10, "3000")

	resp, err := svc.CreateSale(context.Background(), uuid.New(), dto.CreateSaleRequest{
		PaymentMethod: "cash",
		Items: []dto.SaleItemRequest{
			{MedicineID: para.ID.String(), Quantity: 4},
			{MedicineID: amox.ID.String(), Quantity: 2},
		},
	})
	require.NoError(t, err)

	// total = 4×750 + 2×3000 = 9000
	assert.Equal(t, "9000", resp.TotalAmount.String())
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "3000", resp.Items[0].TotalPrice.String())
	assert.Equal(t, "6000", resp.Items[1].TotalPrice.String())

	// stock decremented exactly once per line
	assert.Equal(t, 96, medicineRepo.medicines[para.ID].StockQuantity)
	assert.Equal(t, 48, medicineRepo.medicines[amox.ID].StockQuantity)

	// sale number drawn from the sequence
	assert.Equal(t, "VNT-000001", resp.SaleNumber)
	assert.Len(t, saleRepo.sales, 1)
}

func TestCreateSale_ItemTotalsSumToSaleTotal(t *testing.T) {
	svc, saleRepo, medicineRepo, _ := buildSaleSvc()
	m := seedMedicine(medicineRepo, "Coartem 20/120mg", 30, 5, "5000")

	resp, err := svc.CreateSale(context.Background(), uuid.New(), dto.CreateSaleRequest{
		PaymentMethod: "mobile",
		Items:         []dto.SaleItemRequest{{MedicineID: m.ID.String(), Quantity: 3}},
	})
	require.NoError(t, err)

	stored := saleRepo.sales[uuid.MustParse(resp.ID)]
	sum := decimal.Zero
	for _, it := range stored.Items {
		assert.True(t, it.TotalPrice.Equal(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))))
		sum = sum.Add(it.TotalPrice)
	}
	assert.True(t, stored.TotalAmount.Equal(sum))
}

func TestCreateSale_InsufficientStock(t *testing.T) {
	svc, saleRepo, medicineRepo, _ := buildSaleSvc()
	m := seedMedicine(medicineRepo, "Vitamine C 1000mg", 2, 1, "1200")

	_, err := svc.CreateSale(context.Background(), uuid.New(), dto.CreateSaleRequest{
		PaymentMethod: "cash",
		Items:         []dto.SaleItemRequest{{MedicineID: m.ID.String(), Quantity: 5}},
	})

	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Vitamine C 1000mg", stockErr.MedicineName)
	assert.Equal(t, 2, stockErr.Available)
	assert.Contains(t, err.Error(), "Stock insuffisant pour Vitamine C 1000mg. Disponible: 2")

	// nothing persisted, stock untouched
	assert.Empty(t, saleRepo.sales)
	assert.Equal(t, 2, medicineRepo.medicines[m.ID].StockQuantity)
}

func TestCreateSale_SequentialSalesExhaustStock(t *testing.T) {
	svc, saleRepo, medicineRepo, _ := buildSaleSvc()
	m := seedMedicine(medicineRepo, "Augmentin 1g", 10, 5, "5500")

	// First sale of 7 goes through: stock 10 → 3
	_, err := svc.CreateSale(context.Background(), uuid.New(), dto.CreateSaleRequest{
		PaymentMethod: "cash",
		Items:         []dto.SaleItemRequest{{MedicineID: m.ID.String(), Quantity: 7}},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, medicineRepo.medicines[m.ID].StockQuantity)

	// Second sale of 5 must fail and leave stock at 3
	_, err = svc.CreateSale(context.Background(), uuid.New(), dto.CreateSaleRequest{
		PaymentMethod: "cash",
		Items:         []dto.SaleItemRequest{{MedicineID: m.ID.String(), Quantity: 5}},
	})
	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 3, stockErr.Available)
	assert.Equal(t, 3, medicineRepo.medicines[m.ID].StockQuantity)
	assert.Len(t, saleRepo.sales, 1)
}

func TestCreateSale_UnitPriceDefaultsToCatalog(t *testing.T) {
	svc, _, medicineRepo, _ := buildSaleSvc()
	m := seedMedicine(medicineRepo, "Metformine 850mg", 20, 5, "2200")

	// no unit_price in the request → catalog selling price
	resp, err := svc.CreateSale(context.Background(), uuid.New(), dto.CreateSaleRequest{
		PaymentMethod: "card",
		Items:         []dto.SaleItemRequest{{MedicineID: m.ID.String(), Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "2200", resp.Items[0].UnitPrice.String())

	// explicit unit_price wins
	resp, err = svc.CreateSale(context.Background(), uuid.New(), dto.CreateSaleRequest{
		PaymentMethod: "card",
		Items: []dto.SaleItemRequest{
			{MedicineID: m.ID.String(), Quantity: 1, UnitPrice: decimal.RequireFromString("2000")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "2000", resp.Items[0].UnitPrice.String())
}

func TestCreateSale_UnknownClient(t *testing.T) {
	svc, saleRepo, medicineRepo, _ := buildSaleSvc()
	m := seedMedicine(medicineRepo, "Amlodipine 5mg", 10, 2, "3500")

	unknown := uuid.New().String()
	_, err := svc.CreateSale(context.Background(), uuid.New(), dto.CreateSaleRequest{
		ClientID:      &unknown,
		PaymentMethod: "cash",
		Items:         []dto.SaleItemRequest{{MedicineID: m.ID.String(), Quantity: 1}},
	})
	assert.ErrorContains(t, err, "Client introuvable")
	assert.Empty(t, saleRepo.sales)
}

func TestCreateSale_ClientAttached(t *testing.T) {
	svc, saleRepo, medicineRepo, clientRepo := buildSaleSvc()
	m := seedMedicine(medicineRepo, "Bronchodex Sirop", 10, 2, "4200")

	client := &model.Client{FirstName: "Fatou", LastName: "Sall", Gender: "F", Phone: "775432109"}
	require.NoError(t, clientRepo.Create(context.Background(), client))

	cid := client.ID.String()
	resp, err := svc.CreateSale(context.Background(), uuid.New(), dto.CreateSaleRequest{
		ClientID:      &cid,
		PaymentMethod: "cash",
		Items:         []dto.SaleItemRequest{{MedicineID: m.ID.String(), Quantity: 1}},
	})
	require.NoError(t, err)
	require.NotNil(t, resp.ClientID)
	assert.Equal(t, cid, *resp.ClientID)

	stored := saleRepo.sales[uuid.MustParse(resp.ID)]
	require.NotNil(t, stored.ClientID)
	assert.Equal(t, client.ID, *stored.ClientID)
}

func TestStats_TodayAndAllTime(t *testing.T) {
	svc, _, medicineRepo, _ := buildSaleSvc()
	m := seedMedicine(medicineRepo, "Paracétamol 500mg", 100, 10, "750")

	for i := 0; i < 3; i++ {
		_, err := svc.CreateSale(context.Background(), uuid.New(), dto.CreateSaleRequest{
			PaymentMethod: "cash",
			Items:         []dto.SaleItemRequest{{MedicineID: m.ID.String(), Quantity: 2}},
		})
		require.NoError(t, err)
	}

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.AllTime.Count)
	assert.Equal(t, "4500", stats.AllTime.Revenue.String()) // 3 × 2 × 750
}

func TestTodayAndStats_SameDayBoundary(t *testing.T) {
	svc, saleRepo, _, _ := buildSaleSvc()

	_, err := svc.ListToday(context.Background())
	require.NoError(t, err)
	_, err = svc.Stats(context.Background())
	require.NoError(t, err)

	// both endpoints must cut the day at the same local midnight
	require.NotNil(t, saleRepo.statsSince)
	assert.Equal(t, saleRepo.todayFrom, *saleRepo.statsSince)

	from := saleRepo.todayFrom
	assert.Equal(t, 0, from.Hour())
	assert.Equal(t, 0, from.Minute())
	assert.Equal(t, 0, from.Second())
	assert.Equal(t, time.Now().Location(), from.Location())
}

func TestListItems_FilterByMedicine(t *testing.T) {
	svc, _, medicineRepo, _ := buildSaleSvc()
	a := seedMedicine(medicineRepo, "Paracétamol 500mg", 100, 10, "750")
	b := seedMedicine(medicineRepo, "Amoxicilline 1g", 100, 10, "3000")

	_, err := svc.CreateSale(context.Background(), uuid.New(), dto.CreateSaleRequest{
		PaymentMethod: "cash",
		Items: []dto.SaleItemRequest{
			{MedicineID: a.ID.String(), Quantity: 1},
			{MedicineID: b.ID.String(), Quantity: 1},
		},
	})
	require.NoError(t, err)

	resp, err := svc.ListItems(context.Background(), dto.SaleItemFilter{MedicineID: a.ID.String(), Page: 1, Limit: 50})
	require.NoError(t, err)
	require.Equal(t, int64(1), resp.Total)
	assert.Equal(t, a.ID.String(), resp.Data[0].MedicineID)
}
