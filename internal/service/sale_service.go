package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/layebamba/Fadj-MA/internal/dto"
	"github.com/layebamba/Fadj-MA/internal/model"
	"github.com/layebamba/Fadj-MA/internal/repository"
	"github.com/layebamba/Fadj-MA/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaleService interface {
	CreateSale(ctx context.Context, soldBy uuid.UUID, req dto.CreateSaleRequest) (*dto.SaleResponse, error)
	GetSale(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error)
	ListSales(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error)
	ListToday(ctx context.Context) ([]dto.SaleResponse, error)
	Stats(ctx context.Context) (*dto.SaleStatsResponse, error)
	ListItems(ctx context.Context, filter dto.SaleItemFilter) (*dto.SaleItemListResponse, error)
}

type saleService struct {
	repo         repository.SaleRepository
	medicineRepo repository.MedicineRepository
	clientRepo   repository.ClientRepository
	dispatcher   *worker.Dispatcher
}

func NewSaleService(
	repo repository.SaleRepository,
	medicineRepo repository.MedicineRepository,
	clientRepo repository.ClientRepository,
	dispatcher *worker.Dispatcher,
) SaleService {
	return &saleService{
		repo:         repo,
		medicineRepo: medicineRepo,
		clientRepo:   clientRepo,
		dispatcher:   dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── CreateSale ────────────────────────────────────────────────────────────────
// Single ACID transaction:
//   1. Resolve client and medicines (pre-flight, outside TX)
//   2. BEGIN TX: nextval sale number; lock each medicine row FOR UPDATE;
//      re-validate stock inside the lock; write Sale + items; decrement stock
//   3. COMMIT
//   4. (async) enqueue low-stock alerts for medicines that crossed threshold

func (s *saleService) CreateSale(ctx context.Context, soldBy uuid.UUID, req dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	var clientID *uuid.UUID
	if req.ClientID != nil {
		cid, err := uuid.Parse(*req.ClientID)
		if err != nil {
			return nil, fmt.Errorf("client invalide: %w", err)
		}
		if _, err := s.clientRepo.FindByID(ctx, cid); err != nil {
			return nil, errors.New("Client introuvable")
		}
		clientID = &cid
	}

	// Pre-flight: resolve medicines and reject obviously impossible sales
	// before opening the transaction. The authoritative check happens again
	// under the row lock.
	type resolvedItem struct {
		medicineID uuid.UUID
		name       string
		quantity   int
		unitPrice  decimal.Decimal
	}

	resolved := make([]resolvedItem, 0, len(req.Items))
	for _, item := range req.Items {
		mid, err := uuid.Parse(item.MedicineID)
		if err != nil {
			return nil, fmt.Errorf("medicine invalide: %w", err)
		}
		m, err := s.medicineRepo.FindByID(ctx, mid)
		if err != nil {
			return nil, fmt.Errorf("Médicament %s introuvable", item.MedicineID)
		}
		if m.StockQuantity < item.Quantity {
			return nil, &InsufficientStockError{MedicineName: m.Name, Available: m.StockQuantity}
		}
		unitPrice := item.UnitPrice
		if unitPrice.IsZero() {
			// price at time of sale defaults to the catalog selling price
			unitPrice = m.SellingPrice
		}
		resolved = append(resolved, resolvedItem{
			medicineID: mid,
			name:       m.Name,
			quantity:   item.Quantity,
			unitPrice:  unitPrice,
		})
	}

	var sale model.Sale
	type alertCandidate struct {
		id        uuid.UUID
		name      string
		newStock  int
		threshold int
	}
	var alerts []alertCandidate

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		saleNumber, err := s.repo.NextSaleNumber(ctx, tx)
		if err != nil {
			return err
		}

		soldByID := soldBy
		sale = model.Sale{
			SaleNumber:    saleNumber,
			ClientID:      clientID,
			PaymentMethod: req.PaymentMethod,
			Notes:         req.Notes,
			SoldByID:      &soldByID,
		}

		total := decimal.Zero
		alerts = alerts[:0]
		for _, r := range resolved {
			// Lock the row, then re-validate: the pre-flight read is stale
			// the moment a concurrent sale commits.
			locked, err := s.medicineRepo.FindByIDForUpdateTx(tx, r.medicineID)
			if err != nil {
				return fmt.Errorf("Médicament %s introuvable", r.medicineID)
			}
			if locked.StockQuantity < r.quantity {
				return &InsufficientStockError{MedicineName: locked.Name, Available: locked.StockQuantity}
			}

			lineTotal := r.unitPrice.Mul(decimal.NewFromInt(int64(r.quantity)))
			total = total.Add(lineTotal)
			sale.Items = append(sale.Items, model.SaleItem{
				MedicineID: r.medicineID,
				Quantity:   r.quantity,
				UnitPrice:  r.unitPrice,
				TotalPrice: lineTotal,
			})

			newStock := locked.StockQuantity - r.quantity
			if newStock <= locked.MinStockAlert {
				alerts = append(alerts, alertCandidate{
					id:        locked.ID,
					name:      locked.Name,
					newStock:  newStock,
					threshold: locked.MinStockAlert,
				})
			}
		}
		sale.TotalAmount = total

		if err := s.repo.Create(ctx, tx, &sale); err != nil {
			return err
		}

		for _, r := range resolved {
			if err := s.medicineRepo.UpdateStockTx(tx, r.medicineID, -r.quantity); err != nil {
				return fmt.Errorf("erreur de décrément du stock de %s: %w", r.name, err)
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Low-stock alerts — best-effort, fire & forget
	if s.dispatcher != nil {
		for _, a := range alerts {
			_ = s.dispatcher.EnqueueStockAlert(ctx, worker.StockAlertPayload{
				MedicineID:    a.id.String(),
				MedicineName:  a.name,
				StockQuantity: a.newStock,
				MinStockAlert: a.threshold,
			})
		}
	}

	resp := saleToResponse(&sale)
	for i, r := range resolved {
		resp.Items[i].MedicineName = r.name
	}
	return resp, nil
}

func (s *saleService) GetSale(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("Vente introuvable")
	}
	return saleToResponse(sale), nil
}

func (s *saleService) ListSales(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	sales, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		data = append(data, *saleToResponse(&sales[i]))
	}
	return &dto.SaleListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// todayStart is the single day boundary shared by ListToday and Stats, so the
// two endpoints can never disagree on which sales belong to "today".
func todayStart() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func (s *saleService) ListToday(ctx context.Context) ([]dto.SaleResponse, error) {
	sales, err := s.repo.ListToday(ctx, todayStart())
	if err != nil {
		return nil, err
	}
	data := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		data = append(data, *saleToResponse(&sales[i]))
	}
	return data, nil
}

func (s *saleService) Stats(ctx context.Context) (*dto.SaleStatsResponse, error) {
	midnight := todayStart()

	todayCount, todayRevenue, err := s.repo.CountAndRevenue(ctx, &midnight)
	if err != nil {
		return nil, err
	}
	allCount, allRevenue, err := s.repo.CountAndRevenue(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &dto.SaleStatsResponse{
		Today:   dto.PeriodStats{Count: todayCount, Revenue: todayRevenue},
		AllTime: dto.PeriodStats{Count: allCount, Revenue: allRevenue},
	}, nil
}

func (s *saleService) ListItems(ctx context.Context, filter dto.SaleItemFilter) (*dto.SaleItemListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	items, total, err := s.repo.ListItems(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.SaleItemResponse, 0, len(items))
	for i := range items {
		data = append(data, saleItemToResponse(&items[i]))
	}
	return &dto.SaleItemListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func saleItemToResponse(item *model.SaleItem) dto.SaleItemResponse {
	name := ""
	if item.Medicine != nil {
		name = item.Medicine.Name
	}
	return dto.SaleItemResponse{
		ID:           item.ID.String(),
		MedicineID:   item.MedicineID.String(),
		MedicineName: name,
		Quantity:     item.Quantity,
		UnitPrice:    item.UnitPrice,
		TotalPrice:   item.TotalPrice,
	}
}

func saleToResponse(s *model.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for i := range s.Items {
		items = append(items, saleItemToResponse(&s.Items[i]))
	}

	var clientID *string
	clientName := ""
	if s.ClientID != nil {
		idStr := s.ClientID.String()
		clientID = &idStr
	}
	if s.Client != nil {
		clientName = s.Client.FullName()
	}

	var soldByID *string
	soldByName := ""
	if s.SoldByID != nil {
		idStr := s.SoldByID.String()
		soldByID = &idStr
	}
	if s.SoldBy != nil {
		soldByName = s.SoldBy.FullName()
	}

	return &dto.SaleResponse{
		ID:            s.ID.String(),
		SaleNumber:    s.SaleNumber,
		ClientID:      clientID,
		ClientName:    clientName,
		TotalAmount:   s.TotalAmount,
		PaymentMethod: s.PaymentMethod,
		Notes:         s.Notes,
		SoldByID:      soldByID,
		SoldByName:    soldByName,
		Items:         items,
		CreatedAt:     s.CreatedAt.UTC().Format(time.RFC3339),
	}
}
