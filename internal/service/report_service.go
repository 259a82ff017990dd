package service

import (
	"context"
	"io"

	"github.com/layebamba/Fadj-MA/internal/infra"
	"github.com/layebamba/Fadj-MA/internal/repository"
)

// ReportService aggregates dashboard figures and renders them as a PDF.
type ReportService interface {
	DashboardPDF(ctx context.Context, w io.Writer) error
}

type reportService struct {
	medicineRepo repository.MedicineRepository
	groupRepo    repository.GroupRepository
	supplierRepo repository.SupplierRepository
	clientRepo   repository.ClientRepository
	saleRepo     repository.SaleRepository
}

func NewReportService(
	medicineRepo repository.MedicineRepository,
	groupRepo repository.GroupRepository,
	supplierRepo repository.SupplierRepository,
	clientRepo repository.ClientRepository,
	saleRepo repository.SaleRepository,
) ReportService {
	return &reportService{
		medicineRepo: medicineRepo,
		groupRepo:    groupRepo,
		supplierRepo: supplierRepo,
		clientRepo:   clientRepo,
		saleRepo:     saleRepo,
	}
}

func (s *reportService) DashboardPDF(ctx context.Context, w io.Writer) error {
	var stats infra.DashboardStats
	var err error

	if stats.MedicinesCount, err = s.medicineRepo.Count(ctx); err != nil {
		return err
	}
	if stats.MedicinesAvailable, err = s.medicineRepo.CountAvailable(ctx); err != nil {
		return err
	}
	if stats.LowStockCount, err = s.medicineRepo.CountLowStock(ctx); err != nil {
		return err
	}
	if stats.GroupsCount, err = s.groupRepo.Count(ctx); err != nil {
		return err
	}
	if stats.SuppliersCount, err = s.supplierRepo.Count(ctx); err != nil {
		return err
	}
	if stats.ClientsCount, err = s.clientRepo.Count(ctx); err != nil {
		return err
	}
	if stats.SalesCount, stats.TotalRevenue, err = s.saleRepo.CountAndRevenue(ctx, nil); err != nil {
		return err
	}
	if stats.TotalQuantitySold, err = s.saleRepo.TotalQuantitySold(ctx); err != nil {
		return err
	}

	medicines, err := s.medicineRepo.TopByStock(ctx, 5)
	if err != nil {
		return err
	}
	top := make([]infra.TopMedicine, 0, len(medicines))
	for i := range medicines {
		top = append(top, infra.TopMedicine{
			Name:         medicines[i].Name,
			Stock:        medicines[i].StockQuantity,
			SellingPrice: medicines[i].SellingPrice,
		})
	}

	return infra.GenerateDashboardPDF(w, stats, top)
}
