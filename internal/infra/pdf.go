package infra

// pdf.go — Dashboard report generation using go-pdf/fpdf.
// Produces an A4 document with:
//   - Title and generation date
//   - General statistics table (medicine / group / supplier / client counts)
//   - Finances table (revenue, sale count, quantity sold)
//   - Top-5 medicines by stock
//   - Footer

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// DashboardStats is the read-only aggregate snapshot rendered in the report.
type DashboardStats struct {
	MedicinesCount     int64
	MedicinesAvailable int64
	LowStockCount      int64
	GroupsCount        int64
	SuppliersCount     int64
	ClientsCount       int64

	TotalRevenue      decimal.Decimal
	SalesCount        int64
	TotalQuantitySold int64
}

// TopMedicine is one row of the top-5-by-stock table.
type TopMedicine struct {
	Name         string
	Stock        int
	SellingPrice decimal.Decimal
}

const (
	reportColLabel = 110.0
	reportColValue = 60.0
	reportRowH     = 8.0
)

// GenerateDashboardPDF renders the dashboard snapshot to w.
func GenerateDashboardPDF(w io.Writer, stats DashboardStats, top []TopMedicine) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// ── Title ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(44, 62, 80)
	pdf.CellFormat(0, 12, "Rapport du Tableau de bord - Pharmacie Fadj-Ma", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(128, 128, 128)
	generated := fmt.Sprintf("Généré le %s à %s", time.Now().Format("02/01/2006"), time.Now().Format("15:04"))
	pdf.CellFormat(0, 6, generated, "", 1, "C", false, 0, "")
	pdf.Ln(8)

	// ── Section 1: general statistics ────────────────────────────────────────
	sectionHeader(pdf, "Statistiques Générales", 44, 62, 80)
	statRows := [][2]string{
		{"Total médicaments", fmt.Sprintf("%d", stats.MedicinesCount)},
		{"Médicaments disponibles", fmt.Sprintf("%d", stats.MedicinesAvailable)},
		{"Pénurie de médicaments", fmt.Sprintf("%d", stats.LowStockCount)},
		{"Groupes de médicaments", fmt.Sprintf("%d", stats.GroupsCount)},
		{"Fournisseurs", fmt.Sprintf("%d", stats.SuppliersCount)},
		{"Clients", fmt.Sprintf("%d", stats.ClientsCount)},
	}
	statsTable(pdf, statRows)
	pdf.Ln(8)

	// ── Section 2: finances ──────────────────────────────────────────────────
	sectionHeader(pdf, "Finances", 243, 156, 18)
	financeRows := [][2]string{
		{"Revenu total", stats.TotalRevenue.StringFixed(0) + " FCFA"},
		{"Nombre de ventes", fmt.Sprintf("%d", stats.SalesCount)},
		{"Quantité vendue", fmt.Sprintf("%d", stats.TotalQuantitySold)},
	}
	statsTable(pdf, financeRows)
	pdf.Ln(8)

	// ── Section 3: top 5 by stock ────────────────────────────────────────────
	sectionHeader(pdf, "Top 5 Médicaments (Stock le plus élevé)", 52, 152, 219)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(52, 152, 219)
	pdf.SetTextColor(245, 245, 245)
	pdf.CellFormat(90, reportRowH, "Nom", "1", 0, "L", true, 0, "")
	pdf.CellFormat(35, reportRowH, "Stock", "1", 0, "L", true, 0, "")
	pdf.CellFormat(45, reportRowH, "Prix de vente", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for i, med := range top {
		fill := i%2 == 1
		pdf.SetFillColor(211, 211, 211)
		pdf.CellFormat(90, reportRowH, med.Name, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(35, reportRowH, fmt.Sprintf("%d", med.Stock), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(45, reportRowH, med.SellingPrice.StringFixed(0)+" FCFA", "1", 1, "L", fill, 0, "")
	}

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(15)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 5, "Propulsé par Red Team © 2024 - Pharmacie Fadj-Ma", "", 1, "C", false, 0, "")

	return pdf.Output(w)
}

func sectionHeader(pdf *fpdf.Fpdf, title string, r, g, b int) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(r, g, b)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.SetTextColor(0, 0, 0)
}

func statsTable(pdf *fpdf.Fpdf, rows [][2]string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(44, 62, 80)
	pdf.SetTextColor(245, 245, 245)
	pdf.CellFormat(reportColLabel, reportRowH, "Indicateur", "1", 0, "L", true, 0, "")
	pdf.CellFormat(reportColValue, reportRowH, "Valeur", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for i, row := range rows {
		fill := i%2 == 1
		pdf.SetFillColor(211, 211, 211)
		pdf.CellFormat(reportColLabel, reportRowH, row[0], "1", 0, "L", fill, 0, "")
		pdf.CellFormat(reportColValue, reportRowH, row[1], "1", 1, "L", fill, 0, "")
	}
}
