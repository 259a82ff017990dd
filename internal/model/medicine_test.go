package model

import (
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsLowStock_Boundary(t *testing.T) {
	m := &Medicine{StockQuantity: 5, MinStockAlert: 5}
	assert.True(t, m.IsLowStock(), "stock equal to threshold is low")

	m.StockQuantity = 6
	assert.False(t, m.IsLowStock())

	m.StockQuantity = 0
	assert.True(t, m.IsLowStock())
}

func TestProfitMargin(t *testing.T) {
	m := &Medicine{
		PurchasePrice: decimal.RequireFromString("500"),
		SellingPrice:  decimal.RequireFromString("750"),
	}
	// (750-500)/500 × 100 = 50%
	assert.Equal(t, "50", m.ProfitMargin().String())

	m.PurchasePrice = decimal.RequireFromString("3000")
	m.SellingPrice = decimal.RequireFromString("4200")
	assert.Equal(t, "40", m.ProfitMargin().String())
}

func TestProfitMargin_ZeroPurchasePrice(t *testing.T) {
	m := &Medicine{
		PurchasePrice: decimal.Zero,
		SellingPrice:  decimal.RequireFromString("1000"),
	}
	assert.True(t, m.ProfitMargin().IsZero())
}

func TestGenerateMedicineID_Format(t *testing.T) {
	id := GenerateMedicineID()
	assert.True(t, strings.HasPrefix(id, "D06ID"))
	assert.Len(t, id, 14) // D06ID + 6 digits + 3 digits
}

func TestGenerateMedicineID_UniqueUnderRapidCalls(t *testing.T) {
	const n = 500
	var mu sync.Mutex
	seen := make(map[string]bool, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := GenerateMedicineID()
			mu.Lock()
			seen[id] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, n, "rapid successive IDs must not collide")
}
