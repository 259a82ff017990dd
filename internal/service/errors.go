package service

import "fmt"

// InsufficientStockError rejects a sale whose quantity exceeds the available
// stock of a medicine. It is surfaced to clients as a field error on
// "quantity".
type InsufficientStockError struct {
	MedicineName string
	Available    int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Stock insuffisant pour %s. Disponible: %d", e.MedicineName, e.Available)
}
