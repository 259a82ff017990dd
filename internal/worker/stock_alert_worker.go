package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/layebamba/Fadj-MA/internal/infra"

	"github.com/rs/zerolog/log"
)

// StockAlertWorker mails the pharmacist when a sale drops a medicine to or
// below its alert threshold.
type StockAlertWorker struct {
	mailer *infra.Mailer
	to     string
}

func NewStockAlertWorker(mailer *infra.Mailer, to string) *StockAlertWorker {
	return &StockAlertWorker{mailer: mailer, to: to}
}

func (w *StockAlertWorker) Handle(ctx context.Context, raw json.RawMessage) error {
	var p StockAlertPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("stock_alert: decode payload: %w", err)
	}

	subject := fmt.Sprintf("Alerte stock — %s", p.MedicineName)
	body := fmt.Sprintf(
		"Le médicament %s (%s) est passé sous son seuil d'alerte.\n\nStock actuel: %d\nSeuil d'alerte: %d\n\nPensez à réapprovisionner.",
		p.MedicineName, p.MedicineID, p.StockQuantity, p.MinStockAlert,
	)

	if err := w.mailer.Send(w.to, subject, body); err != nil {
		return fmt.Errorf("stock_alert: send mail: %w", err)
	}

	log.Info().
		Str("medicine_id", p.MedicineID).
		Int("stock", p.StockQuantity).
		Msg("stock alert mail sent")
	return nil
}
