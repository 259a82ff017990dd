package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/layebamba/Fadj-MA/internal/apierror"
	"github.com/layebamba/Fadj-MA/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

// Dashboard godoc
// @Summary Télécharger le rapport PDF du tableau de bord
// @Tags rapports
// @Produce application/pdf
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 500 {object} apierror.APIError
// @Router /v1/reports/dashboard [get]
func (h *ReportsHandler) Dashboard(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.svc.DashboardPDF(c.Request.Context(), &buf); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors de la génération du rapport"))
		return
	}

	filename := fmt.Sprintf("rapport_dashboard_%s.pdf", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
