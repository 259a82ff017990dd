package handler

import (
	"errors"
	"net/http"

	"github.com/layebamba/Fadj-MA/internal/apierror"
	"github.com/layebamba/Fadj-MA/internal/dto"
	"github.com/layebamba/Fadj-MA/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SalesHandler struct{ svc service.SaleService }

func NewSalesHandler(svc service.SaleService) *SalesHandler { return &SalesHandler{svc: svc} }

// Create godoc
// @Summary Enregistrer une vente
// @Description Crée une vente ACID: vérifie et décrémente le stock sous verrou, numérote via séquence, déclenche les alertes de stock asynchrones.
// @Tags ventes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateSaleRequest true "Détail de la vente"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/sales [post]
func (h *SalesHandler) Create(c *gin.Context) {
	var req dto.CreateSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.CreateSale(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		var stockErr *service.InsufficientStockError
		if errors.As(err, &stockErr) {
			c.JSON(http.StatusBadRequest, apierror.NewValidation(map[string]string{
				"quantity": stockErr.Error(),
			}))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary Lister les ventes
// @Tags ventes
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date YYYY-MM-DD"
// @Param client_id query string false "UUID du client"
// @Param payment_method query string false "cash | card | mobile | check"
// @Param page query int false "Page (défaut 1)"
// @Param limit query int false "Par page (défaut 50)"
// @Success 200 {object} dto.SaleListResponse
// @Router /v1/sales [get]
func (h *SalesHandler) List(c *gin.Context) {
	var filter dto.SaleFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.ListSales(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors de la liste des ventes"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SalesHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalide"))
		return
	}
	resp, err := h.svc.GetSale(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SalesHandler) Today(c *gin.Context) {
	resp, err := h.svc.ListToday(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors de la liste des ventes du jour"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SalesHandler) Stats(c *gin.Context) {
	resp, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors du calcul des statistiques"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Sale items (read-only) ───────────────────────────────────────────────────

type SaleItemsHandler struct{ svc service.SaleService }

func NewSaleItemsHandler(svc service.SaleService) *SaleItemsHandler {
	return &SaleItemsHandler{svc: svc}
}

func (h *SaleItemsHandler) List(c *gin.Context) {
	var filter dto.SaleItemFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.ListItems(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors de la liste des lignes de vente"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ByMedicine lists every sale line of a given medicine (medicine_id query param).
func (h *SaleItemsHandler) ByMedicine(c *gin.Context) {
	var filter dto.SaleItemFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	if filter.MedicineID == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Paramètre medicine_id requis"))
		return
	}
	resp, err := h.svc.ListItems(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors de la liste des lignes de vente"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
