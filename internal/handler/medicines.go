package handler

import (
	"net/http"

	"github.com/layebamba/Fadj-MA/internal/apierror"
	"github.com/layebamba/Fadj-MA/internal/dto"
	"github.com/layebamba/Fadj-MA/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MedicinesHandler struct{ svc service.MedicineService }

func NewMedicinesHandler(svc service.MedicineService) *MedicinesHandler {
	return &MedicinesHandler{svc: svc}
}

// Create godoc
// @Summary Créer un médicament
// @Description L'identifiant métier (medicine_id) est généré automatiquement s'il est absent.
// @Tags medicaments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateMedicineRequest true "Médicament"
// @Success 201 {object} dto.MedicineResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/medicines [post]
func (h *MedicinesHandler) Create(c *gin.Context) {
	var req dto.CreateMedicineRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary Lister les médicaments
// @Tags medicaments
// @Produce json
// @Security BearerAuth
// @Param search query string false "Nom ou identifiant"
// @Param group query string false "UUID du groupe"
// @Param supplier query string false "UUID du fournisseur"
// @Param ordering query string false "name | -name | stock_quantity | -stock_quantity | expiration_date | -expiration_date"
// @Param page query int false "Page (défaut 1)"
// @Param limit query int false "Par page (défaut 50)"
// @Success 200 {object} dto.MedicineListResponse
// @Router /v1/medicines [get]
func (h *MedicinesHandler) List(c *gin.Context) {
	var filter dto.MedicineFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors de la liste des médicaments"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MedicinesHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalide"))
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MedicinesHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalide"))
		return
	}
	var req dto.UpdateMedicineRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete refuses medicines that already appear on a sale (history protection).
func (h *MedicinesHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalide"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MedicinesHandler) LowStock(c *gin.Context) {
	resp, err := h.svc.LowStock(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors de la liste des stocks faibles"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MedicinesHandler) ExpiringSoon(c *gin.Context) {
	resp, err := h.svc.ExpiringSoon(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors de la liste des expirations proches"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MedicinesHandler) Expired(c *gin.Context) {
	resp, err := h.svc.Expired(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors de la liste des médicaments expirés"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
