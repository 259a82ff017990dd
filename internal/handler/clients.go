package handler

import (
	"net/http"

	"github.com/layebamba/Fadj-MA/internal/apierror"
	"github.com/layebamba/Fadj-MA/internal/dto"
	"github.com/layebamba/Fadj-MA/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClientsHandler struct{ svc service.ClientService }

func NewClientsHandler(svc service.ClientService) *ClientsHandler { return &ClientsHandler{svc: svc} }

// Create godoc
// @Summary Créer un client
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateClientRequest true "Client"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/clients [post]
func (h *ClientsHandler) Create(c *gin.Context) {
	var req dto.CreateClientRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary Lister les clients
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param search query string false "Nom ou téléphone"
// @Param page query int false "Page (défaut 1)"
// @Param limit query int false "Par page (défaut 50)"
// @Success 200 {object} dto.ClientListResponse
// @Router /v1/clients [get]
func (h *ClientsHandler) List(c *gin.Context) {
	var filter dto.ClientFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors de la liste des clients"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClientsHandler) GetByID(c *gin.Context) {
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

func (h *ClientsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalide"))
		return
	}
	var req dto.UpdateClientRequest
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

func (h *ClientsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalide"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
