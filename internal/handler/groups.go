package handler

import (
	"net/http"

	"github.com/layebamba/Fadj-MA/internal/apierror"
	"github.com/layebamba/Fadj-MA/internal/dto"
	"github.com/layebamba/Fadj-MA/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GroupsHandler struct{ svc service.GroupService }

func NewGroupsHandler(svc service.GroupService) *GroupsHandler { return &GroupsHandler{svc: svc} }

// Create godoc
// @Summary Créer un groupe de médicaments
// @Tags groupes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateGroupRequest true "Groupe"
// @Success 201 {object} dto.GroupResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/medicine-groups [post]
func (h *GroupsHandler) Create(c *gin.Context) {
	var req dto.CreateGroupRequest
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

func (h *GroupsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors de la liste des groupes"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GroupsHandler) GetByID(c *gin.Context) {
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

func (h *GroupsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalide"))
		return
	}
	var req dto.UpdateGroupRequest
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

func (h *GroupsHandler) Delete(c *gin.Context) {
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
