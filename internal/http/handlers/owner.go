package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/propview/properties-backend/internal/dto"
	"github.com/propview/properties-backend/internal/services"
)

type OwnerHandler struct {
	ownerService services.OwnerService
}

func NewOwnerHandler(ownerService services.OwnerService) *OwnerHandler {
	return &OwnerHandler{ownerService: ownerService}
}

// GET /api/owners
func (oh *OwnerHandler) List(c *gin.Context) {
	owners, err := oh.ownerService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.OwnersToDTO(owners))
}

// GET /api/owners/:id
func (oh *OwnerHandler) Get(c *gin.Context) {
	owner, err := oh.ownerService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.OwnerToDTO(owner))
}

// POST /api/owners
// body: { "name": "...", "address": "..." }
func (oh *OwnerHandler) Create(c *gin.Context) {
	var req dto.OwnerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}

	owner, err := oh.ownerService.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusCreated, dto.OwnerToDTO(owner))
}

// PUT /api/owners/:id
// body: partial merge, absent fields keep their stored value
func (oh *OwnerHandler) Update(c *gin.Context) {
	var req dto.OwnerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}

	owner, err := oh.ownerService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.OwnerToDTO(owner))
}

// DELETE /api/owners/:id
func (oh *OwnerHandler) Delete(c *gin.Context) {
	if err := oh.ownerService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}
