package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/propview/properties-backend/internal/domain"
	"github.com/propview/properties-backend/internal/dto"
	"github.com/propview/properties-backend/internal/services"
)

const maxImageBytes = 5 << 20

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
}

type PropertyHandler struct {
	propertyService services.PropertyService
}

func NewPropertyHandler(propertyService services.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// GET /api/properties?name=&address=&minPrice=&maxPrice=
func (ph *PropertyHandler) List(c *gin.Context) {
	filter := domain.PropertyFilter{
		Name:    strings.TrimSpace(c.Query("name")),
		Address: strings.TrimSpace(c.Query("address")),
	}
	if v := c.Query("minPrice"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": "minPrice must be a number"})
			return
		}
		filter.MinPrice = &price
	}
	if v := c.Query("maxPrice"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": "maxPrice must be a number"})
			return
		}
		filter.MaxPrice = &price
	}

	properties, err := ph.propertyService.List(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.PropertiesToDTO(properties))
}

// GET /api/properties/statistics
func (ph *PropertyHandler) Statistics(c *gin.Context) {
	stats, err := ph.propertyService.Statistics(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/properties/by-owner/:idOwner
func (ph *PropertyHandler) ListByOwner(c *gin.Context) {
	properties, err := ph.propertyService.ListByOwner(c.Request.Context(), c.Param("idOwner"))
	if err != nil {
		respondServiceError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.PropertiesToDTO(properties))
}

// GET /api/properties/:id
func (ph *PropertyHandler) Get(c *gin.Context) {
	property, err := ph.propertyService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.PropertyToDTO(property))
}

// POST /api/properties (multipart/form-data)
// fields: idOwner, name, address, price; optional file field "imageFile"
func (ph *PropertyHandler) Create(c *gin.Context) {
	var req dto.PropertyCreateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}
	image, err := readImageFile(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_image", "detail": err.Error()})
		return
	}

	property, err := ph.propertyService.Create(c.Request.Context(), req, image)
	if err != nil {
		respondServiceError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusCreated, dto.PropertyToDTO(property))
}

// PUT /api/properties/:id (multipart/form-data)
// partial merge: absent fields keep their stored value
func (ph *PropertyHandler) Update(c *gin.Context) {
	var req dto.PropertyUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}
	image, err := readImageFile(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_image", "detail": err.Error()})
		return
	}

	property, err := ph.propertyService.Update(c.Request.Context(), c.Param("id"), req, image)
	if err != nil {
		respondServiceError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.PropertyToDTO(property))
}

// DELETE /api/properties/:id
func (ph *PropertyHandler) Delete(c *gin.Context) {
	if err := ph.propertyService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, http.StatusBadRequest)
		return
	}
	c.Status(http.StatusNoContent)
}

// readImageFile validates and reads the optional "imageFile" part. Returns
// (nil, nil) when no file was sent.
func readImageFile(c *gin.Context) ([]byte, error) {
	fh, err := c.FormFile("imageFile")
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		// Non-multipart requests have no file part.
		if strings.Contains(err.Error(), "not multipart") {
			return nil, nil
		}
		return nil, err
	}
	if fh.Size == 0 {
		return nil, nil
	}

	contentType := strings.ToLower(fh.Header.Get("Content-Type"))
	if _, ok := allowedImageTypes[contentType]; !ok {
		return nil, fmt.Errorf("Only JPEG, JPG and PNG images are allowed")
	}
	if fh.Size > maxImageBytes {
		return nil, fmt.Errorf("Image size must be less than 5MB")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, maxImageBytes+1))
	if err != nil {
		return nil, err
	}
	if len(raw) > maxImageBytes {
		return nil, fmt.Errorf("Image size must be less than 5MB")
	}
	return raw, nil
}
