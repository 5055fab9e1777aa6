package dto

import "github.com/propview/properties-backend/internal/domain"

// PropertyCreateRequest binds the multipart form fields of the create
// endpoint. The image file travels separately.
type PropertyCreateRequest struct {
	IDOwner string  `form:"idOwner" binding:"required,mongodb"`
	Name    string  `form:"name" binding:"required,max=100"`
	Address string  `form:"address" binding:"required,max=200"`
	Price   float64 `form:"price" binding:"required,gt=0"`
}

// PropertyUpdateRequest is a partial-merge update: nil fields leave the
// stored value unchanged.
type PropertyUpdateRequest struct {
	IDOwner *string  `form:"idOwner" binding:"omitempty,mongodb"`
	Name    *string  `form:"name" binding:"omitempty,min=1,max=100"`
	Address *string  `form:"address" binding:"omitempty,min=1,max=200"`
	Price   *float64 `form:"price" binding:"omitempty,gt=0"`
}

// PropertyResponse is the outward shape. Image bytes marshal to base64 in
// JSON and are omitted when the property has none.
type PropertyResponse struct {
	IDProperty string  `json:"idProperty"`
	IDOwner    string  `json:"idOwner"`
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	Price      float64 `json:"price"`
	Image      []byte  `json:"image,omitempty"`
}

func PropertyToDTO(p *domain.Property) PropertyResponse {
	return PropertyResponse{
		IDProperty: p.ID.Hex(),
		IDOwner:    p.OwnerID.Hex(),
		Name:       p.Name,
		Address:    p.Address,
		Price:      p.Price,
		Image:      p.Image,
	}
}

func PropertiesToDTO(properties []*domain.Property) []PropertyResponse {
	out := make([]PropertyResponse, 0, len(properties))
	for _, p := range properties {
		out = append(out, PropertyToDTO(p))
	}
	return out
}
