package dto

import "github.com/propview/properties-backend/internal/domain"

// OwnerCreateRequest is the inbound create shape. Identifiers are never
// accepted from clients; the server assigns them.
type OwnerCreateRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Address string `json:"address" binding:"required,max=200"`
}

// OwnerUpdateRequest is a partial-merge update: nil fields leave the stored
// value unchanged.
type OwnerUpdateRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=100"`
	Address *string `json:"address" binding:"omitempty,min=1,max=200"`
}

type OwnerResponse struct {
	IDOwner    string             `json:"idOwner"`
	Name       string             `json:"name"`
	Address    string             `json:"address"`
	Properties []PropertyResponse `json:"properties"`
}

func (r OwnerCreateRequest) ToEntity() *domain.Owner {
	return &domain.Owner{
		Name:    r.Name,
		Address: r.Address,
	}
}

// OwnerToDTO copies every field outward. Properties is always a non-nil
// slice, even when the back-reference was not loaded.
func OwnerToDTO(o *domain.Owner) OwnerResponse {
	properties := make([]PropertyResponse, 0, len(o.Properties))
	for _, p := range o.Properties {
		properties = append(properties, PropertyToDTO(p))
	}
	return OwnerResponse{
		IDOwner:    o.ID.Hex(),
		Name:       o.Name,
		Address:    o.Address,
		Properties: properties,
	}
}

func OwnersToDTO(owners []*domain.Owner) []OwnerResponse {
	out := make([]OwnerResponse, 0, len(owners))
	for _, o := range owners {
		out = append(out, OwnerToDTO(o))
	}
	return out
}
