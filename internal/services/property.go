package services

import (
	"context"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/propview/properties-backend/internal/domain"
	"github.com/propview/properties-backend/internal/dto"
	"github.com/propview/properties-backend/internal/pkg/logger"
	"github.com/propview/properties-backend/internal/platform/cache"
	"github.com/propview/properties-backend/internal/repos"
)

const propertiesGenCounter = "properties:gen"

type PropertyService interface {
	List(ctx context.Context, filter domain.PropertyFilter) ([]*domain.Property, error)
	Get(ctx context.Context, id string) (*domain.Property, error)
	// Create persists a new property after verifying the referenced owner
	// exists. image, when non-nil, was already validated by the caller.
	Create(ctx context.Context, req dto.PropertyCreateRequest, image []byte) (*domain.Property, error)
	Update(ctx context.Context, id string, req dto.PropertyUpdateRequest, image []byte) (*domain.Property, error)
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Property, error)
	Statistics(ctx context.Context) (*domain.PropertyStats, error)
}

type propertyService struct {
	log          *logger.Logger
	propertyRepo repos.PropertyRepo
	ownerRepo    repos.OwnerRepo
	cache        *cache.Service
}

func NewPropertyService(log *logger.Logger, propertyRepo repos.PropertyRepo, ownerRepo repos.OwnerRepo, cacheService *cache.Service) PropertyService {
	serviceLog := log.With("service", "PropertyService")
	return &propertyService{
		log:          serviceLog,
		propertyRepo: propertyRepo,
		ownerRepo:    ownerRepo,
		cache:        cacheService,
	}
}

func parsePropertyID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, notFoundf("Property with ID %s not found", id)
	}
	return oid, nil
}

// requireOwner enforces the referential guard before any property write.
func (ps *propertyService) requireOwner(ctx context.Context, ownerID primitive.ObjectID, missing func(format string, args ...any) error) error {
	exists, err := ps.ownerRepo.Exists(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("check owner existence: %w", err)
	}
	if !exists {
		return missing("Owner with ID %s does not exist", ownerID.Hex())
	}
	return nil
}

func (ps *propertyService) listCacheKey(ctx context.Context, filter domain.PropertyFilter) string {
	gen := ps.cache.Generation(ctx, propertiesGenCounter)
	params := map[string]string{
		"name":    filter.Name,
		"address": filter.Address,
	}
	if filter.MinPrice != nil {
		params["minPrice"] = strconv.FormatFloat(*filter.MinPrice, 'f', -1, 64)
	}
	if filter.MaxPrice != nil {
		params["maxPrice"] = strconv.FormatFloat(*filter.MaxPrice, 'f', -1, 64)
	}
	return cache.QueryKey(fmt.Sprintf("properties:list:%d", gen), params)
}

func (ps *propertyService) List(ctx context.Context, filter domain.PropertyFilter) ([]*domain.Property, error) {
	key := ps.listCacheKey(ctx, filter)
	cached := []*domain.Property{}
	if ps.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	properties, err := ps.propertyRepo.GetAllWithFilters(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("fetch properties: %w", err)
	}
	ps.cache.Set(ctx, key, properties)
	return properties, nil
}

func (ps *propertyService) Get(ctx context.Context, id string) (*domain.Property, error) {
	oid, err := parsePropertyID(id)
	if err != nil {
		return nil, err
	}
	property, err := ps.propertyRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("fetch property: %w", err)
	}
	if property == nil {
		return nil, notFoundf("Property with ID %s not found", id)
	}
	return property, nil
}

func (ps *propertyService) Create(ctx context.Context, req dto.PropertyCreateRequest, image []byte) (*domain.Property, error) {
	ownerID, err := primitive.ObjectIDFromHex(req.IDOwner)
	if err != nil {
		return nil, invalidf("Owner ID %s is not a valid identifier", req.IDOwner)
	}
	// Bad owner on create is a validation failure (400), not a 404: the
	// missing resource is referenced by the body, not addressed by the path.
	if err := ps.requireOwner(ctx, ownerID, invalidf); err != nil {
		return nil, err
	}

	property := &domain.Property{
		OwnerID: ownerID,
		Name:    req.Name,
		Address: req.Address,
		Price:   req.Price,
		Image:   image,
	}
	created, err := ps.propertyRepo.Add(ctx, property)
	if err != nil {
		return nil, fmt.Errorf("create property: %w", err)
	}
	ps.cache.Bump(ctx, propertiesGenCounter)
	ps.log.Info("Property created", "property_id", created.ID.Hex(), "owner_id", req.IDOwner)
	return created, nil
}

func (ps *propertyService) Update(ctx context.Context, id string, req dto.PropertyUpdateRequest, image []byte) (*domain.Property, error) {
	oid, err := parsePropertyID(id)
	if err != nil {
		return nil, err
	}
	property, err := ps.propertyRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("fetch property: %w", err)
	}
	if property == nil {
		return nil, notFoundf("Property with ID %s not found", id)
	}

	// Field-level merge: absent fields keep their stored value.
	if req.IDOwner != nil {
		ownerID, err := primitive.ObjectIDFromHex(*req.IDOwner)
		if err != nil {
			return nil, notFoundf("Owner with ID %s does not exist", *req.IDOwner)
		}
		if err := ps.requireOwner(ctx, ownerID, notFoundf); err != nil {
			return nil, err
		}
		property.OwnerID = ownerID
	}
	if req.Name != nil {
		property.Name = *req.Name
	}
	if req.Address != nil {
		property.Address = *req.Address
	}
	if req.Price != nil {
		property.Price = *req.Price
	}
	if image != nil {
		property.Image = image
	}

	updated, err := ps.propertyRepo.Update(ctx, property)
	if err != nil {
		return nil, fmt.Errorf("update property: %w", err)
	}
	ps.cache.Bump(ctx, propertiesGenCounter)
	return updated, nil
}

func (ps *propertyService) Delete(ctx context.Context, id string) error {
	oid, err := parsePropertyID(id)
	if err != nil {
		return err
	}
	property, err := ps.propertyRepo.GetByID(ctx, oid)
	if err != nil {
		return fmt.Errorf("fetch property: %w", err)
	}
	if property == nil {
		return notFoundf("Property with ID %s not found", id)
	}

	deleted, err := ps.propertyRepo.Delete(ctx, oid)
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	if !deleted {
		return failedf("Failed to delete property with ID %s", id)
	}
	ps.cache.Bump(ctx, propertiesGenCounter)
	ps.log.Info("Property deleted", "property_id", id)
	return nil
}

func (ps *propertyService) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Property, error) {
	oid, err := parseOwnerID(ownerID)
	if err != nil {
		return nil, err
	}
	if err := ps.requireOwner(ctx, oid, notFoundf); err != nil {
		return nil, err
	}
	properties, err := ps.propertyRepo.GetByOwner(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("fetch properties by owner: %w", err)
	}
	return properties, nil
}

func (ps *propertyService) Statistics(ctx context.Context) (*domain.PropertyStats, error) {
	gen := ps.cache.Generation(ctx, propertiesGenCounter)
	key := fmt.Sprintf("properties:stats:%d", gen)
	cached := &domain.PropertyStats{}
	if ps.cache.Get(ctx, key, cached) {
		return cached, nil
	}

	stats, err := ps.propertyRepo.Statistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("compute statistics: %w", err)
	}
	ps.cache.Set(ctx, key, stats)
	return stats, nil
}
