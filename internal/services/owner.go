package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/propview/properties-backend/internal/domain"
	"github.com/propview/properties-backend/internal/dto"
	"github.com/propview/properties-backend/internal/pkg/logger"
	"github.com/propview/properties-backend/internal/repos"
)

type OwnerService interface {
	List(ctx context.Context) ([]*domain.Owner, error)
	Get(ctx context.Context, id string) (*domain.Owner, error)
	Create(ctx context.Context, req dto.OwnerCreateRequest) (*domain.Owner, error)
	Update(ctx context.Context, id string, req dto.OwnerUpdateRequest) (*domain.Owner, error)
	Delete(ctx context.Context, id string) error
}

type ownerService struct {
	log          *logger.Logger
	ownerRepo    repos.OwnerRepo
	propertyRepo repos.PropertyRepo
}

func NewOwnerService(log *logger.Logger, ownerRepo repos.OwnerRepo, propertyRepo repos.PropertyRepo) OwnerService {
	serviceLog := log.With("service", "OwnerService")
	return &ownerService{
		log:          serviceLog,
		ownerRepo:    ownerRepo,
		propertyRepo: propertyRepo,
	}
}

// parseOwnerID maps a malformed hex id to not-found: an id that cannot be an
// ObjectID cannot resolve to any owner.
func parseOwnerID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, notFoundf("Owner with ID %s not found", id)
	}
	return oid, nil
}

func (os *ownerService) List(ctx context.Context) ([]*domain.Owner, error) {
	owners, err := os.ownerRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch owners: %w", err)
	}
	return owners, nil
}

func (os *ownerService) Get(ctx context.Context, id string) (*domain.Owner, error) {
	oid, err := parseOwnerID(id)
	if err != nil {
		return nil, err
	}
	owner, err := os.ownerRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("fetch owner: %w", err)
	}
	if owner == nil {
		return nil, notFoundf("Owner with ID %s not found", id)
	}
	return owner, nil
}

func (os *ownerService) Create(ctx context.Context, req dto.OwnerCreateRequest) (*domain.Owner, error) {
	exists, err := os.ownerRepo.ExistsByNameAddress(ctx, req.Name, req.Address, nil)
	if err != nil {
		return nil, fmt.Errorf("check owner uniqueness: %w", err)
	}
	if exists {
		return nil, conflictf("Owner with name %q and address %q already exists", req.Name, req.Address)
	}

	owner, err := os.ownerRepo.Add(ctx, req.ToEntity())
	if err != nil {
		return nil, fmt.Errorf("create owner: %w", err)
	}
	os.log.Info("Owner created", "owner_id", owner.ID.Hex())
	return owner, nil
}

func (os *ownerService) Update(ctx context.Context, id string, req dto.OwnerUpdateRequest) (*domain.Owner, error) {
	oid, err := parseOwnerID(id)
	if err != nil {
		return nil, err
	}
	owner, err := os.ownerRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("fetch owner: %w", err)
	}
	if owner == nil {
		return nil, notFoundf("Owner with ID %s not found", id)
	}

	// Field-level merge: absent fields keep their stored value.
	changed := false
	if req.Name != nil && *req.Name != owner.Name {
		owner.Name = *req.Name
		changed = true
	}
	if req.Address != nil && *req.Address != owner.Address {
		owner.Address = *req.Address
		changed = true
	}

	if changed {
		exists, err := os.ownerRepo.ExistsByNameAddress(ctx, owner.Name, owner.Address, &oid)
		if err != nil {
			return nil, fmt.Errorf("check owner uniqueness: %w", err)
		}
		if exists {
			return nil, conflictf("Owner with name %q and address %q already exists", owner.Name, owner.Address)
		}
	}

	updated, err := os.ownerRepo.Update(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("update owner: %w", err)
	}
	return updated, nil
}

// Delete walks the terminal states of the deletion guard: not-found,
// has-dependents (conflict), delete-failed, deleted. The existence check and
// the delete are separate store calls, so two racing requests can observe
// different states; that read-then-write behavior is the documented contract.
func (os *ownerService) Delete(ctx context.Context, id string) error {
	oid, err := parseOwnerID(id)
	if err != nil {
		return err
	}
	owner, err := os.ownerRepo.GetByID(ctx, oid)
	if err != nil {
		return fmt.Errorf("fetch owner: %w", err)
	}
	if owner == nil {
		return notFoundf("Owner with ID %s not found", id)
	}
	if len(owner.Properties) > 0 {
		return conflictf("Cannot delete owner because they have associated properties")
	}

	deleted, err := os.ownerRepo.Delete(ctx, oid)
	if err != nil {
		return fmt.Errorf("delete owner: %w", err)
	}
	if !deleted {
		return failedf("Could not delete owner with ID %s", id)
	}
	os.log.Info("Owner deleted", "owner_id", id)
	return nil
}
