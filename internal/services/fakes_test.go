package services

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/propview/properties-backend/internal/domain"
	"github.com/propview/properties-backend/internal/pkg/logger"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// fakeOwnerRepo is an in-memory OwnerRepo. Insertion order stands in for the
// createdAt sort of the real store.
type fakeOwnerRepo struct {
	owners      map[primitive.ObjectID]*domain.Owner
	order       []primitive.ObjectID
	properties  *fakePropertyRepo
	deleteFails bool
}

func newFakeOwnerRepo(properties *fakePropertyRepo) *fakeOwnerRepo {
	return &fakeOwnerRepo{
		owners:     map[primitive.ObjectID]*domain.Owner{},
		properties: properties,
	}
}

func (f *fakeOwnerRepo) GetAll(ctx context.Context) ([]*domain.Owner, error) {
	out := []*domain.Owner{}
	for i := len(f.order) - 1; i >= 0; i-- {
		if o, ok := f.owners[f.order[i]]; ok {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeOwnerRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Owner, error) {
	o, ok := f.owners[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	props, err := f.properties.GetByOwner(ctx, id)
	if err != nil {
		return nil, err
	}
	cp.Properties = props
	return &cp, nil
}

func (f *fakeOwnerRepo) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	_, ok := f.owners[id]
	return ok, nil
}

func (f *fakeOwnerRepo) ExistsByNameAddress(ctx context.Context, name, address string, exclude *primitive.ObjectID) (bool, error) {
	for id, o := range f.owners {
		if exclude != nil && id == *exclude {
			continue
		}
		if o.Name == name && o.Address == address {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeOwnerRepo) Add(ctx context.Context, owner *domain.Owner) (*domain.Owner, error) {
	if owner.ID.IsZero() {
		owner.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	owner.CreatedAt = now
	owner.UpdatedAt = now
	cp := *owner
	f.owners[owner.ID] = &cp
	f.order = append(f.order, owner.ID)
	return owner, nil
}

func (f *fakeOwnerRepo) Update(ctx context.Context, owner *domain.Owner) (*domain.Owner, error) {
	owner.UpdatedAt = time.Now().UTC()
	if stored, ok := f.owners[owner.ID]; ok {
		stored.Name = owner.Name
		stored.Address = owner.Address
		stored.UpdatedAt = owner.UpdatedAt
	}
	return owner, nil
}

func (f *fakeOwnerRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	if f.deleteFails {
		return false, nil
	}
	if _, ok := f.owners[id]; !ok {
		return false, nil
	}
	delete(f.owners, id)
	return true, nil
}

// fakePropertyRepo is an in-memory PropertyRepo mirroring the filter and
// statistics contracts of the mongo-backed implementation.
type fakePropertyRepo struct {
	properties  map[primitive.ObjectID]*domain.Property
	order       []primitive.ObjectID
	deleteFails bool
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{properties: map[primitive.ObjectID]*domain.Property{}}
}

func matchesFilter(p *domain.Property, filter domain.PropertyFilter) bool {
	if filter.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Name)) {
		return false
	}
	if filter.Address != "" && !strings.Contains(strings.ToLower(p.Address), strings.ToLower(filter.Address)) {
		return false
	}
	if filter.MinPrice != nil && p.Price < *filter.MinPrice {
		return false
	}
	if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
		return false
	}
	return true
}

func (f *fakePropertyRepo) GetAll(ctx context.Context) ([]*domain.Property, error) {
	return f.GetAllWithFilters(ctx, domain.PropertyFilter{})
}

func (f *fakePropertyRepo) GetAllWithFilters(ctx context.Context, filter domain.PropertyFilter) ([]*domain.Property, error) {
	out := []*domain.Property{}
	for i := len(f.order) - 1; i >= 0; i-- {
		p, ok := f.properties[f.order[i]]
		if !ok || !matchesFilter(p, filter) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakePropertyRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Property, error) {
	p, ok := f.properties[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePropertyRepo) GetByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*domain.Property, error) {
	out := []*domain.Property{}
	for i := len(f.order) - 1; i >= 0; i-- {
		p, ok := f.properties[f.order[i]]
		if !ok || p.OwnerID != ownerID {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakePropertyRepo) CountByOwner(ctx context.Context, ownerID primitive.ObjectID) (int64, error) {
	props, _ := f.GetByOwner(ctx, ownerID)
	return int64(len(props)), nil
}

func (f *fakePropertyRepo) Add(ctx context.Context, property *domain.Property) (*domain.Property, error) {
	if property.ID.IsZero() {
		property.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	property.CreatedAt = now
	property.UpdatedAt = now
	cp := *property
	f.properties[property.ID] = &cp
	f.order = append(f.order, property.ID)
	return property, nil
}

func (f *fakePropertyRepo) Update(ctx context.Context, property *domain.Property) (*domain.Property, error) {
	property.UpdatedAt = time.Now().UTC()
	if stored, ok := f.properties[property.ID]; ok {
		stored.OwnerID = property.OwnerID
		stored.Name = property.Name
		stored.Address = property.Address
		stored.Price = property.Price
		stored.UpdatedAt = property.UpdatedAt
		if property.Image != nil {
			stored.Image = property.Image
		}
	}
	return property, nil
}

func (f *fakePropertyRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	if f.deleteFails {
		return false, nil
	}
	if _, ok := f.properties[id]; !ok {
		return false, nil
	}
	delete(f.properties, id)
	return true, nil
}

func (f *fakePropertyRepo) Statistics(ctx context.Context) (*domain.PropertyStats, error) {
	stats := &domain.PropertyStats{PropertiesByOwner: []domain.OwnerPropertyCount{}}
	if len(f.properties) == 0 {
		return stats, nil
	}

	var sum float64
	min := math.MaxFloat64
	max := -math.MaxFloat64
	counts := map[primitive.ObjectID]int64{}
	for _, p := range f.properties {
		sum += p.Price
		if p.Price < min {
			min = p.Price
		}
		if p.Price > max {
			max = p.Price
		}
		counts[p.OwnerID]++
	}
	stats.TotalProperties = int64(len(f.properties))
	stats.AveragePrice = math.Round(sum/float64(len(f.properties))*100) / 100
	stats.MinPrice = min
	stats.MaxPrice = max

	for id, count := range counts {
		stats.PropertiesByOwner = append(stats.PropertiesByOwner, domain.OwnerPropertyCount{
			OwnerID: id.Hex(),
			Count:   count,
		})
	}
	sort.Slice(stats.PropertiesByOwner, func(i, j int) bool {
		return stats.PropertiesByOwner[i].Count > stats.PropertiesByOwner[j].Count
	})
	return stats, nil
}
