package domain

// PropertyStats aggregates the full, unfiltered property collection.
// AveragePrice is rounded to two decimal places; all numeric fields are zero
// and PropertiesByOwner is empty when the collection is empty.
type PropertyStats struct {
	TotalProperties   int64                `bson:"totalProperties" json:"totalProperties"`
	AveragePrice      float64              `bson:"averagePrice" json:"averagePrice"`
	MinPrice          float64              `bson:"minPrice" json:"minPrice"`
	MaxPrice          float64              `bson:"maxPrice" json:"maxPrice"`
	PropertiesByOwner []OwnerPropertyCount `bson:"-" json:"propertiesByOwner"`
}

// OwnerPropertyCount is one per-owner bucket, ordered by descending count in
// PropertyStats. Tie order is whatever the grouping stage returns.
type OwnerPropertyCount struct {
	OwnerID string `bson:"idOwner" json:"idOwner"`
	Count   int64  `bson:"count" json:"count"`
}
