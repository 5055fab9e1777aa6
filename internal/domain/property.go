package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Property struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID   primitive.ObjectID `bson:"idOwner" json:"idOwner"`
	Name      string             `bson:"name" json:"name"`
	Address   string             `bson:"address" json:"address"`
	Price     float64            `bson:"price" json:"price"`
	Image     []byte             `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PropertyFilter carries the optional listing criteria. Zero-value string
// fields and nil prices impose no constraint; supplied criteria are combined
// conjunctively.
type PropertyFilter struct {
	Name     string
	Address  string
	MinPrice *float64
	MaxPrice *float64
}
