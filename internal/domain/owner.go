package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Owner holds no structural reference to its properties; the relation lives
// on Property.idOwner. Properties is populated only by owner-by-id reads.
type Owner struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Address    string             `bson:"address" json:"address"`
	Properties []*Property        `bson:"-" json:"properties,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}
