package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	Id        primitive.ObjectID `json:"id" bson:"_id"`
	UserId    primitive.ObjectID `json:"userId" bson:"user_id"`
	Name      string             `json:"name" bson:"name"`
	Type      string             `json:"type" bson:"type"` // INCOME | EXPENSE
	Icon      string             `json:"icon" bson:"icon"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updated_at"`
}
