package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FinancialGoal struct {
	Id            primitive.ObjectID `json:"id" bson:"_id"`
	UserId        primitive.ObjectID `json:"userId" bson:"user_id"`
	Name          string             `json:"name" bson:"name"`
	TargetAmount  float64            `json:"targetAmount" bson:"target_amount"`
	CurrentAmount float64            `json:"currentAmount" bson:"current_amount"`
	Deadline      *time.Time         `json:"deadline,omitempty" bson:"deadline"`
	Icon          string             `json:"icon" bson:"icon"`
	CreatedAt     time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updated_at"`
}
