package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type CreditCard struct {
	Id       primitive.ObjectID `json:"id" bson:"_id"`
	UserId   primitive.ObjectID `json:"userId" bson:"user_id"`
	Name     string             `json:"name" bson:"name"`
	Last4    string             `json:"last4" bson:"last4"`
	Limit    float64            `json:"limit" bson:"limit"`
	CloseDay int                `json:"closeDay" bson:"close_day"` // day of month the statement closes
	DueDay   int                `json:"dueDay" bson:"due_day"`     // day of month the statement is due
	Brand    string             `json:"brand" bson:"brand"`
}
