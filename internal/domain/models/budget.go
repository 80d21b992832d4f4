package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Budget struct {
	Id         primitive.ObjectID `json:"id" bson:"_id"`
	UserId     primitive.ObjectID `json:"userId" bson:"user_id"`
	CategoryId primitive.ObjectID `json:"categoryId" bson:"category_id"`
	Amount     float64            `json:"amount" bson:"amount"`
	Spent      float64            `json:"spent" bson:"-"`
}
