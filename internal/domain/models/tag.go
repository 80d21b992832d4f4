package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Tag struct {
	Id     primitive.ObjectID `json:"id" bson:"_id"`
	UserId primitive.ObjectID `json:"userId" bson:"user_id"`
	Name   string             `json:"name" bson:"name"`
	Color  string             `json:"color" bson:"color"`
}
