package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RecurringTransaction struct {
	Id          primitive.ObjectID `json:"id" bson:"_id"`
	UserId      primitive.ObjectID `json:"userId" bson:"user_id"`
	Description string             `json:"description" bson:"description"`
	Amount      float64            `json:"amount" bson:"amount"`
	Type        string             `json:"type" bson:"type"` // INCOME | EXPENSE
	CategoryId  primitive.ObjectID `json:"categoryId" bson:"category_id"`
	AccountId   primitive.ObjectID `json:"accountId" bson:"account_id"`
	Frequency   string             `json:"frequency" bson:"frequency"` // WEEKLY | MONTHLY | YEARLY
	DayOfMonth  int                `json:"dayOfMonth" bson:"day_of_month"`
	Weekday     int                `json:"weekday" bson:"weekday"` // 0=Sunday, WEEKLY only
	StartDate   time.Time          `json:"startDate" bson:"start_date"`
	EndDate     *time.Time         `json:"endDate,omitempty" bson:"end_date"`
	Active      bool               `json:"active" bson:"active"`
	LastRun     *time.Time         `json:"lastRun,omitempty" bson:"last_run"`
	// Months this rule has already been written out for, as "yyyy-MM" keys.
	// A single last-run date cannot dedupe out-of-order months.
	MaterializedMonths []string            `json:"materializedMonths,omitempty" bson:"materialized_months"`
	CreditCard         *primitive.ObjectID `json:"creditCardId,omitempty" bson:"credit_card_id"`
}
