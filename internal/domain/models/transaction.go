package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Transaction struct {
	Id                primitive.ObjectID  `bson:"_id" json:"id"`
	UserId            primitive.ObjectID  `bson:"user_id" json:"userId"`
	Type              string              `bson:"type" json:"type"` // INCOME | EXPENSE
	Amount            float64             `bson:"amount" json:"amount"`
	Date              time.Time           `bson:"date" json:"date"`
	Description       string              `bson:"description" json:"description"`
	CategoryId        primitive.ObjectID  `bson:"category_id" json:"categoryId"`
	AccountId         primitive.ObjectID  `bson:"account_id" json:"accountId"`
	CreditCardId      *primitive.ObjectID `bson:"credit_card_id" json:"creditCardId,omitempty"`
	IsInstallment     bool                `bson:"is_installment" json:"isInstallment"`
	TotalInstallments int                 `bson:"total_installments" json:"totalInstallments,omitempty"`
	CreatedAt         time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time           `bson:"updated_at" json:"updatedAt"`
}

// StatementEntry is a display-ready transaction line. Regular transactions
// map one-to-one; installment originals are replaced by their projections,
// whose ids are derived ("<originalId>-installment-<k>") and never persisted.
type StatementEntry struct {
	Id                string              `json:"id"`
	Type              string              `json:"type"`
	Amount            float64             `json:"amount"`
	Date              time.Time           `json:"date"`
	Description       string              `json:"description"`
	CategoryId        primitive.ObjectID  `json:"categoryId"`
	AccountId         primitive.ObjectID  `json:"accountId"`
	CreditCardId      *primitive.ObjectID `json:"creditCardId,omitempty"`
	InstallmentIndex  int                 `json:"installmentIndex,omitempty"` // 1-based, 0 when not a projection
	TotalInstallments int                 `json:"totalInstallments,omitempty"`
}
