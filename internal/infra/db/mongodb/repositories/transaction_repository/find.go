package transaction_repository

import (
	"context"
	"time"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	presentationHelpers "github.com/controlenamao/finance-backend/internal/presentation/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindTransactionsRepository handles fetching transactions by the global
// filters (month/year window, explicit date range, type).
type FindTransactionsRepository struct {
	Db *mongo.Database
}

func NewFindTransactionsRepository(db *mongo.Database) *FindTransactionsRepository {
	return &FindTransactionsRepository{Db: db}
}

func (r *FindTransactionsRepository) Find(globalFilters *presentationHelpers.GlobalFilterParams) ([]models.Transaction, error) {
	collection := r.Db.Collection("transactions")

	filter := bson.M{"user_id": globalFilters.UserId}

	if globalFilters.Type != "" {
		filter["type"] = globalFilters.Type
	}

	if globalFilters.Month != 0 && globalFilters.Year != 0 {
		start := time.Date(globalFilters.Year, time.Month(globalFilters.Month), 1, 0, 0, 0, 0, time.UTC)
		filter["date"] = bson.M{"$gte": start, "$lt": start.AddDate(0, 1, 0)}
	} else if globalFilters.InitialDate != "" && globalFilters.FinalDate != "" {
		start, _ := time.Parse("2006-01-02", globalFilters.InitialDate)
		end, _ := time.Parse("2006-01-02", globalFilters.FinalDate)
		filter["date"] = bson.M{"$gte": start, "$lt": end.AddDate(0, 0, 1)}
	}

	opts := options.Find().SetSort(bson.M{"date": -1})

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var transactions []models.Transaction
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, err
	}

	return transactions, nil
}
