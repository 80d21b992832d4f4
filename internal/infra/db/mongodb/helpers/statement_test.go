package helpers

import (
	"math"
	"testing"
	"time"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func statementFixture(cardId primitive.ObjectID) []models.StatementEntry {
	otherCard := primitive.NewObjectID()
	day := func(d int) time.Time {
		return time.Date(2024, time.June, d, 0, 0, 0, 0, time.UTC)
	}

	return []models.StatementEntry{
		{Id: "a", Type: "EXPENSE", Amount: 120.00, Date: day(5), CreditCardId: &cardId},
		{Id: "b", Type: "EXPENSE", Amount: 33.33, Date: day(10), CreditCardId: &cardId},
		{Id: "c", Type: "EXPENSE", Amount: 45.50, Date: day(10), CreditCardId: &cardId},
		{Id: "d", Type: "EXPENSE", Amount: 80.00, Date: day(25), CreditCardId: &cardId},   // next cycle
		{Id: "e", Type: "EXPENSE", Amount: 60.00, Date: day(8), CreditCardId: &otherCard}, // other card
		{Id: "f", Type: "EXPENSE", Amount: 15.00, Date: day(12)},                          // no card
	}
}

func TestBuildStatement(t *testing.T) {
	cardId := primitive.NewObjectID()
	period := ComputeStatementPeriod(20, 28, 2024, time.June)

	result := BuildStatement(statementFixture(cardId), cardId, period)

	if len(result.Transactions) != 3 {
		t.Fatalf("expected 3 statement lines, got %d", len(result.Transactions))
	}
	if math.Abs(result.Total-198.83) > 1e-9 {
		t.Errorf("total = %v, want 198.83", result.Total)
	}

	// Date descending, input order preserved on the tie between b and c.
	wantOrder := []string{"b", "c", "a"}
	for i, e := range result.Transactions {
		if e.Id != wantOrder[i] {
			t.Errorf("position %d = %q, want %q", i, e.Id, wantOrder[i])
		}
	}
}

func TestBuildStatementIsIdempotent(t *testing.T) {
	cardId := primitive.NewObjectID()
	period := ComputeStatementPeriod(20, 28, 2024, time.June)

	once := BuildStatement(statementFixture(cardId), cardId, period)
	twice := BuildStatement(once.Transactions, cardId, period)

	if len(once.Transactions) != len(twice.Transactions) {
		t.Fatalf("second pass changed the line count: %d vs %d", len(once.Transactions), len(twice.Transactions))
	}
	if once.Total != twice.Total {
		t.Errorf("second pass changed the total: %v vs %v", once.Total, twice.Total)
	}
	for i := range once.Transactions {
		if once.Transactions[i].Id != twice.Transactions[i].Id {
			t.Errorf("second pass reordered line %d", i)
		}
	}
}

func TestBuildStatementEmptyWindow(t *testing.T) {
	cardId := primitive.NewObjectID()
	period := ComputeStatementPeriod(20, 28, 2030, time.January)

	result := BuildStatement(statementFixture(cardId), cardId, period)

	if len(result.Transactions) != 0 || result.Total != 0 {
		t.Errorf("expected an empty statement, got %d lines, total %v", len(result.Transactions), result.Total)
	}
}
