package transaction

import (
	"testing"
	"time"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeCategoryByName struct {
	categories map[string]*models.Category
}

func (f *fakeCategoryByName) FindByName(name string, userId primitive.ObjectID) (*models.Category, error) {
	return f.categories[name], nil
}

type fakeFallbackCategory struct {
	category *models.Category
}

func (f *fakeFallbackCategory) FindFallback(userId primitive.ObjectID) (*models.Category, error) {
	return f.category, nil
}

type fakeAccountByName struct {
	accounts map[string]*models.Account
}

func (f *fakeAccountByName) FindByName(name string, userId primitive.ObjectID) (*models.Account, error) {
	return f.accounts[name], nil
}

type fakeFirstAccount struct {
	account *models.Account
}

func (f *fakeFirstAccount) FindFirst(userId primitive.ObjectID) (*models.Account, error) {
	return f.account, nil
}

type fakeCreditCardByName struct {
	cards map[string]*models.CreditCard
}

func (f *fakeCreditCardByName) FindByName(name string, userId primitive.ObjectID) (*models.CreditCard, error) {
	return f.cards[name], nil
}

func TestConvertRowCategoryFallback(t *testing.T) {
	userId := primitive.NewObjectID()
	food := &models.Category{Id: primitive.NewObjectID(), Name: "Alimentação"}
	outro := &models.Category{Id: primitive.NewObjectID(), Name: "Outro"}
	account := &models.Account{Id: primitive.NewObjectID(), Name: "Conta Corrente"}

	controller := &ImportTransactionsController{
		FindCategoryByNameRepository:   &fakeCategoryByName{categories: map[string]*models.Category{"Alimentação": food}},
		FindFallbackCategoryRepository: &fakeFallbackCategory{category: outro},
		FindAccountByNameRepository:    &fakeAccountByName{accounts: map[string]*models.Account{}},
		FindFirstAccountRepository:     &fakeFirstAccount{account: account},
		FindCreditCardByNameRepository: &fakeCreditCardByName{},
	}

	now := time.Now()

	tests := []struct {
		name           string
		category       string
		wantCategoryId primitive.ObjectID
	}{
		{"known name resolves directly", "Alimentação", food.Id},
		{"unknown name falls back", "Inexistente", outro.Id},
		{"empty cell falls back", "", outro.Id},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := StatementRow{
				Line:     2,
				Date:     "2024-01-15",
				Amount:   "10.00",
				Type:     "EXPENSE",
				Category: tt.category,
			}

			transaction, rowErr := controller.convertRow(row, userId, now)
			if rowErr != nil {
				t.Fatalf("unexpected row error: %+v", rowErr)
			}
			if transaction.CategoryId != tt.wantCategoryId {
				t.Errorf("expected category %s, got %s", tt.wantCategoryId.Hex(), transaction.CategoryId.Hex())
			}
			if transaction.CategoryId.IsZero() {
				t.Error("imported row must never carry a zero category id")
			}
		})
	}
}

func TestConvertRowRejectsWhenNoCategoryExists(t *testing.T) {
	userId := primitive.NewObjectID()
	account := &models.Account{Id: primitive.NewObjectID(), Name: "Conta Corrente"}

	controller := &ImportTransactionsController{
		FindCategoryByNameRepository:   &fakeCategoryByName{categories: map[string]*models.Category{}},
		FindFallbackCategoryRepository: &fakeFallbackCategory{},
		FindAccountByNameRepository:    &fakeAccountByName{accounts: map[string]*models.Account{}},
		FindFirstAccountRepository:     &fakeFirstAccount{account: account},
		FindCreditCardByNameRepository: &fakeCreditCardByName{},
	}

	row := StatementRow{Line: 2, Date: "2024-01-15", Amount: "10.00", Type: "EXPENSE"}

	transaction, rowErr := controller.convertRow(row, userId, time.Now())
	if transaction != nil {
		t.Fatal("expected no transaction for a user without categories")
	}
	if rowErr == nil || rowErr.Line != 2 {
		t.Fatalf("expected a line 2 row error, got %+v", rowErr)
	}
}
