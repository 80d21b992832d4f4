package ai

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeCategoryByName struct {
	categories map[string]*models.Category
}

func (f *fakeCategoryByName) FindByName(name string, userId primitive.ObjectID) (*models.Category, error) {
	return f.categories[name], nil
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

type fakeCreateWithBalance struct {
	created []*models.Transaction
}

func (f *fakeCreateWithBalance) CreateWithBalance(transaction *models.Transaction) (*models.Transaction, error) {
	f.created = append(f.created, transaction)
	return transaction, nil
}

type fakeBudgetByCategory struct {
	budgets map[primitive.ObjectID]*models.Budget
}

func (f *fakeBudgetByCategory) FindByCategoryId(categoryId primitive.ObjectID, userId primitive.ObjectID) (*models.Budget, error) {
	return f.budgets[categoryId], nil
}

type fakeUpdateBudgetAmount struct {
	updatedId     primitive.ObjectID
	updatedAmount float64
}

func (f *fakeUpdateBudgetAmount) UpdateAmount(budgetId primitive.ObjectID, amount float64) (*models.Budget, error) {
	f.updatedId = budgetId
	f.updatedAmount = amount
	return &models.Budget{Id: budgetId, Amount: amount}, nil
}

func newAddTransactionTool(categories *fakeCategoryByName, accounts *fakeAccountByName, first *fakeFirstAccount, create *fakeCreateWithBalance) *AddTransactionTool {
	return &AddTransactionTool{
		Validator:                validator.New(),
		FindCategoryByName:       categories,
		FindAccountByName:        accounts,
		FindFirstAccount:         first,
		CreateTransactionBalance: create,
	}
}

func TestAddTransactionToolCreatesWithDefaultAccount(t *testing.T) {
	userId := primitive.NewObjectID()
	category := &models.Category{Id: primitive.NewObjectID(), Name: "Alimentação", Type: "EXPENSE"}
	account := &models.Account{Id: primitive.NewObjectID(), Name: "Carteira"}
	create := &fakeCreateWithBalance{}

	tool := newAddTransactionTool(
		&fakeCategoryByName{categories: map[string]*models.Category{"Alimentação": category}},
		&fakeAccountByName{accounts: map[string]*models.Account{}},
		&fakeFirstAccount{account: account},
		create,
	)

	result, err := tool.Call(userId, map[string]any{
		"description":  "almoço no restaurante",
		"amount":       45.90,
		"type":         "EXPENSE",
		"categoryName": "Alimentação",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(create.created) != 1 {
		t.Fatalf("expected 1 transaction created, got %d", len(create.created))
	}

	created := create.created[0]
	if created.CategoryId != category.Id {
		t.Errorf("expected category %s, got %s", category.Id.Hex(), created.CategoryId.Hex())
	}
	if created.AccountId != account.Id {
		t.Errorf("expected default account %s, got %s", account.Id.Hex(), created.AccountId.Hex())
	}
	if created.Amount != 45.90 || created.Type != "EXPENSE" {
		t.Errorf("unexpected transaction payload: %+v", created)
	}
	if !strings.Contains(result, "Carteira") {
		t.Errorf("expected confirmation to name the account, got %q", result)
	}
}

func TestAddTransactionToolUnknownCategory(t *testing.T) {
	create := &fakeCreateWithBalance{}
	tool := newAddTransactionTool(
		&fakeCategoryByName{categories: map[string]*models.Category{}},
		&fakeAccountByName{accounts: map[string]*models.Account{}},
		&fakeFirstAccount{account: &models.Account{Id: primitive.NewObjectID(), Name: "Carteira"}},
		create,
	)

	result, err := tool.Call(primitive.NewObjectID(), map[string]any{
		"description":  "mensalidade da academia",
		"amount":       120.0,
		"type":         "EXPENSE",
		"categoryName": "Academia",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(create.created) != 0 {
		t.Fatalf("expected no transaction to be created, got %d", len(create.created))
	}
	if !strings.Contains(result, "Academia") {
		t.Errorf("expected message to mention the missing category, got %q", result)
	}
}

func TestAddTransactionToolRejectsInvalidArgs(t *testing.T) {
	create := &fakeCreateWithBalance{}
	tool := newAddTransactionTool(
		&fakeCategoryByName{categories: map[string]*models.Category{}},
		&fakeAccountByName{accounts: map[string]*models.Account{}},
		&fakeFirstAccount{account: nil},
		create,
	)

	tests := []struct {
		name string
		args map[string]any
	}{
		{
			name: "negative amount",
			args: map[string]any{"description": "teste", "amount": -10.0, "type": "EXPENSE", "categoryName": "Lazer"},
		},
		{
			name: "unknown type",
			args: map[string]any{"description": "teste", "amount": 10.0, "type": "TRANSFER", "categoryName": "Lazer"},
		},
		{
			name: "missing category",
			args: map[string]any{"description": "teste", "amount": 10.0, "type": "EXPENSE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tool.Call(primitive.NewObjectID(), tt.args); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(create.created) != 0 {
				t.Fatalf("expected invalid args to be rejected before any write")
			}
		})
	}
}

func TestUpdateBudgetToolUpdatesAmount(t *testing.T) {
	category := &models.Category{Id: primitive.NewObjectID(), Name: "Transporte", Type: "EXPENSE"}
	budget := &models.Budget{Id: primitive.NewObjectID(), CategoryId: category.Id, Amount: 300}
	update := &fakeUpdateBudgetAmount{}

	tool := &UpdateBudgetTool{
		Validator:              validator.New(),
		FindCategoryByName:     &fakeCategoryByName{categories: map[string]*models.Category{"Transporte": category}},
		FindBudgetByCategoryId: &fakeBudgetByCategory{budgets: map[primitive.ObjectID]*models.Budget{category.Id: budget}},
		UpdateBudgetAmount:     update,
	}

	result, err := tool.Call(primitive.NewObjectID(), map[string]any{
		"categoryName": "Transporte",
		"amount":       450.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if update.updatedId != budget.Id {
		t.Errorf("expected budget %s to be updated, got %s", budget.Id.Hex(), update.updatedId.Hex())
	}
	if update.updatedAmount != 450.0 {
		t.Errorf("expected amount 450.00, got %.2f", update.updatedAmount)
	}
	if !strings.Contains(result, "450.00") {
		t.Errorf("expected confirmation with the new amount, got %q", result)
	}
}

func TestUpdateBudgetToolMissingBudget(t *testing.T) {
	category := &models.Category{Id: primitive.NewObjectID(), Name: "Lazer", Type: "EXPENSE"}
	update := &fakeUpdateBudgetAmount{}

	tool := &UpdateBudgetTool{
		Validator:              validator.New(),
		FindCategoryByName:     &fakeCategoryByName{categories: map[string]*models.Category{"Lazer": category}},
		FindBudgetByCategoryId: &fakeBudgetByCategory{budgets: map[primitive.ObjectID]*models.Budget{}},
		UpdateBudgetAmount:     update,
	}

	result, err := tool.Call(primitive.NewObjectID(), map[string]any{
		"categoryName": "Lazer",
		"amount":       200.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !update.updatedId.IsZero() {
		t.Errorf("expected no budget update")
	}
	if !strings.Contains(result, "Lazer") {
		t.Errorf("expected message to mention the category, got %q", result)
	}
}
