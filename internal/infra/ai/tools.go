package ai

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	toolAddTransaction = "add_transaction"
	toolUpdateBudget   = "update_budget_by_category_name"
)

// AddTransactionArgs are the arguments the model extracts for the
// add_transaction tool.
type AddTransactionArgs struct {
	Description  string  `json:"description" validate:"required,min=2,max=255"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	Type         string  `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	CategoryName string  `json:"categoryName" validate:"required"`
	AccountName  string  `json:"accountName" validate:"omitempty,max=100"`
}

// UpdateBudgetArgs are the arguments the model extracts for the
// update_budget_by_category_name tool.
type UpdateBudgetArgs struct {
	CategoryName string  `json:"categoryName" validate:"required"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
}

// AddTransactionTool records a transaction on the user's behalf. Lookup
// failures are reported as messages back to the conversation, not as errors.
type AddTransactionTool struct {
	Validator                *validator.Validate
	FindCategoryByName       usecase.FindCategoryByNameRepository
	FindAccountByName        usecase.FindAccountByNameRepository
	FindFirstAccount         usecase.FindFirstAccountRepository
	CreateTransactionBalance usecase.CreateTransactionWithBalanceRepository
}

func (t *AddTransactionTool) Call(userId primitive.ObjectID, rawArgs map[string]any) (string, error) {
	var args AddTransactionArgs
	if err := decodeToolArgs(rawArgs, &args); err != nil {
		return "Não entendi os dados da transação. Pode repetir com descrição, valor e categoria?", nil
	}
	if err := t.Validator.Struct(args); err != nil {
		return "Os dados da transação estão incompletos ou inválidos. Preciso de descrição, valor positivo, tipo e categoria.", nil
	}

	category, err := t.FindCategoryByName.FindByName(args.CategoryName, userId)
	if err != nil {
		return "", fmt.Errorf("find category %q: %w", args.CategoryName, err)
	}
	if category == nil {
		return fmt.Sprintf("Não encontrei a categoria %q. Crie a categoria primeiro ou use uma categoria existente.", args.CategoryName), nil
	}

	var account *models.Account
	if args.AccountName != "" {
		account, err = t.FindAccountByName.FindByName(args.AccountName, userId)
		if err != nil {
			return "", fmt.Errorf("find account %q: %w", args.AccountName, err)
		}
		if account == nil {
			return fmt.Sprintf("Não encontrei a conta %q.", args.AccountName), nil
		}
	} else {
		account, err = t.FindFirstAccount.FindFirst(userId)
		if err != nil {
			return "", fmt.Errorf("find default account: %w", err)
		}
		if account == nil {
			return "Você ainda não tem nenhuma conta cadastrada. Crie uma conta antes de registrar transações.", nil
		}
	}

	now := time.Now()
	transaction := &models.Transaction{
		UserId:      userId,
		Type:        args.Type,
		Amount:      args.Amount,
		Date:        now,
		Description: args.Description,
		CategoryId:  category.Id,
		AccountId:   account.Id,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := t.CreateTransactionBalance.CreateWithBalance(transaction); err != nil {
		return "", fmt.Errorf("create transaction: %w", err)
	}

	return fmt.Sprintf("Transação %q de R$ %.2f registrada na categoria %q, conta %q.",
		args.Description, args.Amount, category.Name, account.Name), nil
}

// UpdateBudgetTool changes the budget amount of a category named by the user.
type UpdateBudgetTool struct {
	Validator              *validator.Validate
	FindCategoryByName     usecase.FindCategoryByNameRepository
	FindBudgetByCategoryId usecase.FindBudgetByCategoryIdRepository
	UpdateBudgetAmount     usecase.UpdateBudgetAmountRepository
}

func (t *UpdateBudgetTool) Call(userId primitive.ObjectID, rawArgs map[string]any) (string, error) {
	var args UpdateBudgetArgs
	if err := decodeToolArgs(rawArgs, &args); err != nil {
		return "Não entendi o ajuste de orçamento. Pode informar a categoria e o novo valor?", nil
	}
	if err := t.Validator.Struct(args); err != nil {
		return "Preciso da categoria e de um valor positivo para ajustar o orçamento.", nil
	}

	category, err := t.FindCategoryByName.FindByName(args.CategoryName, userId)
	if err != nil {
		return "", fmt.Errorf("find category %q: %w", args.CategoryName, err)
	}
	if category == nil {
		return fmt.Sprintf("Não encontrei a categoria %q.", args.CategoryName), nil
	}

	budget, err := t.FindBudgetByCategoryId.FindByCategoryId(category.Id, userId)
	if err != nil {
		return "", fmt.Errorf("find budget for category %q: %w", args.CategoryName, err)
	}
	if budget == nil {
		return fmt.Sprintf("A categoria %q ainda não tem orçamento definido. Crie o orçamento primeiro.", category.Name), nil
	}

	if _, err := t.UpdateBudgetAmount.UpdateAmount(budget.Id, args.Amount); err != nil {
		return "", fmt.Errorf("update budget amount: %w", err)
	}

	return fmt.Sprintf("Orçamento da categoria %q atualizado para R$ %.2f.", category.Name, args.Amount), nil
}

// decodeToolArgs converts the loosely typed argument map the model produces
// into a typed struct before validation.
func decodeToolArgs(rawArgs map[string]any, target any) error {
	encoded, err := json.Marshal(rawArgs)
	if err != nil {
		return err
	}
	return json.Unmarshal(encoded, target)
}
