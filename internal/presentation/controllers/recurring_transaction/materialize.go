package recurring_transaction

import (
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	infraHelpers "github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
)

// MaterializeRecurringTransactionsController turns the active rules into
// concrete transactions for the requested month
type MaterializeRecurringTransactionsController struct {
	FindRecurringTransactionsRepository   usecase.FindRecurringTransactionsRepository
	CreateManyTransactionsRepository      usecase.CreateManyTransactionsRepository
	MarkRecurringTransactionRunRepository usecase.MarkRecurringTransactionRunRepository
}

// NewMaterializeRecurringTransactionsController initializes a MaterializeRecurringTransactionsController
func NewMaterializeRecurringTransactionsController(
	findRepo usecase.FindRecurringTransactionsRepository,
	createManyRepo usecase.CreateManyTransactionsRepository,
	markRunRepo usecase.MarkRecurringTransactionRunRepository,
) *MaterializeRecurringTransactionsController {
	return &MaterializeRecurringTransactionsController{
		FindRecurringTransactionsRepository:   findRepo,
		CreateManyTransactionsRepository:      createManyRepo,
		MarkRecurringTransactionRunRepository: markRunRepo,
	}
}

// MaterializeRecurringTransactionsResponse reports how many transactions
// were generated and how many rules had already covered the month
type MaterializeRecurringTransactionsResponse struct {
	Created      int `json:"created"`
	AlreadyKnown int `json:"alreadyKnown"`
}

// materializeMonthKey is the per-rule dedupe marker for one month
func materializeMonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

func alreadyMaterialized(rule *models.RecurringTransaction, monthKey string) bool {
	return slices.Contains(rule.MaterializedMonths, monthKey)
}

// Handle processes the HTTP request to materialize recurring rules. Each
// rule carries the set of months it was already written out for, so both
// repeating a month and jumping back to an earlier one create nothing twice.
func (c *MaterializeRecurringTransactionsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	now := time.Now()
	year := now.Year()
	month := now.Month()

	if yearParam := r.UrlParams.Get("year"); yearParam != "" {
		parsed, err := strconv.Atoi(yearParam)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "invalid year",
			}, http.StatusBadRequest)
		}
		year = parsed
	}
	if monthParam := r.UrlParams.Get("month"); monthParam != "" {
		parsed, err := strconv.Atoi(monthParam)
		if err != nil || parsed < 1 || parsed > 12 {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "invalid month",
			}, http.StatusBadRequest)
		}
		month = time.Month(parsed)
	}

	rules, err := c.FindRecurringTransactionsRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving recurring transactions",
		}, http.StatusInternalServerError)
	}

	monthKey := materializeMonthKey(year, month)

	var transactions []*models.Transaction
	alreadyKnown := 0
	ranRules := make(map[int]bool)
	for i, rule := range rules {
		if alreadyMaterialized(&rule, monthKey) {
			alreadyKnown++
			continue
		}

		occurrences := infraHelpers.RecurringOccurrences(&rule, year, month)
		for _, date := range occurrences {
			transactions = append(transactions, &models.Transaction{
				UserId:       userId,
				Type:         rule.Type,
				Amount:       rule.Amount,
				Date:         date,
				Description:  rule.Description,
				CategoryId:   rule.CategoryId,
				AccountId:    rule.AccountId,
				CreditCardId: rule.CreditCard,
				CreatedAt:    now,
				UpdatedAt:    now,
			})
			ranRules[i] = true
		}
	}

	if len(transactions) > 0 {
		if _, err := c.CreateManyTransactionsRepository.CreateMany(transactions); err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "an error occurred when creating recurring transactions",
			}, http.StatusInternalServerError)
		}
	}

	for i := range ranRules {
		if err := c.MarkRecurringTransactionRunRepository.MarkRun(rules[i].Id, userId, monthKey); err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "an error occurred when recording the materialization run",
			}, http.StatusInternalServerError)
		}
	}

	return helpers.CreateResponse(&MaterializeRecurringTransactionsResponse{
		Created:      len(transactions),
		AlreadyKnown: alreadyKnown,
	}, http.StatusOK)
}
