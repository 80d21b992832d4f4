package assistant

import (
	"net/http"
	"time"

	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"github.com/controlenamao/finance-backend/internal/infra/ai"
	infraHelpers "github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// months of history fed to the forecast
const forecastHistoryMonths = 3

// ForecastBudgetController projects next month's spending per category from
// recent history
type ForecastBudgetController struct {
	Client                     *ai.Client
	FindCategoriesRepository   usecase.FindCategoriesRepository
	FindTransactionsRepository usecase.FindTransactionsRepository
}

// NewForecastBudgetController initializes a ForecastBudgetController
func NewForecastBudgetController(
	client *ai.Client,
	findCategoriesRepo usecase.FindCategoriesRepository,
	findTransactionsRepo usecase.FindTransactionsRepository,
) *ForecastBudgetController {
	return &ForecastBudgetController{
		Client:                     client,
		FindCategoriesRepository:   findCategoriesRepo,
		FindTransactionsRepository: findTransactionsRepo,
	}
}

// Handle processes the HTTP request to forecast budgets
func (c *ForecastBudgetController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	categories, err := c.FindCategoriesRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving categories",
		}, http.StatusInternalServerError)
	}

	categoryNames := make(map[string]string, len(categories))
	for _, category := range categories {
		if category.Type == "EXPENSE" {
			categoryNames[category.Id.Hex()] = category.Name
		}
	}

	history, err := c.collectHistory(userId, categoryNames)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving spending history",
		}, http.StatusInternalServerError)
	}

	forecasts, err := c.Client.ForecastBudget(r.Req.Context(), history)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when forecasting budgets",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(forecasts, http.StatusOK)
}

// collectHistory builds per-category monthly totals for the trailing
// months, oldest first.
func (c *ForecastBudgetController) collectHistory(userId primitive.ObjectID, categoryNames map[string]string) ([]ai.CategoryHistory, error) {
	totalsByCategory := make(map[string][]float64)

	now := time.Now()
	for offset := forecastHistoryMonths - 1; offset >= 0; offset-- {
		ref := now.AddDate(0, -offset, 0)

		transactions, err := c.FindTransactionsRepository.Find(&helpers.GlobalFilterParams{
			Month:  int(ref.Month()),
			Year:   ref.Year(),
			UserId: userId,
		})
		if err != nil {
			return nil, err
		}

		spending := infraHelpers.CalculateCategorySpending(transactions)
		for id := range categoryNames {
			totalsByCategory[id] = append(totalsByCategory[id], spending[id])
		}
	}

	var history []ai.CategoryHistory
	for id, totals := range totalsByCategory {
		nonZero := false
		for _, total := range totals {
			if total > 0 {
				nonZero = true
				break
			}
		}
		if !nonZero {
			continue
		}

		history = append(history, ai.CategoryHistory{
			CategoryName:  categoryNames[id],
			MonthlyTotals: totals,
		})
	}

	return history, nil
}
