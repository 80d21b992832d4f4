package transaction

import (
	"bytes"
	"net/http"
	"time"

	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"github.com/controlenamao/finance-backend/internal/infra/db/redis_repository"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportTransactionsController streams the user's transactions as a CSV or
// XLSX download. XLSX builds are cached for the day.
type ExportTransactionsController struct {
	Validate                   *validator.Validate
	FindTransactionsRepository usecase.FindTransactionsRepository
	FindCategoriesRepository   usecase.FindCategoriesRepository
	FindAccountsRepository     usecase.FindAccountsRepository
	FindCreditCardsRepository  usecase.FindCreditCardsRepository
	ExportCacheRepository      *redis_repository.ExportCacheRepository
}

// NewExportTransactionsController initializes an ExportTransactionsController
func NewExportTransactionsController(
	findTransactionsRepo usecase.FindTransactionsRepository,
	findCategoriesRepo usecase.FindCategoriesRepository,
	findAccountsRepo usecase.FindAccountsRepository,
	findCreditCardsRepo usecase.FindCreditCardsRepository,
	exportCacheRepo *redis_repository.ExportCacheRepository,
) *ExportTransactionsController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &ExportTransactionsController{
		Validate:                   validate,
		FindTransactionsRepository: findTransactionsRepo,
		FindCategoriesRepository:   findCategoriesRepo,
		FindAccountsRepository:     findAccountsRepo,
		FindCreditCardsRepository:  findCreditCardsRepo,
		ExportCacheRepository:      exportCacheRepo,
	}
}

// Handle processes the HTTP request to export transactions
func (c *ExportTransactionsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	format := r.UrlParams.Get("format")
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "xlsx" {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "unsupported export format",
		}, http.StatusBadRequest)
	}

	now := time.Now()
	day := now.Format("2006-01-02")

	if format == "xlsx" {
		cached, err := c.ExportCacheRepository.FindXLSX(userId, day)
		if err == nil && cached != nil {
			return helpers.CreateFileResponse(cached, ExportFilename(now, "xlsx"), xlsxContentType)
		}
	}

	globalFilters, errResponse := helpers.GetGlobalFilterByQueries(&r.UrlParams, userId, c.Validate)
	if errResponse != nil {
		return errResponse
	}

	transactions, err := c.FindTransactionsRepository.Find(globalFilters)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving transactions",
		}, http.StatusInternalServerError)
	}

	names, errResponse := c.resolveNames(userId)
	if errResponse != nil {
		return errResponse
	}

	if format == "csv" {
		content, err := BuildTransactionsCSV(transactions, names)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "an error occurred when building csv export",
			}, http.StatusInternalServerError)
		}
		return helpers.CreateFileResponse(content, ExportFilename(now, "csv"), "text/csv; charset=utf-8")
	}

	file, err := BuildTransactionsXLSX(transactions, names)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when building xlsx export",
		}, http.StatusInternalServerError)
	}

	// cache failures only cost the next rebuild
	_ = c.ExportCacheRepository.SaveXLSX(userId, day, file, 6*time.Hour)

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when writing xlsx export",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateFileResponse(buf.Bytes(), ExportFilename(now, "xlsx"), xlsxContentType)
}

func (c *ExportTransactionsController) resolveNames(userId primitive.ObjectID) (ExportNames, *presentationProtocols.HttpResponse) {
	names := ExportNames{
		Categories:  map[primitive.ObjectID]string{},
		Accounts:    map[primitive.ObjectID]string{},
		CreditCards: map[primitive.ObjectID]string{},
	}

	categories, err := c.FindCategoriesRepository.Find(userId)
	if err != nil {
		return names, helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving categories",
		}, http.StatusInternalServerError)
	}
	for _, category := range categories {
		names.Categories[category.Id] = category.Name
	}

	accounts, err := c.FindAccountsRepository.Find(userId)
	if err != nil {
		return names, helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving accounts",
		}, http.StatusInternalServerError)
	}
	for _, account := range accounts {
		names.Accounts[account.Id] = account.Name
	}

	cards, err := c.FindCreditCardsRepository.Find(userId)
	if err != nil {
		return names, helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving credit cards",
		}, http.StatusInternalServerError)
	}
	for _, card := range cards {
		names.CreditCards[card.Id] = card.Name
	}

	return names, nil
}
