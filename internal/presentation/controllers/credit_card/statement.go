package credit_card

import (
	"net/http"
	"strconv"
	"time"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	infraHelpers "github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetCreditCardStatementController computes the statement of a card for the
// billing cycle that closes in the requested month
type GetCreditCardStatementController struct {
	FindCreditCardByIdRepository           usecase.FindCreditCardByIdRepository
	FindTransactionsByCreditCardRepository usecase.FindTransactionsByCreditCardRepository
}

// NewGetCreditCardStatementController initializes a GetCreditCardStatementController
func NewGetCreditCardStatementController(
	findByIdRepo usecase.FindCreditCardByIdRepository,
	findTransactionsRepo usecase.FindTransactionsByCreditCardRepository,
) *GetCreditCardStatementController {
	return &GetCreditCardStatementController{
		FindCreditCardByIdRepository:           findByIdRepo,
		FindTransactionsByCreditCardRepository: findTransactionsRepo,
	}
}

// GetCreditCardStatementResponse is the statement payload for one billing cycle
type GetCreditCardStatementResponse struct {
	CreditCardId string                  `json:"creditCardId"`
	StartDate    time.Time               `json:"startDate"`
	EndDate      time.Time               `json:"endDate"`
	DueDate      time.Time               `json:"dueDate"`
	Total        float64                 `json:"total"`
	Transactions []models.StatementEntry `json:"transactions"`
}

// Handle processes the HTTP request to compute a card statement
func (c *GetCreditCardStatementController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	id, err := primitive.ObjectIDFromHex(r.Req.PathValue("creditCardId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid credit card ID format",
		}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	now := time.Now()
	year := now.Year()
	month := now.Month()

	if yearParam := r.UrlParams.Get("year"); yearParam != "" {
		parsed, err := strconv.Atoi(yearParam)
		if err != nil || parsed < 1970 || parsed > 2500 {
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

	card, err := c.FindCreditCardByIdRepository.Find(id, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding credit card",
		}, http.StatusInternalServerError)
	}
	if card == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "credit card not found",
		}, http.StatusNotFound)
	}

	// The whole card history is needed here: an installment purchase made
	// months ago still projects charges into the cycle being viewed.
	transactions, err := c.FindTransactionsByCreditCardRepository.FindByCreditCard(id, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving card transactions",
		}, http.StatusInternalServerError)
	}

	period := infraHelpers.ComputeStatementPeriod(card.CloseDay, card.DueDay, year, month)
	entries := infraHelpers.ProjectInstallments(transactions)
	statement := infraHelpers.BuildStatement(entries, id, period)

	return helpers.CreateResponse(&GetCreditCardStatementResponse{
		CreditCardId: id.Hex(),
		StartDate:    period.Start,
		EndDate:      period.End,
		DueDate:      period.DueDate,
		Total:        statement.Total,
		Transactions: statement.Transactions,
	}, http.StatusOK)
}
