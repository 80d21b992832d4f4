package transaction

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const importLimit = 10000

// ImportTransactionsController ingests a CSV or XLSX statement file and
// creates the rows that parse cleanly, reporting the rest per line.
type ImportTransactionsController struct {
	CreateManyTransactionsRepository usecase.CreateManyTransactionsRepository
	FindCategoryByNameRepository     usecase.FindCategoryByNameRepository
	FindFallbackCategoryRepository   usecase.FindFallbackCategoryRepository
	FindAccountByNameRepository      usecase.FindAccountByNameRepository
	FindFirstAccountRepository       usecase.FindFirstAccountRepository
	FindCreditCardByNameRepository   usecase.FindCreditCardByNameRepository
}

// NewImportTransactionsController initializes an ImportTransactionsController
func NewImportTransactionsController(
	createManyRepo usecase.CreateManyTransactionsRepository,
	findCategoryRepo usecase.FindCategoryByNameRepository,
	findFallbackCategoryRepo usecase.FindFallbackCategoryRepository,
	findAccountRepo usecase.FindAccountByNameRepository,
	findFirstAccountRepo usecase.FindFirstAccountRepository,
	findCreditCardRepo usecase.FindCreditCardByNameRepository,
) *ImportTransactionsController {
	return &ImportTransactionsController{
		CreateManyTransactionsRepository: createManyRepo,
		FindCategoryByNameRepository:     findCategoryRepo,
		FindFallbackCategoryRepository:   findFallbackCategoryRepo,
		FindAccountByNameRepository:      findAccountRepo,
		FindFirstAccountRepository:       findFirstAccountRepo,
		FindCreditCardByNameRepository:   findCreditCardRepo,
	}
}

// ImportTransactionsResponse summarizes an import run. BatchId identifies
// the run in logs so a support request about a bad import can be traced.
type ImportTransactionsResponse struct {
	BatchId  string           `json:"batchId"`
	Imported int              `json:"imported"`
	Rejected int              `json:"rejected"`
	Errors   []ImportRowError `json:"errors"`
}

// Handle processes the multipart upload of a statement file
func (c *ImportTransactionsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	if err := r.Req.ParseMultipartForm(32 << 20); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid multipart form",
		}, http.StatusBadRequest)
	}

	file, header, err := r.Req.FormFile("file")
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "missing 'file' field in form-data",
		}, http.StatusBadRequest)
	}
	defer file.Close()

	var rows []StatementRow
	var rowErrors []ImportRowError
	switch ext := strings.ToLower(filepath.Ext(header.Filename)); ext {
	case ".csv":
		rows, rowErrors, err = ParseStatementCSV(file)
	case ".xlsx", ".xlsm":
		rows, rowErrors, err = ParseStatementXLSX(file)
	default:
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: fmt.Sprintf("unsupported file type %s", ext),
		}, http.StatusBadRequest)
	}
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error parsing statement file: " + err.Error(),
		}, http.StatusBadRequest)
	}

	if len(rows) > importLimit {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "maximum of " + strconv.Itoa(importLimit) + " transactions per import",
		}, http.StatusBadRequest)
	}

	batchId := uuid.NewString()

	var transactions []*models.Transaction
	now := time.Now()
	for _, row := range rows {
		transaction, rowErr := c.convertRow(row, userId, now)
		if rowErr != nil {
			rowErrors = append(rowErrors, *rowErr)
			continue
		}
		transactions = append(transactions, transaction)
	}

	if len(transactions) > 0 {
		if _, err := c.CreateManyTransactionsRepository.CreateMany(transactions); err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "an error occurred when creating imported transactions",
			}, http.StatusInternalServerError)
		}
	}

	if rowErrors == nil {
		rowErrors = []ImportRowError{}
	}

	log.Printf("import %s for user %s: %d created, %d rejected", batchId, userId.Hex(), len(transactions), len(rowErrors))

	return helpers.CreateResponse(&ImportTransactionsResponse{
		BatchId:  batchId,
		Imported: len(transactions),
		Rejected: len(rowErrors),
		Errors:   rowErrors,
	}, http.StatusOK)
}

func (c *ImportTransactionsController) convertRow(row StatementRow, userId primitive.ObjectID, now time.Time) (*models.Transaction, *ImportRowError) {
	date, err := ParseStatementDate(row.Date, now)
	if err != nil {
		return nil, &ImportRowError{Line: row.Line, Reason: err.Error()}
	}

	amount, err := ParseStatementAmount(row.Amount)
	if err != nil {
		return nil, &ImportRowError{Line: row.Line, Reason: err.Error()}
	}
	if amount == 0 {
		return nil, &ImportRowError{Line: row.Line, Reason: "amount must not be zero"}
	}

	txType, err := ParseStatementType(row.Type, amount)
	if err != nil {
		return nil, &ImportRowError{Line: row.Line, Reason: err.Error()}
	}
	if amount < 0 {
		amount = -amount
	}

	description := row.Description
	if description == "" {
		description = "Importado"
	}

	// An unknown or empty category cell is not worth rejecting the row
	// over; it lands in the user's "outro" category (or the oldest one).
	var category *models.Category
	if row.Category != "" {
		category, err = c.FindCategoryByNameRepository.FindByName(row.Category, userId)
		if err != nil {
			return nil, &ImportRowError{Line: row.Line, Reason: "error resolving category"}
		}
	}
	if category == nil {
		category, err = c.FindFallbackCategoryRepository.FindFallback(userId)
		if err != nil {
			return nil, &ImportRowError{Line: row.Line, Reason: "error resolving fallback category"}
		}
		if category == nil {
			return nil, &ImportRowError{Line: row.Line, Reason: "no category available for this row"}
		}
	}
	categoryId := category.Id

	var accountId primitive.ObjectID
	if row.Account != "" {
		account, err := c.FindAccountByNameRepository.FindByName(row.Account, userId)
		if err != nil {
			return nil, &ImportRowError{Line: row.Line, Reason: "error resolving account"}
		}
		if account == nil {
			return nil, &ImportRowError{Line: row.Line, Reason: fmt.Sprintf("unknown account %q", row.Account)}
		}
		accountId = account.Id
	} else {
		account, err := c.FindFirstAccountRepository.FindFirst(userId)
		if err != nil {
			return nil, &ImportRowError{Line: row.Line, Reason: "error resolving default account"}
		}
		if account == nil {
			return nil, &ImportRowError{Line: row.Line, Reason: "no account available for this row"}
		}
		accountId = account.Id
	}

	var creditCardId *primitive.ObjectID
	if row.CreditCard != "" {
		card, err := c.FindCreditCardByNameRepository.FindByName(row.CreditCard, userId)
		if err != nil {
			return nil, &ImportRowError{Line: row.Line, Reason: "error resolving credit card"}
		}
		if card == nil {
			return nil, &ImportRowError{Line: row.Line, Reason: fmt.Sprintf("unknown credit card %q", row.CreditCard)}
		}
		creditCardId = &card.Id
	}

	isInstallment := ParseStatementBool(row.IsInstallment)
	totalInstallments := 0
	if row.TotalInstallments != "" {
		totalInstallments, err = strconv.Atoi(strings.TrimSpace(row.TotalInstallments))
		if err != nil {
			return nil, &ImportRowError{Line: row.Line, Reason: "invalid installment count"}
		}
	}
	if isInstallment && totalInstallments < 2 {
		return nil, &ImportRowError{Line: row.Line, Reason: "installment rows need a total of at least 2"}
	}

	return &models.Transaction{
		UserId:            userId,
		Type:              txType,
		Amount:            amount,
		Date:              date,
		Description:       description,
		CategoryId:        categoryId,
		AccountId:         accountId,
		CreditCardId:      creditCardId,
		IsInstallment:     isInstallment,
		TotalInstallments: totalInstallments,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}
