package transaction

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func exportFixture() ([]models.Transaction, ExportNames) {
	categoryId := primitive.NewObjectID()
	accountId := primitive.NewObjectID()
	cardId := primitive.NewObjectID()

	names := ExportNames{
		Categories:  map[primitive.ObjectID]string{categoryId: "Alimentação"},
		Accounts:    map[primitive.ObjectID]string{accountId: "Conta Corrente"},
		CreditCards: map[primitive.ObjectID]string{cardId: "Nubank"},
	}

	transactions := []models.Transaction{
		{
			Id:          primitive.NewObjectID(),
			Type:        "EXPENSE",
			Amount:      150.00,
			Date:        time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			Description: `Mercado "da esquina"`,
			CategoryId:  categoryId,
			AccountId:   accountId,
		},
		{
			Id:           primitive.NewObjectID(),
			Type:         "EXPENSE",
			Amount:       45.90,
			Date:         time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC),
			Description:  "Almoço, com vírgula",
			CategoryId:   categoryId,
			AccountId:    accountId,
			CreditCardId: &cardId,
		},
		{
			// installment original, must not be exported
			Id:                primitive.NewObjectID(),
			Type:              "EXPENSE",
			Amount:            1200.00,
			Date:              time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
			Description:       "Notebook",
			CategoryId:        categoryId,
			AccountId:         accountId,
			CreditCardId:      &cardId,
			IsInstallment:     true,
			TotalInstallments: 12,
		},
	}

	return transactions, names
}

func TestBuildTransactionsCSV(t *testing.T) {
	transactions, names := exportFixture()

	content, err := BuildTransactionsCSV(transactions, names)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bytes.HasPrefix(content, []byte(utf8Bom)) {
		t.Error("expected csv to start with a UTF-8 BOM")
	}

	lines := strings.Split(strings.TrimRight(string(content[len(utf8Bom):]), "\n"), "\n")
	if lines[0] != "Data,Descrição,Valor,Tipo,Categoria,Conta,Cartão de Crédito,É Parcela,Total de Parcelas" {
		t.Errorf("unexpected header: %q", lines[0])
	}

	// 2 rows survive; the installment original is excluded
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}

	if !strings.HasPrefix(lines[1], "2024-01-15,") {
		t.Errorf("expected ISO date at start of row, got %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "2024-01-16,") {
		t.Errorf("expected ISO date at start of row, got %q", lines[2])
	}
	if !strings.Contains(lines[1], `"Mercado ""da esquina"""`) {
		t.Errorf("expected doubled quotes in description, got %q", lines[1])
	}
	if !strings.Contains(lines[2], `"Almoço, com vírgula"`) {
		t.Errorf("expected quoted description with comma, got %q", lines[2])
	}
	if !strings.Contains(lines[2], "Nubank") {
		t.Errorf("expected credit card name on row, got %q", lines[2])
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	transactions, names := exportFixture()

	content, err := BuildTransactionsCSV(transactions, names)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, rowErrors, err := ParseStatementCSV(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if len(rowErrors) != 0 {
		t.Fatalf("expected no row errors, got %v", rowErrors)
	}

	// both non-installment rows come back intact
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows after round trip, got %d", len(rows))
	}

	now := time.Now()
	for _, row := range rows {
		date, err := ParseStatementDate(row.Date, now)
		if err != nil {
			t.Errorf("exported date %q does not re-parse: %v", row.Date, err)
		} else if got := date.Format("2006-01-02"); got != row.Date {
			t.Errorf("exported date %q re-parsed to %q, expected ISO form to survive", row.Date, got)
		}
		if _, err := ParseStatementAmount(row.Amount); err != nil {
			t.Errorf("exported amount %q does not re-parse: %v", row.Amount, err)
		}
		if _, err := ParseStatementType(row.Type, 1); err != nil {
			t.Errorf("exported type %q does not re-parse: %v", row.Type, err)
		}
	}

	if rows[0].Description != `Mercado "da esquina"` {
		t.Errorf("description lost quoting on round trip: %q", rows[0].Description)
	}
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC)
	if got := ExportFilename(now, "csv"); got != "transacoes-2024-03-05.csv" {
		t.Errorf("unexpected filename %q", got)
	}
	if got := ExportFilename(now, "xlsx"); got != "transacoes-2024-03-05.xlsx" {
		t.Errorf("unexpected filename %q", got)
	}
}
