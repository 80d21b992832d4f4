package transaction

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// utf8Bom keeps Excel from misreading accented column names
const utf8Bom = "\xef\xbb\xbf"

var exportHeader = []string{
	"Data",
	"Descrição",
	"Valor",
	"Tipo",
	"Categoria",
	"Conta",
	"Cartão de Crédito",
	"É Parcela",
	"Total de Parcelas",
}

// ExportNames resolves the ids stored on transactions to the display names
// the export columns carry.
type ExportNames struct {
	Categories  map[primitive.ObjectID]string
	Accounts    map[primitive.ObjectID]string
	CreditCards map[primitive.ObjectID]string
}

// exportRows converts transactions to export rows, excluding installment
// originals. An original is never itself billed, only its projections are,
// and projections are derived data that would duplicate on re-import.
func exportRows(transactions []models.Transaction, names ExportNames) [][]string {
	rows := make([][]string, 0, len(transactions))
	for _, t := range transactions {
		if t.IsInstallment && t.TotalInstallments > 1 {
			continue
		}

		creditCardName := ""
		if t.CreditCardId != nil {
			creditCardName = names.CreditCards[*t.CreditCardId]
		}

		rows = append(rows, []string{
			t.Date.Format("2006-01-02"),
			t.Description,
			fmt.Sprintf("%.2f", t.Amount),
			t.Type,
			names.Categories[t.CategoryId],
			names.Accounts[t.AccountId],
			creditCardName,
			"Não",
			"",
		})
	}
	return rows
}

// BuildTransactionsCSV renders the export file with a UTF-8 BOM and the
// fixed column set. Field quoting and quote doubling follow RFC 4180 via
// the standard csv writer.
func BuildTransactionsCSV(transactions []models.Transaction, names ExportNames) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(utf8Bom)

	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, row := range exportRows(transactions, names) {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// BuildTransactionsXLSX renders the same export as a single-sheet workbook.
func BuildTransactionsXLSX(transactions []models.Transaction, names ExportNames) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}

	for i, row := range exportRows(transactions, names) {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// ExportFilename names the download after the day it was generated.
func ExportFilename(now time.Time, format string) string {
	return fmt.Sprintf("transacoes-%s.%s", now.Format("2006-01-02"), format)
}
