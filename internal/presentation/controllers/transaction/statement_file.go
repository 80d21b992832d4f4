package transaction

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ImportRowError reports why a single file row was rejected. The row keeps
// its 1-based line number from the original file, header included.
type ImportRowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// StatementRow is one parsed line of an imported statement file, with the
// column values already mapped to canonical keys.
type StatementRow struct {
	Line              int
	Date              string
	Description       string
	Amount            string
	Type              string
	Category          string
	Account           string
	CreditCard        string
	IsInstallment     string
	TotalInstallments string
}

// column vocabulary accepted in file headers, normalized form
var headerVocabulary = map[string]string{
	"data":              "date",
	"date":              "date",
	"descricao":         "description",
	"description":       "description",
	"historico":         "description",
	"valor":             "amount",
	"amount":            "amount",
	"value":             "amount",
	"tipo":              "type",
	"type":              "type",
	"categoria":         "category",
	"category":          "category",
	"conta":             "account",
	"account":           "account",
	"cartao de credito": "credit_card",
	"cartao":            "credit_card",
	"credit card":       "credit_card",
	"e parcela":         "is_installment",
	"parcelado":         "is_installment",
	"installment":       "is_installment",
	"total de parcelas": "total_installments",
	"parcelas":          "total_installments",
	"installments":      "total_installments",
}

var accentReplacer = strings.NewReplacer(
	"á", "a", "à", "a", "ã", "a", "â", "a",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "õ", "o", "ô", "o",
	"ú", "u",
	"ç", "c",
)

func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\uFEFF")
	h = strings.ReplaceAll(h, "\"", "")
	h = strings.ToLower(strings.TrimSpace(h))
	return accentReplacer.Replace(h)
}

// detectDelimiter picks between semicolon and comma by whichever splits the
// header line into more fields. Brazilian bank exports commonly use
// semicolons because the decimal separator is a comma.
func detectDelimiter(headerLine string) rune {
	if strings.Count(headerLine, ";") > strings.Count(headerLine, ",") {
		return ';'
	}
	return ','
}

// ParseStatementCSV reads a statement CSV and maps every data line to a
// StatementRow. Lines whose field count does not match the header are
// reported as row errors, never silently dropped.
func ParseStatementCSV(r io.Reader) ([]StatementRow, []ImportRowError, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}

	firstLine := string(content)
	if idx := bytes.IndexByte(content, '\n'); idx >= 0 {
		firstLine = string(content[:idx])
	}

	cr := csv.NewReader(bytes.NewReader(content))
	cr.Comma = detectDelimiter(firstLine)
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("csv header: %w", err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = headerVocabulary[normalizeHeader(h)]
	}
	if !containsColumn(columns, "date") || !containsColumn(columns, "amount") {
		return nil, nil, fmt.Errorf("csv header must contain at least date and amount columns")
	}

	var rows []StatementRow
	var rowErrors []ImportRowError
	line := 1
	for {
		line++
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrors = append(rowErrors, ImportRowError{Line: line, Reason: "malformed csv line"})
			continue
		}
		if len(record) != len(header) {
			rowErrors = append(rowErrors, ImportRowError{Line: line, Reason: "wrong number of columns"})
			continue
		}

		rows = append(rows, buildRow(line, columns, record))
	}

	return rows, rowErrors, nil
}

// ParseStatementXLSX reads the first sheet of an XLSX workbook using the
// same header vocabulary as the CSV path.
func ParseStatementXLSX(r io.Reader) ([]StatementRow, []ImportRowError, error) {
	buf := bytes.NewBuffer(nil)
	if _, err := io.Copy(buf, r); err != nil {
		return nil, nil, fmt.Errorf("copy xlsx: %w", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return nil, nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rowsIter, err := f.Rows(sheet)
	if err != nil {
		return nil, nil, err
	}

	if !rowsIter.Next() {
		return nil, nil, fmt.Errorf("xlsx empty sheet")
	}
	header, _ := rowsIter.Columns()

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = headerVocabulary[normalizeHeader(h)]
	}
	if !containsColumn(columns, "date") || !containsColumn(columns, "amount") {
		return nil, nil, fmt.Errorf("xlsx header must contain at least date and amount columns")
	}

	var rows []StatementRow
	var rowErrors []ImportRowError
	line := 1
	for rowsIter.Next() {
		line++
		cols, _ := rowsIter.Columns()
		record := make([]string, len(header))
		for i := range header {
			if i < len(cols) {
				record[i] = cols[i]
			}
		}
		rows = append(rows, buildRow(line, columns, record))
	}

	return rows, rowErrors, nil
}

func containsColumn(columns []string, key string) bool {
	for _, c := range columns {
		if c == key {
			return true
		}
	}
	return false
}

func buildRow(line int, columns []string, record []string) StatementRow {
	row := StatementRow{Line: line}
	for i, key := range columns {
		value := strings.TrimSpace(record[i])
		switch key {
		case "date":
			row.Date = value
		case "description":
			row.Description = value
		case "amount":
			row.Amount = value
		case "type":
			row.Type = value
		case "category":
			row.Category = value
		case "account":
			row.Account = value
		case "credit_card":
			row.CreditCard = value
		case "is_installment":
			row.IsInstallment = value
		case "total_installments":
			row.TotalInstallments = value
		}
	}
	return row
}

// ParseStatementAmount handles the common Brazilian formats: an optional
// "R$" prefix, dots as thousands separators and a comma as the decimal
// separator. Plain "1234.56" still parses.
func ParseStatementAmount(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimPrefix(s, "r$")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")

	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("unrecognized amount %q", raw)
	}
	return value, nil
}

var statementDateLayouts = []string{
	"02/01/2006",
	"2006-01-02",
	"2006/01/02",
	"02/01/2006 15:04:05",
	"02-01-2006",
}

// ParseStatementDate tries the supported layouts in order. A bare "dd/MM"
// is completed with the current year. A row with an unparseable date is an
// error for the caller to report; there is no fallback to today.
func ParseStatementDate(raw string, now time.Time) (time.Time, error) {
	s := strings.TrimSpace(raw)
	for _, layout := range statementDateLayouts {
		if date, err := time.Parse(layout, s); err == nil {
			return date, nil
		}
	}
	if date, err := time.Parse("02/01", s); err == nil {
		return time.Date(now.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}

// ParseStatementType maps the Tipo column to INCOME or EXPENSE. When the
// column is absent the sign of the amount decides, negative meaning expense.
func ParseStatementType(raw string, amount float64) (string, error) {
	switch normalizeHeader(raw) {
	case "income", "receita", "entrada", "credito":
		return "INCOME", nil
	case "expense", "despesa", "saida", "debito":
		return "EXPENSE", nil
	case "":
		if amount < 0 {
			return "EXPENSE", nil
		}
		return "INCOME", nil
	}
	return "", fmt.Errorf("unrecognized transaction type %q", raw)
}

// ParseStatementBool accepts the values spreadsheet exports commonly use
// for boolean columns.
func ParseStatementBool(raw string) bool {
	switch normalizeHeader(raw) {
	case "sim", "yes", "true", "1", "x":
		return true
	}
	return false
}
