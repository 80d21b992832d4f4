package transaction

import (
	"strings"
	"testing"
	"time"
)

func TestParseStatementAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		wantErr  bool
	}{
		{"1234.56", 1234.56, false},
		{"1.234,56", 1234.56, false},
		{"R$ 1.234,56", 1234.56, false},
		{"R$1,50", 1.50, false},
		{"-50,00", -50.00, false},
		{"45.9", 45.9, false},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatementAmount(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestParseStatementDate(t *testing.T) {
	now := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		input    string
		expected time.Time
	}{
		{"15/01/2024", time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)},
		{"2024-01-15", time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)},
		{"2024/01/15", time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)},
		{"15/01", time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatementDate(tt.input, now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestParseStatementDateRejectsGarbage(t *testing.T) {
	now := time.Now()
	for _, input := range []string{"", "soon", "32/13/2024"} {
		if _, err := ParseStatementDate(input, now); err == nil {
			t.Errorf("expected error for %q, got none", input)
		}
	}
}

func TestParseStatementType(t *testing.T) {
	tests := []struct {
		raw      string
		amount   float64
		expected string
	}{
		{"Despesa", 10, "EXPENSE"},
		{"Receita", 10, "INCOME"},
		{"EXPENSE", 10, "EXPENSE"},
		{"income", 10, "INCOME"},
		{"", -10, "EXPENSE"},
		{"", 10, "INCOME"},
	}

	for _, tt := range tests {
		got, err := ParseStatementType(tt.raw, tt.amount)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tt.raw, err)
		}
		if got != tt.expected {
			t.Errorf("type %q amount %v: expected %s, got %s", tt.raw, tt.amount, tt.expected, got)
		}
	}

	if _, err := ParseStatementType("TRANSFER", 10); err == nil {
		t.Error("expected error for unknown type")
	}
}

func TestParseStatementCSVSemicolonDelimiter(t *testing.T) {
	input := "Data;Descrição;Valor;Tipo\n15/01/2024;Mercado;R$ 150,00;Despesa\n16/01/2024;Salário;5.000,00;Receita\n"

	rows, rowErrors, err := ParseStatementCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rowErrors) != 0 {
		t.Fatalf("expected no row errors, got %v", rowErrors)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	if rows[0].Description != "Mercado" || rows[0].Amount != "R$ 150,00" || rows[0].Type != "Despesa" {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Line != 3 {
		t.Errorf("expected second data row on line 3, got %d", rows[1].Line)
	}
}

func TestParseStatementCSVWithBomAndEnglishHeaders(t *testing.T) {
	input := utf8Bom + "Date,Description,Amount\n2024-01-15,coffee,-4.50\n"

	rows, rowErrors, err := ParseStatementCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rowErrors) != 0 {
		t.Fatalf("expected no row errors, got %v", rowErrors)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Date != "2024-01-15" || rows[0].Amount != "-4.50" {
		t.Errorf("unexpected row: %+v", rows[0])
	}
}

func TestParseStatementCSVReportsBadRows(t *testing.T) {
	input := "Data,Valor\n15/01/2024,100.00\nonly-one-column\n16/01/2024,200.00\n"

	rows, rowErrors, err := ParseStatementCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 good rows, got %d", len(rows))
	}
	if len(rowErrors) != 1 {
		t.Fatalf("expected 1 row error, got %d", len(rowErrors))
	}
	if rowErrors[0].Line != 3 {
		t.Errorf("expected error on line 3, got %d", rowErrors[0].Line)
	}
}

func TestParseStatementCSVMissingRequiredColumns(t *testing.T) {
	input := "Descrição,Categoria\nMercado,Alimentação\n"

	if _, _, err := ParseStatementCSV(strings.NewReader(input)); err == nil {
		t.Fatal("expected error for header without date and amount columns")
	}
}

func TestParseStatementBool(t *testing.T) {
	for _, truthy := range []string{"Sim", "sim", "true", "1", "X"} {
		if !ParseStatementBool(truthy) {
			t.Errorf("expected %q to be true", truthy)
		}
	}
	for _, falsy := range []string{"Não", "nao", "false", "0", ""} {
		if ParseStatementBool(falsy) {
			t.Errorf("expected %q to be false", falsy)
		}
	}
}
