package ai

import (
	"fmt"
	"strings"

	"github.com/controlenamao/finance-backend/internal/domain/models"
)

const agentSystemPrompt = `Você é o assistente financeiro do ControleNaMão.
Você ajuda o usuário a registrar transações e ajustar orçamentos usando as
ferramentas disponíveis. Quando o pedido do usuário corresponder a uma
ferramenta, chame a ferramenta com os argumentos extraídos do pedido.
Valores monetários são sempre em reais. Responda sempre em português.`

func buildSuggestCategoryPrompt(description string, categories []models.Category) string {
	var names []string
	for _, category := range categories {
		names = append(names, category.Name)
	}

	return fmt.Sprintf(`Classifique a transação abaixo em uma das categorias do usuário.
Responda apenas com JSON no formato {"category": "<nome>"}.
Se nenhuma categoria servir, use {"category": ""}.

Categorias disponíveis: %s
Descrição da transação: %q`, strings.Join(names, ", "), description)
}

func buildForecastBudgetPrompt(history []CategoryHistory) string {
	var sb strings.Builder
	sb.WriteString("Com base no histórico de gastos mensais por categoria abaixo, ")
	sb.WriteString("projete o gasto do próximo mês para cada categoria.\n")
	sb.WriteString(`Responda apenas com um array JSON de objetos no formato {"categoryName": "<nome>", "forecastAmount": <valor>}.` + "\n\n")

	for _, entry := range history {
		sb.WriteString(fmt.Sprintf("Categoria %q: ", entry.CategoryName))
		for i, total := range entry.MonthlyTotals {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(fmt.Sprintf("%.2f", total))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
