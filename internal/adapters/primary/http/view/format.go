package view

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"salary-predictor-service/internal/core/domain"
)

var printer = message.NewPrinter(language.English)

// FormatCurrency renders a whole amount with thousands separators,
// e.g. "₹ 1,234,567".
func FormatCurrency(symbol string, amount int64) string {
	if symbol == "" {
		return printer.Sprintf("%d", amount)
	}
	return printer.Sprintf("%s %d", symbol, amount)
}

type SummaryRow struct {
	Label string
	Value string
}

// Summary lists the submitted fields in the order the form shows them.
func Summary(q domain.EmployeeQuery) []SummaryRow {
	return []SummaryRow{
		{Label: "Age", Value: fmt.Sprint(q.Age)},
		{Label: "Education", Value: string(q.Education)},
		{Label: "Job Role", Value: string(q.JobRole)},
		{Label: "Prior Experience", Value: years(q.PriorExperience)},
		{Label: "Current Experience", Value: years(q.CurrentExperience)},
		{Label: "Total Experience", Value: years(q.TotalExperience())},
	}
}

func years(n int) string {
	return fmt.Sprintf("%d years", n)
}
