package main

import (
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func rupees(amount float64) string {
	return "₹" + decimal.NewFromFloat(amount).StringFixed(2)
}

func writePeriod(b *strings.Builder, title string, period domain.PeriodSummary) {
	fmt.Fprintf(b, "\n%s:\n", title)
	fmt.Fprintf(b, "  Total Sales: %s (%d invoices)\n", rupees(period.Total), period.InvoiceCount)
	fmt.Fprintf(b, "  New User Sales: %s (%d invoices)\n", rupees(period.NewUserSales), period.NewUserInvoiceCount)
}

// writeReport imprime o resumo de vendas no formato de console
func writeReport(w io.Writer, summary *domain.SalesSummary, users []domain.RecentUserSales) error {
	var b strings.Builder

	b.WriteString("\nSales Summary:\n")
	b.WriteString("--------------\n")
	fmt.Fprintf(&b, "Recent Users (Last 7 days): %d\n", summary.RecentUsersCount)

	writePeriod(&b, "Today", summary.Today)
	writePeriod(&b, "Yesterday", summary.Yesterday)
	writePeriod(&b, "Last 7 Days", summary.Week.PeriodSummary)
	fmt.Fprintf(&b, "  Daily Average: %s\n", rupees(summary.Week.DailyAverage))

	b.WriteString("\nRecent Users with Today's Sales:\n")
	b.WriteString("-------------------------------\n")
	for _, user := range users {
		fmt.Fprintf(&b, "- %s (%s)\n", user.Name, user.Email)
		fmt.Fprintf(&b, "  Invoices: %d, Total: %s\n", user.InvoiceCount, rupees(user.Total))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeJSONReport(w io.Writer, summary *domain.SalesSummary, users []domain.RecentUserSales) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(map[string]any{
		"summary":     summary,
		"recentUsers": users,
	})
}
