package domain

import "github.com/vfg2006/sales-dashboard-api/pkg/utils"

// DaysInWeek é o divisor da média diária da semana
const DaysInWeek = 7

type PeriodSummary struct {
	Total               float64 `json:"total"`
	InvoiceCount        int     `json:"invoiceCount"`
	NewUserSales        float64 `json:"newUserSales"`
	NewUserInvoiceCount int     `json:"newUserInvoiceCount"`
}

type WeekSummary struct {
	PeriodSummary
	DailyAverage float64 `json:"dailyAverage"`
}

// SalesSummary é a resposta de GET /api/sales/summary
type SalesSummary struct {
	RecentUsersCount int           `json:"recentUsersCount"`
	Today            PeriodSummary `json:"today"`
	Yesterday        PeriodSummary `json:"yesterday"`
	Week             WeekSummary   `json:"week"`
}

func NewPeriodSummary(bucket SalesBucket) PeriodSummary {
	return PeriodSummary{
		Total:               utils.RoundWithTwoDecimalPlace(bucket.Total),
		InvoiceCount:        len(bucket.Invoices),
		NewUserSales:        utils.RoundWithTwoDecimalPlace(bucket.NewUsers),
		NewUserInvoiceCount: len(bucket.NewUserInvoices),
	}
}

// NewSalesSummary arredonda os totais para duas casas e calcula a média diária
func NewSalesSummary(recentUsersCount int, stats SalesStats) SalesSummary {
	return SalesSummary{
		RecentUsersCount: recentUsersCount,
		Today:            NewPeriodSummary(stats.Today),
		Yesterday:        NewPeriodSummary(stats.Yesterday),
		Week: WeekSummary{
			PeriodSummary: NewPeriodSummary(stats.Week),
			DailyAverage:  utils.RoundWithTwoDecimalPlace(stats.Week.Total / DaysInWeek),
		},
	}
}
