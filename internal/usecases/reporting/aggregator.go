package reporting

import (
	"context"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/exchangerate"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/whmcs"
	whmcsdomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/whmcs/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// Aggregator separa as faturas pagas por período e soma os totais em INR
type Aggregator struct {
	whmcsService whmcs.Integrator
	converter    exchangerate.Converter
	calendar     *utils.RegionalCalendar
}

func NewAggregator(whmcsService whmcs.Integrator, converter exchangerate.Converter, calendar *utils.RegionalCalendar) *Aggregator {
	if calendar == nil {
		calendar = utils.NewRegionalCalendar()
	}

	return &Aggregator{
		whmcsService: whmcsService,
		converter:    converter,
		calendar:     calendar,
	}
}

// periodBounds são as datas de corte de uma agregação, todas em YYYY-MM-DD
type periodBounds struct {
	today     string
	yesterday string
	weekStart string
}

// ComputeStats monta os períodos de hoje, ontem e últimos 7 dias.
// Falha ao buscar faturas resulta em períodos vazios.
func (a *Aggregator) ComputeStats(ctx context.Context, recentClients []whmcsdomain.Client) domain.SalesStats {
	logger := log.ForContext(ctx)

	result := a.whmcsService.AllPaidInvoices(ctx)
	if result.Failed() {
		logger.WithError(result.Err()).
			WithField("integration", "whmcs").
			WithField("action", "GetInvoices").
			Warn("aggregator: paid invoices unavailable, using empty list")
	}
	invoices := result.Records()

	bounds := periodBounds{
		today:     a.calendar.Today(),
		yesterday: a.calendar.DaysAgo(1),
		weekStart: a.calendar.DaysAgo(domain.DaysInWeek),
	}

	var todayInvoices, yesterdayInvoices, weekInvoices []whmcsdomain.Invoice
	for _, invoice := range invoices {
		paidDate, ok := a.effectivePaidDate(invoice)
		if !ok {
			continue
		}

		if paidDate == bounds.today {
			todayInvoices = append(todayInvoices, invoice)
		}
		if paidDate == bounds.yesterday {
			yesterdayInvoices = append(yesterdayInvoices, invoice)
		}
		// o limite superior inclusivo faz as faturas de hoje contarem também na semana
		if paidDate >= bounds.weekStart && paidDate <= bounds.today {
			weekInvoices = append(weekInvoices, invoice)
		}
	}

	newUserIDs := whmcsdomain.ClientIDs(recentClients)

	logger.Debugf("aggregator: %d invoices, today=%s yesterday=%s weekStart=%s", len(invoices), bounds.today, bounds.yesterday, bounds.weekStart)

	return domain.SalesStats{
		Today:     a.bucket(ctx, todayInvoices, newUserIDs),
		Yesterday: a.bucket(ctx, yesterdayInvoices, newUserIDs),
		Week:      a.bucket(ctx, weekInvoices, newUserIDs),
	}
}

// effectivePaidDate usa datepaid e, na falta dele, date
func (a *Aggregator) effectivePaidDate(invoice whmcsdomain.Invoice) (string, bool) {
	if paidDate, ok := a.calendar.ParseBillingDate(invoice.DatePaid); ok {
		return paidDate, true
	}
	return a.calendar.ParseBillingDate(invoice.Date)
}

func (a *Aggregator) bucket(ctx context.Context, invoices []whmcsdomain.Invoice, newUserIDs map[int]struct{}) domain.SalesBucket {
	if invoices == nil {
		invoices = []whmcsdomain.Invoice{}
	}

	newUserInvoices := make([]whmcsdomain.Invoice, 0)
	for _, invoice := range invoices {
		if _, ok := newUserIDs[invoice.UserID.Int()]; ok {
			newUserInvoices = append(newUserInvoices, invoice)
		}
	}

	return domain.SalesBucket{
		Total:           a.SumINR(ctx, invoices),
		NewUsers:        a.SumINR(ctx, newUserInvoices),
		Invoices:        invoices,
		NewUserInvoices: newUserInvoices,
	}
}

// SumINR soma as faturas em INR; as demais moedas passam pelo conversor
func (a *Aggregator) SumINR(ctx context.Context, invoices []whmcsdomain.Invoice) float64 {
	var total float64
	for _, invoice := range invoices {
		amount := invoice.Amount()
		currency := invoice.Currency()

		if currency == whmcsdomain.HomeCurrency {
			total += amount
			continue
		}
		total += a.converter.Convert(ctx, amount, currency)
	}
	return total
}
