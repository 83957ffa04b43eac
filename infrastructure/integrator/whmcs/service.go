package whmcs

import (
	"context"

	whmcsdomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/whmcs/domain"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/whmcs/whmcsclient"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/pkg/metrics"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const (
	integrationName = "whmcs"

	// janela usada para considerar um cliente como novo
	RecentClientsWindowDays = 7

	defaultClientsLimit  = 250
	defaultInvoicesLimit = 1000

	invoiceStatusPaid = "Paid"
)

// Integrator é a fronteira com o WHMCS vista pelo resto da aplicação.
// Nenhum método retorna erro: falhas vêm marcadas dentro do Result.
type Integrator interface {
	RecentClients(ctx context.Context) Result[whmcsdomain.Client]
	InvoicesForClient(ctx context.Context, clientID int) Result[whmcsdomain.Invoice]
	AllPaidInvoices(ctx context.Context) Result[whmcsdomain.Invoice]
}

type WHMCSService struct {
	cfg      config.WHMCS
	Client   whmcsclient.Client
	calendar *utils.RegionalCalendar
	metrics  *metrics.Metrics
}

func New(cfg *config.Config, client whmcsclient.Client, calendar *utils.RegionalCalendar, m *metrics.Metrics) Integrator {
	if calendar == nil {
		calendar = utils.NewRegionalCalendar()
	}

	return &WHMCSService{
		cfg:      cfg.WHMCS,
		Client:   client,
		calendar: calendar,
		metrics:  m,
	}
}

// RecentClients busca os clientes mais recentes e mantém os criados nos últimos 7 dias
func (s *WHMCSService) RecentClients(ctx context.Context) Result[whmcsdomain.Client] {
	resp, err := s.Client.GetClients(ctx, whmcsclient.GetClientsParams{
		Sorting:  "DESC",
		OrderBy:  "id",
		LimitNum: limitOrDefault(s.cfg.ClientsLimit, defaultClientsLimit),
	})
	if err != nil {
		return failed[whmcsdomain.Client](s, "GetClients", err)
	}
	s.metrics.IntegrationCall(integrationName, "GetClients", metrics.OutcomeSuccess)

	weekStart := s.calendar.DaysAgo(RecentClientsWindowDays)
	recent := make([]whmcsdomain.Client, 0, len(resp.Clients.Client))
	for _, client := range resp.Clients.Client {
		created, ok := s.calendar.ParseBillingDate(client.DateCreated)
		if ok && created >= weekStart {
			recent = append(recent, client)
		}
	}

	return Success(recent)
}

// InvoicesForClient busca as faturas pagas de um cliente, sem as de total não positivo
func (s *WHMCSService) InvoicesForClient(ctx context.Context, clientID int) Result[whmcsdomain.Invoice] {
	resp, err := s.Client.GetInvoices(ctx, whmcsclient.GetInvoicesParams{
		Status: invoiceStatusPaid,
		UserID: clientID,
	})
	if err != nil {
		return failed[whmcsdomain.Invoice](s, "GetInvoices", err)
	}
	s.metrics.IntegrationCall(integrationName, "GetInvoices", metrics.OutcomeSuccess)

	invoices := make([]whmcsdomain.Invoice, 0, len(resp.Invoices.Invoice))
	for _, invoice := range resp.Invoices.Invoice {
		if invoice.Amount() > 0 {
			invoices = append(invoices, invoice)
		}
	}

	return Success(invoices)
}

// AllPaidInvoices busca as faturas pagas mais recentes de todos os clientes
func (s *WHMCSService) AllPaidInvoices(ctx context.Context) Result[whmcsdomain.Invoice] {
	resp, err := s.Client.GetInvoices(ctx, whmcsclient.GetInvoicesParams{
		Status:     invoiceStatusPaid,
		OrderBy:    "id",
		Order:      "desc",
		LimitNum:   limitOrDefault(s.cfg.InvoicesLimit, defaultInvoicesLimit),
		LimitStart: 0,
	})
	if err != nil {
		return failed[whmcsdomain.Invoice](s, "GetInvoices", err)
	}
	s.metrics.IntegrationCall(integrationName, "GetInvoices", metrics.OutcomeSuccess)

	return Success([]whmcsdomain.Invoice(resp.Invoices.Invoice))
}

func failed[T any](s *WHMCSService, action string, err error) Result[T] {
	s.metrics.IntegrationCall(integrationName, action, metrics.OutcomeFailure)
	return Failed[T](err)
}

func limitOrDefault(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	return limit
}
