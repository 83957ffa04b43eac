package reporting

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/exchangerate"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/whmcs"
	whmcsdomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/whmcs/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/metrics"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

var _ Reporter = (*Service)(nil)

type Service struct {
	whmcsService whmcs.Integrator
	converter    exchangerate.Converter
	aggregator   StatsComputer
	cache        *SnapshotCache
	calendar     *utils.RegionalCalendar
	now          func() time.Time
	newID        func() (string, error)
}

func NewService(
	cfg *config.Config,
	whmcsService whmcs.Integrator,
	converter exchangerate.Converter,
	calendar *utils.RegionalCalendar,
	m *metrics.Metrics,
) *Service {
	if calendar == nil {
		calendar = utils.NewRegionalCalendar()
	}

	return &Service{
		whmcsService: whmcsService,
		converter:    converter,
		aggregator:   NewAggregator(whmcsService, converter, calendar),
		cache:        NewSnapshotCache(cfg.Cache.SalesTTL, m),
		calendar:     calendar,
		now:          time.Now,
		newID:        utils.GenerateID,
	}
}

// Snapshot retorna o snapshot em cache ou agrega um novo
func (s *Service) Snapshot(ctx context.Context) (*domain.SalesSnapshot, error) {
	return s.cache.GetOrRefresh(ctx, s.Refresh)
}

// Refresh busca os clientes recentes e as faturas pagas e agrega os períodos
func (s *Service) Refresh(ctx context.Context) (*domain.SalesSnapshot, error) {
	logger := log.ForContext(ctx)

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(ErrRefreshAborted, err.Error())
	}

	started := s.now()

	clients := s.whmcsService.RecentClients(ctx)
	if clients.Failed() {
		logger.WithError(clients.Err()).
			WithField("integration", "whmcs").
			WithField("action", "GetClients").
			Warn("reporting: recent clients unavailable, using empty list")
	}
	recentClients := clients.Records()

	stats := s.aggregator.ComputeStats(ctx, recentClients)

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(ErrRefreshAborted, err.Error())
	}

	id, err := s.newID()
	if err != nil {
		return nil, errors.Wrap(err, "reporting: generate snapshot id")
	}

	snapshot := &domain.SalesSnapshot{
		ID:            id,
		RecentClients: recentClients,
		Stats:         stats,
		FetchedAt:     s.now(),
	}

	logger.WithFields(log.Fields{
		"snapshot_id":        snapshot.ID,
		"cache_recent_users": len(recentClients),
		"cache_today_count":  len(stats.Today.Invoices),
		"cache_week_count":   len(stats.Week.Invoices),
		"cache_refresh_ms":   snapshot.FetchedAt.Sub(started).Milliseconds(),
	}).Info("reporting: sales snapshot refreshed")

	return snapshot, nil
}

// Summary monta o resumo de vendas a partir do snapshot
func (s *Service) Summary(ctx context.Context) (*domain.SalesSummary, string, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, "", NewReportError(err, apiErrors.ErrInternalServer, "Failed to fetch sales statistics")
	}

	summary := domain.NewSalesSummary(len(snapshot.RecentClients), snapshot.Stats)
	return &summary, snapshot.ID, nil
}

// RecentUserSales lista os clientes novos que têm faturas pagas hoje
func (s *Service) RecentUserSales(ctx context.Context) ([]domain.RecentUserSales, string, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, "", NewReportError(err, apiErrors.ErrInternalServer, "Failed to fetch sales statistics")
	}

	users := make([]domain.RecentUserSales, 0)
	for _, client := range snapshot.RecentClients {
		invoices := whmcsdomain.InvoicesOfClient(snapshot.Stats.Today.Invoices, client.ID.Int())
		if len(invoices) == 0 {
			continue
		}

		var total float64
		for _, invoice := range invoices {
			total += invoice.Amount()
		}

		users = append(users, domain.RecentUserSales{
			Name:         client.FullName(),
			Email:        client.Email,
			InvoiceCount: len(invoices),
			Total:        utils.RoundWithTwoDecimalPlace(total),
			TotalINR:     utils.RoundWithTwoDecimalPlace(s.aggregator.SumINR(ctx, invoices)),
		})
	}

	return users, snapshot.ID, nil
}

// ClientInvoices lista as faturas pagas de um cliente, sem passar pelo cache
func (s *Service) ClientInvoices(ctx context.Context, clientID int) (*domain.ClientInvoices, error) {
	if clientID <= 0 {
		return nil, NewReportError(ErrInvalidClientID, apiErrors.ErrInvalidRequest, "")
	}

	result := s.whmcsService.InvoicesForClient(ctx, clientID)
	if result.Failed() {
		log.ForContext(ctx).
			WithError(result.Err()).
			WithField("integration", "whmcs").
			WithField("action", "GetInvoices").
			Warnf("reporting: invoices of client %d unavailable, using empty list", clientID)
	}

	response := &domain.ClientInvoices{
		ClientID: clientID,
		Invoices: make([]domain.ClientInvoice, 0, len(result.Records())),
	}

	var totalINR float64
	for _, invoice := range result.Records() {
		amountINR := s.aggregator.SumINR(ctx, []whmcsdomain.Invoice{invoice})
		datePaid, _ := s.calendar.ParseBillingDate(invoice.DatePaid)

		response.Invoices = append(response.Invoices, domain.ClientInvoice{
			ID:         invoice.ID.Int(),
			InvoiceNum: invoice.InvoiceNum,
			DatePaid:   datePaid,
			Currency:   invoice.Currency(),
			Total:      utils.RoundWithTwoDecimalPlace(invoice.Amount()),
			TotalINR:   utils.RoundWithTwoDecimalPlace(amountINR),
		})
		totalINR += amountINR
	}

	response.InvoiceCount = len(response.Invoices)
	response.TotalINR = utils.RoundWithTwoDecimalPlace(totalINR)

	return response, nil
}

// ClearCache descarta o snapshot; a próxima leitura agrega de novo
func (s *Service) ClearCache() {
	s.cache.Clear()
	log.L.Info("reporting: sales cache cleared")
}

// WarmCache agrega um snapshot e o guarda, a menos que o cache tenha sido limpo no meio
func (s *Service) WarmCache(ctx context.Context) (*domain.SalesSnapshot, error) {
	generation := s.cache.Generation()

	snapshot, err := s.Refresh(ctx)
	if err != nil {
		return nil, err
	}

	if !s.cache.Store(generation, snapshot) {
		log.ForContext(ctx).WithField("snapshot_id", snapshot.ID).Debug("reporting: cache cleared during warm-up, snapshot discarded")
	}

	return snapshot, nil
}
