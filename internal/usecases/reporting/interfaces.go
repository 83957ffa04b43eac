package reporting

import (
	"context"

	whmcsdomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/whmcs/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// StatsComputer agrega as faturas pagas nos períodos de hoje, ontem e semana
type StatsComputer interface {
	// ComputeStats busca as faturas pagas e monta os três períodos
	ComputeStats(ctx context.Context, recentClients []whmcsdomain.Client) domain.SalesStats

	// SumINR soma os totais das faturas convertidos para INR
	SumINR(ctx context.Context, invoices []whmcsdomain.Invoice) float64
}

// Reporter é o serviço consumido pelos handlers HTTP e pelo agendador
type Reporter interface {
	// Snapshot retorna o snapshot em cache ou agrega um novo
	Snapshot(ctx context.Context) (*domain.SalesSnapshot, error)

	// Summary retorna o resumo de vendas e o ID do snapshot usado
	Summary(ctx context.Context) (*domain.SalesSummary, string, error)

	// RecentUserSales retorna os clientes novos com vendas hoje e o ID do snapshot usado
	RecentUserSales(ctx context.Context) ([]domain.RecentUserSales, string, error)

	// ClientInvoices lista as faturas pagas de um cliente com totais em INR
	ClientInvoices(ctx context.Context, clientID int) (*domain.ClientInvoices, error)

	// Refresh agrega um snapshot novo, sem consultar o cache
	Refresh(ctx context.Context) (*domain.SalesSnapshot, error)

	// ClearCache descarta o snapshot em cache
	ClearCache()

	// WarmCache agrega um snapshot novo e o coloca no cache
	WarmCache(ctx context.Context) (*domain.SalesSnapshot, error)
}
