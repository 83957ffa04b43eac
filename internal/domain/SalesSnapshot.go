package domain

import (
	"time"

	whmcsdomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/whmcs/domain"
)

// SalesSnapshot é o valor guardado no cache de respostas
type SalesSnapshot struct {
	ID            string
	RecentClients []whmcsdomain.Client
	Stats         SalesStats
	FetchedAt     time.Time
}
