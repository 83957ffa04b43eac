package domain

import (
	whmcsdomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/whmcs/domain"
)

// SalesBucket agrega as faturas pagas de um período, em INR
type SalesBucket struct {
	Total           float64               `json:"total"`
	NewUsers        float64               `json:"newUsers"`
	Invoices        []whmcsdomain.Invoice `json:"invoices"`
	NewUserInvoices []whmcsdomain.Invoice `json:"newUserInvoices"`
}

// SalesStats são os três períodos calculados a cada agregação.
// Faturas de hoje também entram em Week.
type SalesStats struct {
	Today     SalesBucket `json:"today"`
	Yesterday SalesBucket `json:"yesterday"`
	Week      SalesBucket `json:"week"`
}
