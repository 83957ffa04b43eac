package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// GetSalesSummary retorna os totais de hoje, ontem e dos últimos 7 dias
func GetSalesSummary(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, snapshotID, err := service.Summary(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Failed to fetch sales statistics")
			return
		}

		w.Header().Set(SnapshotIDHeader, snapshotID)
		writeJSON(w, r, http.StatusOK, summary)
	}
}

// GetRecentUserSales retorna os clientes novos com faturas pagas hoje
func GetRecentUserSales(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, snapshotID, err := service.RecentUserSales(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Failed to fetch recent user sales")
			return
		}

		w.Header().Set(SnapshotIDHeader, snapshotID)
		writeJSON(w, r, http.StatusOK, users)
	}
}

// GetClientInvoices retorna as faturas pagas de um cliente
func GetClientInvoices(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		clientID, err := strconv.Atoi(rawID)
		if err != nil || clientID <= 0 {
			log.ForContext(r.Context()).Warnf("handler: invalid client id %q", rawID)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "client id must be a positive integer", nil)
			return
		}

		invoices, err := service.ClientInvoices(r.Context(), clientID)
		if err != nil {
			writeServiceError(w, r, err, "Failed to fetch client invoices")
			return
		}

		writeJSON(w, r, http.StatusOK, invoices)
	}
}
