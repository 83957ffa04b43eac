package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// ClearCache descarta o snapshot de vendas em cache
func ClearCache(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		service.ClearCache()

		log.ForContext(r.Context()).Info("handler: sales cache cleared on request")
		writeJSON(w, r, http.StatusOK, map[string]string{
			"message": "Cache cleared successfully",
		})
	}
}
