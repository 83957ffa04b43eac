package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SnapshotIDHeader identifica o snapshot usado para montar a resposta
const SnapshotIDHeader = "X-Snapshot-Id"

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: error encoding response")
	}
}

// writeServiceError converte erros dos serviços no payload padrão de erro
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	logger := log.ForContext(r.Context()).WithError(err)

	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) {
		if apiErrors.StatusFor(reportErr.Code) >= http.StatusInternalServerError {
			logger.Error(message)
		} else {
			logger.Warn(message)
		}
		apiErrors.WriteError(w, reportErr.Code, message, reportErr.Details)
		return
	}

	logger.Error(message)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, err.Error())
}
