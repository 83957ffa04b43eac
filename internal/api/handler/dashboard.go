package handler

import (
	"io/fs"
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

const indexPath = "templates/index.html"

// DashboardPage serve a página do dashboard
func DashboardPage(templates fs.FS) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := fs.ReadFile(templates, indexPath)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("dashboard: index page not embedded")
			http.Error(w, "dashboard unavailable", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		_, _ = w.Write(page)
	}
}

// DashboardAssets serve os arquivos de static/ sob /static/
func DashboardAssets(static fs.FS) http.Handler {
	assets, err := fs.Sub(static, "static")
	if err != nil {
		return http.NotFoundHandler()
	}
	return http.StripPrefix("/static", http.FileServer(http.FS(assets)))
}
