package handler

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
)

// WebPage serve uma página do cliente web a partir do diretório de templates
func WebPage(templatesDir, name string) http.Handler {
	path := filepath.Join(templatesDir, name)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Página não encontrada", map[string]string{"page": name})
			return
		}

		http.ServeFile(w, r, path)
	})
}

// NotFound responde rotas inexistentes com o envelope de erro da API
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", map[string]string{"path": r.URL.Path})
	})
}
