package router

import (
	"encoding/json"
	"net/http"

	"tambo-herd/internal/store"

	"github.com/go-chi/chi/v5"
)

// Rutas de administración de la sesión: candado de edición y wipe total.
func registerAdminRoutes(r chi.Router, st *store.Store) {
	r.Post("/lock/toggle", func(w http.ResponseWriter, r *http.Request) {
		locked, err := st.ToggleLock(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]bool{"locked": locked})
	})

	// Con el candado puesto el wipe no hace nada: el guardia vive en el core.
	r.Post("/admin/wipe", func(w http.ResponseWriter, r *http.Request) {
		if err := st.ClearAll(r.Context()); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}
