package breeding

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router) {
	r.Get("/breeding/advice", adviceHandler())
}

// adviceHandler godoc
// @Summary Recomendación de inseminación (regla AM-PM)
// @Description Dado el momento de detección del celo, sugiere cuándo inseminar: celo AM → hoy 18:00-20:00, celo PM → mañana 06:00-08:00.
// @Tags breeding
// @Produce json
// @Param heat query string true "Momento de detección del celo (RFC3339)"
// @Success 200 {object} Recommendation
// @Failure 400 {string} string "heat inválido"
// @Router /breeding/advice [get]
func adviceHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		heatAt, err := time.Parse(time.RFC3339, r.URL.Query().Get("heat"))
		if err != nil {
			http.Error(w, "heat must be RFC3339", http.StatusBadRequest)
			return
		}

		rec, err := Recommend(heatAt)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, rec)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
