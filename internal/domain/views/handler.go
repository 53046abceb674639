package views

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/herd/groups", groupsHandler(svc))
	r.Get("/herd/medical-hold", medicalHoldHandler(svc))
	r.Get("/herd/heats", activeHeatsHandler(svc))
	r.Get("/alerts", alertsHandler(svc))
	r.Get("/animals/{animalID}/metrics", metricsHandler(svc))
}

// groupsHandler godoc
// @Summary Grupos de manejo
// @Description Particiona el rodeo: secas, en lactancia, a secar (secado sugerido entre 7 días atrás y 15 adelante), próximas a parto (FPP dentro de 15 días) y por raza.
// @Tags views
// @Produce json
// @Success 200 {object} Groups
// @Router /herd/groups [get]
func groupsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Groups())
	}
}

// medicalHoldHandler godoc
// @Summary Retiro de leche vigente
// @Description Animales con algún tratamiento cuya liberación todavía no llegó ("vacas al tacho").
// @Tags views
// @Produce json
// @Success 200 {object} MedicalHold
// @Router /herd/medical-hold [get]
func medicalHoldHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.MedicalHold())
	}
}

// activeHeatsHandler godoc
// @Summary Celos activos
// @Description Celos de menos de un día en animales sin servicio ni preñez, más reciente primero.
// @Tags views
// @Produce json
// @Success 200 {array} ActiveHeat
// @Router /herd/heats [get]
func activeHeatsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.ActiveHeats())
	}
}

// alertsHandler godoc
// @Summary Tablero de alertas
// @Description Feed priorizado: retiros de leche primero, después DEL crítico. Máximo 10 alertas.
// @Tags views
// @Produce json
// @Success 200 {array} Alert
// @Router /alerts [get]
func alertsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Alerts())
	}
}

// metricsHandler godoc
// @Summary Métricas por animal
// @Description DEL, días abierta y edad en meses. Una caravana desconocida devuelve métricas en cero ("sin datos"), no error.
// @Tags views
// @Produce json
// @Param animalID path string true "Caravana"
// @Success 200 {object} herd.Metrics
// @Router /animals/{animalID}/metrics [get]
func metricsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Metrics(chi.URLParam(r, "animalID")))
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
