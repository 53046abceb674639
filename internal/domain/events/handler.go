package events

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, log Log) {
	r.Post("/animals/{animalID}/events", appendEventHandler(log))
	r.Get("/animals/{animalID}/events", listEventsHandler(log))
	r.Delete("/events/{eventID}", deleteEventHandler(log))
}

// createEventRequest es el cuerpo para registrar un evento. El detalle tiene
// que corresponder al tipo: un "tacto" con datos de sanidad se rechaza.
type createEventRequest struct {
	Kind  Kind   `json:"tipo" enums:"celo,sanidad,inseminacion,parto,tacto,controlLechero"`
	Date  string `json:"fecha"` // RFC3339
	Notes string `json:"detalle"`

	Health   *HealthDetail   `json:"sanidad,omitempty"`
	Breeding *BreedingDetail `json:"servicio,omitempty"`
	Check    *CheckDetail    `json:"tacto,omitempty"`
	Milk     *MilkDetail     `json:"controlLechero,omitempty"`
}

// appendEventHandler godoc
// @Summary Registrar evento
// @Description Agrega un evento al log del animal y actualiza su estado reproductivo/productivo en la misma operación. La fecha de liberación de leche se calcula sola a partir de los días de retiro.
// @Tags events
// @Accept json
// @Produce json
// @Param animalID path string true "Caravana"
// @Param payload body createEventRequest true "Datos del evento; fecha en RFC3339"
// @Success 201 {object} Event
// @Failure 400 {string} string "invalid json / fecha inválida / detalle no corresponde al tipo"
// @Failure 404 {string} string "animal not found"
// @Router /animals/{animalID}/events [post]
func appendEventHandler(log Log) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		t, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			http.Error(w, "fecha must be RFC3339", http.StatusBadRequest)
			return
		}

		e, err := log.AppendEvent(r.Context(), Event{
			AnimalID: chi.URLParam(r, "animalID"),
			Kind:     req.Kind,
			Date:     t,
			Notes:    req.Notes,
			Health:   req.Health,
			Breeding: req.Breeding,
			Check:    req.Check,
			Milk:     req.Milk,
		})
		if errors.Is(err, ErrUnknownAnimal) {
			http.Error(w, "animal not found", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, e)
	}
}

// listEventsHandler godoc
// @Summary Listar eventos de un animal
// @Description Devuelve el historial del animal, más reciente primero.
// @Tags events
// @Produce json
// @Param animalID path string true "Caravana"
// @Success 200 {array} Event
// @Router /animals/{animalID}/events [get]
func listEventsHandler(log Log) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, log.EventsByAnimal(chi.URLParam(r, "animalID")))
	}
}

// deleteEventHandler godoc
// @Summary Borrar evento
// @Description Borra un evento por identificador. Idempotente; no revierte la proyección ya aplicada.
// @Tags events
// @Param eventID path int true "ID del evento"
// @Success 204 {string} string "sin contenido"
// @Failure 400 {string} string "id inválido"
// @Router /events/{eventID} [delete]
func deleteEventHandler(log Log) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid event id", http.StatusBadRequest)
			return
		}
		if err := log.DeleteEvent(r.Context(), id); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
