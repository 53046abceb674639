package herd

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, reg Registry) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(reg))
		ar.Post("/bulk", bulkAddHandler(reg))
		ar.Get("/", listAnimalsHandler(reg))
		ar.Get("/{animalID}", getAnimalHandler(reg))
		ar.Delete("/{animalID}", deleteAnimalHandler(reg))
	})
}

// animalRequest es el cuerpo para dar de alta (o sobrescribir) un animal.
// Las fechas aceptan RFC3339 o solo fecha (2006-01-02).
type animalRequest struct {
	ID string `json:"id"`
	RP string `json:"rp"`

	Breed    Breed    `json:"raza" enums:"Holando,Jersey,Cruza"`
	Category Category `json:"categoria" enums:"Ternera,Vaquillona,Vaca"`

	BirthDate string `json:"fechaNacimiento"`
	Sire      string `json:"padre"`
	Dam       string `json:"madre"`

	Lactation LactationStatus `json:"estado" enums:"Lactancia,Seca"`
	Repro     ReproStatus     `json:"estadoRepro" enums:"Vacía,Inseminada,Preñada"`

	LastCalving   string `json:"ultimoParto"`
	TotalCalvings int    `json:"partosTotales"`
}

func (req animalRequest) toAnimal() (Animal, error) {
	a := Animal{
		ID:            req.ID,
		RP:            req.RP,
		Breed:         req.Breed,
		Category:      req.Category,
		Sire:          req.Sire,
		Dam:           req.Dam,
		Lactation:     req.Lactation,
		Repro:         req.Repro,
		TotalCalvings: req.TotalCalvings,
	}

	if req.BirthDate != "" {
		t, err := parseFecha(req.BirthDate)
		if err != nil {
			return Animal{}, err
		}
		a.BirthDate = t
	}
	if req.LastCalving != "" {
		t, err := parseFecha(req.LastCalving)
		if err != nil {
			return Animal{}, err
		}
		a.LastCalving = &t
	}

	switch req.Breed {
	case "", BreedHolando, BreedJersey, BreedCruza:
	default:
		return Animal{}, ErrInvalidInput
	}
	switch req.Category {
	case "", CategoryCalf, CategoryHeifer, CategoryCow:
	default:
		return Animal{}, ErrInvalidInput
	}
	switch req.Lactation {
	case "", Lactating, Dry:
	default:
		return Animal{}, ErrInvalidInput
	}
	switch req.Repro {
	case "", ReproEmpty, ReproInseminated, ReproPregnant:
	default:
		return Animal{}, ErrInvalidInput
	}

	return a, nil
}

// createAnimalHandler godoc
// @Summary Registrar animal
// @Description Da de alta un animal por caravana. Si la caravana ya existe, sobrescribe el registro.
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body animalRequest true "Datos del animal"
// @Success 201 {object} Animal
// @Failure 400 {string} string "invalid json / caravana vacía / enum inválido"
// @Router /animals [post]
func createAnimalHandler(reg Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req animalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := req.toAnimal()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := reg.AddAnimal(r.Context(), a); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		stored, _ := reg.GetAnimal(a.ID)
		writeJSON(w, http.StatusCreated, stored)
	}
}

// bulkAddHandler godoc
// @Summary Alta masiva de animales
// @Description Registra un lote de animales ya validados (importación). Sobrescribe caravanas repetidas. Rechaza el lote entero si algún registro es inválido.
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body []animalRequest true "Lote de animales"
// @Success 201 {object} map[string]int
// @Failure 400 {string} string "invalid json / registro inválido"
// @Router /animals/bulk [post]
func bulkAddHandler(reg Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var reqs []animalRequest
		if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		batch := make([]Animal, 0, len(reqs))
		for _, req := range reqs {
			a, err := req.toAnimal()
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			batch = append(batch, a)
		}

		if err := reg.BulkAddAnimals(r.Context(), batch); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]int{"added": len(batch)})
	}
}

// listAnimalsHandler godoc
// @Summary Listar el rodeo
// @Description Devuelve todos los animales en orden de alta.
// @Tags animals
// @Produce json
// @Success 200 {array} Animal
// @Router /animals [get]
func listAnimalsHandler(reg Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, reg.Animals())
	}
}

// getAnimalHandler godoc
// @Summary Consultar un animal
// @Tags animals
// @Produce json
// @Param animalID path string true "Caravana"
// @Success 200 {object} Animal
// @Failure 404 {string} string "animal not found"
// @Router /animals/{animalID} [get]
func getAnimalHandler(reg Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := reg.GetAnimal(chi.URLParam(r, "animalID"))
		if !ok {
			http.Error(w, "animal not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, a)
	}
}

// deleteAnimalHandler godoc
// @Summary Borrar un animal
// @Description Borra el animal y todos sus eventos (cascada). Idempotente.
// @Tags animals
// @Param animalID path string true "Caravana"
// @Success 204 {string} string "sin contenido"
// @Router /animals/{animalID} [delete]
func deleteAnimalHandler(reg Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := reg.DeleteAnimal(r.Context(), chi.URLParam(r, "animalID")); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func parseFecha(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, errors.New("fecha must be RFC3339 or 2006-01-02")
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
