package views

import (
	"fmt"
	"time"

	"tambo-herd/internal/domain/events"
	"tambo-herd/internal/domain/herd"
	"tambo-herd/internal/platform/dates"
	"tambo-herd/internal/store"
)

// Umbrales operativos del tambo.
const (
	dryOffLeadDays = 60  // secado sugerido: 60 días antes de la FPP
	calvingWindow  = 15  // "próxima a parto": FPP dentro de 15 días
	criticalDEL    = 300 // DEL sin preñez que dispara alerta
	maxAlerts      = 10
)

// Service calcula las vistas derivadas sobre el estado actual del rodeo.
// Todas son consultas puras: se recalculan en cada llamada y nunca fallan
// por colecciones vacías.
type Service struct {
	store *store.Store
	now   func() time.Time
}

func NewService(st *store.Store) *Service {
	return &Service{
		store: st,
		now:   time.Now,
	}
}

// MedicalHold lista los animales con retiro de leche vigente: al menos un
// evento de sanidad con fecha de liberación estrictamente posterior a ahora.
// Un animal con varios tratamientos superpuestos aparece una sola vez.
func (s *Service) MedicalHold() MedicalHold {
	now := s.now()

	held := make([]string, 0)
	seen := map[string]bool{}

	for _, e := range s.store.Events() {
		if e.Kind != events.KindHealth || e.Health == nil || e.Health.ReleaseDate == nil {
			continue
		}
		if !e.Health.ReleaseDate.After(now) {
			continue
		}
		if !seen[e.AnimalID] {
			seen[e.AnimalID] = true
			held = append(held, e.AnimalID)
		}
	}

	return MedicalHold{InTreatment: len(held), AnimalIDs: held}
}

// Groups arma los grupos de manejo del día.
func (s *Service) Groups() Groups {
	now := s.now()

	g := Groups{
		Dry:        make([]herd.Animal, 0),
		Lactating:  make([]herd.Animal, 0),
		DueToDry:   make([]herd.Animal, 0),
		DueToCalve: make([]herd.Animal, 0),
		ByBreed:    map[herd.Breed][]herd.Animal{},
	}

	for _, a := range s.store.Animals() {
		if a.Lactation == herd.Dry {
			g.Dry = append(g.Dry, a)
		}
		if a.Lactation == herd.Lactating {
			g.Lactating = append(g.Lactating, a)
		}
		g.ByBreed[a.Breed] = append(g.ByBreed[a.Breed], a)

		if a.DueDate == nil {
			continue
		}

		daysToCalving := dates.DiffDays(*a.DueDate, now)
		if daysToCalving >= 0 && daysToCalving <= calvingWindow {
			g.DueToCalve = append(g.DueToCalve, a)
		}

		dryOffAt := dates.AddDays(*a.DueDate, -dryOffLeadDays)
		daysToDryOff := dates.DiffDays(dryOffAt, now)
		if daysToDryOff >= -7 && daysToDryOff <= calvingWindow && a.Lactation == herd.Lactating {
			g.DueToDry = append(g.DueToDry, a)
		}
	}

	return g
}

// Metrics calcula DEL, días abierta y edad en meses para un animal. Una
// caravana desconocida devuelve métricas en cero: el llamador lo trata como
// "sin datos", no como error.
func (s *Service) Metrics(animalID string) herd.Metrics {
	a, ok := s.store.GetAnimal(animalID)
	if !ok {
		return herd.Metrics{}
	}

	now := s.now()

	var del int
	if a.LastCalving != nil {
		del = dates.DiffDays(now, *a.LastCalving)
	}

	var open int
	if a.LastCalving != nil {
		if a.Repro == herd.ReproPregnant {
			// El log va de más reciente a más viejo: el primer servicio
			// que aparece es el último que se hizo.
			for _, e := range s.store.EventsByAnimal(animalID) {
				if e.Kind == events.KindInsemination {
					open = dates.DiffDays(e.Date, *a.LastCalving)
					break
				}
			}
		} else {
			open = del
		}
	}

	return herd.Metrics{
		DaysInMilk: del,
		DaysOpen:   open,
		AgeMonths:  dates.DiffMonths(now, a.BirthDate),
	}
}

// ActiveHeats devuelve los celos de menos de un día (truncado a días
// enteros) de animales que no están inseminados ni preñados.
func (s *Service) ActiveHeats() []ActiveHeat {
	now := s.now()

	out := make([]ActiveHeat, 0)
	for _, e := range s.store.Events() {
		if e.Kind != events.KindHeat {
			continue
		}
		if dates.DiffDays(now, e.Date) >= 1 {
			continue
		}
		a, ok := s.store.GetAnimal(e.AnimalID)
		if !ok {
			continue
		}
		if a.Repro == herd.ReproInseminated || a.Repro == herd.ReproPregnant {
			continue
		}
		out = append(out, ActiveHeat{Animal: a, Event: e})
	}
	return out
}

// Alerts arma el tablero priorizado: primero retiros de leche vigentes,
// después DEL crítico sin preñez. Se corta en las primeras 10.
func (s *Service) Alerts() []Alert {
	now := s.now()
	out := make([]Alert, 0)

	// 1. Retiro de leche
	for _, e := range s.store.Events() {
		if e.Kind != events.KindHealth || e.Health == nil || e.Health.ReleaseDate == nil {
			continue
		}
		rel := *e.Health.ReleaseDate
		if !rel.After(now) {
			continue
		}
		out = append(out, Alert{
			ID:       fmt.Sprintf("retiro-%d", e.ID),
			Severity: SeverityUrgent,
			Message:  fmt.Sprintf("Vaca %s - ORDEÑAR AL TACHO", e.AnimalID),
			Action:   fmt.Sprintf("Liberación: %s", rel.Format("02/01")),
			Link:     "/cows/" + e.AnimalID,
		})
	}

	// 2. DEL crítico (en lactancia, sin preñez confirmada)
	for _, a := range s.store.Animals() {
		m := s.Metrics(a.ID)
		if m.DaysInMilk > criticalDEL && a.Repro != herd.ReproPregnant && a.Lactation == herd.Lactating {
			out = append(out, Alert{
				ID:       "del-alto-" + a.ID,
				Severity: SeverityUrgent,
				Message:  fmt.Sprintf("Vaca %s - DEL CRÍTICO (%d días)", a.ID, m.DaysInMilk),
				Action:   "REVISAR POR QUÉ NO PREÑA",
				Link:     "/cows/" + a.ID,
			})
		}
	}

	if len(out) > maxAlerts {
		out = out[:maxAlerts]
	}
	return out
}
