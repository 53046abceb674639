package herd

import (
	"tambo-herd/internal/domain/events"
	"tambo-herd/internal/platform/dates"
)

// GestationDays es la duración estándar de la gestación bovina usada para
// proyectar la fecha probable de parto desde una inseminación.
const GestationDays = 283

// Apply proyecta un evento recién registrado sobre el estado actual del
// animal y devuelve el estado siguiente. Es una función pura: el que llama
// guarda el resultado. Se aplica exactamente una vez por evento, en el orden
// en que se registran.
func Apply(a Animal, e events.Event) Animal {
	switch e.Kind {
	case events.KindInsemination:
		a.Repro = ReproInseminated
		due := dates.AddDays(e.Date, GestationDays)
		a.DueDate = &due

	case events.KindPregnancyCheck:
		if e.Check != nil && e.Check.Result == events.CheckPregnant {
			a.Repro = ReproPregnant
			if e.Check.GestationMonths > 0 {
				a.PregnancyDays = e.Check.GestationMonths * 30
			}
		} else {
			a.Repro = ReproEmpty
			a.DueDate = nil
			a.PregnancyDays = 0
		}

	case events.KindCalving:
		a.Repro = ReproEmpty
		a.Lactation = Lactating
		calved := e.Date
		a.LastCalving = &calved
		a.TotalCalvings++
		a.DueDate = nil
		a.PregnancyDays = 0

	case events.KindHeat:
		// Celo en una preñada: posible aborto o error de tacto.
		if a.Repro == ReproPregnant {
			a.Repro = ReproEmpty
		}
	}

	// sanidad y controlLechero no tocan el estado reproductivo:
	// sus datos viven solo en el evento.
	return a
}
