package events

import (
	"errors"
	"strings"
)

var (
	ErrValidation = errors.New("invalid event")

	// ErrUnknownAnimal: el evento referencia una caravana no registrada.
	ErrUnknownAnimal = errors.New("unknown animal")
)

// Validate chequea los campos obligatorios y que el detalle corresponda al
// tipo de evento. No toca estado: un evento rechazado acá nunca llega al log.
func (e Event) Validate() error {
	if strings.TrimSpace(e.AnimalID) == "" {
		return ErrValidation
	}
	if !e.Kind.Known() {
		return ErrValidation
	}
	if e.Date.IsZero() {
		return ErrValidation
	}

	// Detalles cruzados con otro tipo de evento
	if e.Health != nil && e.Kind != KindHealth {
		return ErrValidation
	}
	if e.Breeding != nil && e.Kind != KindInsemination {
		return ErrValidation
	}
	if e.Check != nil && e.Kind != KindPregnancyCheck {
		return ErrValidation
	}
	if e.Milk != nil && e.Kind != KindMilkControl {
		return ErrValidation
	}

	if e.Kind == KindPregnancyCheck {
		if e.Check == nil {
			return ErrValidation
		}
		if e.Check.Result != CheckPregnant && e.Check.Result != CheckEmpty {
			return ErrValidation
		}
		if e.Check.GestationMonths < 0 {
			return ErrValidation
		}
	}

	if e.Health != nil {
		if e.Health.WithdrawalDays < 0 {
			return ErrValidation
		}
		// Invariante: liberación = fecha + días de retiro.
		if e.Health.ReleaseDate != nil &&
			!e.Health.ReleaseDate.Equal(e.Date.AddDate(0, 0, e.Health.WithdrawalDays)) {
			return ErrValidation
		}
		for _, q := range e.Health.Quarters {
			switch q {
			case QuarterFrontLeft, QuarterFrontRight, QuarterRearLeft, QuarterRearRight:
			default:
				return ErrValidation
			}
		}
	}

	return nil
}
