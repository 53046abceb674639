package events

import "context"

// Log es el contrato del log de eventos que consumen los handlers.
// Lo implementa el store del tambo: registrar un evento dispara la
// proyección de estado sobre el animal en la misma mutación.
type Log interface {
	AppendEvent(ctx context.Context, e Event) (Event, error)
	DeleteEvent(ctx context.Context, id int64) error

	EventsByAnimal(animalID string) []Event
}
