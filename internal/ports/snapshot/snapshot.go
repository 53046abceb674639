package snapshot

import (
	"context"

	"tambo-herd/internal/domain/events"
	"tambo-herd/internal/domain/herd"
)

// Snapshot es la foto completa del estado del tambo: las dos colecciones
// (animales por caravana, eventos más reciente primero) más el candado de
// edición. Se reescribe entera después de cada mutación; no hay escrituras
// parciales ni versionado de esquema.
type Snapshot struct {
	Animals []herd.Animal  `json:"cows"`
	Events  []events.Event `json:"events"`
	Locked  bool           `json:"locked"`
}

// Empty es el estado inicial cuando no hay nada persistido.
// El candado arranca puesto.
func Empty() Snapshot {
	return Snapshot{Locked: true}
}

// Store es el puerto de persistencia que el motor exige: cargar al arrancar,
// guardar después de cada mutación. Si no hay datos, Load devuelve Empty().
type Store interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, s Snapshot) error
}
