package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"tambo-herd/internal/domain/events"
	"tambo-herd/internal/domain/herd"
	"tambo-herd/internal/platform/logger"
	"tambo-herd/internal/ports/snapshot"
)

// Store es el dueño único del rodeo y del log de eventos. Un solo escritor:
// todas las mutaciones se serializan detrás del mutex y persisten la foto
// completa antes de devolver el control. Las lecturas son consistentes entre
// sí pero nunca corren junto a una mutación pendiente.
//
// Invariantes de orden:
//   - animals conserva el orden de alta; sobrescribir una caravana la mueve
//     al final (igual que la app original).
//   - events está ordenado más reciente primero (se agrega adelante).
type Store struct {
	mu      sync.RWMutex
	animals []herd.Animal
	events  []events.Event
	locked  bool

	snap snapshot.Store // puede ser nil (modo volátil, solo memoria)
	log  logger.Logger
	now  func() time.Time
}

type Options struct {
	Snapshot snapshot.Store
	Logger   logger.Logger
}

func New(opts Options) *Store {
	lg := opts.Logger
	if lg == nil {
		lg = logger.New(logger.Options{})
	}
	return &Store{
		locked: true,
		snap:   opts.Snapshot,
		log:    lg,
		now:    time.Now,
	}
}

// Load carga la foto persistida al arrancar. Sin puerto de persistencia el
// store arranca vacío y candado puesto.
func (s *Store) Load(ctx context.Context) error {
	if s.snap == nil {
		return nil
	}

	snap, err := s.snap.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.animals = snap.Animals
	s.events = snap.Events
	s.locked = snap.Locked

	s.log.Info("snapshot cargado", map[string]any{
		"animals": len(s.animals),
		"events":  len(s.events),
		"locked":  s.locked,
	})
	return nil
}

// AddAnimal registra un animal. Si la caravana ya existe, la sobrescribe
// (y la mueve al final del orden de alta).
func (s *Store) AddAnimal(ctx context.Context, a herd.Animal) error {
	if strings.TrimSpace(a.ID) == "" {
		return herd.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.upsertLocked(a)
	return s.saveLocked(ctx)
}

// BulkAddAnimals registra un lote ya validado (importación masiva). Valida
// todo antes de tocar estado: un lote con una caravana vacía no aplica nada.
func (s *Store) BulkAddAnimals(ctx context.Context, batch []herd.Animal) error {
	for _, a := range batch {
		if strings.TrimSpace(a.ID) == "" {
			return herd.ErrInvalidInput
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range batch {
		s.upsertLocked(a)
	}
	return s.saveLocked(ctx)
}

func (s *Store) upsertLocked(a herd.Animal) {
	if a.Repro == "" {
		a.Repro = herd.ReproEmpty
	}
	if a.Lactation == "" {
		a.Lactation = herd.Dry
	}

	out := s.animals[:0]
	for _, cur := range s.animals {
		if cur.ID != a.ID {
			out = append(out, cur)
		}
	}
	s.animals = append(out, a)
}

// DeleteAnimal borra el animal y, en cascada, todos sus eventos.
// Es idempotente: borrar una caravana desconocida no es error.
func (s *Store) DeleteAnimal(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	as := s.animals[:0]
	for _, a := range s.animals {
		if a.ID != id {
			as = append(as, a)
		}
	}
	s.animals = as

	es := s.events[:0]
	for _, e := range s.events {
		if e.AnimalID != id {
			es = append(es, e)
		}
	}
	s.events = es

	return s.saveLocked(ctx)
}

// AppendEvent valida, agrega el evento al frente del log y proyecta el
// estado siguiente del animal, todo en la misma mutación. Un evento sobre
// una caravana no registrada se rechaza sin tocar nada.
func (s *Store) AppendEvent(ctx context.Context, e events.Event) (events.Event, error) {
	if err := e.Validate(); err != nil {
		return events.Event{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(e.AnimalID)
	if idx < 0 {
		return events.Event{}, events.ErrUnknownAnimal
	}

	if e.ID == 0 {
		e.ID = s.nextEventIDLocked()
	}

	// Liberación de leche: fecha del evento + días de retiro.
	if e.Health != nil && e.Health.WithdrawalDays > 0 && e.Health.ReleaseDate == nil {
		rel := e.Date.AddDate(0, 0, e.Health.WithdrawalDays)
		e.Health.ReleaseDate = &rel
	}

	s.events = append([]events.Event{e}, s.events...)
	s.animals[idx] = herd.Apply(s.animals[idx], e)

	if err := s.saveLocked(ctx); err != nil {
		return events.Event{}, err
	}
	return e, nil
}

// nextEventIDLocked usa el reloj en milisegundos como identificador y lo
// empuja por encima del máximo existente si dos eventos caen en el mismo ms.
func (s *Store) nextEventIDLocked() int64 {
	id := s.now().UnixMilli()
	var max int64
	for _, e := range s.events {
		if e.ID > max {
			max = e.ID
		}
	}
	if id <= max {
		id = max + 1
	}
	return id
}

// DeleteEvent borra un evento por identificador. Idempotente. No revierte
// la proyección: el estado del animal es la fuente de verdad viva.
func (s *Store) DeleteEvent(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.events[:0]
	for _, e := range s.events {
		if e.ID != id {
			out = append(out, e)
		}
	}
	s.events = out

	return s.saveLocked(ctx)
}

// GetAnimal devuelve el animal por caravana.
func (s *Store) GetAnimal(id string) (herd.Animal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx := s.indexOfLocked(id); idx >= 0 {
		return s.animals[idx], true
	}
	return herd.Animal{}, false
}

// Animals devuelve el rodeo completo en orden de alta.
func (s *Store) Animals() []herd.Animal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]herd.Animal, len(s.animals))
	copy(out, s.animals)
	return out
}

// Events devuelve el log completo, más reciente primero.
func (s *Store) Events() []events.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]events.Event, len(s.events))
	copy(out, s.events)
	return out
}

// EventsByAnimal devuelve los eventos de una caravana, más reciente primero.
func (s *Store) EventsByAnimal(id string) []events.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]events.Event, 0)
	for _, e := range s.events {
		if e.AnimalID == id {
			out = append(out, e)
		}
	}
	return out
}

// Locked informa el estado del candado de edición.
func (s *Store) Locked() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locked
}

// ToggleLock invierte el candado de edición y persiste el cambio.
func (s *Store) ToggleLock(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.locked = !s.locked
	return s.locked, s.saveLocked(ctx)
}

// ClearAll borra rodeo y eventos. Con el candado puesto no hace nada.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locked {
		s.log.Warn("wipe ignorado: candado puesto", nil)
		return nil
	}

	s.animals = nil
	s.events = nil
	return s.saveLocked(ctx)
}

func (s *Store) indexOfLocked(id string) int {
	for i, a := range s.animals {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// saveLocked persiste la foto completa. Se llama con el mutex tomado, así
// la próxima mutación recién entra cuando esta terminó de guardar.
func (s *Store) saveLocked(ctx context.Context) error {
	if s.snap == nil {
		return nil
	}

	snap := snapshot.Snapshot{
		Animals: make([]herd.Animal, len(s.animals)),
		Events:  make([]events.Event, len(s.events)),
		Locked:  s.locked,
	}
	copy(snap.Animals, s.animals)
	copy(snap.Events, s.events)

	if err := s.snap.Save(ctx, snap); err != nil {
		s.log.Error("no se pudo guardar el snapshot", map[string]any{"err": err.Error()})
		return err
	}
	return nil
}
