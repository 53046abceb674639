package herd

import (
	"context"
	"errors"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Registry es el contrato del padrón de animales que consumen los handlers.
// Lo implementa el store del tambo.
type Registry interface {
	AddAnimal(ctx context.Context, a Animal) error
	BulkAddAnimals(ctx context.Context, batch []Animal) error
	DeleteAnimal(ctx context.Context, id string) error

	GetAnimal(id string) (Animal, bool)
	Animals() []Animal
}
