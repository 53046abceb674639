package herd

import "time"

// Breed define las razas lecheras soportadas.
// @Enum Holando, Jersey, Cruza
type Breed string

const (
	BreedHolando Breed = "Holando"
	BreedJersey  Breed = "Jersey"
	BreedCruza   Breed = "Cruza"
)

// Category define la categoría del animal según edad/estado productivo.
// @Enum Ternera, Vaquillona, Vaca
type Category string

const (
	CategoryCalf   Category = "Ternera"
	CategoryHeifer Category = "Vaquillona"
	CategoryCow    Category = "Vaca"
)

// LactationStatus indica si el animal está en ordeñe o seco.
type LactationStatus string

const (
	Lactating LactationStatus = "Lactancia"
	Dry       LactationStatus = "Seca"
)

// ReproStatus es el estado reproductivo. Solo lo muta el proyector de
// eventos: Vacía -> Inseminada -> Preñada -> Vacía (parto).
type ReproStatus string

const (
	ReproEmpty       ReproStatus = "Vacía"
	ReproInseminated ReproStatus = "Inseminada"
	ReproPregnant    ReproStatus = "Preñada"
)

// Animal es el registro vivo de una vaca del tambo. La caravana (ID) es la
// clave primaria. DueDate es la fecha probable de parto (FPP), derivada de la
// última inseminación; vale nil cuando el estado reproductivo es Vacía.
type Animal struct {
	ID string `json:"id"` // caravana
	RP string `json:"rp,omitempty"`

	Breed    Breed    `json:"raza"`
	Category Category `json:"categoria"`

	BirthDate time.Time `json:"fechaNacimiento"`
	Sire      string    `json:"padre,omitempty"`
	Dam       string    `json:"madre,omitempty"`

	Lactation LactationStatus `json:"estado"`
	Repro     ReproStatus     `json:"estadoRepro"`

	LastCalving   *time.Time `json:"ultimoParto,omitempty"`
	TotalCalvings int        `json:"partosTotales"`

	DueDate       *time.Time `json:"fpp,omitempty"`
	PregnancyDays int        `json:"diasPreñez,omitempty"`
}

// Metrics son los indicadores por animal que se recalculan en cada consulta.
type Metrics struct {
	DaysInMilk int `json:"del"`
	DaysOpen   int `json:"diasAbierta"`
	AgeMonths  int `json:"edadMeses"`
}
