package views

import (
	"tambo-herd/internal/domain/events"
	"tambo-herd/internal/domain/herd"
)

// MedicalHold resume qué animales están "al tacho": con algún tratamiento
// cuya liberación de leche todavía no llegó.
type MedicalHold struct {
	InTreatment int      `json:"enTratamiento"`
	AnimalIDs   []string `json:"vacasAlTacho"`
}

// Groups particiona el rodeo para el trabajo diario. Un animal puede caer en
// varios grupos a la vez (en lactancia y a secar, por ejemplo).
type Groups struct {
	Dry        []herd.Animal `json:"secas"`
	Lactating  []herd.Animal `json:"lactancia"`
	DueToDry   []herd.Animal `json:"aSecar"`
	DueToCalve []herd.Animal `json:"proximasParto"`

	ByBreed map[herd.Breed][]herd.Animal `json:"porRaza"`
}

// ActiveHeat es un celo vigente: detectado hace menos de un día en un animal
// que todavía no fue servido.
type ActiveHeat struct {
	Animal herd.Animal  `json:"cow"`
	Event  events.Event `json:"event"`
}

// Severity clasifica las alertas del tablero.
type Severity string

const (
	SeverityUrgent    Severity = "urgente"
	SeverityAttention Severity = "atencion"
	SeverityInfo      Severity = "info"
)

// Alert es un aviso efímero del tablero: se regenera en cada consulta,
// nunca se persiste.
type Alert struct {
	ID       string   `json:"id"`
	Severity Severity `json:"tipo"`
	Message  string   `json:"mensaje"`
	Action   string   `json:"accion"`
	Link     string   `json:"link"`
}
