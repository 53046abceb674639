package events

import "time"

// Event es el registro inmutable de algo que le pasó a un animal.
// Cada tipo de evento lleva su detalle en un campo propio; el resto queda
// en nil, así no se pueden mezclar campos de sanidad con los de tacto.
type Event struct {
	ID       int64  `json:"id"`
	AnimalID string `json:"cowId"`

	Kind  Kind      `json:"tipo"`
	Date  time.Time `json:"fecha"`
	Notes string    `json:"detalle"`

	Health   *HealthDetail   `json:"sanidad,omitempty"`
	Breeding *BreedingDetail `json:"servicio,omitempty"`
	Check    *CheckDetail    `json:"tacto,omitempty"`
	Milk     *MilkDetail     `json:"controlLechero,omitempty"`
}

// HealthDetail acompaña un evento de sanidad (típicamente mastitis).
// ReleaseDate es la fecha de liberación de la leche: Date + WithdrawalDays.
type HealthDetail struct {
	MastitisGrade MastitisGrade `json:"gradoMastitis,omitempty"`
	Quarters      []Quarter     `json:"cuartos,omitempty"`
	Drug          string        `json:"medicamento,omitempty"`

	WithdrawalDays int        `json:"diasRetiro"`
	ReleaseDate    *time.Time `json:"fechaLiberacion,omitempty"`
}

// BreedingDetail acompaña una inseminación.
type BreedingDetail struct {
	Bull        string `json:"toro,omitempty"`
	Inseminator string `json:"inseminador,omitempty"`
}

// CheckDetail acompaña un tacto.
type CheckDetail struct {
	Result          CheckResult `json:"resultadoTacto"`
	GestationMonths int         `json:"mesesGestacion,omitempty"`
}

// MilkDetail acompaña un control lechero.
type MilkDetail struct {
	Liters     float64 `json:"litros"`
	FatPct     float64 `json:"grasa"`
	ProteinPct float64 `json:"proteina"`
}
