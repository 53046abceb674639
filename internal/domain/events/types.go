package events

// Kind es el tipo de evento registrado sobre un animal.
// Los valores literales son los que persiste la app de tambo.
type Kind string

const (
	KindHeat           Kind = "celo"
	KindHealth         Kind = "sanidad"
	KindInsemination   Kind = "inseminacion"
	KindCalving        Kind = "parto"
	KindPregnancyCheck Kind = "tacto"
	KindMilkControl    Kind = "controlLechero"
)

// Known indica si el tipo de evento es uno de los soportados.
func (k Kind) Known() bool {
	switch k {
	case KindHeat, KindHealth, KindInsemination, KindCalving, KindPregnancyCheck, KindMilkControl:
		return true
	}
	return false
}

// Quarter identifica un cuarto de la ubre.
// AI/AD = anterior izquierdo/derecho, PI/PD = posterior izquierdo/derecho.
type Quarter string

const (
	QuarterFrontLeft  Quarter = "AI"
	QuarterFrontRight Quarter = "AD"
	QuarterRearLeft   Quarter = "PI"
	QuarterRearRight  Quarter = "PD"
)

// MastitisGrade es el grado de mastitis (1, 2, 3 o caso clínico).
type MastitisGrade string

const (
	MastitisGrade1        MastitisGrade = "1"
	MastitisGrade2        MastitisGrade = "2"
	MastitisGrade3        MastitisGrade = "3"
	MastitisGradeClinical MastitisGrade = "Clínico"
)

// CheckResult es el resultado de un tacto rectal.
type CheckResult string

const (
	CheckPregnant CheckResult = "Preñada"
	CheckEmpty    CheckResult = "Vacía"
)
