package breeding

import (
	"errors"
	"time"

	"tambo-herd/internal/platform/dates"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Colores de alerta para la UI: ámbar = actuar hoy, azul = actuar mañana.
const (
	colorToday    = "#ff9800"
	colorTomorrow = "#2196f3"
)

// Recommendation es la sugerencia de inseminación derivada de un celo.
type Recommendation struct {
	Action        string    `json:"accion"`
	TimeRange     string    `json:"rangoHorario"`
	SuggestedDate time.Time `json:"fechaSugerida"`
	AlertColor    string    `json:"colorAlerta"`
}

// Recommend aplica la regla AM-PM sobre la hora local de detección del celo:
//   - AM (< 12:00): inseminar HOY a la tarde, 18:00 - 20:00.
//   - PM (>= 12:00): inseminar MAÑANA a la mañana, 06:00 - 08:00.
//
// Es determinística y sin efectos; las 12:00 exactas caen en la rama PM.
func Recommend(heatAt time.Time) (Recommendation, error) {
	if heatAt.IsZero() {
		return Recommendation{}, ErrInvalidInput
	}

	if heatAt.Hour() < 12 {
		return Recommendation{
			Action:        "Inseminar HOY a la Tarde",
			TimeRange:     "18:00 - 20:00 hs",
			SuggestedDate: dates.AtHour(heatAt, 18),
			AlertColor:    colorToday,
		}, nil
	}

	// El día siguiente se calcula con aritmética calendaria:
	// un celo PM el 31 sugiere el 1 del mes que viene.
	next := dates.AddDays(heatAt, 1)
	return Recommendation{
		Action:        "Inseminar MAÑANA a la Mañana",
		TimeRange:     "06:00 - 08:00 hs",
		SuggestedDate: dates.AtHour(next, 6),
		AlertColor:    colorTomorrow,
	}, nil
}
