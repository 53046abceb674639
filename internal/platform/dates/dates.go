package dates

import "time"

// DiffDays devuelve la cantidad de días completos entre a y b (a - b),
// truncando hacia cero. Un celo de hace 23 horas da 0 días.
func DiffDays(a, b time.Time) int {
	return int(a.Sub(b).Hours() / 24)
}

// DiffMonths devuelve la cantidad de meses calendario completos entre a y b.
// Se ajusta por día del mes: del 31/01 al 28/02 todavía no pasó un mes entero.
func DiffMonths(a, b time.Time) int {
	months := (a.Year()-b.Year())*12 + int(a.Month()) - int(b.Month())
	if months > 0 && a.Day() < b.Day() {
		months--
	}
	if months < 0 && a.Day() > b.Day() {
		months++
	}
	return months
}

// AddDays suma n días calendario (maneja fin de mes y de año).
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// AtHour devuelve el mismo día calendario de t a la hora indicada en punto,
// conservando la zona horaria.
func AtHour(t time.Time, hour int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, t.Location())
}
