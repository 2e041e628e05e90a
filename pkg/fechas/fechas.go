// Package fechas formats dates for the invitation site: submission
// timestamps in the Buenos Aires zone and the wedding date in es-AR
// long form.
package fechas

import (
	"fmt"
	"time"
)

const timestampLayout = "02/01/2006, 15:04:05"

var buenosAires *time.Location

func init() {
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	if err != nil {
		// Argentina has no DST, a fixed offset is equivalent.
		loc = time.FixedZone("-03", -3*60*60)
	}
	buenosAires = loc
}

var weekdays = [...]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

var months = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// Timestamp renders t as the spreadsheet timestamp, e.g.
// "30/08/2024, 18:00:00".
func Timestamp(t time.Time) string {
	return t.In(buenosAires).Format(timestampLayout)
}

// FormatLongDate renders t in es-AR long form, e.g.
// "viernes, 30 de agosto de 2024".
func FormatLongDate(t time.Time) string {
	t = t.In(buenosAires)
	return fmt.Sprintf("%s, %d de %s de %d",
		weekdays[t.Weekday()], t.Day(), months[t.Month()-1], t.Year())
}

// DaysUntil returns the number of whole days from now until the event,
// rounded up and never negative.
func DaysUntil(event, now time.Time) int {
	diff := event.Sub(now)
	if diff <= 0 {
		return 0
	}
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// IsPassed reports whether the event date is behind us.
func IsPassed(event, now time.Time) bool {
	return now.After(event)
}
