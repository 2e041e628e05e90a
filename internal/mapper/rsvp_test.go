package mapper

import (
	"testing"

	"github.com/mativale/boda-api/internal/dto"
)

func TestSubmissionToRowsSingleAttendee(t *testing.T) {
	sub := dto.RsvpSubmission{
		MainAttendee: dto.Attendee{Name: "Ana", LastName: "Gomez"},
	}

	rows := SubmissionToRows(sub, "30/08/2024, 18:00:00")

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Nombre != "Ana" || rows[0].Apellido != "Gomez" {
		t.Errorf("unexpected main attendee row: %+v", rows[0])
	}
	if rows[0].Transporte != "No" {
		t.Errorf("expected transport token No, got %q", rows[0].Transporte)
	}
}

func TestSubmissionToRowsSharedFields(t *testing.T) {
	sub := dto.RsvpSubmission{
		MainAttendee: dto.Attendee{Name: "Ana", LastName: "Gomez"},
		AdditionalAttendees: []dto.Attendee{
			{Name: "Lucía", LastName: "Pérez", NeedsTransport: true},
			{Name: "Martín", LastName: "Díaz", NeedsTransport: true},
		},
		SpecialRequests: "menú vegetariano",
	}

	rows := SubmissionToRows(sub, "30/08/2024, 18:00:00")

	if len(rows) != 1+len(sub.AdditionalAttendees) {
		t.Fatalf("expected %d rows, got %d", 1+len(sub.AdditionalAttendees), len(rows))
	}

	for i, r := range rows {
		if r.FechaHora != "30/08/2024, 18:00:00" {
			t.Errorf("row %d timestamp differs: %q", i, r.FechaHora)
		}
		if r.SolicitudesEspeciales != "menú vegetariano" {
			t.Errorf("row %d special requests differ: %q", i, r.SolicitudesEspeciales)
		}
	}

	// companions keep their input order after the main attendee
	if rows[1].Nombre != "Lucía" || rows[2].Nombre != "Martín" {
		t.Errorf("companion order not preserved: %q, %q", rows[1].Nombre, rows[2].Nombre)
	}

	if rows[0].Transporte != "No" || rows[1].Transporte != "Sí" || rows[2].Transporte != "Sí" {
		t.Errorf("unexpected transport tokens: %q %q %q", rows[0].Transporte, rows[1].Transporte, rows[2].Transporte)
	}
}

func TestRowValuesColumnOrder(t *testing.T) {
	sub := dto.RsvpSubmission{
		MainAttendee: dto.Attendee{
			Name:           "Ana",
			LastName:       "Gomez",
			PhoneNumber:    "+54 11 1234-5678",
			NeedsTransport: true,
		},
		SpecialRequests: "sin sal",
	}

	values := SubmissionToRows(sub, "ts")[0].Values()

	expected := []interface{}{"ts", "Ana", "Gomez", "+54 11 1234-5678", "sin sal", "Sí"}
	if len(values) != len(expected) {
		t.Fatalf("expected %d columns, got %d", len(expected), len(values))
	}
	for i := range expected {
		if values[i] != expected[i] {
			t.Errorf("column %d: expected %v, got %v", i, expected[i], values[i])
		}
	}
}
