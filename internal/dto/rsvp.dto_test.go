package dto

import "testing"

func TestTotalAttendeesIsDerived(t *testing.T) {
	sub := RsvpSubmission{MainAttendee: Attendee{Name: "Ana", LastName: "Gomez"}}

	if got := sub.TotalAttendees(); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}

	sub.AdditionalAttendees = []Attendee{{Name: "Lucía", LastName: "Pérez"}, {Name: "Martín", LastName: "Díaz"}}

	if got := sub.TotalAttendees(); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
}

func TestRefine(t *testing.T) {
	sub := RsvpSubmission{MainAttendee: Attendee{Name: "Ana", LastName: "Gomez"}}

	if fe := sub.Refine(); fe != nil {
		t.Errorf("expected no refinement error, got %+v", fe)
	}

	sub.MainAttendee.Name = "   "

	fe := sub.Refine()
	if fe == nil {
		t.Fatal("expected refinement error for blank name")
	}
	if fe.Path != "mainAttendee" {
		t.Errorf("expected path mainAttendee, got %q", fe.Path)
	}
}
