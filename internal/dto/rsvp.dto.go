package dto

import "strings"

// Attendee is one person covered by a confirmation. The `nombre` and
// `celular` binding tags are custom validators registered on the gin
// binding engine.
type Attendee struct {
	Name           string `json:"name" binding:"required,min=2,max=50,nombre"`
	LastName       string `json:"lastName" binding:"required,min=2,max=50,nombre"`
	PhoneNumber    string `json:"phoneNumber" binding:"omitempty,celular"`
	NeedsTransport bool   `json:"needsTransport"`
}

// RsvpSubmission is the full form payload. totalAttendees is derived,
// never taken from the client.
type RsvpSubmission struct {
	MainAttendee        Attendee   `json:"mainAttendee" binding:"required"`
	AdditionalAttendees []Attendee `json:"additionalAttendees" binding:"omitempty,dive"`
	SpecialRequests     string     `json:"specialRequests" binding:"omitempty,max=500"`
}

// FieldError is one entry of the `errors` list on a 400 response.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (s *RsvpSubmission) TotalAttendees() int {
	return 1 + len(s.AdditionalAttendees)
}

// Refine rejects a main attendee whose name or last name is blank
// after trimming. The min-length rule already covers this; the guard
// is kept on top of it on purpose.
func (s *RsvpSubmission) Refine() *FieldError {
	if strings.TrimSpace(s.MainAttendee.Name) == "" || strings.TrimSpace(s.MainAttendee.LastName) == "" {
		return &FieldError{
			Path:    "mainAttendee",
			Message: "Debe completar al menos el nombre y apellido del asistente principal",
		}
	}
	return nil
}

type RsvpReceiptDto struct {
	TotalAttendees int    `json:"totalAttendees"`
	Timestamp      string `json:"timestamp"`
}

type RsvpSuccessResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    RsvpReceiptDto `json:"data"`
}

type RsvpErrorResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}
