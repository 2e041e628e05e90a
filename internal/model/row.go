package model

// Transport tokens written to the spreadsheet. The destination is read
// by people, so the flag is rendered in Spanish rather than as a bool.
const (
	TransportYes = "Sí"
	TransportNo  = "No"
)

// SubmissionRow is one flattened record appended to the spreadsheet,
// one per attendee. Column order matches the sheet.
type SubmissionRow struct {
	FechaHora             string
	Nombre                string
	Apellido              string
	Celular               string
	SolicitudesEspeciales string
	Transporte            string
}

func NewSubmissionRow(timestamp, name, lastName, phone, specialRequests string, needsTransport bool) SubmissionRow {
	transporte := TransportNo
	if needsTransport {
		transporte = TransportYes
	}
	return SubmissionRow{
		FechaHora:             timestamp,
		Nombre:                name,
		Apellido:              lastName,
		Celular:               phone,
		SolicitudesEspeciales: specialRequests,
		Transporte:            transporte,
	}
}

// Values returns the row in spreadsheet column order.
func (r SubmissionRow) Values() []interface{} {
	return []interface{}{
		r.FechaHora,
		r.Nombre,
		r.Apellido,
		r.Celular,
		r.SolicitudesEspeciales,
		r.Transporte,
	}
}
