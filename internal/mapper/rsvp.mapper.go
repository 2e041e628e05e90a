package mapper

import (
	"github.com/mativale/boda-api/internal/dto"
	"github.com/mativale/boda-api/internal/model"
)

// SubmissionToRows flattens one submission into spreadsheet rows: the
// main attendee first, then companions in input order. Every row
// shares the same timestamp and the group-level special requests.
func SubmissionToRows(sub dto.RsvpSubmission, timestamp string) []model.SubmissionRow {
	rows := make([]model.SubmissionRow, 0, sub.TotalAttendees())

	rows = append(rows, model.NewSubmissionRow(
		timestamp,
		sub.MainAttendee.Name,
		sub.MainAttendee.LastName,
		sub.MainAttendee.PhoneNumber,
		sub.SpecialRequests,
		sub.MainAttendee.NeedsTransport,
	))

	for _, a := range sub.AdditionalAttendees {
		rows = append(rows, model.NewSubmissionRow(
			timestamp,
			a.Name,
			a.LastName,
			a.PhoneNumber,
			sub.SpecialRequests,
			a.NeedsTransport,
		))
	}

	return rows
}
