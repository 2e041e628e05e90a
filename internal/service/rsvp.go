package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mativale/boda-api/internal/dto"
	"github.com/mativale/boda-api/internal/mapper"
	"github.com/mativale/boda-api/internal/model"
	"github.com/mativale/boda-api/pkg/fechas"
)

// ErrStoreNotConfigured is returned before any write is attempted when
// the spreadsheet credentials or id are missing.
var ErrStoreNotConfigured = errors.New("confirmation store is not configured")

// SheetStore is the narrow capability the rsvp service needs from the
// spreadsheet backend.
type SheetStore interface {
	IsConfigured() bool
	AppendRows(ctx context.Context, rows []model.SubmissionRow) error
}

type RsvpService struct {
	store    SheetStore
	notifier *NotifierService
}

// RsvpReceipt is what a successful submission reports back.
type RsvpReceipt struct {
	TotalAttendees int
	Timestamp      string
}

func NewRsvpService(store SheetStore, notifier *NotifierService) *RsvpService {
	return &RsvpService{
		store:    store,
		notifier: notifier,
	}
}

// Submit writes one validated submission to the store: one row per
// attendee, all sharing a single timestamp. A submission is a single
// attempt; there is no retry and no dedup, a repeat post appends new
// rows.
func (s *RsvpService) Submit(ctx context.Context, sub dto.RsvpSubmission) (RsvpReceipt, error) {
	if !s.store.IsConfigured() {
		return RsvpReceipt{}, ErrStoreNotConfigured
	}

	now := time.Now()
	rows := mapper.SubmissionToRows(sub, fechas.Timestamp(now))

	if err := s.store.AppendRows(ctx, rows); err != nil {
		return RsvpReceipt{}, fmt.Errorf("failed to store rsvp: %w", err)
	}

	rsvpLogger.Info("rsvp submitted",
		slog.String("mainAttendee", sub.MainAttendee.Name+" "+sub.MainAttendee.LastName),
		slog.Int("totalAttendees", sub.TotalAttendees()),
	)

	if s.notifier != nil {
		s.notifier.RsvpReceived(ctx, sub)
	}

	return RsvpReceipt{
		TotalAttendees: sub.TotalAttendees(),
		Timestamp:      now.UTC().Format(time.RFC3339),
	}, nil
}
