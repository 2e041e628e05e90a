package service

import (
	"os"

	"log/slog"
)

// Rsvp Logger
var (
	rsvpHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "Rsvp Service")})
	rsvpLogger  = slog.New(rsvpHandler)
)

// Diag Logger
var (
	diagHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "Sheets Diag Service")})
	diagLogger  = slog.New(diagHandler)
)

// Notifier Logger
var (
	notifierHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "Notifier Service")})
	notifierLogger  = slog.New(notifierHandler)
)
