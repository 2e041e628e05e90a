package controller

import (
	"log/slog"
	"os"
)

// handlers
var (
	rsvpHandler   = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "rsvpController")})
	sheetsHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "sheetsController")})
)

// loggers
var (
	rsvpLogger   = slog.New(rsvpHandler)
	sheetsLogger = slog.New(sheetsHandler)
)
