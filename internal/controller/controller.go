package controller

import (
	"time"

	"github.com/mativale/boda-api/internal/service"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer trace.Tracer
)

var (
	rsvpService *service.RsvpService
	diagService *service.SheetsDiagService
	eventInfo   EventInfo
)

// EventInfo is the static data the landing page asks for.
type EventInfo struct {
	Date  time.Time
	Venue string
}

// Init injects the services the handlers dispatch to. The router calls
// it with the concrete wiring; tests call it with fakes.
func Init(rsvp *service.RsvpService, diag *service.SheetsDiagService, info EventInfo) {
	rsvpService = rsvp
	diagService = diag
	eventInfo = info

	tracer = otel.Tracer("github.com/mativale/boda-api/internal/controller")
}
