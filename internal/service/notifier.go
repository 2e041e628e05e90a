package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mativale/boda-api/internal/dto"
	"github.com/mativale/boda-api/pkg/email"
	"github.com/mativale/boda-api/pkg/sms"
)

type EmailSender interface {
	Send(ctx context.Context, e *email.Email) error
}

type MessageSender interface {
	SendMessage(msg *sms.Msg) error
}

// NotifierService tells the couple about a new confirmation. Both
// channels are optional and best effort: failures are logged and never
// affect the submission response.
type NotifierService struct {
	email     EmailSender
	emailFrom string
	emailTo   string
	msg       MessageSender
	msgTo     string
}

func NewNotifierService(emailSender EmailSender, emailFrom, emailTo string, msgSender MessageSender, msgTo string) *NotifierService {
	return &NotifierService{
		email:     emailSender,
		emailFrom: emailFrom,
		emailTo:   emailTo,
		msg:       msgSender,
		msgTo:     msgTo,
	}
}

// RsvpReceived sends the configured notifications for one submission.
func (n *NotifierService) RsvpReceived(ctx context.Context, sub dto.RsvpSubmission) {
	summary := submissionSummary(sub)

	if n.email != nil && n.emailTo != "" {
		e := email.NewEmail("Nueva confirmación de asistencia", summary, n.emailFrom, []string{n.emailTo})
		if err := n.email.Send(ctx, e); err != nil {
			notifierLogger.Error("failed to send email notification", slog.String("error", err.Error()))
		}
	}

	if n.msg != nil && n.msgTo != "" {
		if err := n.msg.SendMessage(&sms.Msg{Body: summary, To: n.msgTo}); err != nil {
			notifierLogger.Error("failed to send whatsapp notification", slog.String("error", err.Error()))
		}
	}
}

func submissionSummary(sub dto.RsvpSubmission) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s confirmó asistencia (%d en total).",
		sub.MainAttendee.Name, sub.MainAttendee.LastName, sub.TotalAttendees())

	for _, a := range sub.AdditionalAttendees {
		fmt.Fprintf(&b, "\nAcompañante: %s %s", a.Name, a.LastName)
	}

	if sub.SpecialRequests != "" {
		fmt.Fprintf(&b, "\nSolicitudes especiales: %s", sub.SpecialRequests)
	}

	return b.String()
}
