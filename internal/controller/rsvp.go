package controller

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/mativale/boda-api/internal/dto"
	"github.com/mativale/boda-api/internal/service"
)

// PostRsvp submit an rsvp.
// @Tags RSVP
// @Summary submit an rsvp.
// @Schemes
// @Description validates one submission and appends one spreadsheet row per attendee.
// @Param request body dto.RsvpSubmission true "rsvp submission"
// @Accept json
// @Produce json
// @Success 200 {object} dto.RsvpSuccessResponse
// @Failure 400 {object} dto.RsvpErrorResponse
// @Failure 500 {object} dto.RsvpErrorResponse
// @Router /api/rsvp [post]
func PostRsvp(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "post-rsvp-controller")
	defer span.End()

	var sub dto.RsvpSubmission

	if err := c.ShouldBindJSON(&sub); err != nil {
		var ve validator.ValidationErrors

		if errors.As(err, &ve) {
			for _, fe := range ve {
				rsvpLogger.Error("PostRsvp validation error", slog.String("error", fe.Error()))
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.RsvpErrorResponse{
				Success: false,
				Message: MsgInvalidData,
				Errors:  validationErrors(ve),
			})
			return
		}

		// A parsed body with a wrongly typed field is still a
		// validation failure, with the path the decoder reports.
		var typeErr *json.UnmarshalTypeError

		if errors.As(err, &typeErr) {
			rsvpLogger.Error("PostRsvp field type error", slog.String("error", typeErr.Error()))
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.RsvpErrorResponse{
				Success: false,
				Message: MsgInvalidData,
				Errors: []dto.FieldError{{
					Path:    typeErr.Field,
					Message: "Tipo de dato inválido",
				}},
			})
			return
		}

		// A body that is not valid JSON never reaches the schema.
		rsvpLogger.Error("PostRsvp malformed body", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.RsvpErrorResponse{
			Success: false,
			Message: MsgInternalError,
		})
		return
	}

	if fe := sub.Refine(); fe != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.RsvpErrorResponse{
			Success: false,
			Message: MsgInvalidData,
			Errors:  []dto.FieldError{*fe},
		})
		return
	}

	receipt, err := rsvpService.Submit(ctx, sub)

	if err != nil {
		if errors.Is(err, service.ErrStoreNotConfigured) {
			rsvpLogger.Error("PostRsvp store not configured")
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.RsvpErrorResponse{
				Success: false,
				Message: MsgServerMisconfig,
			})
			return
		}

		// Full detail stays in the logs, the caller only gets a
		// generic retry suggestion.
		rsvpLogger.Error("PostRsvp store write failed", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.RsvpErrorResponse{
			Success: false,
			Message: MsgWriteFailed,
		})
		return
	}

	c.JSON(http.StatusOK, dto.RsvpSuccessResponse{
		Success: true,
		Message: MsgRsvpRegistered,
		Data: dto.RsvpReceiptDto{
			TotalAttendees: receipt.TotalAttendees,
			Timestamp:      receipt.Timestamp,
		},
	})
}
