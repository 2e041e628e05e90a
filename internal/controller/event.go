package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mativale/boda-api/pkg/fechas"
)

// GetEvent wedding date and venue for the landing page.
// @Tags EVENT
// @Summary wedding date and venue for the landing page.
// @Schemes
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/event [get]
func GetEvent(c *gin.Context) {
	now := time.Now()

	c.JSON(http.StatusOK, gin.H{
		"date":          eventInfo.Date.Format(time.RFC3339),
		"dateFormatted": fechas.FormatLongDate(eventInfo.Date),
		"venue":         eventInfo.Venue,
		"daysUntil":     fechas.DaysUntil(eventInfo.Date, now),
		"passed":        fechas.IsPassed(eventInfo.Date, now),
	})
}
