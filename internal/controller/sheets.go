package controller

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// TestSheets verify the spreadsheet connection.
// @Tags ADMIN
// @Summary verify the spreadsheet connection.
// @Schemes
// @Description checks configuration presence and initializes the sheet header row. Operator tool, reports which values are missing.
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 500 {object} map[string]any
// @Router /api/test-sheets [get]
func TestSheets(c *gin.Context) {
	if missing := diagService.CheckConfig(); missing != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Environment variables not configured",
			"missing": missing,
		})
		return
	}

	maskedId, err := diagService.TestConnection(c.Request.Context())

	if err != nil {
		sheetsLogger.Error("sheets connection test failed", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Google Sheets connection failed",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Google Sheets connection successful!",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"sheetId":   maskedId,
	})
}
