// Package sheets is the Google Sheets backed store for confirmations.
// Rows are only ever appended; nothing here updates or deletes.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/mativale/boda-api/internal/model"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

const (
	scope       = "https://www.googleapis.com/auth/spreadsheets"
	appendRange = "Confirmaciones!A:F"
	headerRange = "Confirmaciones!A1:F1"
)

// Headers is the first row of the sheet, in column order.
var Headers = []string{
	"Fecha y Hora",
	"Nombre",
	"Apellido",
	"Celular",
	"Solicitudes Especiales",
	"Transporte",
}

var ErrNotInitialized = errors.New("sheets client not initialized")

var (
	sheetsHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "Sheets Client")})
	sheetsLogger  = slog.New(sheetsHandler)
)

type Client struct {
	key           string
	spreadsheetId string
	svc           *gsheets.Service
}

// NewClient builds a store client from the service account key and
// spreadsheet id. Missing configuration does not fail here: the client
// is still returned and reports itself unconfigured, so the request
// path can fail fast per submission instead of at startup.
func NewClient(ctx context.Context, serviceAccountKey, spreadsheetId string) *Client {
	c := &Client{key: serviceAccountKey, spreadsheetId: spreadsheetId}

	if !c.IsConfigured() {
		return c
	}

	svc, err := gsheets.NewService(ctx,
		option.WithCredentialsJSON([]byte(serviceAccountKey)),
		option.WithScopes(scope),
	)
	if err != nil {
		sheetsLogger.Error("failed to initialize sheets service", slog.String("error", err.Error()))
		return c
	}
	c.svc = svc
	return c
}

// IsConfigured reports presence of both required configuration values.
func (c *Client) IsConfigured() bool {
	return c.key != "" && c.spreadsheetId != ""
}

// MissingConfig reports which of the two configuration values is
// absent. Only the diagnostic endpoint exposes this.
func (c *Client) MissingConfig() (serviceAccount, sheetId bool) {
	return c.key == "", c.spreadsheetId == ""
}

// AppendRows appends the given rows after the last non-empty row of
// the confirmations range.
func (c *Client) AppendRows(ctx context.Context, rows []model.SubmissionRow) error {
	if c.svc == nil {
		return ErrNotInitialized
	}

	values := make([][]interface{}, 0, len(rows))
	for _, r := range rows {
		values = append(values, r.Values())
	}

	_, err := c.svc.Spreadsheets.Values.
		Append(c.spreadsheetId, appendRange, &gsheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append rows to spreadsheet: %w", err)
	}

	sheetsLogger.Info("rows appended", slog.Int("count", len(rows)))
	return nil
}

// Initialize writes the header row if the sheet does not have one yet.
// Harmless to call repeatedly, used by the diagnostic endpoint.
func (c *Client) Initialize(ctx context.Context) error {
	if c.svc == nil {
		return ErrNotInitialized
	}

	existing, err := c.svc.Spreadsheets.Values.
		Get(c.spreadsheetId, headerRange).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to read header row: %w", err)
	}

	if len(existing.Values) > 0 {
		return nil
	}

	header := make([]interface{}, 0, len(Headers))
	for _, h := range Headers {
		header = append(header, h)
	}

	_, err = c.svc.Spreadsheets.Values.
		Update(c.spreadsheetId, headerRange, &gsheets.ValueRange{Values: [][]interface{}{header}}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	sheetsLogger.Info("header row initialized")
	return nil
}

// MaskedSpreadsheetId returns a partially hidden spreadsheet id safe
// to show on the diagnostic response.
func (c *Client) MaskedSpreadsheetId() string {
	id := c.spreadsheetId
	if len(id) > 10 {
		id = id[:10]
	}
	// the ellipsis is unconditional so a short id is never echoed whole
	return id + "..."
}
