package service

import (
	"context"
	"fmt"
	"log/slog"
)

// SheetDiagStore is what the diagnostic endpoint needs from the
// spreadsheet backend, beyond what submissions use.
type SheetDiagStore interface {
	IsConfigured() bool
	MissingConfig() (serviceAccount, sheetId bool)
	Initialize(ctx context.Context) error
	MaskedSpreadsheetId() string
}

// MissingConfigReport names which configuration values are absent.
// Only the operator-facing diagnostic endpoint ever exposes this.
type MissingConfigReport struct {
	ServiceAccount bool `json:"serviceAccount"`
	SheetId        bool `json:"sheetId"`
}

type SheetsDiagService struct {
	store SheetDiagStore
}

func NewSheetsDiagService(store SheetDiagStore) *SheetsDiagService {
	return &SheetsDiagService{store: store}
}

// CheckConfig reports which required values are missing, if any.
func (s *SheetsDiagService) CheckConfig() *MissingConfigReport {
	if s.store.IsConfigured() {
		return nil
	}
	sa, id := s.store.MissingConfig()
	diagLogger.Warn("sheets configuration incomplete",
		slog.Bool("serviceAccountMissing", sa),
		slog.Bool("sheetIdMissing", id),
	)
	return &MissingConfigReport{ServiceAccount: sa, SheetId: id}
}

// TestConnection performs a harmless read/initialize against the sheet
// and returns the partially masked spreadsheet id on success.
func (s *SheetsDiagService) TestConnection(ctx context.Context) (maskedId string, err error) {
	if err := s.store.Initialize(ctx); err != nil {
		return "", fmt.Errorf("sheets connection test failed: %w", err)
	}
	return s.store.MaskedSpreadsheetId(), nil
}
