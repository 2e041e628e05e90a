package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mativale/boda-api/pkg/awssess"
	"github.com/mativale/boda-api/pkg/credentials"
)

var (
	configHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "Config")})
	configLogger  = slog.New(configHandler)
)

// defaultWeddingDate is used when WEDDING_DATE is not set.
const defaultWeddingDate = "2024-08-30T18:00:00-03:00"

// MailgunConfig enables email notifications to the couple when present.
type MailgunConfig struct {
	Domain string
	ApiKey string
	From   string
	To     string
}

// WhatsappConfig enables whatsapp notifications to the couple when present.
type WhatsappConfig struct {
	MessagingServiceId string
	To                 string
}

// Config is built once at startup and injected. Business logic never
// reads the process environment directly.
type Config struct {
	Stage                   string
	Port                    string
	GoogleServiceAccountKey string
	GoogleSheetId           string
	WeddingDate             time.Time
	WeddingVenue            string
	Mailgun                 *MailgunConfig
	Whatsapp                *WhatsappConfig
}

// SheetsConfigured reports whether both values required to reach the
// spreadsheet are present. Absence is a request-time precondition
// failure, not a startup failure.
func (c *Config) SheetsConfigured() bool {
	return c.GoogleServiceAccountKey != "" && c.GoogleSheetId != ""
}

// Load builds the configuration from the environment. The Google
// service account key may come inline from GOOGLE_SERVICE_ACCOUNT_KEY
// or from a Secrets Manager secret named by GOOGLE_SA_SECRET_ID.
func Load(ctx context.Context) (*Config, error) {
	cfg := &Config{
		Stage:                   os.Getenv("STAGE"),
		Port:                    getEnv("PORT", "8080"),
		GoogleServiceAccountKey: os.Getenv("GOOGLE_SERVICE_ACCOUNT_KEY"),
		GoogleSheetId:           os.Getenv("GOOGLE_SHEET_ID"),
		WeddingVenue:            os.Getenv("WEDDING_VENUE"),
	}

	date, err := time.Parse(time.RFC3339, getEnv("WEDDING_DATE", defaultWeddingDate))
	if err != nil {
		return nil, fmt.Errorf("invalid WEDDING_DATE: %w", err)
	}
	cfg.WeddingDate = date

	if secretId := os.Getenv("GOOGLE_SA_SECRET_ID"); secretId != "" && cfg.GoogleServiceAccountKey == "" {
		cm := credentials.NewCredentialsManager(awssess.MustGetSession())
		key, err := cm.GetSecret(ctx, secretId)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch service account key from secrets manager: %w", err)
		}
		cfg.GoogleServiceAccountKey = *key
	}

	if domain, apiKey := os.Getenv("MAILGUN_DOMAIN"), os.Getenv("MAILGUN_API_KEY"); domain != "" && apiKey != "" {
		cfg.Mailgun = &MailgunConfig{
			Domain: domain,
			ApiKey: apiKey,
			From:   getEnv("NOTIFY_EMAIL_FROM", "no-reply@"+domain),
			To:     os.Getenv("NOTIFY_EMAIL"),
		}
	}

	if serviceId, to := os.Getenv("TWILIO_MESSAGING_SERVICE_ID"), os.Getenv("NOTIFY_PHONE"); serviceId != "" && to != "" {
		cfg.Whatsapp = &WhatsappConfig{
			MessagingServiceId: serviceId,
			To:                 to,
		}
	}

	if !cfg.SheetsConfigured() {
		configLogger.Warn("google sheets not fully configured",
			slog.Bool("serviceAccountMissing", cfg.GoogleServiceAccountKey == ""),
			slog.Bool("sheetIdMissing", cfg.GoogleSheetId == ""),
		)
	}

	return cfg, nil
}

// MustLoad panics on configuration errors.
func MustLoad(ctx context.Context) *Config {
	cfg, err := Load(ctx)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %s", err))
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
