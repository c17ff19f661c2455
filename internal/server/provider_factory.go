package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"legalnav-api/internal/config"
	"legalnav-api/internal/logging"
	"legalnav-api/internal/providers"
	"legalnav-api/internal/providers/courtlistener"
	"legalnav-api/internal/providers/fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.CaseLawProvider {
	switch cfg.Provider {
	case "fixture":
		return fixture.New()
	case "courtlistener", "":
		var client *http.Client
		if cfg.CourtListener.Timeout > 0 {
			client = &http.Client{Timeout: cfg.CourtListener.Timeout}
		}
		return courtlistener.NewClient(courtlistener.Config{
			BaseURL:    cfg.CourtListener.BaseURL,
			Token:      cfg.CourtListener.Token,
			HTTPClient: client,
		})
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		return fixture.New()
	}
}

// normalizeProviderName returns a lower-cased provider name, deriving from instance when not explicitly configured.
// Used across server wiring to keep naming consistent in metrics/logs.
func normalizeProviderName(raw string, provider providers.CaseLawProvider) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
