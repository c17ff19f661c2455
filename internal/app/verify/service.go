// Package verify resolves attorney bar verification requests. California
// profiles are fetched and parsed live; every other state gets a manual
// verification link.
package verify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"legalnav-api/internal/domain"
	"legalnav-api/internal/logging"
	"legalnav-api/internal/statebar"
)

const (
	fetchTimeout = 30 * time.Second

	// Maximum profile body we are willing to read.
	maxBodyBytes = 4 << 20

	// A real licensee detail page is large and echoes the bar number.
	minProfileLength = 5000

	// Narrow scan windows keep the definitions table and page chrome from
	// polluting status detection.
	statusWindow     = 120
	disciplineWindow = 300
)

// ErrUnknownState reports a state code outside the supported table.
var ErrUnknownState = errors.New("unknown state code")

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Service answers verification requests against the state-bar tables.
type Service struct {
	client httpDoer
	logger *slog.Logger
	now    func() time.Time
}

// NewService constructs a Service. A nil client gets a default with the
// standard outbound timeout.
func NewService(client httpDoer, logger *slog.Logger) *Service {
	if client == nil {
		client = &http.Client{Timeout: fetchTimeout}
	}
	return &Service{
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

// Verify returns the verification payload for the given state and bar
// number. Unknown states return ErrUnknownState; everything else succeeds
// with an appropriate verified flag.
func (s *Service) Verify(ctx context.Context, state, barNumber string) (domain.VerifyAttorneyResponse, error) {
	state = strings.ToUpper(strings.TrimSpace(state))
	barNumber = strings.TrimSpace(barNumber)

	if !statebar.Known(state) {
		return domain.VerifyAttorneyResponse{}, fmt.Errorf("%w: %s", ErrUnknownState, state)
	}

	info := statebar.Lookup(state)
	url := statebar.VerificationURL(state, barNumber)

	logging.Info(s.logger, "attorney verification request", "state", state, "bar_number", barNumber)

	if state == "CA" {
		return s.verifyCalifornia(ctx, barNumber, url, info), nil
	}

	return domain.VerifyAttorneyResponse{
		Success:  true,
		Verified: nil,
		Status: fmt.Sprintf("Manual verification required. Please visit the provided URL to verify this attorney's bar status with the %s. "+
			"The URL will show their current license status, admission date, and any disciplinary history.", info.Name),
		DisciplineHistory: false,
		VerificationURL:   url,
		StateBarName:      info.Name,
		Instructions: fmt.Sprintf("IMPORTANT: You must visit the verification_url to confirm this attorney's credentials. "+
			"The %s maintains the official record. %s", info.Name, info.Instructions),
		RetrievedAt: s.timestamp(),
	}, nil
}

// verifyCalifornia fetches the licensee detail page and parses the license
// status out of it. The calbar site links profiles directly with no CAPTCHA.
func (s *Service) verifyCalifornia(ctx context.Context, barNumber, url string, info statebar.Info) domain.VerifyAttorneyResponse {
	body, err := s.fetchProfile(ctx, url)
	if err != nil {
		logging.Warn(s.logger, "california profile fetch failed", "bar_number", barNumber, "error", err)
		return s.manualCaliforniaResponse(barNumber, url, info)
	}

	lower := strings.ToLower(body)

	if strings.Contains(lower, "not found") || strings.Contains(lower, "no results") {
		verified := false
		return domain.VerifyAttorneyResponse{
			Success:  true,
			Verified: &verified,
			Status: "Attorney bar number not found in California State Bar records. The bar number may be invalid " +
				"or the attorney may not be licensed in California. Please verify the bar number is correct.",
			DisciplineHistory: false,
			VerificationURL:   url,
			StateBarName:      info.Name,
			Instructions:      "The provided bar number was not found. Please check the number and visit the URL to search manually.",
			RetrievedAt:       s.timestamp(),
		}
	}

	if len(body) > minProfileLength && strings.Contains(body, barNumber) {
		statusText, active := parseLicenseStatus(lower)
		discipline := detectDiscipline(lower)

		var status string
		switch {
		case active != nil && *active:
			status = fmt.Sprintf("✓ VERIFIED ACTIVE: This California attorney (bar #%s) is currently ACTIVE and authorized to practice law.", barNumber)
		case active != nil:
			status = fmt.Sprintf("✗ NOT ACTIVE: This California attorney (bar #%s) has status '%s' and is NOT authorized to practice law.", barNumber, statusText)
		default:
			status = fmt.Sprintf("California attorney profile found for bar number %s. Status could not be automatically determined. "+
				"Visit the provided URL to view their current status.", barNumber)
		}
		if discipline && active != nil && *active {
			status += " WARNING: Disciplinary records exist - review the verification URL for details before proceeding."
		} else if discipline {
			status += " Disciplinary records may exist - see verification URL for details."
		}

		return domain.VerifyAttorneyResponse{
			Success:           true,
			Verified:          active,
			Status:            status,
			DisciplineHistory: discipline,
			VerificationURL:   url,
			StateBarName:      info.Name,
			Instructions: "Complete verification details available at the provided URL. The California State Bar profile " +
				"includes admission date, practice areas, contact information, and full disciplinary history.",
			RetrievedAt: s.timestamp(),
		}
	}

	return domain.VerifyAttorneyResponse{
		Success:  true,
		Verified: nil,
		Status: fmt.Sprintf("Please verify this California attorney manually. The direct link to bar number %s's profile "+
			"has been provided. Click the URL to view their current license status, credentials, and disciplinary history.", barNumber),
		DisciplineHistory: false,
		VerificationURL:   url,
		StateBarName:      info.Name,
		Instructions: "IMPORTANT: Visit the verification_url to access this attorney's official California State Bar profile. " +
			"You will see their current status (Active/Inactive/Suspended), admission date, and any disciplinary actions. " +
			"This is the authoritative source for California attorney verification.",
		RetrievedAt: s.timestamp(),
	}
}

func (s *Service) fetchProfile(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (s *Service) manualCaliforniaResponse(barNumber, url string, info statebar.Info) domain.VerifyAttorneyResponse {
	return domain.VerifyAttorneyResponse{
		Success:  true,
		Verified: nil,
		Status: fmt.Sprintf("Manual verification required for California bar number %s. A direct link to their State Bar "+
			"profile has been provided. Visit the URL to confirm their license status and credentials.", barNumber),
		DisciplineHistory: false,
		VerificationURL:   url,
		StateBarName:      info.Name,
		Instructions: "IMPORTANT: Click the verification_url to view this attorney's official profile on the California " +
			"State Bar website. The profile includes current license status, admission date, and any disciplinary records.",
		RetrievedAt: s.timestamp(),
	}
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

// parseLicenseStatus scans the window after the "License Status:" label.
// Inactive variants are checked before active so "inactive" never reads as
// active. Input must already be lowercased.
func parseLicenseStatus(lower string) (string, *bool) {
	idx := strings.Index(lower, "license status:")
	if idx < 0 {
		return "Unknown", nil
	}
	end := idx + statusWindow
	if end > len(lower) {
		end = len(lower)
	}
	section := lower[idx:end]

	inactive := []struct {
		needle string
		label  string
	}{
		{"inactive", "Inactive"},
		{"suspended", "Suspended"},
		{"disbarred", "Disbarred"},
		{"retired", "Retired"},
		{"resigned", "Resigned"},
	}
	for _, c := range inactive {
		if strings.Contains(section, c.needle) {
			no := false
			return c.label, &no
		}
	}
	if strings.Contains(section, "active") {
		yes := true
		return "Active", &yes
	}
	return "Unknown", nil
}

// detectDiscipline looks for actual disciplinary notices rather than the
// empty disciplinary-history section every profile carries. Input must
// already be lowercased.
func detectDiscipline(lower string) bool {
	if strings.Contains(lower, "reproval") || strings.Contains(lower, "probation") {
		return true
	}
	idx := strings.Index(lower, "disciplinary")
	if idx < 0 || strings.Contains(lower, "no public record") {
		return false
	}
	end := idx + disciplineWindow
	if end > len(lower) {
		end = len(lower)
	}
	window := lower[idx:end]
	return strings.Contains(window, "record") && !strings.Contains(window, "none")
}
