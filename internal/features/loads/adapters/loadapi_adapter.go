package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"loadtracker/internal/core/config"
	"loadtracker/internal/core/httpclient"
	"loadtracker/internal/features/loads/domain"
)

// LoadAPIAdapter implements the LoadProvider interface using the load persistence REST API.
type LoadAPIAdapter struct {
	// client is the HTTP client used for API requests. It carries the bearer token.
	client *http.Client
	// baseURL is the API root without a trailing slash.
	baseURL string
}

// NewLoadAPIAdapter creates a new instance of LoadAPIAdapter.
func NewLoadAPIAdapter(cfg config.LoadAPIConfig) *LoadAPIAdapter {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &LoadAPIAdapter{
		client:  httpclient.NewClient(timeout, httpclient.WithBearerToken(cfg.Token)),
		baseURL: strings.TrimRight(cfg.URL, "/"),
	}
}

// GetLoad fetches a load and maps it to the domain entity.
func (a *LoadAPIAdapter) GetLoad(ctx context.Context, loadID string) (*domain.Load, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.loadURL(loadID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	return a.doLoad(req, loadID)
}

// UpdateStatus issues a PATCH with the target status.
func (a *LoadAPIAdapter) UpdateStatus(ctx context.Context, loadID string, status domain.Status) (*domain.Load, error) {
	body, err := json.Marshal(statusPatch{Status: string(status)})
	if err != nil {
		return nil, fmt.Errorf("failed to encode status patch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, a.loadURL(loadID), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return a.doLoad(req, loadID)
}

// HealthCheck verifies that the load API is reachable and the token is valid.
func (a *LoadAPIAdapter) HealthCheck(ctx context.Context) error {
	// A one-item listing exercises both routing and auth.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/api/loads?limit=1", nil)
	if err != nil {
		return fmt.Errorf("health check failed to create request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed with status: %d", resp.StatusCode)
	}

	return nil
}

func (a *LoadAPIAdapter) loadURL(loadID string) string {
	return fmt.Sprintf("%s/api/loads/%s", a.baseURL, url.PathEscape(loadID))
}

// doLoad executes req and decodes a single load from the response.
func (a *LoadAPIAdapter) doLoad(req *http.Request, loadID string) (*domain.Load, error) {
	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", domain.ErrLoadNotFound, loadID)
		}
		return nil, fmt.Errorf("load API returned status: %d", resp.StatusCode)
	}

	var raw apiLoad
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return raw.toDomain(loadID), nil
}

// statusPatch is the PATCH body accepted by the load API.
type statusPatch struct {
	Status string `json:"status"`
}

// apiLoad represents the JSON structure of a load from the load API.
type apiLoad struct {
	ID              flexibleID `json:"id"`
	Status          *string    `json:"status"`
	BOLNumber       string     `json:"bolNumber"`
	PODDocumentPath string     `json:"podDocumentPath"`
	DriverID        *string    `json:"driverId"`
	UpdatedAt       *time.Time `json:"updatedAt"`
}

func (l apiLoad) toDomain(fallbackID string) *domain.Load {
	load := &domain.Load{
		ID:              string(l.ID),
		BOLNumber:       l.BOLNumber,
		PODDocumentPath: l.PODDocumentPath,
	}
	if load.ID == "" {
		load.ID = fallbackID
	}
	if l.Status != nil {
		// Unknown values are kept verbatim; the rules decide how to present them.
		load.Status, _ = domain.ParseStatus(strings.TrimSpace(*l.Status))
	}
	if l.DriverID != nil {
		load.DriverID = *l.DriverID
	}
	if l.UpdatedAt != nil {
		load.UpdatedAt = *l.UpdatedAt
	}
	return load
}

// flexibleID accepts both numeric and string ids.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("load id must be a string or number, got %s", b)
	}
	*f = flexibleID(n.String())
	return nil
}
