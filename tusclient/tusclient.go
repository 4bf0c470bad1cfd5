// Package tusclient talks to the upstream TUS system that owns the QR to
// UPC mapping master data.
package tusclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"qc-reception/repository/models"
)

// TusClient handles communication with the TUS mapping service
type TusClient struct {
	endpoint   string
	httpClient *http.Client
}

// mappingsResponse is the TUS mapping feed payload
type mappingsResponse struct {
	Data []struct {
		QrCode string `json:"qr_code"`
		UPC    string `json:"upc"`
		SKU    string `json:"sku"`
	} `json:"data"`
}

// NewTusClient creates a new TUS client
func NewTusClient(endpoint string) *TusClient {
	return &TusClient{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchMappings pulls the QR to UPC mapping feed. A non-empty since value
// asks only for mappings updated on or after that date.
func (c *TusClient) FetchMappings(ctx context.Context, since string) ([]models.QrMapping, error) {
	endpoint := fmt.Sprintf("%s/tus/mappings", c.endpoint)
	if since != "" {
		endpoint += "?since=" + url.QueryEscape(since)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach TUS: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read TUS response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("TUS returned error status %d: %s", resp.StatusCode, string(body))
	}

	var parsed mappingsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse TUS response: %w", err)
	}

	mappings := make([]models.QrMapping, 0, len(parsed.Data))
	for _, row := range parsed.Data {
		mappings = append(mappings, models.QrMapping{
			QrCode: row.QrCode,
			UPC:    row.UPC,
			SKU:    row.SKU,
		})
	}
	return mappings, nil
}

// HealthCheck checks if TUS is reachable
func (c *TusClient) HealthCheck(ctx context.Context) error {
	endpoint := fmt.Sprintf("%s/tus/status", c.endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("TUS is unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("TUS health check failed with status: %d", resp.StatusCode)
	}

	return nil
}
