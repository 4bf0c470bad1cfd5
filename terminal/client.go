package terminal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the reception service over HTTP and implements
// ReceptionService
type Client struct {
	endpoint   string
	operatorID string
	httpClient *http.Client
}

// NewClient creates a reception service client for one operator
func NewClient(endpoint, operatorID string) *Client {
	return &Client{
		endpoint:   endpoint,
		operatorID: operatorID,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// envelope mirrors the service's uniform response shape
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
}

// boxPayload mirrors the service's box JSON
type boxPayload struct {
	BoxID          string `json:"box_id"`
	LabelID        string `json:"label_id"`
	SKU            string `json:"sku"`
	SequenceNumber string `json:"sequence_number"`
	ExpectedPairs  int    `json:"expected_pairs"`
	ScannedPairs   int    `json:"scanned_pairs"`
	Complete       bool   `json:"complete"`
	Resumed        bool   `json:"resumed"`
	Pairs          []struct {
		RawCode   string    `json:"raw_code"`
		UPC       string    `json:"upc"`
		PairIndex int       `json:"pair_index"`
		ScannedAt time.Time `json:"scanned_at"`
	} `json:"pairs"`
}

func (p *boxPayload) toSnapshot() BoxSnapshot {
	snap := BoxSnapshot{
		BoxID:          p.BoxID,
		LabelID:        p.LabelID,
		SKU:            p.SKU,
		SequenceNumber: p.SequenceNumber,
		ExpectedPairs:  p.ExpectedPairs,
		ScannedPairs:   p.ScannedPairs,
		Complete:       p.Complete,
	}
	for _, pair := range p.Pairs {
		snap.Pairs = append(snap.Pairs, PairRecord{
			RawCode:   pair.RawCode,
			UPC:       pair.UPC,
			PairIndex: pair.PairIndex,
			ScannedAt: pair.ScannedAt,
		})
	}
	return snap
}

// post sends a JSON request and decodes the response envelope. Error
// envelopes come back as *ServiceError.
func (c *Client) post(ctx context.Context, path string, body interface{}) (*envelope, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Operator-ID", c.operatorID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reception service unreachable: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("unexpected response (status %d): %s", resp.StatusCode, string(raw))
	}
	if env.Status != "ok" {
		return nil, &ServiceError{Code: env.Code, Message: env.Message}
	}
	return &env, nil
}

// ScanBox submits a box label scan
func (c *Client) ScanBox(ctx context.Context, rawCode string) (*BoxScanResult, error) {
	env, err := c.post(ctx, "/boxes/scan", map[string]string{"raw_code": rawCode})
	if err != nil {
		return nil, err
	}

	var payload boxPayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse box response: %w", err)
	}
	return &BoxScanResult{Box: payload.toSnapshot(), Resumed: payload.Resumed}, nil
}

// ScanPair submits a pair scan against a box
func (c *Client) ScanPair(ctx context.Context, boxID, rawCode string) (*PairScanResult, error) {
	env, err := c.post(ctx, fmt.Sprintf("/boxes/%s/pairs", boxID), map[string]string{"raw_code": rawCode})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Box  boxPayload `json:"box"`
		Pair struct {
			UPC       string `json:"upc"`
			PairIndex int    `json:"pair_index"`
		} `json:"pair"`
		Remaining int `json:"remaining"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse pair response: %w", err)
	}
	return &PairScanResult{
		Box:       payload.Box.toSnapshot(),
		PairIndex: payload.Pair.PairIndex,
		Remaining: payload.Remaining,
		UPC:       payload.Pair.UPC,
	}, nil
}
