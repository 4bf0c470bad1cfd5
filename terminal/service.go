// Package terminal drives a scanning station through the box reception
// workflow: scan a box label, scan its pairs one by one, hear the outcome,
// move on to the next box.
package terminal

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// PairRecord is one pair already registered on a box
type PairRecord struct {
	RawCode   string    `json:"raw_code"`
	UPC       string    `json:"upc,omitempty"`
	PairIndex int       `json:"pair_index"`
	ScannedAt time.Time `json:"scanned_at"`
}

// BoxSnapshot is the terminal's view of a box under reconciliation
type BoxSnapshot struct {
	BoxID          string       `json:"box_id"`
	LabelID        string       `json:"label_id"`
	SKU            string       `json:"sku"`
	SequenceNumber string       `json:"sequence_number"`
	ExpectedPairs  int          `json:"expected_pairs"`
	ScannedPairs   int          `json:"scanned_pairs"`
	Complete       bool         `json:"complete"`
	Pairs          []PairRecord `json:"pairs,omitempty"`
}

// Remaining returns how many pairs the box still waits for
func (b *BoxSnapshot) Remaining() int {
	return b.ExpectedPairs - b.ScannedPairs
}

// BoxScanResult is the outcome of scanning a box label
type BoxScanResult struct {
	Box     BoxSnapshot
	Resumed bool
}

// PairScanResult is the outcome of scanning a pair
type PairScanResult struct {
	Box       BoxSnapshot
	PairIndex int
	Remaining int
	UPC       string
}

// ServiceError carries the reception service's error code alongside the
// operator-facing message
type ServiceError struct {
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsConflict reports whether the error is a workflow conflict (duplicate
// pair, completed box, wrong SKU) rather than a transport or server fault
func IsConflict(err error) bool {
	se, ok := err.(*ServiceError)
	if !ok {
		return false
	}
	switch se.Code {
	case "DUPLICATE", "SESSION_COMPLETE", "SKU_MISMATCH":
		return true
	}
	return false
}

// ReceptionService is the terminal's view of the reception backend
type ReceptionService interface {
	ScanBox(ctx context.Context, rawCode string) (*BoxScanResult, error)
	ScanPair(ctx context.Context, boxID, rawCode string) (*PairScanResult, error)
}

// Sounder emits the audio cues of the workflow
type Sounder interface {
	Beep()
	Success()
	Error()
	Completion()
}

// Recorder appends scans to a local journal. Failures are tolerated, the
// journal is an audit aid, not part of the workflow.
type Recorder interface {
	RecordScan(source, rawText string, at time.Time) error
}
