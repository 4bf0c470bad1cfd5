package srvreg

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"qc-reception/codes"
	"qc-reception/report"
	"qc-reception/repository"
	"qc-reception/repository/models"
)

// boxView is the JSON shape of a box in handler responses
type boxView struct {
	BoxID          string     `json:"box_id"`
	LabelID        string     `json:"label_id"`
	SKU            string     `json:"sku"`
	SequenceNumber string     `json:"sequence_number"`
	ExpectedPairs  int        `json:"expected_pairs"`
	ScannedPairs   int        `json:"scanned_pairs"`
	Complete       bool       `json:"complete"`
	Resumed        bool       `json:"resumed,omitempty"`
	Pairs          []pairView `json:"pairs,omitempty"`
}

type pairView struct {
	RawCode   string    `json:"raw_code"`
	UPC       string    `json:"upc,omitempty"`
	PairIndex int       `json:"pair_index"`
	ScannedAt time.Time `json:"scanned_at"`
}

func toBoxView(box *models.Box, resumed bool) boxView {
	v := boxView{
		BoxID:          box.ID,
		LabelID:        box.LabelID,
		SKU:            box.SKU,
		SequenceNumber: box.SequenceNumber,
		ExpectedPairs:  box.ExpectedPairs,
		ScannedPairs:   box.ScannedPairs,
		Complete:       box.Complete,
		Resumed:        resumed,
	}
	for _, pair := range box.Pairs {
		v.Pairs = append(v.Pairs, pairView{
			RawCode:   pair.RawCode,
			UPC:       pair.UPC,
			PairIndex: pair.PairIndex,
			ScannedAt: pair.CreatedAt,
		})
	}
	return v
}

// ScanBoxHandler opens (or resumes) reconciliation for a scanned box label
func (sr *ServiceRegistry) ScanBoxHandler(w http.ResponseWriter, r *http.Request) {
	operator := operatorID(r)
	if operator == "" {
		writeError(w, http.StatusBadRequest, "MISSING_OPERATOR", "X-Operator-ID header is required")
		return
	}

	var body struct {
		RawCode string `json:"raw_code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", fmt.Sprintf("Invalid request body: %s", err.Error()))
		return
	}

	code, err := codes.ParseBoxCode(body.RawCode)
	if err != nil {
		if errors.Is(err, codes.ErrInvalidFormat) {
			writeError(w, http.StatusBadRequest, repository.CodeInvalidFormat, "Box label code is not in the expected format")
			return
		}
		writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	box, resumed, repoErr := sr.store.ScanBox(code, operator)
	if repoErr != nil {
		writeRepoError(w, repoErr)
		return
	}

	message := "Box registered"
	statusCode := http.StatusCreated
	if resumed {
		message = "Box resumed"
		statusCode = http.StatusOK
	}
	writeJSON(w, statusCode, message, toBoxView(box, resumed))
}

// GetBoxHandler returns a box with its registered pairs
func (sr *ServiceRegistry) GetBoxHandler(w http.ResponseWriter, r *http.Request) {
	boxID := mux.Vars(r)["id"]

	box, repoErr := sr.store.GetBox(boxID)
	if repoErr != nil {
		writeRepoError(w, repoErr)
		return
	}
	writeJSON(w, http.StatusOK, "", toBoxView(box, false))
}

// ScanPairHandler registers one pair against a box
func (sr *ServiceRegistry) ScanPairHandler(w http.ResponseWriter, r *http.Request) {
	operator := operatorID(r)
	if operator == "" {
		writeError(w, http.StatusBadRequest, "MISSING_OPERATOR", "X-Operator-ID header is required")
		return
	}
	boxID := mux.Vars(r)["id"]

	var body struct {
		RawCode string `json:"raw_code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", fmt.Sprintf("Invalid request body: %s", err.Error()))
		return
	}
	rawCode := codes.NormalizePairCode(body.RawCode)
	if rawCode == "" {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "raw_code is required")
		return
	}

	box, pair, repoErr := sr.store.ScanPair(boxID, rawCode, operator)
	if repoErr != nil {
		writeRepoError(w, repoErr)
		return
	}

	message := "Pair registered"
	if box.Complete {
		message = "Pair registered, box complete"
	}
	writeJSON(w, http.StatusOK, message, map[string]interface{}{
		"box": toBoxView(box, false),
		"pair": pairView{
			RawCode:   pair.RawCode,
			UPC:       pair.UPC,
			PairIndex: pair.PairIndex,
			ScannedAt: pair.CreatedAt,
		},
		"remaining": box.ExpectedPairs - box.ScannedPairs,
	})
}

// parseFilters reads report filters from the query string
func parseFilters(r *http.Request) (repository.BoxFilters, error) {
	q := r.URL.Query()
	filters := repository.BoxFilters{
		SKU:      q.Get("sku"),
		Status:   q.Get("status"),
		Operator: q.Get("operator"),
	}
	if raw := q.Get("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filters, fmt.Errorf("invalid from date: %s", raw)
		}
		filters.From = &t
	}
	if raw := q.Get("to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filters, fmt.Errorf("invalid to date: %s", raw)
		}
		// Inclusive end of day
		end := t.Add(24*time.Hour - time.Nanosecond)
		filters.To = &end
	}
	return filters, nil
}

// ReportHandler returns the filtered box list with its summary
func (sr *ServiceRegistry) ReportHandler(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_FILTER", err.Error())
		return
	}

	boxes, summary, repoErr := sr.store.QueryBoxes(filters)
	if repoErr != nil {
		writeRepoError(w, repoErr)
		return
	}

	views := make([]boxView, 0, len(boxes))
	for i := range boxes {
		views = append(views, toBoxView(&boxes[i], false))
	}
	writeJSON(w, http.StatusOK, "", map[string]interface{}{
		"boxes":   views,
		"summary": summary,
	})
}

// ExportHandler streams the filtered report as an xlsx download
func (sr *ServiceRegistry) ExportHandler(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_FILTER", err.Error())
		return
	}

	boxes, summary, repoErr := sr.store.QueryBoxes(filters)
	if repoErr != nil {
		writeRepoError(w, repoErr)
		return
	}

	data, err := report.WriteWorkbook(report.FromBoxes(boxes, summary))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "EXPORT_FAILED", "Failed to build workbook")
		return
	}

	filename := fmt.Sprintf("reception-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// PrintHandler renders the filtered report as a print-ready HTML page
func (sr *ServiceRegistry) PrintHandler(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_FILTER", err.Error())
		return
	}

	boxes, summary, repoErr := sr.store.QueryBoxes(filters)
	if repoErr != nil {
		writeRepoError(w, repoErr)
		return
	}

	html, err := report.RenderPrintHTML(report.FromBoxes(boxes, summary))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "RENDER_FAILED", "Failed to render report")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(html)
}
