package srvreg

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"qc-reception/repository/models"
)

// QrScanHandler resolves one QR payload against the catalog and records
// the lookup in the scan history
func (sr *ServiceRegistry) QrScanHandler(w http.ResponseWriter, r *http.Request) {
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
	if body.RawCode == "" {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "raw_code is required")
		return
	}

	lookup, repoErr := sr.store.LookupScan(body.RawCode, operator)
	if repoErr != nil {
		writeRepoError(w, repoErr)
		return
	}

	message := "No catalog match"
	if lookup.Record.Matched {
		message = "Product matched"
	}
	writeJSON(w, http.StatusOK, message, lookup)
}

// QrScansHandler returns one page of the scan history
func (sr *ServiceRegistry) QrScansHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))

	records, total, repoErr := sr.store.ListScans(page, pageSize)
	if repoErr != nil {
		writeRepoError(w, repoErr)
		return
	}
	writeJSON(w, http.StatusOK, "", map[string]interface{}{
		"scans": records,
		"total": total,
	})
}

// QrProductsHandler returns catalog rows, optionally filtered
func (sr *ServiceRegistry) QrProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, repoErr := sr.store.ListProducts(r.URL.Query().Get("search"))
	if repoErr != nil {
		writeRepoError(w, repoErr)
		return
	}
	writeJSON(w, http.StatusOK, "", map[string]interface{}{"products": products})
}

// QrDashboardHandler returns validation subsystem counts
func (sr *ServiceRegistry) QrDashboardHandler(w http.ResponseWriter, r *http.Request) {
	stats, repoErr := sr.store.Dashboard()
	if repoErr != nil {
		writeRepoError(w, repoErr)
		return
	}
	writeJSON(w, http.StatusOK, "", stats)
}

// QrSyncHandler pulls the latest QR to UPC mappings from TUS and upserts
// them into the local table
func (sr *ServiceRegistry) QrSyncHandler(w http.ResponseWriter, r *http.Request) {
	operator := operatorID(r)
	if operator == "" {
		writeError(w, http.StatusBadRequest, "MISSING_OPERATOR", "X-Operator-ID header is required")
		return
	}
	if sr.tus == nil {
		writeError(w, http.StatusServiceUnavailable, "SYNC_UNAVAILABLE", "TUS sync is not configured")
		return
	}

	mappings, err := sr.tus.FetchMappings(r.Context(), r.URL.Query().Get("since"))
	if err != nil {
		writeError(w, http.StatusBadGateway, "SYNC_FAILED", fmt.Sprintf("Failed to fetch mappings: %s", err.Error()))
		return
	}

	run, repoErr := sr.store.UpsertMappings(mappings, operator)
	if repoErr != nil {
		writeRepoError(w, repoErr)
		return
	}
	writeJSON(w, http.StatusOK, "Mappings synchronized", run)
}

// QrSyncsHandler lists recent mapping syncs
func (sr *ServiceRegistry) QrSyncsHandler(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	runs, repoErr := sr.store.ListSyncRuns(limit)
	if repoErr != nil {
		writeRepoError(w, repoErr)
		return
	}
	writeJSON(w, http.StatusOK, "", map[string]interface{}{"syncs": runs})
}

// catalogColumns are the recognized spreadsheet headers. The first row of
// the upload must carry at least upc and sku, in any order.
var catalogColumns = []string{"upc", "sku", "description", "brand", "size"}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// QrCatalogHandler imports a product catalog from an uploaded xlsx file
func (sr *ServiceRegistry) QrCatalogHandler(w http.ResponseWriter, r *http.Request) {
	operator := operatorID(r)
	if operator == "" {
		writeError(w, http.StatusBadRequest, "MISSING_OPERATOR", "X-Operator-ID header is required")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_UPLOAD", "Multipart field 'file' is required")
		return
	}
	defer file.Close()

	workbook, err := excelize.OpenReader(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_UPLOAD", "File is not a readable xlsx workbook")
		return
	}
	defer workbook.Close()

	products, err := parseCatalogSheet(workbook)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_UPLOAD", err.Error())
		return
	}
	if len(products) == 0 {
		writeError(w, http.StatusBadRequest, "INVALID_UPLOAD", "Workbook contains no catalog rows")
		return
	}

	upload, repoErr := sr.store.UpsertProducts(products, header.Filename, operator)
	if repoErr != nil {
		writeRepoError(w, repoErr)
		return
	}
	writeJSON(w, http.StatusOK, "Catalog imported", upload)
}

// parseCatalogSheet reads product rows from the first sheet of a workbook
func parseCatalogSheet(f *excelize.File) ([]models.Product, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %s has no data rows", sheets[0])
	}

	columns := make(map[string]int, len(catalogColumns))
	for _, name := range catalogColumns {
		columns[name] = -1
	}
	for i, cell := range rows[0] {
		if _, ok := columns[normalizeHeader(cell)]; ok {
			columns[normalizeHeader(cell)] = i
		}
	}
	if columns["upc"] < 0 || columns["sku"] < 0 {
		return nil, fmt.Errorf("header row must contain 'upc' and 'sku' columns")
	}

	cell := func(row []string, col int) string {
		if col < 0 || col >= len(row) {
			return ""
		}
		return row[col]
	}

	var products []models.Product
	for _, row := range rows[1:] {
		upc := cell(row, columns["upc"])
		if upc == "" {
			continue
		}
		products = append(products, models.Product{
			UPC:         upc,
			SKU:         cell(row, columns["sku"]),
			Description: cell(row, columns["description"]),
			Brand:       cell(row, columns["brand"]),
			Size:        cell(row, columns["size"]),
		})
	}
	return products, nil
}

// QrUploadsHandler lists recent catalog uploads
func (sr *ServiceRegistry) QrUploadsHandler(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	uploads, repoErr := sr.store.ListUploads(limit)
	if repoErr != nil {
		writeRepoError(w, repoErr)
		return
	}
	writeJSON(w, http.StatusOK, "", map[string]interface{}{"uploads": uploads})
}
