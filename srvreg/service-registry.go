// Package srvreg wires the reception service's HTTP surface: box
// reconciliation, QR validation, reporting and the TUS mapping sync.
package srvreg

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"qc-reception/repository"
)

// envelope is the uniform response shape for every JSON endpoint
type envelope struct {
	Status  string      `json:"status"` // "ok" or "error"
	Message string      `json:"message,omitempty"`
	Code    string      `json:"code,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ServiceRegistry manages all service handlers
type ServiceRegistry struct {
	store Store
	tus   TusSource
}

// NewServiceRegistry creates a new service registry
func NewServiceRegistry(store Store, tus TusSource) *ServiceRegistry {
	return &ServiceRegistry{store: store, tus: tus}
}

// RegisterRoutes attaches every endpoint to the router
func (sr *ServiceRegistry) RegisterRoutes(r *mux.Router) {
	log.Println("Registering reception services...")

	// Box reconciliation endpoints
	r.HandleFunc("/boxes/scan", sr.ScanBoxHandler).Methods(http.MethodPost)
	r.HandleFunc("/boxes/{id}", sr.GetBoxHandler).Methods(http.MethodGet)
	r.HandleFunc("/boxes/{id}/pairs", sr.ScanPairHandler).Methods(http.MethodPost)

	// Reporting endpoints
	r.HandleFunc("/reports/boxes", sr.ReportHandler).Methods(http.MethodGet)
	r.HandleFunc("/reports/boxes/export", sr.ExportHandler).Methods(http.MethodGet)
	r.HandleFunc("/reports/boxes/print", sr.PrintHandler).Methods(http.MethodGet)

	// QR validation endpoints
	r.HandleFunc("/qr/scan", sr.QrScanHandler).Methods(http.MethodPost)
	r.HandleFunc("/qr/scans", sr.QrScansHandler).Methods(http.MethodGet)
	r.HandleFunc("/qr/products", sr.QrProductsHandler).Methods(http.MethodGet)
	r.HandleFunc("/qr/dashboard", sr.QrDashboardHandler).Methods(http.MethodGet)
	r.HandleFunc("/qr/sync", sr.QrSyncHandler).Methods(http.MethodPost)
	r.HandleFunc("/qr/syncs", sr.QrSyncsHandler).Methods(http.MethodGet)
	r.HandleFunc("/qr/catalog", sr.QrCatalogHandler).Methods(http.MethodPost)
	r.HandleFunc("/qr/uploads", sr.QrUploadsHandler).Methods(http.MethodGet)

	log.Println("✓ All services registered")
}

// writeJSON writes a success envelope
func writeJSON(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(envelope{
		Status:  "ok",
		Message: message,
		Data:    data,
	})
}

// writeError writes an error envelope
func writeError(w http.ResponseWriter, statusCode int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(envelope{
		Status:  "error",
		Code:    code,
		Message: message,
	})
}

// writeRepoError maps a repository error code to its HTTP status
func writeRepoError(w http.ResponseWriter, repoErr *repository.RepositoryError) {
	statusCode := http.StatusInternalServerError
	switch repoErr.Code {
	case repository.CodeInvalidFormat:
		statusCode = http.StatusBadRequest
	case repository.CodeNotFound:
		statusCode = http.StatusNotFound
	case repository.CodeDuplicate, repository.CodeSessionComplete, repository.CodeSkuMismatch:
		statusCode = http.StatusConflict
	}
	writeError(w, statusCode, repoErr.Code, repoErr.Message)
}

// operatorID extracts the operator attribution header. Every mutating
// endpoint requires it so scans can be traced back to a desk.
func operatorID(r *http.Request) string {
	return r.Header.Get("X-Operator-ID")
}
