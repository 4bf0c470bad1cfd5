package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"qc-reception/srvreg"
)

// WebServer handles HTTP requests for the reception service
type WebServer struct {
	httpAddr        string
	server          *http.Server
	serviceRegistry *srvreg.ServiceRegistry
	startTime       time.Time
	siteID          string
}

// NewWebServer creates a new reception web server
func NewWebServer(httpPort string, serviceRegistry *srvreg.ServiceRegistry, siteID string) *WebServer {
	router := mux.NewRouter()

	ws := &WebServer{
		httpAddr: ":" + httpPort,
		server: &http.Server{
			Addr:    ":" + httpPort,
			Handler: router,
		},
		serviceRegistry: serviceRegistry,
		startTime:       time.Now(),
		siteID:          siteID,
	}

	router.HandleFunc("/health", ws.handleHealth).Methods(http.MethodGet)
	serviceRegistry.RegisterRoutes(router)

	return ws
}

// Start starts the reception web server
func (ws *WebServer) Start() error {
	log.Printf("🚀 Starting Reception Web Server")
	log.Printf("   Site ID: %s", ws.siteID)
	log.Printf("   Address: %s", ws.httpAddr)

	go func() {
		if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("❌ Reception web server error: %v", err)
		}
	}()

	log.Println("✓ Reception web server started successfully")
	return nil
}

// Shutdown gracefully shuts down the web server
func (ws *WebServer) Shutdown(ctx context.Context) error {
	log.Println("Shutting down reception web server...")
	return ws.server.Shutdown(ctx)
}

// handleHealth reports service liveness
func (ws *WebServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"site_id": ws.siteID,
		"uptime":  time.Since(ws.startTime).Round(time.Second).String(),
	})
}
