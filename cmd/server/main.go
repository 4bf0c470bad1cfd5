package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"qc-reception/config"
	"qc-reception/repository"
	"qc-reception/server"
	"qc-reception/srvreg"
	"qc-reception/tusclient"
)

func main() {
	log.Println("===========================================")
	log.Println("   QC Reception Service - Starting Up")
	log.Println("===========================================")

	// Load configuration
	cfg := config.LoadServerConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Configuration validation failed: %v", err)
	}

	log.Printf("✓ Configuration loaded")
	log.Printf("   Site ID: %s", cfg.SiteID)
	log.Printf("   HTTP Port: %s", cfg.HTTPPort)
	log.Printf("   TUS Endpoint: %s", cfg.TusEndpoint)
	log.Printf("   Database: %s:%s/%s", cfg.DatabaseHost, cfg.DatabasePort, cfg.DatabaseName)

	// Initialize repository
	log.Println("\n📦 Initializing database...")
	repo := repository.NewRepository()
	if err := repo.ConnectDB(cfg.GetDSN()); err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}

	// Initialize TUS client
	log.Println("\n🔗 Initializing TUS client...")
	tusClient := tusclient.NewTusClient(cfg.TusEndpoint)

	healthCtx, healthCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := tusClient.HealthCheck(healthCtx); err != nil {
		log.Printf("⚠️  Warning: TUS health check failed: %v", err)
		log.Println("   Service will start anyway, mapping syncs will fail until TUS is available")
	} else {
		log.Println("✓ TUS connection verified")
	}
	healthCancel()

	// Initialize service registry and web server
	log.Println("\nSetting up service registry...")
	serviceRegistry := srvreg.NewServiceRegistry(repo, tusClient)

	log.Println("\nStarting web server...")
	webServer := server.NewWebServer(cfg.HTTPPort, serviceRegistry, cfg.SiteID)
	if err := webServer.Start(); err != nil {
		log.Fatalf("❌ Failed to start web server: %v", err)
	}

	log.Println("\n===========================================")
	log.Printf("   QC Reception Service Ready!")
	log.Printf("   Site: %s", cfg.SiteID)
	log.Printf("   Listening on: http://localhost:%s", cfg.HTTPPort)
	log.Println("===========================================")
	log.Println("")

	// Wait for interrupt signal to gracefully shut down
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("\n🛑 Shutdown signal received, gracefully shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := webServer.Shutdown(ctx); err != nil {
		log.Printf("❌ Error during server shutdown: %v", err)
	}

	log.Println("✓ QC Reception Service stopped")
	log.Println("Goodbye! 👋")
}
