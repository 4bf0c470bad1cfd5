package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"qc-reception/config"
	"qc-reception/feedback"
	"qc-reception/journal"
	"qc-reception/scanner"
	"qc-reception/terminal"
)

func main() {
	log.Println("===========================================")
	log.Println("   QC Scanning Terminal - Starting Up")
	log.Println("===========================================")

	// Load configuration
	cfg := config.LoadTerminalConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Configuration validation failed: %v", err)
	}

	log.Printf("✓ Configuration loaded")
	log.Printf("   Server: %s", cfg.ServerEndpoint)
	log.Printf("   Operator: %s", cfg.OperatorID)
	log.Printf("   Journal: %s", cfg.JournalDir)

	// Open the local scan journal
	log.Println("\n📦 Opening scan journal...")
	jnl, err := journal.Open(cfg.JournalDir, cfg.JournalTTL)
	if err != nil {
		log.Fatalf("❌ Failed to open scan journal: %v", err)
	}
	defer jnl.Close()
	log.Println("✓ Scan journal ready")

	// Audio cues
	var output feedback.Output
	if !cfg.Mute {
		output = feedback.NewPlayer()
	}
	sounder := feedback.NewToneSounder(output)

	// Workflow controller backed by the reception service
	client := terminal.NewClient(cfg.ServerEndpoint, cfg.OperatorID)
	controller := terminal.NewController(terminal.ControllerConfig{
		Service:    client,
		Sounder:    sounder,
		Recorder:   jnl,
		AutoReturn: cfg.AutoReturn,
		OnChange:   render,
	})

	// Keyboard-wedge input: the scanner types codes into stdin. The
	// debouncer collapses each burst into one scan event.
	debouncer := scanner.NewDebouncer(cfg.QuietPeriod, func(code string) {
		controller.HandleScan(context.Background(), terminal.ScanEvent{
			RawText:   code,
			Source:    terminal.SourceKeyboard,
			Timestamp: time.Now(),
		})
	})

	go readInput(debouncer)

	log.Println("\n===========================================")
	log.Println("   Terminal Ready - scan a box label")
	log.Println("===========================================")
	render(controller.View())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("\n🛑 Shutting down terminal...")
	log.Println("Goodbye! 👋")
}

// readInput feeds stdin lines through the debouncer. Hardware scanners
// terminate each code with a newline, which maps to Enter.
func readInput(debouncer *scanner.Debouncer) {
	in := bufio.NewScanner(os.Stdin)
	for in.Scan() {
		debouncer.SetValue(in.Text())
		debouncer.Enter()
		debouncer.Settle()
	}
}

// render prints the workflow state after every change
func render(view terminal.View) {
	switch {
	case view.Err != "":
		fmt.Printf("✗ %s\n", view.Err)
	case view.Message != "":
		fmt.Printf("✓ %s\n", view.Message)
	}

	if view.Box != nil {
		fmt.Printf("  Box %s | SKU %s | %d/%d pairs\n",
			view.Box.SequenceNumber, view.Box.SKU, view.Box.ScannedPairs, view.Box.ExpectedPairs)
	}
	if view.State == terminal.AwaitingBox {
		fmt.Println("  → scan a box label")
	}
}
