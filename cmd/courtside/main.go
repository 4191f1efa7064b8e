package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fortuna/courtside/internal/api/mcptools"
	"github.com/fortuna/courtside/internal/api/rest"
	"github.com/fortuna/courtside/internal/api/websocket"
	"github.com/fortuna/courtside/internal/app"
	"github.com/fortuna/courtside/internal/config"
	"github.com/fortuna/courtside/internal/telemetry"
)

const (
	serviceName    = "courtside"
	serviceVersion = "1.0.0"
)

func main() {
	cfg := config.Load()
	telemetry.Init(telemetry.ParseLevel(cfg.LogLevel))
	log := telemetry.Component("main")

	log.Infof("Starting %s v%s - player game log dashboard", serviceName, serviceVersion)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialise: %v", err)
	}
	defer a.Close()

	var health rest.HealthChecker
	if a.Database != nil {
		health = a.Database
	}

	mcpServer := mcptools.NewServer(a.Service, serviceVersion)
	restServer := rest.NewServer(cfg.RESTPort, rest.NewHandler(a.Service, health), mcptools.Handler(mcpServer))
	go func() {
		if err := restServer.Start(); err != nil {
			log.Errorf("REST server error: %v", err)
		}
	}()

	wsServer := websocket.NewServer(a.Service)
	go func() {
		if err := wsServer.Start(cfg.WSPort); err != nil {
			log.Errorf("WebSocket server error: %v", err)
		}
	}()

	log.Infof("Dashboard: http://0.0.0.0:%s/", cfg.RESTPort)
	log.Infof("REST API:  http://0.0.0.0:%s/api/v1", cfg.RESTPort)
	log.Infof("MCP:       http://0.0.0.0:%s/mcp", cfg.RESTPort)
	log.Infof("WebSocket: ws://0.0.0.0:%s/ws/dashboard", cfg.WSPort)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := restServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("REST server shutdown error: %v", err)
	}
	if err := wsServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("WebSocket server shutdown error: %v", err)
	}

	log.Infof("%s stopped", serviceName)
}
