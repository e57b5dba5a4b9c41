package bootstrap

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "fraud-monitoring-system/docs" // Swagger docs
	"fraud-monitoring-system/internal/api/rest"
	"fraud-monitoring-system/internal/config"
)

// StartService запускает сервис мониторинга мошенничества
func StartService() {
	cfg := config.Load()

	deps := BuildDependencies(cfg)
	defer deps.Close()

	// Настройка REST API
	handlers := rest.NewHandlers(deps.Service, deps.Registry)
	router := rest.SetupRouter(handlers)

	// Запуск HTTP сервера
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Fraud Monitoring Service starting on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
