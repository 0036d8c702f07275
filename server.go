package stationdir

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/railkit/stationdir/config"
)

var (
	server *http.Server
)

// StartServer mounts the finder's handlers and starts serving in the
// background. It returns once the listener goroutine is launched.
func StartServer(cfg config.ServerConfig, f *Finder) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", f.handleHealth)
	mux.HandleFunc("/api/station", f.handleStation)
	mux.HandleFunc("/api/nearest", f.handleNearest)
	mux.HandleFunc("/api/search", f.handleSearch)
	mux.HandleFunc("/api/cities", f.handleCities)
	mux.HandleFunc("/api/city-stations", f.handleCityStations)
	mux.HandleFunc("/api/journey", f.handleJourney)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	server = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", addr)
}

func HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("server shutdown error: %v", err)
		} else {
			log.Printf("server shut down successfully")
		}
	}
}
