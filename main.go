package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"couriersathi/internal/auth"
	"couriersathi/internal/config"
	"couriersathi/internal/db"
	router "couriersathi/internal/http"
	"couriersathi/internal/http/handlers"
	"couriersathi/internal/repositories"
	"couriersathi/internal/services"
)

const (
	startupProbes     = 12
	startupProbeDelay = 2 * time.Second
)

func main() {
	_ = godotenv.Load()

	env := config.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	conn := db.Connector{
		DSN:         config.ResolveDB(os.Getenv).DSN(),
		MaxAttempts: db.DefaultMaxAttempts,
		Delay:       db.DefaultRetryDelay,
	}
	waitForDB(conn)

	creds, err := auth.NewStaticStore(env.AdminUser, env.AdminPass)
	if err != nil {
		log.Fatalf("could not hash admin password: %v", err)
	}

	repo := repositories.BookingRepo{Conn: conn}
	handler := &handlers.Handler{
		Env: env,
		Submissions: services.SubmissionService{
			Store:         repo,
			OwnerWhatsApp: env.OwnerWhatsApp,
		},
		Bookings: repo,
		Export:   services.ExportService{Loader: repo.ListRecent},
		Creds:    creds,
		Tokens:   auth.TokenIssuer{Secret: []byte(env.APISecret)},
		Conn:     conn,
	}

	r := router.NewRouter(handler)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly.")
}

// waitForDB gives MySQL time to come up before the first request; the
// server starts either way and the per-request connector keeps retrying.
func waitForDB(conn db.Connector) {
	for i := 0; i < startupProbes; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := conn.Probe(ctx)
		cancel()
		if err == nil {
			log.Println("Database reachable.")
			return
		}
		log.Printf("Database not ready (attempt %d/%d): %v", i+1, startupProbes, err)
		time.Sleep(startupProbeDelay)
	}
	log.Println("Database still unreachable; continuing startup.")
}
