package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	auth "Cablesize/internal/auth"
	ampacity "Cablesize/internal/calc/ampacity"
	catalog "Cablesize/internal/calc/catalog"
	compliance "Cablesize/internal/calc/compliance"
	drop "Cablesize/internal/calc/drop"
	lifecycle "Cablesize/internal/calc/lifecycle"
	batch "Cablesize/internal/calc/premium/batch"
	importer "Cablesize/internal/calc/premium/importer"
	optimize "Cablesize/internal/calc/premium/optimize"
	report "Cablesize/internal/calc/report"
	"Cablesize/internal/calc/respond"
	section "Cablesize/internal/calc/section"
	sizing "Cablesize/internal/calc/sizing"
	"Cablesize/internal/config"
	"Cablesize/internal/logger"
	"Cablesize/internal/middleware"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func HandleList(router *mux.Router, cfg *config.Config) {
	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		respond.OK(w, map[string]string{"status": "ok"})
	}).Methods("GET")

	limited := api.NewRoute().Subrouter()
	limited.Use(limiter.LimitMiddleware)
	if cfg.AuthEnabled() {
		authEnv := &auth.Authenv{JWTkey: []byte(cfg.TokenKey)}
		limited.Use(authEnv.AuthMiddleware)
	} else {
		slog.Warn("TOKEN_KEY is not set, tools API is open")
	}

	sectionH := &section.Handler{}
	catalogH := &catalog.Handler{}
	ampacityH := &ampacity.Handler{}
	lifecycleH := &lifecycle.Handler{}
	sizingH := &sizing.Handler{}
	dropH := &drop.Handler{}
	complianceH := &compliance.Handler{}
	reportH := &report.Handler{}
	optimizeH := &optimize.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{MaxBytes: cfg.MaxUploadBytes}

	limited.HandleFunc("/tools/section/required", sectionH.Required).Methods("POST")
	limited.HandleFunc("/tools/section/verify", sectionH.Verify).Methods("POST")
	limited.HandleFunc("/tools/catalog/resolve", catalogH.Resolve).Methods("POST")
	limited.HandleFunc("/tools/catalog/{material}", catalogH.List).Methods("GET")
	limited.HandleFunc("/tools/ampacity/reconcile", ampacityH.Reconcile).Methods("POST")
	limited.HandleFunc("/tools/lifecycle/calc", lifecycleH.Calc).Methods("POST")
	limited.HandleFunc("/tools/sizing/calc", sizingH.Calc).Methods("POST")
	limited.HandleFunc("/tools/drop/calc", dropH.Calc).Methods("POST")
	limited.HandleFunc("/tools/compliance/check", complianceH.Check).Methods("POST")
	limited.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	limited.HandleFunc("/tools-premium/optimize", optimizeH.Calc).Methods("POST")
	limited.HandleFunc("/tools-premium/batch", batchH.Calc).Methods("POST")
	limited.HandleFunc("/tools-premium/import", importerH.Lines).Methods("POST")
}

func NewHandler(cfg *config.Config) http.Handler {
	router := mux.NewRouter()
	HandleList(router, cfg)
	return middleware.LogRequest(middleware.CORS(cfg.CORSAllowedOrigin)(router))
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewHandler(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		slog.Info("starting server", "addr", server.Addr, "tls", cfg.TLSEnabled())
		var serveErr error
		if cfg.TLSEnabled() {
			serveErr = server.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
		} else {
			serveErr = server.ListenAndServe()
		}
		if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server error", "error", serveErr)
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("shutdown signal received, closing active connections")

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}
	wg.Wait()
	slog.Info("server stopped")
}
