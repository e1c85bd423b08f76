package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"formworks/internal/auth"
	"formworks/internal/config"
	"formworks/internal/fieldtypes"
	"formworks/internal/handler"
	"formworks/internal/middleware"
	"formworks/internal/repository/postgres"
	"formworks/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	var logOut io.Writer = os.Stdout
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, cfg.MaxLogFiles)
		if err != nil {
			log.Fatalf("Failed to setup log file: %v", err)
		}
		defer logFile.Close()
		logOut = io.MultiWriter(os.Stdout, logFile)
	}

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Create JWT verifier for the external auth service
	jwtVerifier, err := auth.NewJWTVerifier(cfg.AuthJWKSURL, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	defer jwtVerifier.Close()

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Create repositories
	tables := postgres.NewTableNames(cfg.TablePrefix)
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	formRepo := postgres.NewFormRepository(repoConfig)
	submissionRepo := postgres.NewSubmissionRepository(repoConfig)

	// Load the field type registry from embedded config
	typeRegistry, err := fieldtypes.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load field type registry: %v", err)
	}
	logger.Info("field type registry loaded", "types", len(typeRegistry.List()))

	// Create services
	formService := service.NewFormService(formRepo, typeRegistry, logger)
	submissionService := service.NewSubmissionService(formRepo, submissionRepo, typeRegistry, logger)

	// Create handlers
	formHandler := handler.NewFormHandler(formService, logger)
	submissionHandler := handler.NewSubmissionHandler(submissionService, logger)
	fieldTypesHandler := handler.NewFieldTypesHandler(typeRegistry, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", formHandler.HealthCheck)

	// Admin form routes
	mux.HandleFunc("POST /api/admin/forms", formHandler.CreateForm)
	mux.HandleFunc("GET /api/admin/forms", formHandler.ListForms)
	mux.HandleFunc("GET /api/admin/forms/{id}", formHandler.GetForm)
	mux.HandleFunc("PATCH /api/admin/forms/{id}", formHandler.UpdateForm)
	mux.HandleFunc("DELETE /api/admin/forms/{id}", formHandler.DeleteForm)

	// Admin field routes ("reorder" is a literal segment, so it wins over {fieldId})
	mux.HandleFunc("POST /api/admin/forms/{id}/fields", formHandler.AddField)
	mux.HandleFunc("PUT /api/admin/forms/{id}/fields/reorder", formHandler.ReorderFields)
	mux.HandleFunc("PATCH /api/admin/forms/{id}/fields/{fieldId}", formHandler.UpdateField)
	mux.HandleFunc("DELETE /api/admin/forms/{id}/fields/{fieldId}", formHandler.DeleteField)

	// Admin submission listing
	mux.HandleFunc("GET /api/admin/forms/{id}/submissions", submissionHandler.ListSubmissions)

	// Field type registry for form-builder UIs
	mux.HandleFunc("GET /api/fieldtypes", fieldTypesHandler.ListFieldTypes)

	// Public routes - no token required
	mux.HandleFunc("GET /api/forms/{id}", submissionHandler.GetPublicForm)
	mux.HandleFunc("POST /api/forms/{id}/submit", submissionHandler.SubmitForm)

	// Build middleware chain
	var root http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Auth → Routes
	root = middleware.AuthMiddleware(jwtVerifier)(root)
	root = middleware.Recovery(logger)(root)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
