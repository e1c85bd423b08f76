package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"formworks/internal/config"
	"formworks/internal/domain/models"
	"formworks/internal/domain/services"
	"formworks/internal/fieldtypes"
	"formworks/internal/repository/postgres"
	"formworks/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	// Parse command-line flags
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed demo forms")
	clearData := flag.Bool("clear-data", false, "Clear all forms and submissions (keep schema)")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && (*dropTables || *clearData) {
		log.Fatalf("BLOCKED: Cannot run destructive operations (--drop-tables or --clear-data) in production environment")
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	log.Printf("Seeding database (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)

	// Create database connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)

	// Drop tables if requested
	if *dropTables {
		log.Println("Dropping all tables...")
		if err := dropAllTables(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("Tables dropped")
	}

	// Run schema to ensure tables exist
	log.Println("Ensuring database schema is up to date...")
	if err := runSchema(ctx, pool, tables, cfg.TablePrefix); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	log.Println("Schema ready")

	if *schemaOnly {
		log.Println("Schema setup complete (schema-only mode)")
		return
	}

	if *clearData {
		log.Println("Clearing existing forms and submissions...")
		if err := clearFormData(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to clear data: %v", err)
		}
		log.Println("Data cleared successfully")
		return
	}

	// Create repositories and services; seeding goes through the service
	// layer so it exercises the same validation as the API
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	formRepo := postgres.NewFormRepository(repoConfig)

	typeRegistry, err := fieldtypes.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load field type registry: %v", err)
	}

	formService := service.NewFormService(formRepo, typeRegistry, logger)

	log.Println("Seeding demo form...")
	if err := seedDemoForm(ctx, formService); err != nil {
		log.Fatalf("Failed to seed demo form: %v", err)
	}

	log.Println("Seeding complete!")
}

// seedDemoForm creates a demo feedback survey through the form service
func seedDemoForm(ctx context.Context, formService services.FormService) error {
	form, err := formService.CreateForm(ctx, &services.CreateFormRequest{
		Title:       "Customer Feedback Survey",
		Description: "Tell us how we did",
	})
	if err != nil {
		return err
	}

	two := 2
	thousand := 1000
	fields := []*services.AddFieldRequest{
		{
			Label:    "Full Name",
			Name:     "full_name",
			Type:     "text",
			Required: true,
			Validation: &models.ValidationRules{
				MinLength: &two,
			},
		},
		{
			Label:    "Email",
			Name:     "email",
			Type:     "email",
			Required: true,
			Validation: &models.ValidationRules{
				Regex: `^[^@\s]+@[^@\s]+\.[^@\s]+$`,
			},
		},
		{
			Label:    "Rating",
			Name:     "rating",
			Type:     "select",
			Required: true,
			Options:  []string{"1", "2", "3", "4", "5"},
		},
		{
			Label: "Comments",
			Name:  "comments",
			Type:  "textarea",
			Validation: &models.ValidationRules{
				MaxLength: &thousand,
			},
		},
	}

	for _, req := range fields {
		if _, err := formService.AddField(ctx, form.ID, req); err != nil {
			return err
		}
		log.Printf("Created field %q on form %s", req.Name, form.ID)
	}

	return nil
}

// runSchema creates tables if they don't exist
func runSchema(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames, tablePrefix string) error {
	// Enable UUID extension
	_, err := pool.Exec(ctx, "CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"")
	if err != nil {
		return err
	}

	// Create forms table
	createForms := `
		CREATE TABLE IF NOT EXISTS ` + tables.Forms + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			fields JSONB NOT NULL DEFAULT '[]',
			version INTEGER NOT NULL DEFAULT 1,
			is_deleted BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createForms); err != nil {
		return err
	}

	// Create submissions table
	createSubmissions := `
		CREATE TABLE IF NOT EXISTS ` + tables.Submissions + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			form_id UUID NOT NULL REFERENCES ` + tables.Forms + `(id),
			responses JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createSubmissions); err != nil {
		return err
	}

	// Create indexes
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `forms_listing ON ` + tables.Forms + `(created_at DESC) WHERE is_deleted = FALSE`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `submissions_form ON ` + tables.Submissions + `(form_id, created_at DESC)`,
	}

	for _, indexSQL := range indexes {
		if _, err := pool.Exec(ctx, indexSQL); err != nil {
			return err
		}
	}

	return nil
}

// clearFormData removes all forms and submissions but keeps the schema
func clearFormData(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	if _, err := pool.Exec(ctx, "DELETE FROM "+tables.Submissions); err != nil {
		return err
	}
	if _, err := pool.Exec(ctx, "DELETE FROM "+tables.Forms); err != nil {
		return err
	}
	return nil
}

// dropAllTables drops the submissions table first to respect the foreign key
func dropAllTables(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	if _, err := pool.Exec(ctx, "DROP TABLE IF EXISTS "+tables.Submissions); err != nil {
		return err
	}
	if _, err := pool.Exec(ctx, "DROP TABLE IF EXISTS "+tables.Forms); err != nil {
		return err
	}
	return nil
}
