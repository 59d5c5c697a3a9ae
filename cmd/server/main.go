package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/pants/internal/api"
	"github.com/RMahshie/pants/internal/config"
	"github.com/RMahshie/pants/internal/export"
	"github.com/RMahshie/pants/internal/nutrition"
	"github.com/RMahshie/pants/internal/repository/postgres"
	"github.com/RMahshie/pants/internal/storage"
	"github.com/RMahshie/pants/internal/web"
	"github.com/RMahshie/pants/pkg/visuals"
)

func main() {
	// Configure zerolog for structured logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	zerolog.SetGlobalLevel(cfg.Server.LogLevel)
	if cfg.Server.IsDev() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Database
	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer db.Close()

	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.PingContext(startCtx); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	if err := postgres.Migrate(startCtx, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database schema")
	}

	repos := api.Repositories{
		Ingredients: postgres.NewPostgresIngredientRepository(db),
		Recipes:     postgres.NewPostgresRecipeRepository(db),
		Diary:       postgres.NewPostgresDiaryRepository(db),
		Targets:     postgres.NewPostgresTargetRepository(db),
		Products:    postgres.NewPostgresProductRepository(db),
	}
	nutritionSvc := nutrition.NewService(repos.Ingredients, repos.Recipes, repos.Diary, repos.Targets)

	// Exports need a bucket
	var exportSvc export.Service
	if cfg.ExportsEnabled() {
		store, err := storage.NewS3Store(startCtx, storage.S3Config{
			Bucket:    cfg.AWS.S3Bucket,
			Endpoint:  cfg.AWS.S3Endpoint,
			Region:    cfg.AWS.Region,
			AccessKey: cfg.AWS.AccessKeyID,
			SecretKey: cfg.AWS.SecretAccessKey,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create object store")
		}
		exportSvc = export.NewService(nutritionSvc, store, cfg.Export.URLExpiry)
		log.Info().Str("bucket", cfg.AWS.S3Bucket).Dur("url_expiry", cfg.Export.URLExpiry).Msg("Diary exports enabled")
	} else {
		log.Warn().Msg("S3_BUCKET not set, diary exports disabled")
	}
	cancelStart()

	// Create Chi router
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(zerologLogger())
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(api.TrailingSlash)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Create Huma API
	humaConfig := huma.DefaultConfig("Pants API", api.Version)
	humaConfig.DocsPath = "/api/docs"
	humaAPI := humachi.New(router, humaConfig)
	api.RegisterRoutes(humaAPI, repos, nutritionSvc, exportSvc)

	// Server-rendered pages
	pages, err := web.NewPages(web.Config{
		BarStyle: visuals.BarStyle{
			Foreground: cfg.Display.ProgressForeground,
			Background: cfg.Display.ProgressBackground,
		},
		Version: api.Version,
	}, nutritionSvc, repos.Ingredients, repos.Recipes, repos.Targets, repos.Products)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load page templates")
	}
	pages.Routes(router)

	// Start server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Server.Env).Msg("Starting pants server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// zerologLogger returns a Chi middleware that logs HTTP requests using zerolog
func zerologLogger() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				log.Info().
					Str("request_id", middleware.GetReqID(r.Context())).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("remote_ip", r.RemoteAddr).
					Int("status", ww.Status()).
					Dur("latency", time.Since(start)).
					Str("user_agent", r.UserAgent()).
					Msg("HTTP request")
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
