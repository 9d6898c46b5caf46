package main

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"hairsalon/internal/api"
	"hairsalon/internal/auth"
	"hairsalon/internal/cache"
	"hairsalon/internal/config"
	"hairsalon/internal/repository"
	"hairsalon/internal/salon"
	"hairsalon/internal/service"
	"hairsalon/internal/utils"
)

func main() {
	logger := utils.InitLogger()
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalw("invalid configuration", "error", err)
	}

	client := salon.NewClient(cfg.SalonAPIBaseURL, logger)
	catalog := cache.NewCatalog(client, logger)

	var sessions repository.SessionStore
	switch cfg.SessionStore {
	case "postgres":
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			logger.Fatalw("failed to open DB", "error", err)
		}
		if err := db.Ping(); err != nil {
			logger.Fatalw("failed to connect to DB", "error", err)
		}
		sessions = repository.NewPostgresSessionStore(db)
	default:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Fatalw("failed to connect to redis", "error", err)
		}
		sessions = repository.NewRedisSessionStore(rdb, cfg.SessionTTL)
	}

	sender := service.NewSenderService(logger)
	bookingSvc := service.NewBookingService(sessions, client, catalog, sender, logger)
	jobSvc := service.NewJobService(sessions, catalog, cfg.SessionTTL, logger)

	wizardHandler := api.NewWizardHandler(bookingSvc)
	catalogHandler := api.NewCatalogHandler(catalog, client)
	staffHandler := api.NewStaffHandler(client)
	userHandler := api.NewUserHandler(client)

	r := mux.NewRouter()

	// Catalog (public)
	r.HandleFunc("/api/v1/catalog/services", catalogHandler.ListServices).Methods("GET")
	r.HandleFunc("/api/v1/catalog/stylists", catalogHandler.ListStylists).Methods("GET")
	r.HandleFunc("/api/v1/catalog/stylists/byService/{serviceId}", catalogHandler.StylistsByService).Methods("GET")
	r.HandleFunc("/api/v1/catalog/stylists/byDate", catalogHandler.StylistsByDate).Methods("GET")
	r.HandleFunc("/api/v1/catalog/schedules", catalogHandler.ListSchedules).Methods("GET")

	// Booking wizard sessions (public; guests can book)
	r.HandleFunc("/api/v1/wizard/sessions", wizardHandler.StartSession).Methods("POST")
	r.HandleFunc("/api/v1/wizard/sessions/{id}", wizardHandler.GetSession).Methods("GET")
	r.HandleFunc("/api/v1/wizard/sessions/{id}", wizardHandler.Cancel).Methods("DELETE")
	r.HandleFunc("/api/v1/wizard/sessions/{id}/service", wizardHandler.SelectService).Methods("POST")
	r.HandleFunc("/api/v1/wizard/sessions/{id}/stylist", wizardHandler.SelectStylist).Methods("POST")
	r.HandleFunc("/api/v1/wizard/sessions/{id}/schedules", wizardHandler.SelectSchedules).Methods("POST")
	r.HandleFunc("/api/v1/wizard/sessions/{id}/items/{index}", wizardHandler.RemoveLineItem).Methods("DELETE")
	r.HandleFunc("/api/v1/wizard/sessions/{id}/cart", wizardHandler.ClearCart).Methods("DELETE")
	r.HandleFunc("/api/v1/wizard/sessions/{id}/review", wizardHandler.Review).Methods("GET")
	r.HandleFunc("/api/v1/wizard/sessions/{id}/confirm", wizardHandler.Confirm).Methods("POST")

	// Password reset (public)
	r.HandleFunc("/api/v1/users/resetPassword", userHandler.ResetPassword).Methods("POST")

	// Staff endpoints (bearer token required)
	staff := r.PathPrefix("/api/v1/staff").Subrouter()
	staff.Use(auth.Middleware)
	staff.HandleFunc("/bookings", staffHandler.ListBookings).Methods("GET")
	staff.HandleFunc("/bookings/history", staffHandler.BookingHistory).Methods("GET")
	staff.HandleFunc("/bookings/mine", staffHandler.BookingsOfStylist).Methods("GET")
	staff.HandleFunc("/bookings/unassigned", staffHandler.BookingsWithoutStylist).Methods("GET")
	staff.HandleFunc("/bookings/{bookingId}/status", staffHandler.ChangeBookingStatus).Methods("POST")
	staff.HandleFunc("/schedules", staffHandler.CreateSchedule).Methods("POST")
	staff.HandleFunc("/schedules/{id}", staffHandler.GetSchedule).Methods("GET")
	staff.HandleFunc("/vouchers", staffHandler.ListVouchers).Methods("GET")
	staff.HandleFunc("/vouchers/{id}", staffHandler.GetVoucher).Methods("GET")
	staff.HandleFunc("/reports", staffHandler.ListReports).Methods("GET")
	staff.HandleFunc("/reports", staffHandler.CreateReport).Methods("POST")
	staff.HandleFunc("/reports/{id}", staffHandler.UpdateReport).Methods("PUT")
	staff.HandleFunc("/reports/{id}/status", staffHandler.ChangeReportStatus).Methods("POST")

	// Housekeeping jobs
	c := cron.New()
	if _, err := c.AddFunc("*/5 * * * *", func() {
		_ = jobSvc.PurgeAbandonedSessions(context.Background())
	}); err != nil {
		logger.Fatalw("failed to schedule session sweep", "error", err)
	}
	if _, err := c.AddFunc("*/10 * * * *", func() {
		jobSvc.RefreshCatalog(context.Background())
	}); err != nil {
		logger.Fatalw("failed to schedule catalog refresh", "error", err)
	}
	c.Start()
	defer c.Stop()

	// Warm the catalog before taking traffic; a cold start still works, the
	// first reads just pay the upstream latency.
	warmCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	catalog.Refresh(warmCtx)
	cancel()

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(r)

	logger.Infow("server running", "port", cfg.Port, "session_store", cfg.SessionStore)
	if err := http.ListenAndServe(":"+cfg.Port, corsHandler); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}
