package router

import (
	"net/http"
	"strings"

	"listing-wizard/internal/application/drafts"
	"listing-wizard/internal/application/editors"
	"listing-wizard/internal/application/flow"
	healthsvc "listing-wizard/internal/application/health"
	lesvc "listing-wizard/internal/application/listingevents"
	listsvc "listing-wizard/internal/application/listings"
	uploadsvc "listing-wizard/internal/application/uploads"
	"listing-wizard/internal/application/wizard"
	"listing-wizard/internal/config"
	"listing-wizard/internal/infrastructure/cache"
	"listing-wizard/internal/infrastructure/database"
	healthhandler "listing-wizard/internal/interfaces/handlers/health"
	lehandler "listing-wizard/internal/interfaces/handlers/listingevents"
	listhandler "listing-wizard/internal/interfaces/handlers/listings"
	uploadhandler "listing-wizard/internal/interfaces/handlers/uploads"
	wizardhandler "listing-wizard/internal/interfaces/handlers/wizard"
	"listing-wizard/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// CreateApp wires the Fiber app. Redis, Postgres and Supabase storage are all
// optional: without Redis drafts cannot be saved and health counters stay
// empty, without a database submissions are only logged, and without storage
// photo uploads get placeholder URLs.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		var err error
		rdb, err = cache.Open(cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, nil, err
		}
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler(rdb),
		EnableTrustedProxyCheck: true,
	})

	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
		DevPassword:   cfg.DevPassword,
	}))
	if rdb != nil {
		app.Use(middleware.HealthMarker(rdb))
	}
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())
	app.Use(middleware.DraftOwner())

	// Stores
	var draftStore drafts.Store = drafts.NoDraft{}
	if rdb != nil {
		draftStore = drafts.NewRedisStore(rdb, cfg.DraftTTL)
	}

	var submitter wizard.Submitter = listsvc.LogSubmitter{}
	var listings *listsvc.Service
	if db != nil {
		listings = &listsvc.Service{DB: db}
		submitter = listings
	}

	var media editors.MediaStore = &uploadsvc.StubStore{}
	var uploads *uploadsvc.Service
	if cfg.StorageConfigured() {
		uploads = &uploadsvc.Service{
			Client:      &uploadsvc.HTTPClient{BaseURL: cfg.SupabaseURL, SecretKey: cfg.SupabaseSecretKey},
			SupabaseURL: cfg.SupabaseURL,
			Bucket:      cfg.MediaBucket,
		}
		media = uploads
	}

	registry := flow.NewRegistry(flow.Config{
		Drafts:      draftStore,
		Media:       media,
		Submitter:   submitter,
		SubmitDelay: cfg.SubmitDelay,
	}, cfg.SessionTTL)

	// Health
	hh := &healthhandler.Handlers{
		Rdb:     rdb,
		Options: healthsvc.Options{Sessions: registry, Probes: probes(cfg)},
	}
	if db != nil {
		hh.DB = &database.Pinger{DB: db}
	}
	app.Get("/", hh.Root)
	app.Get("/reset", middleware.RequireAdminKey(cfg.HealthAdminKey), hh.Reset)
	app.Get("/health/json", hh.JSON)
	app.Get("/health/errors", hh.Errors)

	// Wizard
	wh := &wizardhandler.Handlers{Registry: registry}
	wh.Register(app.Group("/api/v1/wizard"))

	// Uploads
	uph := &uploadhandler.Handlers{Service: uploads}
	app.Post("/api/v1/uploads/listing-photo", uph.ListingPhoto)

	// Listings
	if listings != nil {
		lh := &listhandler.Handlers{Service: listings}
		lg := app.Group("/api/v1/listings")
		lg.Get("/get-all-listings", lh.GetAllListings)
		lg.Get("/get-listing/:listing_id", lh.GetListingByID)

		leh := &lehandler.Handlers{Service: &lesvc.Service{Listings: listings}}
		app.Get("/api/v1/listing-events/get-listing-events/:listing_id", leh.GetListingEvents)
	}

	log.Info().
		Bool("redis", rdb != nil).
		Bool("database", db != nil).
		Bool("storage", uploads != nil).
		Dur("submit_delay", cfg.SubmitDelay).
		Msg("App wired")
	return app, db, rdb, nil
}

func probes(cfg *config.Config) []healthsvc.Probe {
	var out []healthsvc.Probe
	if cfg.SupabaseURL != "" {
		out = append(out, healthsvc.Probe{
			Name: "storage",
			URL:  strings.TrimRight(cfg.SupabaseURL, "/") + "/storage/v1/version",
		})
	}
	return out
}

func Handler(app *fiber.App) http.Handler {
	return adaptor.FiberApp(app)
}
