package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/api"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/config"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/database"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/fxfeed"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/quote"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/repository"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/secret"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection and run pending migrations
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	clientRepo := repository.NewClientRepository(db)
	cashRepo := repository.NewCashRepository(db)
	equityRepo := repository.NewEquityRepository(db)
	bondRepo := repository.NewBondRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	holdingRepo := repository.NewHoldingRepository(db)
	insuranceRepo := repository.NewInsuranceRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)
	rateRepo := repository.NewRateRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	codec, err := secret.NewCodec(cfg.Security.FernetKey)
	if err != nil {
		log.Fatalf("Failed to initialize secret codec: %v", err)
	}

	systemService := service.NewSystemService(db, settingRepo, codec)

	// The quote feed authenticates with the stored API key when one has been
	// configured.
	apiKey, err := systemService.QuoteAPIKey()
	if err != nil && !errors.Is(err, apperrors.ErrSettingNotFound) {
		log.Fatalf("Failed to read quote API key: %v", err)
	}
	quoteFeed := quote.NewClient(cfg.Feed.QuoteBaseURL, apiKey)
	rateFeed := fxfeed.NewClient(cfg.Feed.RateBaseURL)

	// Create services
	benefitService := service.NewBenefitService(insuranceRepo, rateRepo)
	clientService := service.NewClientService(clientRepo)
	cashService := service.NewCashService(cashRepo)
	equityService := service.NewEquityService(db, equityRepo, quoteFeed)
	bondService := service.NewBondService(bondRepo)
	noteService := service.NewNoteService(noteRepo)
	holdingService := service.NewHoldingService(holdingRepo)
	insuranceService := service.NewInsuranceService(insuranceRepo, clientRepo, benefitService)
	ratesService := service.NewRatesService(rateRepo, clientRepo, rateFeed, benefitService)
	aggregationService := service.NewAggregationService(
		clientRepo, cashRepo, equityRepo, bondRepo, noteRepo, holdingRepo, rateRepo,
	)
	snapshotService := service.NewSnapshotService(snapshotRepo, aggregationService)
	groupService := service.NewGroupService(groupRepo, clientRepo)

	// Scheduled rate refresh
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Feed.RefreshSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		ratesService.RefreshAll(ctx)
	}); err != nil {
		log.Fatalf("Failed to schedule rate refresh: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create router
	router := api.NewRouter(api.Services{
		System:      systemService,
		Client:      clientService,
		Cash:        cashService,
		Equity:      equityService,
		Bond:        bondService,
		Note:        noteService,
		Holding:     holdingService,
		Insurance:   insuranceService,
		Benefit:     benefitService,
		Rates:       ratesService,
		Aggregation: aggregationService,
		Snapshot:    snapshotService,
		Group:       groupService,
	}, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
