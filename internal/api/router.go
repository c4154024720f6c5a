package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/api/handlers"
	custommiddleware "github.com/wealthdash/Wealth-Dashboard-Backend/internal/api/middleware"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/config"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/service"
)

// Services bundles the service dependencies of the router.
type Services struct {
	System      *service.SystemService
	Client      *service.ClientService
	Cash        *service.CashService
	Equity      *service.EquityService
	Bond        *service.BondService
	Note        *service.NoteService
	Holding     *service.HoldingService
	Insurance   *service.InsuranceService
	Benefit     *service.BenefitService
	Rates       *service.RatesService
	Aggregation *service.AggregationService
	Snapshot    *service.SnapshotService
	Group       *service.GroupService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svc Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	systemHandler := handlers.NewSystemHandler(svc.System)
	clientHandler := handlers.NewClientHandler(svc.Client)
	cashHandler := handlers.NewCashHandler(svc.Cash)
	equityHandler := handlers.NewEquityHandler(svc.Equity)
	bondHandler := handlers.NewBondHandler(svc.Bond)
	noteHandler := handlers.NewNoteHandler(svc.Note)
	holdingHandler := handlers.NewHoldingHandler(svc.Holding)
	insuranceHandler := handlers.NewInsuranceHandler(svc.Insurance)
	benefitHandler := handlers.NewBenefitHandler(svc.Benefit)
	ratesHandler := handlers.NewRatesHandler(svc.Rates)
	overviewHandler := handlers.NewOverviewHandler(svc.Aggregation)
	snapshotHandler := handlers.NewSnapshotHandler(svc.Snapshot)
	groupHandler := handlers.NewGroupHandler(svc.Group)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
			r.Get("/quote-key", systemHandler.QuoteAPIKeyStatus)
			r.Post("/quote-key", systemHandler.SetQuoteAPIKey)
		})

		// Client registry and client-scoped resources
		r.Route("/client", func(r chi.Router) {
			r.Get("/", clientHandler.Clients)
			r.Post("/", clientHandler.CreateClient)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)

				r.Get("/", clientHandler.GetClient)

				r.Get("/cash", cashHandler.Balances)
				r.Put("/cash", cashHandler.SetBalance)
				r.Delete("/cash/{currency}", cashHandler.DeleteBalance)

				r.Get("/equity", equityHandler.Positions)
				r.Post("/equity", equityHandler.CreatePosition)
				r.Post("/equity/refresh-prices", equityHandler.RefreshPrices)

				r.Get("/bond", bondHandler.Positions)
				r.Post("/bond", bondHandler.CreatePosition)
				r.Get("/bond-update", bondHandler.UpdateHistory)
				r.Post("/bond-update", bondHandler.AppendUpdate)
				r.Get("/bond-update/latest", bondHandler.LatestUpdate)

				r.Get("/note", noteHandler.Notes)
				r.Post("/note", noteHandler.CreateNote)

				r.Get("/recurring", holdingHandler.Plans)
				r.Post("/recurring", holdingHandler.CreatePlan)
				r.Get("/policy", holdingHandler.Policies)
				r.Post("/policy", holdingHandler.CreatePolicy)

				r.Get("/calculator", insuranceHandler.Calculators)
				r.Post("/calculator", insuranceHandler.CreateCalculator)

				r.Get("/benefits", benefitHandler.Table)
				r.Get("/benefits/{age}", benefitHandler.Lookup)

				r.Get("/rates", ratesHandler.Rates)
				r.Put("/rates", ratesHandler.SetRates)
				r.Post("/rates/refresh", ratesHandler.Refresh)

				r.Get("/overview", overviewHandler.Overview)

				r.Get("/snapshot", snapshotHandler.History)
				r.Post("/snapshot", snapshotHandler.Append)
				r.Get("/snapshot/latest", snapshotHandler.Latest)
				r.Get("/snapshot/live", snapshotHandler.Live)
				r.Post("/snapshot/live", snapshotHandler.SaveLive)

				r.Get("/group", groupHandler.Groups)
				r.Post("/group", groupHandler.CreateGroup)
			})
		})

		// Position resources addressed by their own ID
		r.Route("/equity/{uuid}", func(r chi.Router) {
			r.Use(custommiddleware.ValidateUUIDMiddleware)
			r.Get("/", equityHandler.GetPosition)
			r.Put("/", equityHandler.UpdatePosition)
			r.Delete("/", equityHandler.DeletePosition)
		})

		r.Route("/bond/{uuid}", func(r chi.Router) {
			r.Use(custommiddleware.ValidateUUIDMiddleware)
			r.Put("/", bondHandler.UpdatePosition)
			r.Delete("/", bondHandler.DeletePosition)
		})

		r.Route("/note/{uuid}", func(r chi.Router) {
			r.Use(custommiddleware.ValidateUUIDMiddleware)
			r.Get("/", noteHandler.GetNote)
			r.Put("/", noteHandler.UpdateNote)
			r.Delete("/", noteHandler.DeleteNote)
		})

		r.Route("/recurring/{uuid}", func(r chi.Router) {
			r.Use(custommiddleware.ValidateUUIDMiddleware)
			r.Put("/", holdingHandler.UpdatePlan)
			r.Delete("/", holdingHandler.DeletePlan)
		})

		r.Route("/policy/{uuid}", func(r chi.Router) {
			r.Use(custommiddleware.ValidateUUIDMiddleware)
			r.Put("/", holdingHandler.UpdatePolicy)
			r.Delete("/", holdingHandler.DeletePolicy)
		})

		r.Route("/calculator/{uuid}", func(r chi.Router) {
			r.Use(custommiddleware.ValidateUUIDMiddleware)
			r.Get("/", insuranceHandler.GetCalculator)
			r.Put("/", insuranceHandler.UpdateCalculator)
			r.Delete("/", insuranceHandler.DeleteCalculator)
			r.Get("/rows", insuranceHandler.Rows)
		})

		r.Route("/snapshot/{uuid}", func(r chi.Router) {
			r.Use(custommiddleware.ValidateUUIDMiddleware)
			r.Get("/", snapshotHandler.Get)
		})

		r.Route("/group/{uuid}", func(r chi.Router) {
			r.Use(custommiddleware.ValidateUUIDMiddleware)
			r.Delete("/", groupHandler.DeleteGroup)
			r.Get("/member", groupHandler.Members)
			r.Post("/member", groupHandler.AddMember)
			r.Delete("/member", groupHandler.RemoveMember)
		})
	})

	return r
}
