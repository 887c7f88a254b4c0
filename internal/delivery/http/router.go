package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vitalsync/internal/delivery/http/handler"
	"vitalsync/internal/delivery/http/middleware"
)

type Router struct {
	router            *mux.Router
	doctorHandler     *handler.DoctorHandler
	catalogHandler    *handler.CatalogHandler
	locationHandler   *handler.LocationHandler
	symptomHandler    *handler.SymptomHandler
	explorerHandler   *handler.ExplorerHandler
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
	gatherer          prometheus.Gatherer
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	catalogHandler *handler.CatalogHandler,
	locationHandler *handler.LocationHandler,
	symptomHandler *handler.SymptomHandler,
	explorerHandler *handler.ExplorerHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	gatherer prometheus.Gatherer,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		doctorHandler:     doctorHandler,
		catalogHandler:    catalogHandler,
		locationHandler:   locationHandler,
		symptomHandler:    symptomHandler,
		explorerHandler:   explorerHandler,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
		gatherer:          gatherer,
	}
}

func (r *Router) Setup() *mux.Router {
	// Metrics scrape endpoint
	r.router.Handle("/metrics", promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Doctor routes
	api.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/filters", r.doctorHandler.GetFilterOptions).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/reviews", r.doctorHandler.CreateReview).Methods(http.MethodPost)

	// Medicine and emergency center routes
	api.HandleFunc("/medicines", r.catalogHandler.ListMedicines).Methods(http.MethodGet)
	api.HandleFunc("/medicines/advanced", r.catalogHandler.SearchMedicines).Methods(http.MethodPost)
	api.HandleFunc("/centers/emergency", r.catalogHandler.ListEmergencyCenters).Methods(http.MethodGet)

	// Saved location routes
	api.HandleFunc("/locations", r.locationHandler.ListLocations).Methods(http.MethodGet)
	api.HandleFunc("/locations", r.locationHandler.CreateLocation).Methods(http.MethodPost)
	api.HandleFunc("/locations/{id}", r.locationHandler.MarkPrimary).Methods(http.MethodPatch)
	api.HandleFunc("/locations/{id}", r.locationHandler.DeleteLocation).Methods(http.MethodDelete)

	// Symptom guide routes
	symptoms := api.PathPrefix("/symptoms").Subrouter()
	symptoms.HandleFunc("/guide", r.symptomHandler.GetGuide).Methods(http.MethodGet)
	symptoms.HandleFunc("/sessions", r.symptomHandler.StartSession).Methods(http.MethodPost)
	symptoms.HandleFunc("/sessions/{id}", r.symptomHandler.GetSession).Methods(http.MethodGet)
	symptoms.HandleFunc("/sessions/{id}", r.symptomHandler.DeleteSession).Methods(http.MethodDelete)
	symptoms.HandleFunc("/sessions/{id}/area", r.symptomHandler.SelectArea).Methods(http.MethodPut)
	symptoms.HandleFunc("/sessions/{id}/symptoms/{symptomId}", r.symptomHandler.ToggleSymptom).Methods(http.MethodPost)
	symptoms.HandleFunc("/sessions/{id}/answers", r.symptomHandler.Answer).Methods(http.MethodPost)
	symptoms.HandleFunc("/sessions/{id}/next", r.symptomHandler.Next).Methods(http.MethodPost)
	symptoms.HandleFunc("/sessions/{id}/back", r.symptomHandler.Back).Methods(http.MethodPost)
	symptoms.HandleFunc("/sessions/{id}/reset", r.symptomHandler.Reset).Methods(http.MethodPost)

	// Explorer session routes
	explorers := api.PathPrefix("/explorers/{feature}").Subrouter()
	explorers.HandleFunc("", r.explorerHandler.Open).Methods(http.MethodPost)
	explorers.HandleFunc("/{id}", r.explorerHandler.Get).Methods(http.MethodGet)
	explorers.HandleFunc("/{id}", r.explorerHandler.Close).Methods(http.MethodDelete)
	explorers.HandleFunc("/{id}/filters", r.explorerHandler.SetFilters).Methods(http.MethodPatch)
	explorers.HandleFunc("/{id}/page", r.explorerHandler.SetPage).Methods(http.MethodPut)
	explorers.HandleFunc("/{id}/search", r.explorerHandler.SetSearch).Methods(http.MethodPut)
	explorers.HandleFunc("/{id}/reset", r.explorerHandler.Reset).Methods(http.MethodPost)

	// Preflight requests for any path
	r.router.Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, req *http.Request) {})

	// Add middleware
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
