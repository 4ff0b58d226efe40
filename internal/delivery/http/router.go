package http

import (
	"net/http"
	"time"

	"health-predict-backend/internal/delivery/http/handler"
	"health-predict-backend/internal/delivery/http/middleware"
	"health-predict-backend/pkg/metrics"
	"health-predict-backend/pkg/response"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	doctorHandler       *handler.DoctorHandler
	predictionHandler   *handler.PredictionHandler
	alertHandler        *handler.AlertHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	metricsMiddleware   *middleware.MetricsMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	gatherer            prometheus.Gatherer
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	predictionHandler *handler.PredictionHandler,
	alertHandler *handler.AlertHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
	gatherer prometheus.Gatherer,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		doctorHandler:       doctorHandler,
		predictionHandler:   predictionHandler,
		alertHandler:        alertHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		metricsMiddleware:   metricsMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
		gatherer:            gatherer,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public, rate limited against credential guessing)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.Use(r.rateLimitMiddleware.Handle)
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/doctor-login", r.authHandler.DoctorLogin).Methods(http.MethodPost)

	// Current account (protected)
	me := api.PathPrefix("/auth").Subrouter()
	me.Use(r.authMiddleware.Authenticate)
	me.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Public directory and advisories
	api.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	api.HandleFunc("/recommendations/{riskLevel}", r.alertHandler.GetRecommendations).Methods(http.MethodGet)
	api.HandleFunc("/send-alert", r.alertHandler.SendAlert).Methods(http.MethodPost)

	// Prediction routes (protected)
	predict := api.PathPrefix("").Subrouter()
	predict.Use(r.authMiddleware.Authenticate)
	predict.HandleFunc("/predict/cardiovascular", r.predictionHandler.PredictCardiovascular).Methods(http.MethodPost)
	predict.HandleFunc("/predict/diabetic", r.predictionHandler.PredictDiabetic).Methods(http.MethodPost)
	predict.HandleFunc("/predictions/history", r.predictionHandler.History).Methods(http.MethodGet)
	predict.HandleFunc("/predictions/save", r.predictionHandler.Save).Methods(http.MethodPost)

	// Doctor dashboard (protected, doctor role only)
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/alerts", r.doctorHandler.Dashboard).Methods(http.MethodGet)

	// Prometheus scrape endpoint, outside the /api prefix
	r.router.Handle("/metrics", metrics.Handler(r.gatherer)).Methods(http.MethodGet)

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.metricsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"message":   "Health Prediction API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
