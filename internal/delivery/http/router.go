package http

import (
	"net/http"

	"medicompare/internal/delivery/http/handler"
	"medicompare/internal/delivery/http/middleware"
	"medicompare/internal/domain/entity"
	"medicompare/internal/usecase"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	authHandler       *handler.AuthHandler
	catalogHandler    *handler.CatalogHandler
	flowHandler       *handler.FlowHandler
	flowUsecase       usecase.FlowUsecase
	sessionMiddleware *middleware.SessionMiddleware
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	catalogHandler *handler.CatalogHandler,
	flowHandler *handler.FlowHandler,
	flowUsecase usecase.FlowUsecase,
	sessionMiddleware *middleware.SessionMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		authHandler:       authHandler,
		catalogHandler:    catalogHandler,
		flowHandler:       flowHandler,
		flowUsecase:       flowUsecase,
		sessionMiddleware: sessionMiddleware,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Catalog routes (public)
	api.HandleFunc("/cities", r.catalogHandler.GetCities).Methods(http.MethodGet)
	api.HandleFunc("/treatments", r.catalogHandler.GetTreatments).Methods(http.MethodGet)
	api.HandleFunc("/budget-presets", r.catalogHandler.GetBudgetPresets).Methods(http.MethodGet)
	api.HandleFunc("/hospitals/search", r.catalogHandler.SearchHospitals).Methods(http.MethodGet)
	api.HandleFunc("/hospitals/{id}", r.catalogHandler.GetHospital).Methods(http.MethodGet)
	api.HandleFunc("/hospitals/{id}/doctors", r.catalogHandler.GetHospitalDoctors).Methods(http.MethodGet)
	api.HandleFunc("/hospitals/{id}/reviews", r.catalogHandler.GetHospitalReviews).Methods(http.MethodGet)
	api.HandleFunc("/hospitals/{id}/treatments", r.catalogHandler.GetHospitalTreatments).Methods(http.MethodGet)
	api.HandleFunc("/hospitals/{id}/detail", r.catalogHandler.GetHospitalDetail).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/otp", r.authHandler.RequestOTP).Methods(http.MethodPost)
	auth.HandleFunc("/verify", r.authHandler.VerifyOTP).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.sessionMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Flow routes (protected)
	flow := api.PathPrefix("/flow").Subrouter()
	flow.Use(r.sessionMiddleware.Authenticate)
	flow.HandleFunc("", r.flowHandler.GetState).Methods(http.MethodGet)
	flow.HandleFunc("/screens/{screen}", r.flowHandler.EnterScreen).Methods(http.MethodGet)
	flow.HandleFunc("/city", r.flowHandler.SetCity).Methods(http.MethodPut)
	flow.HandleFunc("/location/detect", r.flowHandler.DetectCity).Methods(http.MethodPost)
	flow.HandleFunc("/selection", r.flowHandler.Select).Methods(http.MethodPost)

	// Guarded screens
	flow.Handle("/search", middleware.RequireScreen(r.flowUsecase, entity.ScreenSearch)(
		http.HandlerFunc(r.flowHandler.Search))).Methods(http.MethodPost)
	flow.Handle("/detail", middleware.RequireScreen(r.flowUsecase, entity.ScreenDetail)(
		http.HandlerFunc(r.flowHandler.GetDetail))).Methods(http.MethodGet)

	// mux only runs middleware on matched routes, so preflights need a route of their own
	r.router.Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
