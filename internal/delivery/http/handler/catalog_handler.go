package handler

import (
	"net/http"

	"medicompare/internal/converter"
	"medicompare/internal/domain/entity"
	"medicompare/internal/usecase"
	"medicompare/pkg/response"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase}
}

// GetCities lists the supported cities, filtered by ?q= when given
func (h *CatalogHandler) GetCities(w http.ResponseWriter, r *http.Request) {
	cities := h.catalogUsecase.SuggestCities(r.Context(), r.URL.Query().Get("q"))
	response.List(w, "Cities retrieved successfully", cities, len(cities))
}

// GetTreatments lists the treatment vocabulary, filtered by ?q= when given
func (h *CatalogHandler) GetTreatments(w http.ResponseWriter, r *http.Request) {
	names := h.catalogUsecase.SuggestTreatments(r.Context(), r.URL.Query().Get("q"))
	response.List(w, "Treatments retrieved successfully", names, len(names))
}

func (h *CatalogHandler) GetBudgetPresets(w http.ResponseWriter, r *http.Request) {
	presets := converter.BudgetPresetsToResponses(h.catalogUsecase.BudgetPresets(r.Context()))
	response.List(w, "Budget presets retrieved successfully", presets, len(presets))
}

// SearchHospitals handles GET /hospitals/search?city=&treatment=&min=&max=
func (h *CatalogHandler) SearchHospitals(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	errs := make(map[string]string)
	minBudget := parseBudget(q.Get("min"), entity.DefaultMinBudget, "min", errs)
	maxBudget := parseBudget(q.Get("max"), entity.DefaultMaxBudget, "max", errs)
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	results := h.catalogUsecase.SearchHospitals(r.Context(), q.Get("city"), q.Get("treatment"), minBudget, maxBudget)
	response.List(w, "Search completed", converter.SearchResultsToResponses(results), len(results))
}

func parseBudget(raw string, fallback decimal.Decimal, field string, errs map[string]string) decimal.Decimal {
	if raw == "" {
		return fallback
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		errs[field] = field + " must be a number"
		return fallback
	}
	return v
}

func (h *CatalogHandler) GetHospital(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	hospital, ok := h.catalogUsecase.HospitalByID(r.Context(), id)
	if !ok {
		response.NotFound(w, "Hospital not found")
		return
	}

	response.Success(w, http.StatusOK, "Hospital retrieved successfully", converter.HospitalToResponse(hospital))
}

// GetHospitalDoctors answers 200 with an empty list for unknown hospitals
func (h *CatalogHandler) GetHospitalDoctors(w http.ResponseWriter, r *http.Request) {
	doctors := converter.DoctorsToResponses(h.catalogUsecase.DoctorsForHospital(r.Context(), mux.Vars(r)["id"]))
	response.List(w, "Doctors retrieved successfully", doctors, len(doctors))
}

func (h *CatalogHandler) GetHospitalReviews(w http.ResponseWriter, r *http.Request) {
	reviews := converter.ReviewsToResponses(h.catalogUsecase.ReviewsForHospital(r.Context(), mux.Vars(r)["id"]))
	response.List(w, "Reviews retrieved successfully", reviews, len(reviews))
}

func (h *CatalogHandler) GetHospitalTreatments(w http.ResponseWriter, r *http.Request) {
	treatments := converter.TreatmentsToResponses(h.catalogUsecase.TreatmentsForHospital(r.Context(), mux.Vars(r)["id"]))
	response.List(w, "Treatments retrieved successfully", treatments, len(treatments))
}

func (h *CatalogHandler) GetHospitalDetail(w http.ResponseWriter, r *http.Request) {
	detail, ok := h.catalogUsecase.HospitalDetail(r.Context(), mux.Vars(r)["id"])
	if !ok {
		response.NotFound(w, "Hospital not found")
		return
	}

	response.Success(w, http.StatusOK, "Hospital detail retrieved successfully", converter.HospitalDetailToResponse(detail))
}
