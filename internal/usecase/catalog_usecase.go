package usecase

import (
	"context"
	"sort"
	"strings"

	"medicompare/internal/domain/entity"
	"medicompare/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// CatalogUsecase answers read-only questions about the sample dataset.
// Every operation is synchronous, side-effect free and safe for concurrent use.
type CatalogUsecase interface {
	Cities(ctx context.Context) []string
	TreatmentNames(ctx context.Context) []string
	SuggestCities(ctx context.Context, query string) []string
	SuggestTreatments(ctx context.Context, query string) []string
	BudgetPresets(ctx context.Context) []entity.BudgetPreset
	HospitalByID(ctx context.Context, id string) (*entity.Hospital, bool)
	DoctorsForHospital(ctx context.Context, hospitalID string) []entity.Doctor
	ReviewsForHospital(ctx context.Context, hospitalID string) []entity.Review
	TreatmentsForHospital(ctx context.Context, hospitalID string) []entity.Treatment
	HospitalDetail(ctx context.Context, id string) (*entity.HospitalDetail, bool)
	SearchHospitals(ctx context.Context, city, treatmentName string, minBudget, maxBudget decimal.Decimal) []entity.SearchResult
}

type catalogUsecase struct {
	log           *logrus.Logger
	hospitalRepo  repository.HospitalRepository
	doctorRepo    repository.DoctorRepository
	treatmentRepo repository.TreatmentRepository
	reviewRepo    repository.ReviewRepository
	lookupRepo    repository.LookupRepository
}

func NewCatalogUsecase(
	log *logrus.Logger,
	hospitalRepo repository.HospitalRepository,
	doctorRepo repository.DoctorRepository,
	treatmentRepo repository.TreatmentRepository,
	reviewRepo repository.ReviewRepository,
	lookupRepo repository.LookupRepository,
) CatalogUsecase {
	return &catalogUsecase{
		log:           log,
		hospitalRepo:  hospitalRepo,
		doctorRepo:    doctorRepo,
		treatmentRepo: treatmentRepo,
		reviewRepo:    reviewRepo,
		lookupRepo:    lookupRepo,
	}
}

func (u *catalogUsecase) Cities(ctx context.Context) []string {
	return u.lookupRepo.Cities(ctx)
}

func (u *catalogUsecase) TreatmentNames(ctx context.Context) []string {
	return u.lookupRepo.TreatmentNames(ctx)
}

func (u *catalogUsecase) SuggestCities(ctx context.Context, query string) []string {
	return filterContains(u.lookupRepo.Cities(ctx), query)
}

func (u *catalogUsecase) SuggestTreatments(ctx context.Context, query string) []string {
	return filterContains(u.lookupRepo.TreatmentNames(ctx), query)
}

// filterContains keeps the values containing query, ignoring case, in their original order
func filterContains(values []string, query string) []string {
	needle := strings.ToLower(query)
	matches := []string{}
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), needle) {
			matches = append(matches, v)
		}
	}
	return matches
}

func (u *catalogUsecase) BudgetPresets(ctx context.Context) []entity.BudgetPreset {
	return entity.BudgetPresets()
}

func (u *catalogUsecase) HospitalByID(ctx context.Context, id string) (*entity.Hospital, bool) {
	hospital := u.hospitalRepo.FindByID(ctx, id)
	if hospital == nil {
		return nil, false
	}
	return hospital, true
}

func (u *catalogUsecase) DoctorsForHospital(ctx context.Context, hospitalID string) []entity.Doctor {
	return u.doctorRepo.FindByHospitalID(ctx, hospitalID)
}

func (u *catalogUsecase) ReviewsForHospital(ctx context.Context, hospitalID string) []entity.Review {
	return u.reviewRepo.FindByHospitalID(ctx, hospitalID)
}

func (u *catalogUsecase) TreatmentsForHospital(ctx context.Context, hospitalID string) []entity.Treatment {
	return u.treatmentRepo.FindByHospitalID(ctx, hospitalID)
}

func (u *catalogUsecase) HospitalDetail(ctx context.Context, id string) (*entity.HospitalDetail, bool) {
	hospital, ok := u.HospitalByID(ctx, id)
	if !ok {
		return nil, false
	}

	reviews := u.reviewRepo.FindByHospitalID(ctx, id)
	return &entity.HospitalDetail{
		Hospital:   *hospital,
		Doctors:    u.doctorRepo.FindByHospitalID(ctx, id),
		Reviews:    reviews,
		Treatments: u.treatmentRepo.FindByHospitalID(ctx, id),
		Summary:    entity.SummarizeReviews(reviews, hospital.Rating),
	}, true
}

// SearchHospitals returns one result per treatment named exactly treatmentName whose
// cost lies in [minBudget, maxBudget] and whose hospital is in city (case-insensitive).
// Results are ordered by hospital rating, highest first; equal ratings keep dataset order.
// No match, including minBudget > maxBudget, yields an empty slice.
func (u *catalogUsecase) SearchHospitals(ctx context.Context, city, treatmentName string, minBudget, maxBudget decimal.Decimal) []entity.SearchResult {
	budget := entity.BudgetRange{Min: minBudget, Max: maxBudget}

	results := []entity.SearchResult{}
	for _, t := range u.treatmentRepo.FindAll(ctx) {
		if t.Name != treatmentName || !budget.Contains(t.Cost) {
			continue
		}
		hospital := u.hospitalRepo.FindByID(ctx, t.HospitalID)
		if hospital == nil || !strings.EqualFold(hospital.City, city) {
			continue
		}
		results = append(results, entity.SearchResult{Hospital: *hospital, Treatment: t})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Hospital.Rating > results[j].Hospital.Rating
	})

	u.log.Debugf("Search city=%q treatment=%q budget=%s..%s matched %d", city, treatmentName, minBudget, maxBudget, len(results))
	return results
}
