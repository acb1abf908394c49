package usecase

import (
	"context"

	"medicompare/internal/service"

	"github.com/sirupsen/logrus"
)

// LocationUsecase resolves typed city names and simulates GPS detection
type LocationUsecase interface {
	DetectCity(ctx context.Context, done func(city string))
	ResolveCity(ctx context.Context, input string) (string, bool)
}

type locationUsecase struct {
	log          *logrus.Logger
	latency      *service.LatencySimulator
	catalog      CatalogUsecase
	detectedCity string
}

func NewLocationUsecase(log *logrus.Logger, latency *service.LatencySimulator, catalog CatalogUsecase, detectedCity string) LocationUsecase {
	return &locationUsecase{
		log:          log,
		latency:      latency,
		catalog:      catalog,
		detectedCity: detectedCity,
	}
}

// DetectCity always "finds" the configured city after the locate delay
func (u *locationUsecase) DetectCity(ctx context.Context, done func(city string)) {
	u.latency.Simulate(service.LatencyLocate, func() {
		u.log.Debugf("Detected city %s", u.detectedCity)
		done(u.detectedCity)
	})
}

// ResolveCity returns the canonical spelling of input when it names a known city, ignoring case
func (u *locationUsecase) ResolveCity(ctx context.Context, input string) (string, bool) {
	return resolveCity(u.catalog.Cities(ctx), input)
}
