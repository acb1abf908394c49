package usecase

import (
	"io"
	"testing"
	"time"

	"medicompare/config"
	"medicompare/internal/infrastructure/dataset"
	"medicompare/internal/repository"
	"medicompare/internal/service"
	"medicompare/pkg/jwt"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type testDeps struct {
	log      *logrus.Logger
	catalog  CatalogUsecase
	flow     FlowUsecase
	auth     AuthUsecase
	location LocationUsecase
	jwt      *jwt.JWTService
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newCatalog() CatalogUsecase {
	ds := dataset.MustLoad()
	return NewCatalogUsecase(
		quietLogger(),
		repository.NewHospitalRepository(ds),
		repository.NewDoctorRepository(ds),
		repository.NewTreatmentRepository(ds),
		repository.NewReviewRepository(ds),
		repository.NewLookupRepository(ds),
	)
}

func newTestDeps(t *testing.T, latency config.LatencyConfig) *testDeps {
	t.Helper()
	log := quietLogger()
	catalog := newCatalog()
	flow := NewFlowUsecase(log, catalog, repository.NewSessionMemoryRepository(time.Hour))
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	sim := service.NewLatencySimulator(latency, log)

	auth, err := NewAuthUsecase(log, sim, flow, jwtService, "1234")
	require.NoError(t, err)

	return &testDeps{
		log:      log,
		catalog:  catalog,
		flow:     flow,
		auth:     auth,
		location: NewLocationUsecase(log, sim, catalog, "Hyderabad"),
		jwt:      jwtService,
	}
}

type otpResult struct {
	challenge *OTPChallenge
	err       error
}

type authResult struct {
	auth *Authentication
	err  error
}

func requestOTP(t *testing.T, auth AuthUsecase, phone string) otpResult {
	t.Helper()
	ch := make(chan otpResult, 1)
	auth.RequestOTP(t.Context(), phone, func(c *OTPChallenge, err error) {
		ch <- otpResult{c, err}
	})
	select {
	case r := <-ch:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("RequestOTP never completed")
		return otpResult{}
	}
}

func verifyOTP(t *testing.T, auth AuthUsecase, phone, code string) authResult {
	t.Helper()
	ch := make(chan authResult, 1)
	auth.VerifyOTP(t.Context(), phone, code, func(a *Authentication, err error) {
		ch <- authResult{a, err}
	})
	select {
	case r := <-ch:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("VerifyOTP never completed")
		return authResult{}
	}
}
