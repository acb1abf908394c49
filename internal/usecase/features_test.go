package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"medicompare/config"
	"medicompare/internal/domain/entity"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"
)

type scenarioState struct {
	deps       *testDeps
	results    []entity.SearchResult
	session    *entity.FlowSession
	nextScreen entity.Screen
	decision   entity.GuardDecision
	detail     *DetailView
	err        error
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: func(sc *godog.ScenarioContext) { InitializeScenario(t, sc) },
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func InitializeScenario(t *testing.T, sc *godog.ScenarioContext) {
	s := &scenarioState{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		*s = scenarioState{deps: newTestDeps(t, config.LatencyConfig{})}
		return ctx, nil
	})

	sc.Step(`^I search "([^"]*)" for "([^"]*)" between (\d+) and (\d+)$`, s.iSearchCatalog)
	sc.Step(`^the results should be:$`, s.theResultsShouldBe)
	sc.Step(`^results should be ordered by rating, highest first$`, s.orderedByRating)
	sc.Step(`^there should be no results$`, s.noResults)
	sc.Step(`^hospital "([^"]*)" should have (\d+) doctors and (\d+) treatments$`, s.hospitalLists)

	sc.Step(`^I log in with phone "([^"]*)" and OTP "([^"]*)"$`, s.iLogIn)
	sc.Step(`^I try to log in with phone "([^"]*)" and OTP "([^"]*)"$`, s.iTryToLogIn)
	sc.Step(`^I choose the city "([^"]*)"$`, s.iChooseCity)
	sc.Step(`^I search for "([^"]*)" between (\d+) and (\d+)$`, s.iSearchInFlow)
	sc.Step(`^the next screen should be "([^"]*)"$`, s.nextScreenShouldBe)
	sc.Step(`^I should see (\d+) results$`, s.iShouldSeeResults)
	sc.Step(`^I open the result for "([^"]*)" and "([^"]*)"$`, s.iOpenResult)
	sc.Step(`^the detail page should show "([^"]*)" with (\d+) doctors$`, s.detailShows)
	sc.Step(`^I enter the "([^"]*)" screen$`, s.iEnterScreen)
	sc.Step(`^I should be redirected to "([^"]*)"$`, s.redirectedTo)
	sc.Step(`^I should see the error "([^"]*)"$`, s.iShouldSeeError)
}

func (s *scenarioState) iSearchCatalog(city, treatment string, min, max int) error {
	s.results = s.deps.catalog.SearchHospitals(context.Background(), city, treatment, decimal.NewFromInt(int64(min)), decimal.NewFromInt(int64(max)))
	return nil
}

func (s *scenarioState) theResultsShouldBe(table *godog.Table) error {
	rows := table.Rows[1:]
	if len(rows) != len(s.results) {
		return fmt.Errorf("expected %d results, got %d", len(rows), len(s.results))
	}
	for i, row := range rows {
		name, cost := row.Cells[0].Value, row.Cells[1].Value
		got := s.results[i]
		if got.Hospital.Name != name {
			return fmt.Errorf("result %d: expected %s, got %s", i, name, got.Hospital.Name)
		}
		if got.Treatment.Cost.String() != cost {
			return fmt.Errorf("result %d: expected cost %s, got %s", i, cost, got.Treatment.Cost)
		}
	}
	return nil
}

func (s *scenarioState) orderedByRating() error {
	for i := 1; i < len(s.results); i++ {
		if s.results[i-1].Hospital.Rating < s.results[i].Hospital.Rating {
			return fmt.Errorf("result %d rated %.1f sorts before %.1f", i-1, s.results[i-1].Hospital.Rating, s.results[i].Hospital.Rating)
		}
	}
	return nil
}

func (s *scenarioState) noResults() error {
	if s.results == nil {
		return errors.New("expected an empty list, got nil")
	}
	if len(s.results) != 0 {
		return fmt.Errorf("expected no results, got %d", len(s.results))
	}
	return nil
}

func (s *scenarioState) hospitalLists(id string, doctors, treatments int) error {
	ctx := context.Background()
	if n := len(s.deps.catalog.DoctorsForHospital(ctx, id)); n != doctors {
		return fmt.Errorf("expected %d doctors, got %d", doctors, n)
	}
	if n := len(s.deps.catalog.TreatmentsForHospital(ctx, id)); n != treatments {
		return fmt.Errorf("expected %d treatments, got %d", treatments, n)
	}
	return nil
}

func (s *scenarioState) login(phone, code string) (*Authentication, error) {
	ch := make(chan authResult, 1)
	s.deps.auth.VerifyOTP(context.Background(), phone, code, func(a *Authentication, err error) {
		ch <- authResult{a, err}
	})
	select {
	case r := <-ch:
		return r.auth, r.err
	case <-time.After(5 * time.Second):
		return nil, errors.New("login timed out")
	}
}

func (s *scenarioState) iLogIn(phone, code string) error {
	auth, err := s.login(phone, code)
	if err != nil {
		return err
	}
	s.session = auth.Session
	s.nextScreen = auth.NextScreen
	return nil
}

func (s *scenarioState) iTryToLogIn(phone, code string) error {
	_, s.err = s.login(phone, code)
	return nil
}

func (s *scenarioState) iChooseCity(city string) error {
	_, err := s.deps.flow.SetCity(context.Background(), s.session.ID, city)
	return err
}

func (s *scenarioState) iSearchInFlow(treatment string, min, max int) error {
	outcome, err := s.deps.flow.RunSearch(context.Background(), s.session.ID, treatment, decimal.NewFromInt(int64(min)), decimal.NewFromInt(int64(max)))
	if err != nil {
		s.err = err
		return nil
	}
	s.results = outcome.Results
	s.nextScreen = outcome.NextScreen
	return nil
}

func (s *scenarioState) nextScreenShouldBe(screen string) error {
	if string(s.nextScreen) != screen {
		return fmt.Errorf("expected next screen %s, got %s", screen, s.nextScreen)
	}
	return nil
}

func (s *scenarioState) iShouldSeeResults(n int) error {
	if len(s.results) != n {
		return fmt.Errorf("expected %d results, got %d", n, len(s.results))
	}
	return nil
}

func (s *scenarioState) iOpenResult(hospitalID, treatmentID string) error {
	ctx := context.Background()
	outcome, err := s.deps.flow.SelectForDetail(ctx, s.session.ID, hospitalID, treatmentID)
	if err != nil {
		return err
	}
	s.nextScreen = outcome.NextScreen
	s.detail, err = s.deps.flow.Detail(ctx, s.session.ID)
	return err
}

func (s *scenarioState) detailShows(name string, doctors int) error {
	if s.detail.Detail.Hospital.Name != name {
		return fmt.Errorf("expected %s, got %s", name, s.detail.Detail.Hospital.Name)
	}
	if len(s.detail.Detail.Doctors) != doctors {
		return fmt.Errorf("expected %d doctors, got %d", doctors, len(s.detail.Detail.Doctors))
	}
	return nil
}

func (s *scenarioState) iEnterScreen(name string) error {
	screen, ok := entity.ParseScreen(name)
	if !ok {
		return fmt.Errorf("unknown screen %s", name)
	}
	decision, err := s.deps.flow.Enter(context.Background(), s.session.ID, screen)
	s.decision = decision
	return err
}

func (s *scenarioState) redirectedTo(screen string) error {
	var gerr *GuardError
	if errors.As(s.err, &gerr) {
		s.decision = gerr.Decision
	}
	if s.decision.Proceed || string(s.decision.RedirectTo) != screen {
		return fmt.Errorf("expected redirect to %s, got %+v (err %v)", screen, s.decision, s.err)
	}
	return nil
}

func (s *scenarioState) iShouldSeeError(message string) error {
	var verr *ValidationError
	if !errors.As(s.err, &verr) {
		return fmt.Errorf("expected a validation error, got %v", s.err)
	}
	for _, m := range verr.Fields {
		if m == message {
			return nil
		}
	}
	return fmt.Errorf("message %q not among %v", message, verr.Fields)
}
