package usecase

import (
	"context"
	"strings"
	"time"

	"medicompare/internal/domain/entity"
	"medicompare/internal/domain/repository"
	"medicompare/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	MsgInvalidCity       = "Please select a valid city from the list."
	MsgTreatmentRequired = "Please select a treatment type."
	MsgBudgetOrder       = "Max budget must be greater than min budget."
)

// SearchOutcome is what a successful search hands to the hospital list screen
type SearchOutcome struct {
	Session    *entity.FlowSession
	Results    []entity.SearchResult
	NextScreen entity.Screen
}

type SelectOutcome struct {
	Session    *entity.FlowSession
	Selected   entity.SearchResult
	NextScreen entity.Screen
}

// DetailView is the detail screen content: the hospital aggregate plus
// the treatment the user drilled in from
type DetailView struct {
	Detail    *entity.HospitalDetail
	Treatment entity.Treatment
}

// FlowUsecase drives the five-screen flow over explicit, stored sessions
type FlowUsecase interface {
	Start(ctx context.Context, phone string) (*entity.FlowSession, error)
	State(ctx context.Context, sessionID uuid.UUID) (*entity.FlowSession, error)
	SetCity(ctx context.Context, sessionID uuid.UUID, city string) (*entity.FlowSession, error)
	RunSearch(ctx context.Context, sessionID uuid.UUID, treatmentName string, minBudget, maxBudget decimal.Decimal) (*SearchOutcome, error)
	SelectForDetail(ctx context.Context, sessionID uuid.UUID, hospitalID, treatmentID string) (*SelectOutcome, error)
	Enter(ctx context.Context, sessionID uuid.UUID, screen entity.Screen) (entity.GuardDecision, error)
	Detail(ctx context.Context, sessionID uuid.UUID) (*DetailView, error)
	End(ctx context.Context, sessionID uuid.UUID) error
}

type flowUsecase struct {
	log         *logrus.Logger
	catalog     CatalogUsecase
	sessionRepo repository.SessionRepository
	now         func() time.Time
}

func NewFlowUsecase(log *logrus.Logger, catalog CatalogUsecase, sessionRepo repository.SessionRepository) FlowUsecase {
	return &flowUsecase{
		log:         log,
		catalog:     catalog,
		sessionRepo: sessionRepo,
		now:         time.Now,
	}
}

func (u *flowUsecase) Start(ctx context.Context, phone string) (*entity.FlowSession, error) {
	if !validator.ValidatePhoneFormat(phone) {
		return nil, newValidationError(FieldPhone, MsgInvalidPhone)
	}

	session := entity.NewFlowSession(phone, u.now())
	if err := u.sessionRepo.Save(ctx, session); err != nil {
		u.log.Warnf("Failed to save new session: %+v", err)
		return nil, err
	}

	u.log.Infof("Flow session %s started", session.ID)
	return session, nil
}

func (u *flowUsecase) State(ctx context.Context, sessionID uuid.UUID) (*entity.FlowSession, error) {
	return u.load(ctx, sessionID)
}

func (u *flowUsecase) load(ctx context.Context, sessionID uuid.UUID) (*entity.FlowSession, error) {
	session, err := u.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		u.log.Warnf("Failed to load session: %+v", err)
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (u *flowUsecase) save(ctx context.Context, session *entity.FlowSession) error {
	if err := u.sessionRepo.Save(ctx, session); err != nil {
		u.log.Warnf("Failed to save session: %+v", err)
		return err
	}
	return nil
}

// SetCity stores the canonical spelling of city. Input that does not match a
// known city ignoring case is rejected and the session is left unchanged.
func (u *flowUsecase) SetCity(ctx context.Context, sessionID uuid.UUID, city string) (*entity.FlowSession, error) {
	session, err := u.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	canonical, ok := resolveCity(u.catalog.Cities(ctx), city)
	if !ok {
		return nil, newValidationError(FieldCity, MsgInvalidCity)
	}

	session.SetCity(canonical, u.now())
	if err := u.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func resolveCity(cities []string, input string) (string, bool) {
	for _, c := range cities {
		if strings.EqualFold(c, input) {
			return c, true
		}
	}
	return "", false
}

func (u *flowUsecase) RunSearch(ctx context.Context, sessionID uuid.UUID, treatmentName string, minBudget, maxBudget decimal.Decimal) (*SearchOutcome, error) {
	session, err := u.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if decision := session.Guard(entity.ScreenSearch); !decision.Proceed {
		return nil, &GuardError{Decision: decision}
	}

	budget := entity.BudgetRange{Min: minBudget, Max: maxBudget}
	verr := &ValidationError{}
	if treatmentName == "" {
		verr.add(FieldTreatment, MsgTreatmentRequired)
	}
	if !budget.Increasing() {
		verr.add(FieldBudget, MsgBudgetOrder)
	}
	if !verr.empty() {
		return nil, verr
	}

	results := u.catalog.SearchHospitals(ctx, session.City, treatmentName, minBudget, maxBudget)
	session.RecordSearch(treatmentName, budget, results, u.now())
	if err := u.save(ctx, session); err != nil {
		return nil, err
	}

	return &SearchOutcome{
		Session:    session,
		Results:    results,
		NextScreen: entity.ScreenHospitals,
	}, nil
}

func (u *flowUsecase) SelectForDetail(ctx context.Context, sessionID uuid.UUID, hospitalID, treatmentID string) (*SelectOutcome, error) {
	session, err := u.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result, ok := session.FindResult(hospitalID, treatmentID)
	if !ok {
		return nil, ErrResultNotInSearch
	}

	session.SelectForDetail(result, u.now())
	if err := u.save(ctx, session); err != nil {
		return nil, err
	}

	return &SelectOutcome{
		Session:    session,
		Selected:   result,
		NextScreen: entity.ScreenDetail,
	}, nil
}

// Enter evaluates the guard of screen. A redirect is a normal decision, not an error.
func (u *flowUsecase) Enter(ctx context.Context, sessionID uuid.UUID, screen entity.Screen) (entity.GuardDecision, error) {
	session, err := u.load(ctx, sessionID)
	if err != nil {
		return entity.GuardDecision{}, err
	}
	return session.Guard(screen), nil
}

func (u *flowUsecase) Detail(ctx context.Context, sessionID uuid.UUID) (*DetailView, error) {
	session, err := u.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if decision := session.Guard(entity.ScreenDetail); !decision.Proceed {
		return nil, &GuardError{Decision: decision}
	}

	detail, ok := u.catalog.HospitalDetail(ctx, session.Selected.Hospital.ID)
	if !ok {
		return nil, ErrHospitalNotFound
	}

	return &DetailView{
		Detail:    detail,
		Treatment: session.Selected.Treatment,
	}, nil
}

func (u *flowUsecase) End(ctx context.Context, sessionID uuid.UUID) error {
	if err := u.sessionRepo.Delete(ctx, sessionID); err != nil {
		u.log.Warnf("Failed to delete session: %+v", err)
		return err
	}
	u.log.Infof("Flow session %s ended", sessionID)
	return nil
}
