package tui

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"medicompare/internal/domain/entity"
	"medicompare/internal/usecase"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// Dependencies are the application services the wizard drives
type Dependencies struct {
	Catalog  usecase.CatalogUsecase
	Flow     usecase.FlowUsecase
	Auth     usecase.AuthUsecase
	Location usecase.LocationUsecase
}

// Phase is the screen the wizard is showing
type Phase int

const (
	PhasePhone Phase = iota
	PhaseOTP
	PhaseLocation
	PhaseSearch
	PhaseResults
	PhaseDetail
)

func (p Phase) String() string {
	switch p {
	case PhasePhone:
		return "Login"
	case PhaseOTP:
		return "Verify OTP"
	case PhaseLocation:
		return "Location"
	case PhaseSearch:
		return "Find Treatment"
	case PhaseResults:
		return "Hospitals Near You"
	case PhaseDetail:
		return "Hospital Details"
	}
	return "Unknown"
}

// Wizard walks one flow session through login, location, search, list and detail
type Wizard struct {
	ctx  context.Context
	deps Dependencies

	phase Phase
	form  *huh.Form

	// Form bindings
	phone        string
	otp          string
	cityChoice   string
	treatment    string
	budgetChoice string
	customMin    string
	customMax    string
	resultChoice int
	detailChoice string

	challenge *usecase.OTPChallenge
	sessionID uuid.UUID
	session   *entity.FlowSession
	results   []entity.SearchResult
	detail    *usecase.DetailView

	busy   string // shown instead of the form while a simulated request runs
	notice string

	width  int
	height int

	cancelled bool
	finished  bool
}

// NewWizard starts at the login screen
func NewWizard(ctx context.Context, deps Dependencies) *Wizard {
	w := &Wizard{
		ctx:          ctx,
		deps:         deps,
		phase:        PhasePhone,
		budgetChoice: customBudget,
		customMin:    entity.DefaultMinBudget.String(),
		customMax:    entity.DefaultMaxBudget.String(),
	}
	w.form = w.newPhoneForm()
	return w
}

// Init implements tea.Model.
func (w *Wizard) Init() tea.Cmd {
	return w.form.Init()
}

// Update implements tea.Model.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			w.cancelled = true
			w.endSession()
			return w, tea.Quit
		}
	case otpSentMsg:
		return w, w.handleOTPSent(msg)
	case verifiedMsg:
		return w, w.handleVerified(msg)
	case locatedMsg:
		return w, w.handleLocated(msg)
	}

	if w.busy != "" {
		return w, nil
	}

	model, cmd := w.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		w.form = f
	}

	if w.form.State != huh.StateCompleted {
		return w, cmd
	}

	switch w.phase {
	case PhasePhone:
		return w, w.submitPhone()
	case PhaseOTP:
		return w, w.submitOTP()
	case PhaseLocation:
		return w, w.submitLocation()
	case PhaseSearch:
		return w, w.submitSearch()
	case PhaseResults:
		return w, w.submitResult()
	case PhaseDetail:
		return w, w.submitDetail()
	}

	return w, cmd
}

// View implements tea.Model.
func (w *Wizard) View() string {
	if w.cancelled {
		return "Cancelled.\n"
	}
	if w.finished {
		return "Thank you for using MediCompare.\n"
	}

	parts := []string{titleStyle.Render("MEDICOMPARE - " + w.phase.String())}
	if summary := w.summary(); summary != "" {
		parts = append(parts, subtitleStyle.Render(summary))
	}
	if w.notice != "" {
		parts = append(parts, noticeStyle.Render(w.notice))
	}
	if w.phase == PhaseDetail && w.detail != nil {
		parts = append(parts, renderDetail(w.detail))
	}

	if w.busy != "" {
		parts = append(parts, "", busyStyle.Render(w.busy))
	} else {
		parts = append(parts, "", w.form.View())
	}

	parts = append(parts, "", hintStyle.Render("Tab: Next field | Enter: Submit | Esc: Quit"))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// summary is the active-filters line shown once the user has logged in
func (w *Wizard) summary() string {
	if w.session == nil {
		return ""
	}

	items := []string{"+91 " + w.session.Phone}
	if w.session.City != "" {
		items = append(items, w.session.City)
	}
	if w.phase >= PhaseResults && w.session.TreatmentName != "" {
		items = append(items, w.session.TreatmentName, budgetLabel(w.session.Budget))
	}
	return strings.Join(items, " · ")
}

func (w *Wizard) show(phase Phase, form *huh.Form) tea.Cmd {
	w.phase = phase
	w.form = form
	return w.form.Init()
}

// Login

func (w *Wizard) submitPhone() tea.Cmd {
	w.notice = ""
	w.busy = "Sending OTP..."
	return requestOTPCmd(w.ctx, w.deps.Auth, w.phone)
}

func (w *Wizard) handleOTPSent(msg otpSentMsg) tea.Cmd {
	w.busy = ""
	if msg.err != nil {
		w.notice = errorNotice(msg.err)
		return w.show(PhasePhone, w.newPhoneForm())
	}

	w.challenge = msg.challenge
	w.otp = ""
	return w.show(PhaseOTP, w.newOTPForm())
}

func (w *Wizard) submitOTP() tea.Cmd {
	w.notice = ""
	w.busy = "Verifying..."
	return verifyOTPCmd(w.ctx, w.deps.Auth, w.phone, w.otp)
}

func (w *Wizard) handleVerified(msg verifiedMsg) tea.Cmd {
	w.busy = ""
	if msg.err != nil {
		w.notice = errorNotice(msg.err)
		w.otp = ""
		return w.show(PhaseOTP, w.newOTPForm())
	}

	w.sessionID = msg.auth.Session.ID
	w.session = msg.auth.Session
	return w.show(PhaseLocation, w.newLocationForm())
}

// Location

func (w *Wizard) submitLocation() tea.Cmd {
	w.notice = ""
	if w.cityChoice == detectLocation {
		w.busy = "Detecting your location..."
		return detectCityCmd(w.ctx, w.deps.Location)
	}
	return w.applyCity(w.cityChoice)
}

func (w *Wizard) handleLocated(msg locatedMsg) tea.Cmd {
	w.busy = ""
	w.cityChoice = msg.city
	return w.applyCity(msg.city)
}

func (w *Wizard) applyCity(city string) tea.Cmd {
	session, err := w.deps.Flow.SetCity(w.ctx, w.sessionID, city)
	if err != nil {
		w.notice = errorNotice(err)
		return w.show(PhaseLocation, w.newLocationForm())
	}

	w.session = session
	return w.enterSearch()
}

// Search

func (w *Wizard) enterSearch() tea.Cmd {
	decision, err := w.deps.Flow.Enter(w.ctx, w.sessionID, entity.ScreenSearch)
	if err != nil {
		w.notice = errorNotice(err)
		return w.show(PhaseLocation, w.newLocationForm())
	}
	if !decision.Proceed {
		return w.show(PhaseLocation, w.newLocationForm())
	}

	return w.show(PhaseSearch, w.newSearchForm())
}

func (w *Wizard) submitSearch() tea.Cmd {
	w.notice = ""
	budget := w.selectedBudget()

	outcome, err := w.deps.Flow.RunSearch(w.ctx, w.sessionID, w.treatment, budget.Min, budget.Max)
	if err != nil {
		w.notice = errorNotice(err)
		var gerr *usecase.GuardError
		if errors.As(err, &gerr) {
			return w.show(PhaseLocation, w.newLocationForm())
		}
		return w.show(PhaseSearch, w.newSearchForm())
	}

	w.session = outcome.Session
	w.results = outcome.Results
	w.resultChoice = 0
	return w.show(PhaseResults, w.newResultsForm())
}

// Hospital list

func (w *Wizard) submitResult() tea.Cmd {
	w.notice = ""
	if w.resultChoice == newSearchIndex || w.resultChoice >= len(w.results) {
		return w.enterSearch()
	}

	picked := w.results[w.resultChoice]
	outcome, err := w.deps.Flow.SelectForDetail(w.ctx, w.sessionID, picked.Hospital.ID, picked.Treatment.ID)
	if err != nil {
		w.notice = errorNotice(err)
		return w.show(PhaseResults, w.newResultsForm())
	}
	w.session = outcome.Session

	view, err := w.deps.Flow.Detail(w.ctx, w.sessionID)
	if err != nil {
		w.notice = errorNotice(err)
		return w.show(PhaseResults, w.newResultsForm())
	}

	w.detail = view
	w.detailChoice = choiceBack
	return w.show(PhaseDetail, w.newDetailForm())
}

// Detail

func (w *Wizard) submitDetail() tea.Cmd {
	switch w.detailChoice {
	case choiceNewSearch:
		return w.enterSearch()
	case choiceQuit:
		w.finished = true
		w.endSession()
		return tea.Quit
	}
	return w.show(PhaseResults, w.newResultsForm())
}

func (w *Wizard) endSession() {
	if w.sessionID == uuid.Nil {
		return
	}
	_ = w.deps.Auth.Logout(w.ctx, w.sessionID)
	w.sessionID = uuid.Nil
}

// errorNotice turns a usecase error into the line shown above the form
func errorNotice(err error) string {
	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		keys := make([]string, 0, len(verr.Fields))
		for k := range verr.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		msgs := make([]string, 0, len(keys))
		for _, k := range keys {
			msgs = append(msgs, verr.Fields[k])
		}
		return strings.Join(msgs, " ")
	}

	var gerr *usecase.GuardError
	if errors.As(err, &gerr) {
		return fmt.Sprintf("Please complete the %s step first.", gerr.Decision.RedirectTo)
	}

	return "Something went wrong: " + err.Error()
}

// Run starts the interactive wizard and blocks until the user quits.
func Run(ctx context.Context, deps Dependencies) error {
	wizard := NewWizard(ctx, deps)
	p := tea.NewProgram(wizard, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running wizard: %w", err)
	}

	return nil
}
