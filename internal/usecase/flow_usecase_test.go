package usecase

import (
	"context"
	"errors"
	"testing"

	"medicompare/config"
	"medicompare/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startSession(t *testing.T, deps *testDeps) *entity.FlowSession {
	t.Helper()
	session, err := deps.flow.Start(context.Background(), "9876543210")
	require.NoError(t, err)
	return session
}

func TestFlow_StartDefaults(t *testing.T) {
	deps := newTestDeps(t, config.LatencyConfig{})
	session := startSession(t, deps)

	assert.Equal(t, "9876543210", session.Phone)
	assert.Empty(t, session.City)
	assert.Empty(t, session.TreatmentName)
	assert.True(t, session.Budget.Min.Equal(d(500)))
	assert.True(t, session.Budget.Max.Equal(d(5000)))
	assert.NotNil(t, session.Results)
	assert.Empty(t, session.Results)
	assert.Nil(t, session.Selected)
}

func TestFlow_StartRejectsBadPhone(t *testing.T) {
	deps := newTestDeps(t, config.LatencyConfig{})

	_, err := deps.flow.Start(context.Background(), "12345")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MsgInvalidPhone, verr.Fields[FieldPhone])
}

func TestFlow_SetCityStoresCanonicalName(t *testing.T) {
	deps := newTestDeps(t, config.LatencyConfig{})
	ctx := context.Background()
	session := startSession(t, deps)

	updated, err := deps.flow.SetCity(ctx, session.ID, "bangalore")
	require.NoError(t, err)
	assert.Equal(t, "Bangalore", updated.City)

	stored, err := deps.flow.State(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bangalore", stored.City)
}

func TestFlow_SetCityRejectsUnknownCity(t *testing.T) {
	deps := newTestDeps(t, config.LatencyConfig{})
	ctx := context.Background()
	session := startSession(t, deps)

	_, err := deps.flow.SetCity(ctx, session.ID, "Hyder")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MsgInvalidCity, verr.Fields[FieldCity])

	stored, err := deps.flow.State(ctx, session.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.City)
}

func TestFlow_SearchRedirectsToLocationWithoutCity(t *testing.T) {
	deps := newTestDeps(t, config.LatencyConfig{})
	session := startSession(t, deps)

	_, err := deps.flow.RunSearch(context.Background(), session.ID, "Heart Surgery", d(500), d(5000))

	require.ErrorIs(t, err, ErrGuardRedirect)
	var gerr *GuardError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, entity.ScreenLocation, gerr.Decision.RedirectTo)
}

func TestFlow_SearchValidation(t *testing.T) {
	deps := newTestDeps(t, config.LatencyConfig{})
	ctx := context.Background()
	session := startSession(t, deps)
	_, err := deps.flow.SetCity(ctx, session.ID, "Hyderabad")
	require.NoError(t, err)

	_, err = deps.flow.RunSearch(ctx, session.ID, "", d(5000), d(5000))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MsgTreatmentRequired, verr.Fields[FieldTreatment])
	assert.Equal(t, MsgBudgetOrder, verr.Fields[FieldBudget])

	_, err = deps.flow.RunSearch(ctx, session.ID, "Heart Surgery", d(6000), d(1000))
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 1)
	assert.Equal(t, MsgBudgetOrder, verr.Fields[FieldBudget])

	stored, err := deps.flow.State(ctx, session.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.TreatmentName)
}

func TestFlow_SearchStoresResults(t *testing.T) {
	deps := newTestDeps(t, config.LatencyConfig{})
	ctx := context.Background()
	session := startSession(t, deps)
	_, err := deps.flow.SetCity(ctx, session.ID, "Hyderabad")
	require.NoError(t, err)

	outcome, err := deps.flow.RunSearch(ctx, session.ID, "Heart Surgery", d(2000), d(3500))
	require.NoError(t, err)
	assert.Equal(t, entity.ScreenHospitals, outcome.NextScreen)
	assert.Equal(t, []string{"H001/T001", "H004/T016", "H002/T008"}, resultIDs(outcome.Results))

	stored, err := deps.flow.State(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "Heart Surgery", stored.TreatmentName)
	assert.True(t, stored.Budget.Min.Equal(d(2000)))
	assert.Equal(t, resultIDs(outcome.Results), resultIDs(stored.Results))
}

func TestFlow_EmptySearchIsNotAnError(t *testing.T) {
	deps := newTestDeps(t, config.LatencyConfig{})
	ctx := context.Background()
	session := startSession(t, deps)
	_, err := deps.flow.SetCity(ctx, session.ID, "Delhi")
	require.NoError(t, err)

	outcome, err := deps.flow.RunSearch(ctx, session.ID, "Heart Surgery", d(500), d(5000))
	require.NoError(t, err)
	assert.Empty(t, outcome.Results)
	assert.Equal(t, entity.ScreenHospitals, outcome.NextScreen)
}

func TestFlow_SelectAndDetail(t *testing.T) {
	deps := newTestDeps(t, config.LatencyConfig{})
	ctx := context.Background()
	session := startSession(t, deps)
	_, err := deps.flow.SetCity(ctx, session.ID, "Hyderabad")
	require.NoError(t, err)
	_, err = deps.flow.RunSearch(ctx, session.ID, "Heart Surgery", d(2000), d(3500))
	require.NoError(t, err)

	decision, err := deps.flow.Enter(ctx, session.ID, entity.ScreenDetail)
	require.NoError(t, err)
	assert.False(t, decision.Proceed)
	assert.Equal(t, entity.ScreenHospitals, decision.RedirectTo)

	selected, err := deps.flow.SelectForDetail(ctx, session.ID, "H002", "T008")
	require.NoError(t, err)
	assert.Equal(t, entity.ScreenDetail, selected.NextScreen)
	assert.Equal(t, "Yashoda Hospital", selected.Selected.Hospital.Name)

	decision, err = deps.flow.Enter(ctx, session.ID, entity.ScreenDetail)
	require.NoError(t, err)
	assert.True(t, decision.Proceed)

	view, err := deps.flow.Detail(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "H002", view.Detail.Hospital.ID)
	assert.Equal(t, "T008", view.Treatment.ID)
	assert.Len(t, view.Detail.Reviews, 3)
}

func TestFlow_SelectRequiresPairFromLastSearch(t *testing.T) {
	deps := newTestDeps(t, config.LatencyConfig{})
	ctx := context.Background()
	session := startSession(t, deps)
	_, err := deps.flow.SetCity(ctx, session.ID, "Hyderabad")
	require.NoError(t, err)
	_, err = deps.flow.RunSearch(ctx, session.ID, "Heart Surgery", d(2000), d(3500))
	require.NoError(t, err)

	_, err = deps.flow.SelectForDetail(ctx, session.ID, "H001", "T002")
	assert.ErrorIs(t, err, ErrResultNotInSearch)

	_, err = deps.flow.SelectForDetail(ctx, session.ID, "H005", "T018")
	assert.ErrorIs(t, err, ErrResultNotInSearch)
}

func TestFlow_DetailRedirectsWithoutSelection(t *testing.T) {
	deps := newTestDeps(t, config.LatencyConfig{})
	session := startSession(t, deps)

	_, err := deps.flow.Detail(context.Background(), session.ID)

	var gerr *GuardError
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, entity.ScreenHospitals, gerr.Decision.RedirectTo)
}

func TestFlow_ChangingCityKeepsPreviousResults(t *testing.T) {
	deps := newTestDeps(t, config.LatencyConfig{})
	ctx := context.Background()
	session := startSession(t, deps)
	_, err := deps.flow.SetCity(ctx, session.ID, "Hyderabad")
	require.NoError(t, err)
	_, err = deps.flow.RunSearch(ctx, session.ID, "Heart Surgery", d(2000), d(3500))
	require.NoError(t, err)

	updated, err := deps.flow.SetCity(ctx, session.ID, "Mumbai")
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", updated.City)
	assert.Len(t, updated.Results, 3)
}

func TestFlow_EnterUngardedScreens(t *testing.T) {
	deps := newTestDeps(t, config.LatencyConfig{})
	session := startSession(t, deps)

	for _, screen := range []entity.Screen{entity.ScreenLogin, entity.ScreenLocation, entity.ScreenHospitals} {
		decision, err := deps.flow.Enter(context.Background(), session.ID, screen)
		require.NoError(t, err)
		assert.True(t, decision.Proceed, screen)
	}
}

func TestFlow_UnknownSessionAndEnd(t *testing.T) {
	deps := newTestDeps(t, config.LatencyConfig{})
	ctx := context.Background()

	_, err := deps.flow.State(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)

	session := startSession(t, deps)
	require.NoError(t, deps.flow.End(ctx, session.ID))

	_, err = deps.flow.SetCity(ctx, session.ID, "Pune")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
