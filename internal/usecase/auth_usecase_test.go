package usecase

import (
	"testing"
	"time"

	"medicompare/config"
	"medicompare/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldMessage(t *testing.T, err error, field string) string {
	t.Helper()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	return verr.Fields[field]
}

func TestRequestOTP_Validation(t *testing.T) {
	deps := newTestDeps(t, config.LatencyConfig{})

	r := requestOTP(t, deps.auth, "")
	assert.Equal(t, MsgPhoneRequired, fieldMessage(t, r.err, FieldPhone))

	r = requestOTP(t, deps.auth, "1234567890")
	assert.Equal(t, MsgInvalidPhone, fieldMessage(t, r.err, FieldPhone))
}

func TestRequestOTP_Success(t *testing.T) {
	deps := newTestDeps(t, config.LatencyConfig{})

	r := requestOTP(t, deps.auth, "9876543210")
	require.NoError(t, r.err)
	assert.Equal(t, "9876543210", r.challenge.Phone)
	assert.Equal(t, OTPLength, r.challenge.Length)
	assert.Equal(t, "Use 1234 for demo", r.challenge.Hint)
}

func TestRequestOTP_RejectionDoesNotWait(t *testing.T) {
	deps := newTestDeps(t, config.LatencyConfig{OTPSend: time.Hour})

	start := time.Now()
	r := requestOTP(t, deps.auth, "98765")
	assert.Error(t, r.err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestRequestOTP_WaitsForSendDelay(t *testing.T) {
	delay := 30 * time.Millisecond
	deps := newTestDeps(t, config.LatencyConfig{OTPSend: delay})

	start := time.Now()
	r := requestOTP(t, deps.auth, "9876543210")
	require.NoError(t, r.err)
	assert.GreaterOrEqual(t, time.Since(start), delay)
}

func TestVerifyOTP_Incomplete(t *testing.T) {
	deps := newTestDeps(t, config.LatencyConfig{})

	r := verifyOTP(t, deps.auth, "9876543210", "12")
	assert.Equal(t, MsgOTPIncomplete, fieldMessage(t, r.err, FieldOTP))
}

func TestVerifyOTP_Incorrect(t *testing.T) {
	deps := newTestDeps(t, config.LatencyConfig{})

	r := verifyOTP(t, deps.auth, "9876543210", "4321")
	assert.Equal(t, "Incorrect OTP. (Hint: Use 1234 for demo)", fieldMessage(t, r.err, FieldOTP))
}

func TestVerifyOTP_InvalidPhone(t *testing.T) {
	deps := newTestDeps(t, config.LatencyConfig{})

	r := verifyOTP(t, deps.auth, "5555555555", "1234")
	assert.Equal(t, MsgInvalidPhone, fieldMessage(t, r.err, FieldPhone))
}

func TestVerifyOTP_SuccessStartsSession(t *testing.T) {
	deps := newTestDeps(t, config.LatencyConfig{})

	r := verifyOTP(t, deps.auth, "9876543210", "1234")
	require.NoError(t, r.err)
	require.NotNil(t, r.auth.Session)
	assert.Equal(t, entity.ScreenLocation, r.auth.NextScreen)
	assert.Equal(t, time.Hour, r.auth.ExpiresIn)

	claims, err := deps.jwt.ValidateToken(r.auth.Token)
	require.NoError(t, err)
	assert.Equal(t, r.auth.Session.ID, claims.SessionID)

	stored, err := deps.flow.State(t.Context(), r.auth.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, "9876543210", stored.Phone)
}

func TestLogout_DropsSession(t *testing.T) {
	deps := newTestDeps(t, config.LatencyConfig{})
	r := verifyOTP(t, deps.auth, "9876543210", "1234")
	require.NoError(t, r.err)

	require.NoError(t, deps.auth.Logout(t.Context(), r.auth.Session.ID))

	_, err := deps.flow.State(t.Context(), r.auth.Session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestVerifyOTP_AbandonedCallerDoesNotBlock(t *testing.T) {
	deps := newTestDeps(t, config.LatencyConfig{OTPVerify: 10 * time.Millisecond})

	ch := make(chan authResult, 1)
	deps.auth.VerifyOTP(t.Context(), "9876543210", "1234", func(a *Authentication, err error) {
		ch <- authResult{a, err}
	})
	// nobody reads ch; the buffered send must still complete
	time.Sleep(100 * time.Millisecond)
	assert.Len(t, ch, 1)
}
