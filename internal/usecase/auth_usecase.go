package usecase

import (
	"context"
	"fmt"
	"time"

	"medicompare/internal/domain/entity"
	"medicompare/internal/service"
	"medicompare/pkg/jwt"
	"medicompare/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// OTPLength is the number of digits the user must enter
const OTPLength = 4

const (
	MsgPhoneRequired = "Please enter your phone number."
	MsgInvalidPhone  = "Please enter a valid 10-digit Indian mobile number."
	MsgOTPIncomplete = "Please enter the complete 4-digit OTP."
)

// OTPChallenge is returned once the simulated code has been "sent"
type OTPChallenge struct {
	Phone  string
	Length int
	Hint   string
}

// Authentication is the result of a successful OTP check
type Authentication struct {
	Session    *entity.FlowSession
	Token      string
	ExpiresIn  time.Duration
	NextScreen entity.Screen
}

// AuthUsecase simulates phone login. Both operations complete through done exactly once:
// immediately when the input is rejected, after the simulated delay otherwise.
// done runs on another goroutine in the delayed case.
type AuthUsecase interface {
	RequestOTP(ctx context.Context, phone string, done func(*OTPChallenge, error))
	VerifyOTP(ctx context.Context, phone, code string, done func(*Authentication, error))
	Logout(ctx context.Context, sessionID uuid.UUID) error
}

type authUsecase struct {
	log        *logrus.Logger
	latency    *service.LatencySimulator
	flow       FlowUsecase
	jwtService *jwt.JWTService
	otpHash    []byte
	hint       string
}

// NewAuthUsecase keeps only a bcrypt hash of the expected code
func NewAuthUsecase(
	log *logrus.Logger,
	latency *service.LatencySimulator,
	flow FlowUsecase,
	jwtService *jwt.JWTService,
	otpCode string,
) (AuthUsecase, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(otpCode), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash otp code: %w", err)
	}

	return &authUsecase{
		log:        log,
		latency:    latency,
		flow:       flow,
		jwtService: jwtService,
		otpHash:    hash,
		hint:       fmt.Sprintf("Use %s for demo", otpCode),
	}, nil
}

func (u *authUsecase) validatePhone(phone string) error {
	if phone == "" {
		return newValidationError(FieldPhone, MsgPhoneRequired)
	}
	if !validator.ValidatePhoneFormat(phone) {
		return newValidationError(FieldPhone, MsgInvalidPhone)
	}
	return nil
}

func (u *authUsecase) RequestOTP(ctx context.Context, phone string, done func(*OTPChallenge, error)) {
	if err := u.validatePhone(phone); err != nil {
		done(nil, err)
		return
	}

	u.latency.Simulate(service.LatencyOTPSend, func() {
		u.log.Infof("OTP sent to %s", maskPhone(phone))
		done(&OTPChallenge{Phone: phone, Length: OTPLength, Hint: u.hint}, nil)
	})
}

func (u *authUsecase) VerifyOTP(ctx context.Context, phone, code string, done func(*Authentication, error)) {
	if err := u.validatePhone(phone); err != nil {
		done(nil, err)
		return
	}
	if len(code) < OTPLength {
		done(nil, newValidationError(FieldOTP, MsgOTPIncomplete))
		return
	}
	if err := bcrypt.CompareHashAndPassword(u.otpHash, []byte(code)); err != nil {
		done(nil, newValidationError(FieldOTP, fmt.Sprintf("Incorrect OTP. (Hint: %s)", u.hint)))
		return
	}

	// the session outlives the request that asked for it
	sessionCtx := context.WithoutCancel(ctx)
	u.latency.Simulate(service.LatencyOTPVerify, func() {
		done(u.authenticate(sessionCtx, phone))
	})
}

func (u *authUsecase) authenticate(ctx context.Context, phone string) (*Authentication, error) {
	session, err := u.flow.Start(ctx, phone)
	if err != nil {
		return nil, err
	}

	token, _, err := u.jwtService.GenerateSessionToken(session.ID, phone)
	if err != nil {
		u.log.Warnf("Failed to generate session token: %+v", err)
		return nil, err
	}

	return &Authentication{
		Session:    session,
		Token:      token,
		ExpiresIn:  u.jwtService.GetExpiry(),
		NextScreen: entity.ScreenLocation,
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, sessionID uuid.UUID) error {
	return u.flow.End(ctx, sessionID)
}

func maskPhone(phone string) string {
	if len(phone) < 4 {
		return phone
	}
	return "******" + phone[len(phone)-4:]
}
