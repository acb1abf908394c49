package tui

import (
	"context"

	"medicompare/internal/usecase"

	tea "github.com/charmbracelet/bubbletea"
)

type otpSentMsg struct {
	challenge *usecase.OTPChallenge
	err       error
}

type verifiedMsg struct {
	auth *usecase.Authentication
	err  error
}

type locatedMsg struct {
	city string
}

// The commands below block a bubbletea goroutine until the usecase calls back.
// Channels are buffered so a callback that fires after the program quit never blocks.

func requestOTPCmd(ctx context.Context, auth usecase.AuthUsecase, phone string) tea.Cmd {
	return func() tea.Msg {
		done := make(chan otpSentMsg, 1)
		auth.RequestOTP(ctx, phone, func(c *usecase.OTPChallenge, err error) {
			done <- otpSentMsg{challenge: c, err: err}
		})
		return <-done
	}
}

func verifyOTPCmd(ctx context.Context, auth usecase.AuthUsecase, phone, code string) tea.Cmd {
	return func() tea.Msg {
		done := make(chan verifiedMsg, 1)
		auth.VerifyOTP(ctx, phone, code, func(a *usecase.Authentication, err error) {
			done <- verifiedMsg{auth: a, err: err}
		})
		return <-done
	}
}

func detectCityCmd(ctx context.Context, location usecase.LocationUsecase) tea.Cmd {
	return func() tea.Msg {
		done := make(chan locatedMsg, 1)
		location.DetectCity(ctx, func(city string) {
			done <- locatedMsg{city: city}
		})
		return <-done
	}
}
