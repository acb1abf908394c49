package service

import (
	"time"

	"medicompare/config"

	"github.com/sirupsen/logrus"
)

// LatencyKind names one of the simulated network round trips
type LatencyKind string

const (
	LatencyOTPSend   LatencyKind = "otp_send"
	LatencyOTPVerify LatencyKind = "otp_verify"
	LatencyLocate    LatencyKind = "locate"
)

// LatencySimulator stands in for the network. Each Simulate call is a one-shot
// timer with a single completion callback and no way to cancel it.
type LatencySimulator struct {
	log    *logrus.Logger
	delays map[LatencyKind]time.Duration
}

func NewLatencySimulator(cfg config.LatencyConfig, log *logrus.Logger) *LatencySimulator {
	return &LatencySimulator{
		log: log,
		delays: map[LatencyKind]time.Duration{
			LatencyOTPSend:   cfg.OTPSend,
			LatencyOTPVerify: cfg.OTPVerify,
			LatencyLocate:    cfg.Locate,
		},
	}
}

// Delay returns the configured duration for kind
func (s *LatencySimulator) Delay(kind LatencyKind) time.Duration {
	return s.delays[kind]
}

// Simulate runs done on its own goroutine once the delay for kind has elapsed.
// A zero or negative delay still completes asynchronously, just without waiting.
// done must not block on a receiver that may have gone away.
func (s *LatencySimulator) Simulate(kind LatencyKind, done func()) {
	delay := s.delays[kind]
	s.log.Debugf("Simulating %s latency of %s", kind, delay)

	if delay <= 0 {
		go done()
		return
	}
	time.AfterFunc(delay, done)
}
