package dto

// Request DTOs

// Empty values pass tag validation so the login flow can answer with its own prompts
type RequestOTPRequest struct {
	Phone string `json:"phone" validate:"omitempty,in_mobile"`
}

type VerifyOTPRequest struct {
	Phone string `json:"phone" validate:"omitempty,in_mobile"`
	OTP   string `json:"otp" validate:"omitempty,numeric,max=4"`
}

// Response DTOs

type OTPChallengeResponse struct {
	Phone  string `json:"phone"`
	Length int    `json:"length"`
	Hint   string `json:"hint"`
}

type AuthResponse struct {
	Token      string `json:"token"`
	SessionID  string `json:"session_id"`
	ExpiresIn  int64  `json:"expires_in"`
	NextScreen string `json:"next_screen"`
}
