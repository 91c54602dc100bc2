package http

import "github.com/scanpass/scanpass/internal/auth/domain"

// Request bodies.

type RegisterRequest struct {
	Email    string `json:"email" example:"a@x.com"`
	Password string `json:"password" example:"Aa1!aaaa"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"a@x.com"`
	Password string `json:"password" example:"Aa1!aaaa"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" example:"a@x.com"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword" example:"N3w!passw0rd"`
}

// Response bodies.

type RegisterResponse struct {
	Token  string `json:"token"`
	QRCode string `json:"qr_code" example:"data:image/png;base64,..."`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type ProfileResponse struct {
	User domain.Profile `json:"user"`
}

type QRCurrentResponse struct {
	QRCode domain.QRCode `json:"qr_code"`
}

type QRRefreshResponse struct {
	QRCode string `json:"qr_code" example:"data:image/png;base64,..."`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status  string        `json:"status" example:"ok"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database" example:"ok"`
}
