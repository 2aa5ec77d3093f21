package handler

import "github.com/userhub/accounts-api/internal/core/domain"

type passcodeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type verifyPasscodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code"  validate:"required"`
}

type resetPasswordRequest struct {
	Email           string `json:"email"           validate:"required,email"`
	Code            string `json:"code"            validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type verifyResponse struct {
	Valid bool `json:"valid"`
}
