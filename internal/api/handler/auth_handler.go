package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userhub/accounts-api/internal/core/domain"
	"github.com/userhub/accounts-api/internal/core/ports"
)

type AuthHandler struct {
	auth ports.AuthService
}

func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login authenticates a user and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      domain.AuthCredentials  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var creds domain.AuthCredentials
	if err := c.Bind(&creds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, user, err := h.auth.Login(c.Request().Context(), creds)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// RequestPasscode issues a one-time passcode for an existing account.
//
// @Summary      Request a one-time passcode
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      passcodeRequest  true  "Target account email"
// @Success      202   {object}  messageResponse
// @Failure      404   {object}  map[string]string
// @Router       /v1/auth/otp/request [post]
func (h *AuthHandler) RequestPasscode(c echo.Context) error {
	var req passcodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.auth.RequestPasscode(c.Request().Context(), req.Email); err != nil {
		return err
	}

	return c.JSON(http.StatusAccepted, messageResponse{Message: "passcode issued"})
}

// VerifyPasscode consumes a one-time passcode.
//
// @Summary      Verify a one-time passcode
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      verifyPasscodeRequest  true  "Email and passcode"
// @Success      200   {object}  verifyResponse
// @Router       /v1/auth/otp/verify [post]
func (h *AuthHandler) VerifyPasscode(c echo.Context) error {
	var req verifyPasscodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ok, err := h.auth.VerifyPasscode(c.Request().Context(), req.Email, req.Code)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, verifyResponse{Valid: ok})
}

// ResetPassword replaces an account password, gated by a passcode.
//
// @Summary      Reset a password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      resetPasswordRequest  true  "Passcode and replacement password"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  map[string]string
// @Failure      501   {object}  map[string]string
// @Router       /v1/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	payload := domain.ResetPassword{
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	}
	if err := h.auth.ResetPassword(c.Request().Context(), req.Email, req.Code, payload); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "password reset"})
}
