package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/userhub/accounts-api/internal/core/domain"
)

type stubAuthService struct {
	loginFn           func(ctx context.Context, creds domain.AuthCredentials) (string, *domain.User, error)
	requestPasscodeFn func(ctx context.Context, email string) error
	verifyPasscodeFn  func(ctx context.Context, email, code string) (bool, error)
	resetPasswordFn   func(ctx context.Context, email, code string, payload domain.ResetPassword) error
}

func (s *stubAuthService) Login(ctx context.Context, creds domain.AuthCredentials) (string, *domain.User, error) {
	return s.loginFn(ctx, creds)
}

func (s *stubAuthService) RequestPasscode(ctx context.Context, email string) error {
	return s.requestPasscodeFn(ctx, email)
}

func (s *stubAuthService) VerifyPasscode(ctx context.Context, email, code string) (bool, error) {
	return s.verifyPasscodeFn(ctx, email, code)
}

func (s *stubAuthService) ResetPassword(ctx context.Context, email, code string, payload domain.ResetPassword) error {
	return s.resetPasswordFn(ctx, email, code, payload)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	id := uuid.New()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, creds domain.AuthCredentials) (string, *domain.User, error) {
			if creds.Email != "alice@example.com" || creds.Password != "password1" {
				t.Fatalf("unexpected creds: %+v", creds)
			}
			return "token123", &domain.User{ID: id, Email: creds.Email, Gender: domain.GenderUnspecified}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/auth/login",
		`{"email":"alice@example.com","password":"password1"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["email"] != "alice@example.com" {
		t.Fatalf("unexpected user payload: %v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentialsPropagate(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, domain.AuthCredentials) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/v1/auth/login",
		`{"email":"alice@example.com","password":"badpassword"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_RequestPasscode(t *testing.T) {
	stub := &stubAuthService{
		requestPasscodeFn: func(_ context.Context, email string) error {
			if email != "bob@example.com" {
				t.Fatalf("unexpected email: %s", email)
			}
			return nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/auth/otp/request",
		`{"email":"bob@example.com"}`)

	if err := h.RequestPasscode(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
}

func TestAuthHandler_RequestPasscode_BadEmail(t *testing.T) {
	stub := &stubAuthService{
		requestPasscodeFn: func(context.Context, string) error {
			t.Fatalf("service must not be called")
			return nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/v1/auth/otp/request", `{"email":"nope"}`)
	err := h.RequestPasscode(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *domain.ValidationError, got %v", err)
	}
}

func TestAuthHandler_VerifyPasscode(t *testing.T) {
	stub := &stubAuthService{
		verifyPasscodeFn: func(_ context.Context, email, code string) (bool, error) {
			return email == "bob@example.com" && code == "123456", nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/auth/otp/verify",
		`{"email":"bob@example.com","code":"123456"}`)

	if err := h.VerifyPasscode(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["valid"] != true {
		t.Fatalf("expected valid=true, got %v", resp)
	}
}

func TestAuthHandler_ResetPassword_NotImplementedPropagates(t *testing.T) {
	stub := &stubAuthService{
		resetPasswordFn: func(_ context.Context, email, code string, payload domain.ResetPassword) error {
			if email != "bob@example.com" || code != "123456" {
				t.Fatalf("unexpected args: %s %s", email, code)
			}
			if payload.NewPassword != "password1" || payload.ConfirmPassword != "password1" {
				t.Fatalf("unexpected payload: %+v", payload)
			}
			return domain.ErrNotImplemented
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/v1/auth/reset-password",
		`{"email":"bob@example.com","code":"123456","newPassword":"password1","confirmPassword":"password1"}`)

	if err := h.ResetPassword(c); !errors.Is(err, domain.ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented, got %v", err)
	}
}
