package validation

import (
	"errors"
	"testing"

	"github.com/userhub/accounts-api/internal/core/domain"
)

func str(s string) *string { return &s }

func validAttributes() domain.UserAttributes {
	return domain.UserAttributes{
		Firstname:   str("A"),
		Lastname:    str("B"),
		Middlename:  str("C"),
		Fullname:    str("A B C"),
		Username:    str("ab"),
		Email:       str("a@b.co"),
		PhoneNumber: str("+14155550000"),
		Password:    str("password1"),
	}
}

func asValidationError(t *testing.T, err error) *domain.ValidationError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected a validation error, got nil")
	}
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *domain.ValidationError, got %T: %v", err, err)
	}
	return ve
}

func TestValidate_EmptyPayloadNamesEveryRequiredField(t *testing.T) {
	ve := asValidationError(t, Validate(domain.UserAttributes{}))

	required := []string{"firstname", "lastname", "middlename", "fullname", "username", "email", "password"}
	for _, field := range required {
		if !ve.FieldFailed(field) {
			t.Errorf("expected a violation for %q, got %v", field, ve.Violations)
		}
	}
}

func TestValidate_WellFormedPayloadPasses(t *testing.T) {
	if err := Validate(validAttributes()); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestValidate_ShortPasswordCarriesParam(t *testing.T) {
	attrs := validAttributes()
	attrs.Password = str("short")

	ve := asValidationError(t, Validate(attrs))
	found := false
	for _, v := range ve.Violations {
		if v.Field == "password" && v.Rule == "min" && v.Param == "8" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected password min=8 violation, got %v", ve.Violations)
	}
}

func TestValidate_BadEmail(t *testing.T) {
	attrs := validAttributes()
	attrs.Email = str("not-an-address")

	ve := asValidationError(t, Validate(attrs))
	if !ve.FieldFailed("email") {
		t.Fatalf("expected email violation, got %v", ve.Violations)
	}
}

func TestValidate_BadPhone(t *testing.T) {
	attrs := validAttributes()
	attrs.PhoneNumber = str("555-0000")

	ve := asValidationError(t, Validate(attrs))
	if !ve.FieldFailed("phoneNumber") {
		t.Fatalf("expected phoneNumber violation, got %v", ve.Violations)
	}
}

func TestValidate_BadAvatarURL(t *testing.T) {
	attrs := validAttributes()
	attrs.Avatar = str("not a url")

	ve := asValidationError(t, Validate(attrs))
	if !ve.FieldFailed("avatar") {
		t.Fatalf("expected avatar violation, got %v", ve.Violations)
	}
}

func TestValidate_OptionalFieldsMaySkip(t *testing.T) {
	attrs := validAttributes()
	attrs.PhoneNumber = nil
	attrs.Avatar = nil
	attrs.Gender = nil
	attrs.DateOfBirth = nil

	if err := Validate(attrs); err != nil {
		t.Fatalf("absent optional fields must not fail: %v", err)
	}
}

func TestValidate_CollectsEveryViolation(t *testing.T) {
	attrs := validAttributes()
	attrs.Email = str("broken")
	attrs.Password = str("short")
	attrs.Firstname = nil

	ve := asValidationError(t, Validate(attrs))
	for _, field := range []string{"email", "password", "firstname"} {
		if !ve.FieldFailed(field) {
			t.Errorf("expected violation for %q, got %v", field, ve.Violations)
		}
	}
}

func TestValidate_ResetPasswordConfirmation(t *testing.T) {
	payload := domain.ResetPassword{NewPassword: "password1", ConfirmPassword: "password2"}
	ve := asValidationError(t, Validate(payload))
	if !ve.FieldFailed("confirmPassword") {
		t.Fatalf("expected confirmPassword violation, got %v", ve.Violations)
	}

	payload.ConfirmPassword = "password1"
	if err := Validate(payload); err != nil {
		t.Fatalf("matching confirmation must pass: %v", err)
	}
}

func TestValidate_AuthCredentials(t *testing.T) {
	creds := domain.AuthCredentials{Email: "a@b.co", Password: "password1"}
	if err := Validate(creds); err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	creds.Email = "nope"
	ve := asValidationError(t, Validate(creds))
	if !ve.FieldFailed("email") {
		t.Fatalf("expected email violation, got %v", ve.Violations)
	}
}
