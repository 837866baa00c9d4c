package domain

import (
	"errors"
	"testing"
)

func TestValidateUserInputShortCircuits(t *testing.T) {
	// All three fields invalid: only the first (name) is reported.
	_, _, _, err := ValidateUserInput("", "", "not-an-email")
	var domainErr *Error
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected *domain.Error, got %v", err)
	}
	if domainErr.Code != "User.Name" {
		t.Errorf("code = %q, want User.Name", domainErr.Code)
	}

	// Name valid, last name invalid: last name wins over the bad email.
	_, _, _, err = ValidateUserInput("mary", "", "not-an-email")
	if !errors.As(err, &domainErr) || domainErr.Code != "User.LastName" {
		t.Errorf("expected User.LastName error, got %v", err)
	}

	// Only the email invalid.
	_, _, _, err = ValidateUserInput("mary", "jane", "not-an-email")
	if !errors.As(err, &domainErr) || domainErr.Code != "User.Email" {
		t.Errorf("expected User.Email error, got %v", err)
	}
}

func TestValidateUserInputSuccess(t *testing.T) {
	name, last, email, err := ValidateUserInput(" mary ", " JANE ", "mary@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name.String() != "Mary" || last.String() != "Jane" {
		t.Errorf("normalized names = %q %q", name.String(), last.String())
	}
	if email.String() != "mary@example.com" {
		t.Errorf("email = %q", email.String())
	}
}
