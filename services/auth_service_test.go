package services

import (
	"errors"
	"testing"
	"time"
)

func TestAuthValidate(t *testing.T) {
	if _, err := NewAuthService("", "s", 0).Validate("x"); !errors.Is(err, ErrAuthNotConfigured) {
		t.Errorf("expected ErrAuthNotConfigured, got %v", err)
	}

	svc := NewAuthService("open-sesame", "secret", time.Hour)
	if _, err := svc.Validate("wrong"); !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword, got %v", err)
	}

	res, err := svc.Validate("open-sesame")
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !res.Authenticated || res.Token == "" || res.ExpiresAt == nil {
		t.Fatalf("unexpected result: %+v", res)
	}
	if err := svc.VerifyToken(res.Token); err != nil {
		t.Errorf("VerifyToken: %v", err)
	}
	if err := svc.VerifyToken("garbage"); err == nil {
		t.Error("expected error for garbage token")
	}

	noToken, err := NewAuthService("pw", "", 0).Validate("pw")
	if err != nil || noToken.Token != "" {
		t.Errorf("without a secret no token should be issued: %+v (%v)", noToken, err)
	}
}
