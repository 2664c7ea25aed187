package services

import (
	"errors"
	"testing"

	"github.com/civicgrid/initiative/backend/internal/config"
	"github.com/civicgrid/initiative/backend/pkg/response"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase unchanged", "anna@example.com", "anna@example.com"},
		{"uppercase folded", "Anna@Example.COM", "anna@example.com"},
		{"surrounding space trimmed", "  anna@example.com  ", "anna@example.com"},
		{"mixed case and space", " Boris@Mail.RU ", "boris@mail.ru"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeEmail(tt.input); got != tt.expected {
				t.Errorf("NormalizeEmail(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRegisterRequest_Fields(t *testing.T) {
	req := RegisterRequest{
		Email:    "anna@example.com",
		Password: "secret",
		Name:     "Anna",
		Role:     "initiator",
	}

	if req.Email != "anna@example.com" {
		t.Errorf("Email = %q, expected %q", req.Email, "anna@example.com")
	}
	if req.Role != "initiator" {
		t.Errorf("Role = %q, expected %q", req.Role, "initiator")
	}
}

func TestTokenResponse_TokenType(t *testing.T) {
	resp := TokenResponse{AccessToken: "abc", TokenType: "bearer"}
	if resp.TokenType != "bearer" {
		t.Errorf("TokenType = %q, expected %q", resp.TokenType, "bearer")
	}
}

func TestRegister_DuplicateEmailConflict(t *testing.T) {
	svc := NewAuthService(newTestDB(t), &config.JWTConfig{Secret: "test", ExpireHour: 24})

	first := &RegisterRequest{
		Email:    "anna@example.com",
		Password: "secret1",
		Role:     "initiator",
		Name:     "Anna",
	}
	if _, err := svc.Register(first); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}

	// the same address in a different case must still collide
	second := &RegisterRequest{
		Email:    "  Anna@Example.COM ",
		Password: "secret2",
		Role:     "npo",
		Name:     "Another Anna",
	}
	_, err := svc.Register(second)
	if err == nil {
		t.Fatal("second Register() with the same normalized email should fail")
	}

	var appErr *response.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *response.AppError, got %T", err)
	}
	if appErr.HTTPStatus != 409 {
		t.Errorf("HTTPStatus = %d, expected 409", appErr.HTTPStatus)
	}
}

func TestRegister_ThenLogin(t *testing.T) {
	svc := NewAuthService(newTestDB(t), &config.JWTConfig{Secret: "test", ExpireHour: 24})

	if _, err := svc.Register(&RegisterRequest{
		Email:    "boris@example.com",
		Password: "secret1",
		Role:     "initiator",
		Name:     "Boris",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	resp, err := svc.Login(&LoginRequest{Email: "Boris@Example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("Login() returned empty access token")
	}

	if _, err := svc.Login(&LoginRequest{Email: "boris@example.com", Password: "wrong"}); err == nil {
		t.Error("Login() with a wrong password should fail")
	}
}
