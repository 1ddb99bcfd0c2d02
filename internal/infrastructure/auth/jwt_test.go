package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/vmorales/condoledger/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:         "01JXYZTESTUSER0000000000AB",
		NationalID: "12345678-9",
		UnitID:     101,
		Role:       domain.RoleResident,
	}
}

func TestJWTManager_GenerateAndVerify(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	token, err := manager.Generate(testUser())
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}

	claims, err := manager.Verify(token)
	if err != nil {
		t.Fatalf("unexpected error verifying token: %v", err)
	}

	if claims.UserID != "01JXYZTESTUSER0000000000AB" {
		t.Errorf("unexpected user id %q", claims.UserID)
	}
	if claims.NationalID != "12345678-9" {
		t.Errorf("unexpected national id %q", claims.NationalID)
	}
	if claims.UnitID != 101 {
		t.Errorf("unexpected unit id %d", claims.UnitID)
	}
	if claims.Role != domain.RoleResident {
		t.Errorf("unexpected role %q", claims.Role)
	}
}

func TestJWTManager_Verify_WrongSecret(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	other := NewJWTManager("other-secret", time.Hour)

	token, err := manager.Generate(testUser())
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}

	if _, err := other.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTManager_Verify_Expired(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute)

	token, err := manager.Generate(testUser())
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}

	if _, err := manager.Verify(token); !errors.Is(err, domain.ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestJWTManager_Verify_Garbage(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	if _, err := manager.Verify("not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
