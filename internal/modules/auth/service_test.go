package auth

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	jwtsvc "partbroker/internal/pkg/jwt"
)

func testService(t *testing.T) *Service {
	t.Helper()
	return NewService(jwtsvc.New("test-secret", time.Hour))
}

func TestLoginBuyerRawPassword(t *testing.T) {
	t.Setenv("BUYER_USERNAME", "buyer1")
	t.Setenv("BUYER_PASSWORD", "hunter2")
	svc := testService(t)

	res, err := svc.Login(LoginRequest{Username: "buyer1", Password: "hunter2"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.Role != RoleBuyer || res.AccessToken == "" || res.TokenType != "bearer" {
		t.Fatalf("response = %+v", res)
	}
}

func TestLoginManufacturerHashedPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("maker-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	t.Setenv("MANUFACTURER_USERNAME", "maker")
	t.Setenv("MANUFACTURER_PASSWORD_HASH", string(hash))
	svc := testService(t)

	res, err := svc.Login(LoginRequest{Username: "maker", Password: "maker-pass"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.Role != RoleManufacturer {
		t.Fatalf("role = %s, want manufacturer", res.Role)
	}
}

func TestLoginHashWinsOverRawPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("real-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	t.Setenv("BUYER_USERNAME", "buyer1")
	t.Setenv("BUYER_PASSWORD", "stale-raw-pass")
	t.Setenv("BUYER_PASSWORD_HASH", string(hash))
	svc := testService(t)

	if _, err := svc.Login(LoginRequest{Username: "buyer1", Password: "stale-raw-pass"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("raw password accepted despite configured hash: %v", err)
	}
	if _, err := svc.Login(LoginRequest{Username: "buyer1", Password: "real-pass"}); err != nil {
		t.Fatalf("login with hashed password: %v", err)
	}
}

func TestLoginLegacyAuthFallback(t *testing.T) {
	t.Setenv("AUTH_USERNAME", "legacy")
	t.Setenv("AUTH_PASSWORD", "legacy-pass")
	svc := testService(t)

	res, err := svc.Login(LoginRequest{Username: "legacy", Password: "legacy-pass"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.Role != RoleBuyer {
		t.Fatalf("role = %s, want buyer", res.Role)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Setenv("BUYER_USERNAME", "buyer1")
	t.Setenv("BUYER_PASSWORD", "hunter2")
	svc := testService(t)

	if _, err := svc.Login(LoginRequest{Username: "buyer1", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(LoginRequest{Username: "nobody", Password: "hunter2"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}
