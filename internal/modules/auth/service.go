package auth

import (
	"os"

	"golang.org/x/crypto/bcrypt"

	jwtsvc "partbroker/internal/pkg/jwt"
)

const (
	RoleBuyer        = "buyer"
	RoleManufacturer = "manufacturer"
)

// account is one env-configured login. Either the raw password or a
// bcrypt hash may be set; the hash wins when both are.
type account struct {
	username     string
	password     string
	passwordHash string
	role         string
}

type Service struct {
	accounts []account
	jwt      *jwtsvc.Service
}

// NewService loads the two fixed users from the environment. BUYER_* falls
// back to the legacy AUTH_* variables.
func NewService(jwt *jwtsvc.Service) *Service {
	buyer := account{
		username:     envOr("BUYER_USERNAME", "AUTH_USERNAME"),
		password:     envOr("BUYER_PASSWORD", "AUTH_PASSWORD"),
		passwordHash: envOr("BUYER_PASSWORD_HASH", "AUTH_PASSWORD_HASH"),
		role:         RoleBuyer,
	}
	manufacturer := account{
		username:     os.Getenv("MANUFACTURER_USERNAME"),
		password:     os.Getenv("MANUFACTURER_PASSWORD"),
		passwordHash: os.Getenv("MANUFACTURER_PASSWORD_HASH"),
		role:         RoleManufacturer,
	}
	return &Service{accounts: []account{buyer, manufacturer}, jwt: jwt}
}

func (s *Service) Login(req LoginRequest) (*LoginResponse, error) {
	for _, acc := range s.accounts {
		if acc.username == "" || acc.username != req.Username {
			continue
		}
		if !acc.verify(req.Password) {
			continue
		}

		token, err := s.jwt.GenerateToken(acc.username, acc.role)
		if err != nil {
			return nil, err
		}
		return &LoginResponse{AccessToken: token, TokenType: "bearer", Role: acc.role}, nil
	}
	return nil, ErrInvalidCredentials
}

func (a account) verify(password string) bool {
	if a.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)) == nil
	}
	if a.password != "" {
		return a.password == password
	}
	return false
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return os.Getenv(fallback)
}
