package stub

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/MKhiriev/go-employee-catalog/internal/config"
	"github.com/MKhiriev/go-employee-catalog/internal/utils"
	"github.com/MKhiriev/go-employee-catalog/models"
	"golang.org/x/crypto/bcrypt"
)

// authenticator checks the single HR account and issues tokens for it. The
// password is kept only as a bcrypt hash.
type authenticator struct {
	username     string
	passwordHash []byte
	signKey      string
	issuer       string
	duration     time.Duration
}

func newAuthenticator(cfg config.StubConfig) (*authenticator, error) {
	if cfg.Username == "" || cfg.Password == "" || cfg.TokenSignKey == "" {
		return nil, ErrIncompleteStubSetup
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing stub password: %w", err)
	}

	issuer := cfg.TokenIssuer
	if issuer == "" {
		issuer = config.DefaultTokenIssuer
	}
	duration := cfg.TokenDuration
	if duration <= 0 {
		duration = config.DefaultTokenDuration
	}

	return &authenticator{
		username:     cfg.Username,
		passwordHash: hash,
		signKey:      cfg.TokenSignKey,
		issuer:       issuer,
		duration:     duration,
	}, nil
}

// Login returns a signed token for valid creds.
func (a *authenticator) Login(creds models.Credentials) (string, error) {
	if subtle.ConstantTimeCompare([]byte(creds.Username), []byte(a.username)) != 1 {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(creds.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateJWTToken(a.issuer, a.username, a.duration, a.signKey)
}

// Verify returns the subject of a valid token issued by this stub.
func (a *authenticator) Verify(token string) (string, error) {
	subject, err := utils.ValidateAndParseJWTToken(token, a.signKey, a.issuer)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if subject != a.username {
		return "", ErrInvalidToken
	}
	return subject, nil
}
