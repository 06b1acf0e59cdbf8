package credential

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Issuer exchanges the admin password for a bearer token and verifies
// presented tokens. Implementations are swappable so the long-lived shared
// token can be replaced with expiring signed tokens without touching the
// API boundary.
type Issuer interface {
	Issue(password string) (string, error)
	Verify(token string) bool
}

// passwordChecker prefers a bcrypt hash when one is configured and falls
// back to a constant-time comparison against the plain secret.
type passwordChecker struct {
	password     string
	passwordHash string
}

func (c passwordChecker) check(password string) bool {
	if c.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(c.passwordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(c.password), []byte(password)) == 1
}

// SharedTokenIssuer hands out one long-lived shared token to anyone who
// presents the correct admin password. There is no per-user principal and
// no expiry. This matches the site's original behavior; prefer JWTIssuer
// for anything beyond a single-admin deployment.
type SharedTokenIssuer struct {
	checker passwordChecker
	token   string
}

func NewSharedTokenIssuer(password, passwordHash, token string) *SharedTokenIssuer {
	return &SharedTokenIssuer{
		checker: passwordChecker{password: password, passwordHash: passwordHash},
		token:   token,
	}
}

func (i *SharedTokenIssuer) Issue(password string) (string, error) {
	if !i.checker.check(password) {
		return "", ErrInvalidCredentials
	}
	return i.token, nil
}

func (i *SharedTokenIssuer) Verify(token string) bool {
	return subtle.ConstantTimeCompare([]byte(i.token), []byte(token)) == 1
}

// JWTIssuer signs an expiring admin token instead of handing out the shared
// secret itself.
type JWTIssuer struct {
	checker passwordChecker
	secret  []byte
	ttl     time.Duration
}

func NewJWTIssuer(password, passwordHash, secret string, ttl time.Duration) *JWTIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTIssuer{
		checker: passwordChecker{password: password, passwordHash: passwordHash},
		secret:  []byte(secret),
		ttl:     ttl,
	}
}

func (i *JWTIssuer) Issue(password string) (string, error) {
	if !i.checker.check(password) {
		return "", ErrInvalidCredentials
	}
	claims := jwt.MapClaims{
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(i.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

func (i *JWTIssuer) Verify(token string) bool {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return false
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	return ok && claims["role"] == "admin"
}
