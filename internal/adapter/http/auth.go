package httpadapter

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"campaign-wizard/internal/config/configs"
	"campaign-wizard/internal/core/domain"
	"campaign-wizard/internal/core/port"
)

type identityClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

type identityKey struct{}

// Authenticator issues and verifies HS256 identity tokens. The token
// subject is the identity id, which doubles as the wizard session.
type Authenticator struct {
	secret []byte
	issuer string
	ttl    time.Duration
	clock  port.Clock
}

func NewAuthenticator(cfg configs.Auth, clock port.Clock) *Authenticator {
	return &Authenticator{secret: []byte(cfg.Secret), issuer: cfg.Issuer, ttl: cfg.TokenTTL, clock: clock}
}

// SignIdentity returns a signed token for id.
func (a *Authenticator) SignIdentity(id domain.Identity) (string, error) {
	now := a.clock.Now()
	claims := identityClaims{
		Email: id.Email,
		Name:  id.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.ID,
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Parse verifies token and returns the identity it carries.
func (a *Authenticator) Parse(token string) (domain.Identity, error) {
	var claims identityClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return a.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(a.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.clock.Now),
	)
	if err != nil {
		return domain.Identity{}, err
	}
	if claims.Subject == "" {
		return domain.Identity{}, errors.New("token has no subject")
	}
	return domain.Identity{ID: claims.Subject, Email: claims.Email, Name: claims.Name}, nil
}

// Middleware rejects requests without a valid bearer token and stores the
// identity in the request context.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || raw == "" {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}
		id, err := a.Parse(raw)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey{}, id)))
	})
}

// identityFrom returns the identity set by Middleware.
func identityFrom(ctx context.Context) domain.Identity {
	id, _ := ctx.Value(identityKey{}).(domain.Identity)
	return id
}

func session(r *http.Request) string {
	return identityFrom(r.Context()).ID
}
