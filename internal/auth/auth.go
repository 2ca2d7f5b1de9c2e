// Package auth — вход единственного администратора дашборда и проверка его JWT.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pribylovaa/go-site-content/internal/config"
	"github.com/pribylovaa/go-site-content/pkg/log"
	"github.com/pribylovaa/go-site-content/pkg/redact"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
)

// adminSubject — sub выпускаемых токенов.
const adminSubject = "admin"

// Principal — аутентифицированный вызывающий.
type Principal struct {
	Subject string
	Email   string
}

// Token — выданный access-токен.
type Token struct {
	AccessToken string
	ExpiresAt   time.Time
}

type accessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Authenticator выпускает и проверяет HS256-токены администратора.
type Authenticator struct {
	cfg config.AuthConfig
	now func() time.Time
}

func New(cfg config.AuthConfig) *Authenticator {
	return &Authenticator{cfg: cfg, now: time.Now}
}

// Login сверяет email и пароль с учёткой из конфига и выпускает access-токен.
// Любое несовпадение, как и отсутствие учётки, — ErrInvalidCredentials.
func (a *Authenticator) Login(ctx context.Context, email, password string) (*Token, error) {
	const op = "auth/Login"

	lg := log.From(ctx)

	if a.cfg.AdminEmail == "" || a.cfg.AdminPasswordHash == "" {
		lg.Warn("admin_not_configured", slog.String("op", op))
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	normEmail := strings.ToLower(strings.TrimSpace(email))

	// Хэш сверяется всегда, независимо от совпадения email.
	pwErr := bcrypt.CompareHashAndPassword([]byte(a.cfg.AdminPasswordHash), []byte(password))
	if normEmail != strings.ToLower(a.cfg.AdminEmail) || pwErr != nil {
		lg.Warn("login_rejected",
			slog.String("op", op),
			slog.String("email", redact.Email(normEmail)),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	now := a.now().UTC()
	exp := now.Add(a.cfg.AccessTokenTTL)

	claims := accessClaims{
		Email: normEmail,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    a.cfg.Issuer,
			Subject:   adminSubject,
			Audience:  jwt.ClaimStrings(a.cfg.Audience),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.cfg.JWTSecret))
	if err != nil {
		lg.Error("access_token_sign_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("login_ok", slog.String("op", op), slog.String("email", redact.Email(normEmail)))

	return &Token{AccessToken: signed, ExpiresAt: exp}, nil
}

// Validate проверяет подпись, срок, issuer и audience токена.
func (a *Authenticator) Validate(tokenStr string) (Principal, error) {
	const op = "auth/Validate"

	token, err := jwt.ParseWithClaims(tokenStr, &accessClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
			}

			return []byte(a.cfg.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(5*time.Second),
		jwt.WithIssuer(a.cfg.Issuer),
		jwt.WithAudience(a.cfg.Audience...),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Principal{}, fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}

		return Principal{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid || claims.Subject != adminSubject {
		return Principal{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return Principal{Subject: claims.Subject, Email: claims.Email}, nil
}

type principalKey struct{}

// WithPrincipal кладёт вызывающего в контекст.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom достаёт вызывающего из контекста.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// ContextAuthorizer считает авторизованным любой запрос с Principal в контексте.
type ContextAuthorizer struct{}

func (ContextAuthorizer) Authorized(ctx context.Context) bool {
	_, ok := PrincipalFrom(ctx)
	return ok
}
