package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pribylovaa/go-site-content/internal/config"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "s3cret-pass"

func newTestAuth(t *testing.T) *Authenticator {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	return New(config.AuthConfig{
		JWTSecret:         "test-secret",
		Issuer:            "content-service",
		Audience:          []string{"admin-dashboard"},
		AccessTokenTTL:    time.Hour,
		AdminEmail:        "Admin@Site.org",
		AdminPasswordHash: string(hash),
	})
}

func TestLogin_AndValidate(t *testing.T) {
	a := newTestAuth(t)

	tok, err := a.Login(context.Background(), "  admin@site.org ", testPassword)
	require.NoError(t, err)
	require.NotEmpty(t, tok.AccessToken)
	require.WithinDuration(t, time.Now().Add(time.Hour), tok.ExpiresAt, 5*time.Second)

	p, err := a.Validate(tok.AccessToken)
	require.NoError(t, err)
	require.Equal(t, Principal{Subject: adminSubject, Email: "admin@site.org"}, p)
}

func TestLogin_Rejected(t *testing.T) {
	a := newTestAuth(t)
	ctx := context.Background()

	_, err := a.Login(ctx, "admin@site.org", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = a.Login(ctx, "other@site.org", testPassword)
	require.ErrorIs(t, err, ErrInvalidCredentials)

	unset := New(config.AuthConfig{JWTSecret: "x"})
	_, err = unset.Login(ctx, "", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidate_Expired(t *testing.T) {
	a := newTestAuth(t)

	a.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	tok, err := a.Login(context.Background(), "admin@site.org", testPassword)
	require.NoError(t, err)

	a.now = time.Now
	_, err = a.Validate(tok.AccessToken)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidate_Invalid(t *testing.T) {
	a := newTestAuth(t)

	_, err := a.Validate("garbage")
	require.ErrorIs(t, err, ErrInvalidToken)

	// Чужой секрет.
	other := newTestAuth(t)
	other.cfg.JWTSecret = "another"
	tok, err := other.Login(context.Background(), "admin@site.org", testPassword)
	require.NoError(t, err)
	_, err = a.Validate(tok.AccessToken)
	require.ErrorIs(t, err, ErrInvalidToken)

	// Другая аудитория.
	aud := newTestAuth(t)
	aud.cfg.Audience = []string{"public-site"}
	tok, err = aud.Login(context.Background(), "admin@site.org", testPassword)
	require.NoError(t, err)
	_, err = a.Validate(tok.AccessToken)
	require.ErrorIs(t, err, ErrInvalidToken)

	// Не HS256.
	none := jwt.NewWithClaims(jwt.SigningMethodNone, accessClaims{})
	s, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = a.Validate(s)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestPrincipalContext(t *testing.T) {
	ctx := context.Background()

	_, ok := PrincipalFrom(ctx)
	require.False(t, ok)
	require.False(t, ContextAuthorizer{}.Authorized(ctx))

	ctx = WithPrincipal(ctx, Principal{Subject: "admin"})
	p, ok := PrincipalFrom(ctx)
	require.True(t, ok)
	require.Equal(t, "admin", p.Subject)
	require.True(t, ContextAuthorizer{}.Authorized(ctx))
}
