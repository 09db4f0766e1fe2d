package middleware

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gofiber/fiber/v3"

	"advisorqa/internal/logging"
)

// TokenVerifier checks a bearer token. *oidc.IDTokenVerifier satisfies it
// through OIDCVerifier.
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (subject string, err error)
}

// OIDCVerifier adapts an oidc.IDTokenVerifier to TokenVerifier.
type OIDCVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewOIDCVerifier discovers the issuer and builds a verifier for clientID.
func NewOIDCVerifier(ctx context.Context, issuer, clientID string) (*OIDCVerifier, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, err
	}
	return &OIDCVerifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: clientID}),
	}, nil
}

// Verify validates the ID token and returns its subject.
func (v *OIDCVerifier) Verify(ctx context.Context, rawToken string) (string, error) {
	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return "", err
	}
	return token.Subject, nil
}

// AdminAuth guards the catalog and review endpoints.
type AdminAuth struct {
	apiKey   string
	verifier TokenVerifier
}

// NewAdminAuth creates the admin guard. With neither an API key nor a
// verifier every request passes.
func NewAdminAuth(apiKey string, verifier TokenVerifier) *AdminAuth {
	return &AdminAuth{apiKey: apiKey, verifier: verifier}
}

// Enabled reports whether credentials are required.
func (m *AdminAuth) Enabled() bool {
	return m.apiKey != "" || m.verifier != nil
}

// RequireAdmin accepts either the static API key or a verified OIDC bearer
// token. The caller's identity is stored in the "admin" local.
func (m *AdminAuth) RequireAdmin(c fiber.Ctx) error {
	if !m.Enabled() {
		return c.Next()
	}

	token := bearerToken(c.Get(fiber.HeaderAuthorization))
	if token == "" {
		token = c.Get("X-API-Key")
	}
	if token == "" {
		return unauthorized(c)
	}

	if m.apiKey != "" && subtle.ConstantTimeCompare([]byte(token), []byte(m.apiKey)) == 1 {
		c.Locals("admin", "api-key")
		return c.Next()
	}

	if m.verifier != nil {
		subject, err := m.verifier.Verify(c.Context(), token)
		if err == nil {
			c.Locals("admin", subject)
			return c.Next()
		}
		logging.ForComponent(logging.CompHTTP).Debug("admin token rejected", "error", err)
	}

	return unauthorized(c)
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func unauthorized(c fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"status": "error",
		"error":  "unauthorized",
	})
}
