package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// ErrInvalidToken is returned when a bearer token fails parsing or verification
var ErrInvalidToken = errors.New("invalid or expired token")

// Identity token claims, as issued by the identity provider:
//   sub     user id (required)
//   roles   []string of role names (optional)
//   name    display name (optional, used when indexing the user)
//   picture avatar URL (optional, used when indexing the user)

// TokenClaims is the decoded content of an identity token
type TokenClaims struct {
	Viewer      Viewer
	DisplayName *string
	AvatarURL   *string
}

// VerifyToken parses and verifies an HS256 identity token and extracts
// the viewer identity from its claims.
func VerifyToken(token string, secret []byte) (*TokenClaims, error) {
	tok, err := jwt.Parse([]byte(token),
		jwt.WithKey(jwa.HS256, secret),
		jwt.WithValidate(true),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if tok.Subject() == "" {
		return nil, fmt.Errorf("%w: missing sub claim", ErrInvalidToken)
	}

	claims := &TokenClaims{
		Viewer: Viewer{UserID: tok.Subject()},
	}

	if raw, ok := tok.Get("roles"); ok {
		claims.Viewer.Roles = parseRoles(raw)
	}
	if raw, ok := tok.Get("name"); ok {
		if name, ok := raw.(string); ok && name != "" {
			claims.DisplayName = &name
		}
	}
	if raw, ok := tok.Get("picture"); ok {
		if url, ok := raw.(string); ok && url != "" {
			claims.AvatarURL = &url
		}
	}

	return claims, nil
}

// MintToken builds and signs an identity token. Used by tests and local dev
// tooling; in production the identity provider issues tokens.
func MintToken(viewer Viewer, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()

	roles := make([]string, len(viewer.Roles))
	for i, r := range viewer.Roles {
		roles[i] = string(r)
	}

	tok, err := jwt.NewBuilder().
		Subject(viewer.UserID).
		IssuedAt(now).
		Expiration(now.Add(ttl)).
		Claim("roles", roles).
		Build()
	if err != nil {
		return "", fmt.Errorf("failed to build token: %w", err)
	}

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return string(signed), nil
}

// parseRoles converts the raw roles claim into typed roles.
// JSON arrays decode as []interface{}; anything else is ignored.
func parseRoles(raw interface{}) []Role {
	items, ok := raw.([]interface{})
	if !ok {
		return nil
	}

	var roles []Role
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			roles = append(roles, Role(s))
		}
	}
	return roles
}
