// Package auth validates the shared-secret credential the dashboard product
// sends with each widget request.
package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// HeaderAPIKey is the request header carrying the credential. Older
// deployments send it as the username of HTTP basic auth instead.
const HeaderAPIKey = "X-API-Key"

// ErrUnauthorized is returned for any credential that does not match the
// configured key. Missing and incorrect credentials are indistinguishable.
var ErrUnauthorized = errors.New("unauthorized")

// Validator compares request credentials against the configured API key.
// It only classifies; callers decide how to respond on the transport.
type Validator struct {
	key []byte
}

// NewValidator returns a validator for the given key. An empty key disables
// the check entirely, which keeps unkeyed development setups working.
func NewValidator(apiKey string) *Validator {
	return &Validator{key: []byte(apiKey)}
}

// Check classifies a candidate credential.
func (v *Validator) Check(candidate string) error {
	if len(v.key) == 0 {
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(candidate), v.key) == 1 {
		return nil
	}
	return ErrUnauthorized
}

// FromRequest extracts the credential from the X-API-Key header, falling
// back to the username field of a basic Authorization header. Returns ""
// when neither location carries one.
func FromRequest(c *fiber.Ctx) string {
	if key := c.Get(HeaderAPIKey); key != "" {
		return key
	}
	authz := c.Get(fiber.HeaderAuthorization)
	parts := strings.SplitN(authz, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "basic") {
		return ""
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(parts[1]))
	if err != nil {
		return ""
	}
	// the key rides in the username; the password part is ignored
	user, _, _ := strings.Cut(string(decoded), ":")
	return user
}
