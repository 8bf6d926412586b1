package httpapi

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/webmanager/internal/server/auth"
)

const (
	identityKey     = "identity"
	requestIDKey    = "request_id"
	bearerScheme    = "Bearer"
	msgAccessDenied = "Access denied"
	msgInvalidToken = "Invalid token"
)

// requireAuth is the authorization gate. A request without a bearer
// token is rejected with 401; a request whose token does not verify is
// rejected with 403 without revealing which check failed. On success
// the decoded claims are attached to the request for downstream
// handlers.
func (s *Server) requireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractBearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msgAccessDenied})
		}

		claims, err := auth.ParseToken(token, s.jwtSecret)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": msgInvalidToken})
		}

		c.Locals(identityKey, claims)
		return c.Next()
	}
}

// extractBearerToken pulls the token part out of an Authorization
// header value. Scheme comparison is case-insensitive; a missing or
// empty token part yields "".
func extractBearerToken(header string) string {
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], bearerScheme) {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

// IdentityFromCtx returns the claims attached by requireAuth.
func IdentityFromCtx(c *fiber.Ctx) (*auth.Claims, bool) {
	claims, ok := c.Locals(identityKey).(*auth.Claims)
	return claims, ok
}

// requestLogger tags every request with an id and logs method, path,
// status, and duration once the handler chain finishes.
func (s *Server) requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := uuid.NewString()
		c.Locals(requestIDKey, requestID)

		start := time.Now()
		err := c.Next()

		s.logger.Info(c.UserContext(), "request",
			"request_id", requestID,
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start).String(),
		)

		return err
	}
}
