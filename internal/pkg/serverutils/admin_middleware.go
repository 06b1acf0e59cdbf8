package serverutils

import (
	"strings"

	"github.com/DhairyaS450/personal-website-sub000/pkg/credential"

	"github.com/gofiber/fiber/v2"
)

// AdminAuthMiddleware gates write routes behind the admin bearer token.
// Missing or malformed headers and token mismatches are both 401, with the
// bodies the site frontend matches on.
func AdminAuthMiddleware(issuer credential.Issuer) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" || !issuer.Verify(token) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
		}
		return ctx.Next()
	}
}
