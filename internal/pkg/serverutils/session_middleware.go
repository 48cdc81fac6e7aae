package serverutils

import (
	"github.com/gofiber/fiber/v2"
)

const SessionHeader = "X-Session-Id"

// SessionMiddleware copies the anonymous session id from the request header
// into locals. Browsing works without one; handlers that need a session
// decide for themselves what to do when it is empty.
func SessionMiddleware(ctx *fiber.Ctx) error {
	ctx.Locals("session_id", ctx.Get(SessionHeader))
	return ctx.Next()
}

func SessionID(ctx *fiber.Ctx) string {
	if id, ok := ctx.Locals("session_id").(string); ok {
		return id
	}
	return ""
}
