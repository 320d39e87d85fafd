package session

import "github.com/gofiber/fiber/v2"

// localsKey is where the auth middleware stores the session in Fiber locals.
const localsKey = "session"

// Session identifies the authenticated owner of a request. It is constructed
// once by the auth middleware and passed explicitly into services and the
// reconcile engine; no code reads the current user from ambient state.
type Session struct {
	// Username is the tenant key every collection is partitioned by.
	Username string
}

// Store attaches the session to the Fiber context.
func Store(c *fiber.Ctx, s Session) {
	c.Locals(localsKey, s)
}

// FromCtx extracts the session placed by the auth middleware. The boolean is
// false on unauthenticated routes.
func FromCtx(c *fiber.Ctx) (Session, bool) {
	s, ok := c.Locals(localsKey).(Session)
	return s, ok && s.Username != ""
}
