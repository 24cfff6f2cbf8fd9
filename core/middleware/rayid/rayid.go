// Package rayid tags every request with a RayID (request id) for log correlation.
package rayid

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// Header is the response (and accepted request) header carrying the RayID.
	Header = "X-Ray-ID"
	// LocalsKey is the Fiber locals key the RayID is stored under.
	LocalsKey = "ray_id"
)

// New returns a middleware that tags every request with a RayID.
// An incoming X-Ray-ID header is reused so traces survive proxies.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := strings.TrimSpace(c.Get(Header))
		if rid == "" || len(rid) > 64 {
			rid = strings.ReplaceAll(uuid.NewString(), "-", "")
		}
		c.Locals(LocalsKey, rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
