// Package rayid assigns every request a unique ray id for log correlation.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the ray id.
const HeaderName = "X-Ray-Id"

// New creates the ray id middleware. An incoming X-Ray-Id header is honored
// so ids survive proxies; otherwise a fresh UUID is generated. The id is
// stored in c.Locals("ray_id") for logger.WithRayID.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.New().String()
		}
		c.Locals("ray_id", rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
