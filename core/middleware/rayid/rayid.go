package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

// HeaderName is the request and response header carrying the ray id.
const HeaderName = "X-Ray-ID"

// LocalsKey is the fiber locals key holding the ray id. WebSocket connections
// read it through their copied locals.
const LocalsKey = "ray_id"

// New returns a middleware that assigns a ray id to every request.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Header values alias the request buffer; copy before storing
		rid := utils.CopyString(c.Get(HeaderName))
		if rid == "" || len(rid) > 64 {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}

// FromContext returns the ray id assigned to the request, if any.
func FromContext(c *fiber.Ctx) string {
	rid, _ := c.Locals(LocalsKey).(string)
	return rid
}
