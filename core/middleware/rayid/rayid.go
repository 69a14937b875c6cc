package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// Header is the response header carrying the request's RayID.
	Header = "X-Ray-ID"
	// LocalsKey is the fiber locals key the RayID is stored under.
	LocalsKey = "ray_id"
)

// New returns a middleware that tags every request with a RayID.
// A well-formed incoming X-Ray-ID is kept so callers can correlate their own logs.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(Header)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Locals(LocalsKey, id)
		c.Set(Header, id)

		return c.Next()
	}
}
