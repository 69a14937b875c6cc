package cors

import (
	"github.com/gofiber/fiber/v2"
)

// AllowAll is the value sent in Access-Control-Allow-Origin.
const AllowAll = "*"

// New returns a middleware that marks every response as readable from any
// origin. Unlike fiber's cors middleware it does not depend on the request
// carrying an Origin header.
//
// The header is set before the chain runs and again afterwards, so handlers
// that reset the response still emit it. Errors returned down the chain are
// rendered by the app's ErrorHandler, which must set it as well.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, AllowAll)
		err := c.Next()
		c.Set(fiber.HeaderAccessControlAllowOrigin, AllowAll)
		return err
	}
}
