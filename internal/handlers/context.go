package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// WithBaseContext gives every request a user context derived from base.
// Cancelling base (process shutdown) cancels the runs still in flight.
func WithBaseContext(base context.Context) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithCancel(base)
		defer cancel()

		c.SetUserContext(ctx)
		return c.Next()
	}
}
