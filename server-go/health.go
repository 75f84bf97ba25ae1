package server

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"
	"go.uber.org/fx"
)

type HealthController struct {
	fx.In

	Db    *bun.DB
	Redis *redis.Client
}

type healthResponse struct {
	Status   string `json:"status"`
	Postgres string `json:"postgres"`
	Redis    string `json:"redis"`
}

func RegisterHealthController(app *fiber.App, c HealthController) {
	app.Get("/livez", c.live)
	app.Get("/healthz", c.health)
}

func (r *HealthController) live(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// health reports degraded when redis is down, since cooldowns fail open and
// the bot keeps working. Postgres being down fails the check.
func (r *HealthController) health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*2)
	defer cancel()

	res := healthResponse{Status: "ok", Postgres: "ok", Redis: "ok"}
	status := fiber.StatusOK

	if err := r.Db.PingContext(ctx); err != nil {
		log.Warn().Err(err).Msg("Postgres health check failed")
		res.Postgres = "down"
		res.Status = "down"
		status = fiber.StatusServiceUnavailable
	}

	if err := r.Redis.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("Redis health check failed")
		res.Redis = "down"
		if status == fiber.StatusOK {
			res.Status = "degraded"
		}
	}

	return c.Status(status).JSON(res)
}
