package main

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/roomcall/roomcall-server/bot-service/config"
	"github.com/roomcall/roomcall-server/bot-service/controllers"
	"github.com/roomcall/roomcall-server/bot-service/discord"
	"github.com/roomcall/roomcall-server/bot-service/models"
	"github.com/roomcall/roomcall-server/bot-service/repos"
	"github.com/roomcall/roomcall-server/bot-service/rooms"
	"github.com/roomcall/roomcall-server/server-go"
	"github.com/roomcall/roomcall-server/utils-go"
	"github.com/uptrace/bun"
	"go.uber.org/fx"
)

func main() {

	opts := []fx.Option{}
	opts = append(opts, provideOptions()...)
	opts = append(opts, fx.Invoke(run))

	app := fx.New(opts...)

	app.Run()
}

func provideOptions() []fx.Option {
	return []fx.Option{
		fx.Provide(config.Parse),
		fx.Provide(utils.ConvertConfig[*config.Config, utils.LoggerConfig]),
		fx.Invoke(utils.ConfigureLogger),
		fx.Provide(utils.ConvertConfig[*config.Config, server.Config]),
		fx.Provide(utils.ConvertConfig[*config.Config, utils.PostgresConfig]),
		fx.Provide(utils.ConvertConfig[*config.Config, utils.RedisConfig]),
		fx.Provide(utils.ConvertConfig[*config.Config, discord.Config]),
		fx.Provide(utils.ProvidePostgres),
		fx.Provide(utils.ProvideRedis),
		fx.Invoke(closeOnStop),
		fx.Invoke(models.CreateSchema),
		fx.Provide(repos.NewInvitationRepo),
		fx.Provide(repos.NewCooldownGate),
		fx.Provide(func(c *config.Config) *rooms.Resolver {
			return rooms.NewResolver(c.LinkHost)
		}),
		fx.Provide(provideValidator),
		fx.Provide(discord.ProvideSession),
		fx.Provide(discord.NewMessenger),
		fx.Provide(
			func(r *repos.InvitationRepo) controllers.InvitationStore { return r },
			func(g *repos.CooldownGate) controllers.CooldownGate { return g },
			func(r *rooms.Resolver) controllers.LinkResolver { return r },
			func(m *discord.Messenger) controllers.Messenger { return m },
			func(m *discord.Messenger) controllers.Authorizer { return m },
		),
		fx.Provide(server.CreateServer),
		fx.Invoke(server.RegisterHealthController),
		fx.Invoke(discord.Register),
	}
}

func provideValidator(resolver *rooms.Resolver) (*validator.Validate, error) {
	validate := validator.New()
	if err := resolver.RegisterValidation(validate); err != nil {
		return nil, err
	}

	return validate, nil
}

// closeOnStop is invoked before the gateway and the listener register their
// hooks, so the pools close only after both have stopped.
func closeOnStop(db *bun.DB, rdb *redis.Client, lc fx.Lifecycle) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := rdb.Close(); err != nil {
				return err
			}

			return db.Close()
		},
	})
}

func run(app *fiber.App, config *config.Config, lc fx.Lifecycle) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			errChan := make(chan error)

			go func() {
				errChan <- app.Listen(config.Port)
			}()

			select {
			case err := <-errChan:
				return err
			case <-time.After(100 * time.Millisecond):
				return nil
			}
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}
