package discord

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/roomcall/roomcall-server/bot-service/controllers"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

// Router turns gateway interactions into controller calls. discordgo runs
// every handler on its own goroutine, so events are handled concurrently.
type Router struct {
	controller *controllers.InvitationController
	timeout    time.Duration
}

func NewRouter(controller *controllers.InvitationController, timeout time.Duration) *Router {
	return &Router{controller: controller, timeout: timeout}
}

func Register(lc fx.Lifecycle, session *discordgo.Session, config *Config, c controllers.InvitationController) {
	router := NewRouter(&c, time.Second*time.Duration(config.Timeout))

	session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Info().Str("user", r.User.Username).Int("guilds", len(r.Guilds)).Msg("Connected to gateway")
	})
	session.AddHandler(router.OnInteraction)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := session.Open(); err != nil {
				return err
			}

			if session.State.User == nil {
				return errors.New("gateway session has no user")
			}

			_, err := session.ApplicationCommandBulkOverwrite(session.State.User.ID, config.GuildId, commands, discordgo.WithContext(ctx))
			if err != nil {
				return err
			}

			log.Info().Str("guild", config.GuildId).Int("commands", len(commands)).Msg("Registered commands")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return session.Close()
		},
	})
}

func (r *Router) OnInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.Dispatch(ctx, i.Interaction); err != nil {
		log.Error().Err(err).
			Str("interaction", i.ID).
			Str("user", interactionOf(i.Interaction).UserId).
			Str("channel", i.ChannelID).
			Msg("Interaction failed")
	}
}

func (r *Router) Dispatch(ctx context.Context, i *discordgo.Interaction) error {
	if i.GuildID == "" {
		return nil
	}

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case commandSend:
			return r.controller.Send(ctx, sendCommandOf(i))
		case commandInspect:
			return r.controller.Inspect(ctx, inspectCommandOf(i))
		}
	case discordgo.InteractionMessageComponent:
		return r.controller.HandleComponent(ctx, componentClickOf(i))
	}

	return nil
}
