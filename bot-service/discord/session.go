package discord

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/roomcall/roomcall-server/bot-service/controllers"
)

const profileUrlPrefix = "https://discord.com/users/"

type Config struct {
	BotToken string
	GuildId  string
	Timeout  uint64
}

func ProvideSession(config *Config) (*discordgo.Session, error) {
	if config.BotToken == "" {
		return nil, errors.New("missing bot token")
	}

	session, err := discordgo.New("Bot " + config.BotToken)
	if err != nil {
		return nil, err
	}

	session.Identify.Intents = discordgo.IntentsGuilds
	session.StateEnabled = true

	return session, nil
}

// Messenger is the outbound side of the gateway: it sends, answers and
// deletes messages and resolves channel and member details.
type Messenger struct {
	session *discordgo.Session
}

func NewMessenger(session *discordgo.Session) *Messenger {
	return &Messenger{session: session}
}

func (m *Messenger) SendInvitation(ctx context.Context, channelId string, msg controllers.InvitationMessage) (string, error) {
	sent, err := m.session.ChannelMessageSendComplex(channelId, invitationMessageSend(msg), discordgo.WithContext(ctx))
	if err != nil {
		return "", err
	}

	return sent.ID, nil
}

func (m *Messenger) Respond(ctx context.Context, it controllers.Interaction, res controllers.Response) error {
	data := &discordgo.InteractionResponseData{
		Content: res.Content,
		Flags:   discordgo.MessageFlagsEphemeral,
	}

	if res.File != nil {
		data.Files = []*discordgo.File{{
			Name:        res.File.Name,
			ContentType: res.File.ContentType,
			Reader:      bytes.NewReader(res.File.Data),
		}}
	}

	return m.session.InteractionRespond(&discordgo.Interaction{ID: it.Id, Token: it.Token}, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}, discordgo.WithContext(ctx))
}

func (m *Messenger) DeleteMessage(ctx context.Context, channelId, messageId string) error {
	return m.session.ChannelMessageDelete(channelId, messageId, discordgo.WithContext(ctx))
}

func (m *Messenger) MessageAuthor(ctx context.Context, channelId, messageId string) (string, error) {
	msg, err := m.session.ChannelMessage(channelId, messageId, discordgo.WithContext(ctx))
	if err != nil {
		return "", err
	}

	botId := ""
	if m.session.State != nil && m.session.State.User != nil {
		botId = m.session.State.User.ID
	}

	return messageAuthor(msg, botId), nil
}

func (m *Messenger) SlowMode(ctx context.Context, channelId string) (time.Duration, error) {
	channel, err := m.session.State.Channel(channelId)
	if err != nil {
		channel, err = m.session.Channel(channelId, discordgo.WithContext(ctx))
		if err != nil {
			return 0, err
		}
	}

	return time.Duration(channel.RateLimitPerUser) * time.Second, nil
}

func (m *Messenger) HasModeratorRights(ctx context.Context, it controllers.Interaction) (bool, error) {
	perms, err := m.session.UserChannelPermissions(it.UserId, it.ChannelId, discordgo.WithContext(ctx))
	if err != nil {
		return false, err
	}

	return perms&discordgo.PermissionBanMembers != 0, nil
}

func invitationMessageSend(msg controllers.InvitationMessage) *discordgo.MessageSend {
	buttons := make([]discordgo.MessageComponent, 0, len(msg.Controls))
	for _, control := range msg.Controls {
		style := discordgo.PrimaryButton
		if control.Style == controllers.StyleDanger {
			style = discordgo.DangerButton
		}

		buttons = append(buttons, discordgo.Button{
			Label:    control.Label,
			Style:    style,
			CustomID: control.CustomId,
		})
	}

	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       msg.Title,
			Description: msg.Description,
			Author: &discordgo.MessageEmbedAuthor{
				Name:    msg.AuthorName,
				IconURL: msg.AuthorAvatar,
				URL:     profileUrlPrefix + msg.AuthorId,
			},
		}},
		Components:      []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}},
		AllowedMentions: &discordgo.MessageAllowedMentions{},
	}
}

// messageAuthor returns the user a message belongs to. Invitations are posted
// by the bot, so for those the user is read back from the embed author link.
func messageAuthor(msg *discordgo.Message, botId string) string {
	if msg.Author == nil {
		return ""
	}

	if msg.Author.ID != botId {
		return msg.Author.ID
	}

	for _, embed := range msg.Embeds {
		if embed.Author != nil && strings.HasPrefix(embed.Author.URL, profileUrlPrefix) {
			return strings.TrimPrefix(embed.Author.URL, profileUrlPrefix)
		}
	}

	return msg.Author.ID
}
