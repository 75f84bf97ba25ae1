package controllers

import (
	"context"
	"time"

	"github.com/roomcall/roomcall-server/bot-service/models"
)

// Interaction identifies one inbound event and the handle needed to answer
// it. MessageId is set for component clicks only.
type Interaction struct {
	Id        string
	Token     string
	UserId    string
	ChannelId string
	GuildId   string
	MessageId string
}

type SendCommand struct {
	Interaction

	AuthorName   string
	AuthorAvatar string
	Room         string `validate:"required,max=256,roomlink"`
	Content      string `validate:"max=1024"`
}

type ComponentClick struct {
	Interaction

	CustomId string
}

type InspectCommand struct {
	Interaction

	MsgId string `validate:"required,max=32"`
}

type ControlStyle int

const (
	StylePrimary ControlStyle = iota
	StyleDanger
)

type Control struct {
	Label    string
	CustomId string
	Style    ControlStyle
}

type InvitationMessage struct {
	AuthorId     string
	AuthorName   string
	AuthorAvatar string
	Title        string
	Description  string
	Controls     []Control
}

type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

// Response is always delivered ephemerally to the user who triggered the
// interaction.
type Response struct {
	Content string
	File    *Attachment
}

type Messenger interface {
	SendInvitation(ctx context.Context, channelId string, msg InvitationMessage) (string, error)
	Respond(ctx context.Context, it Interaction, res Response) error
	DeleteMessage(ctx context.Context, channelId, messageId string) error
	MessageAuthor(ctx context.Context, channelId, messageId string) (string, error)
	SlowMode(ctx context.Context, channelId string) (time.Duration, error)
}

type Authorizer interface {
	HasModeratorRights(ctx context.Context, it Interaction) (bool, error)
}

type LinkResolver interface {
	Normalize(input string) (string, bool)
}

type InvitationStore interface {
	Create(ctx context.Context, userId string, unix int64, msgId, invite string) (models.Invitation, error)
	FindByCreatorAndTimestamp(ctx context.Context, userId string, unix int64) (models.Invitation, error)
	RecordRsvp(ctx context.Context, invitationId int64, userId string, unix int64) (models.Rsvp, error)
	ListRsvps(ctx context.Context, msgId string) ([]models.RsvpEntry, error)
}

type CooldownGate interface {
	IsBlocked(ctx context.Context, userId, channelId string) bool
	Arm(ctx context.Context, userId, channelId string, d time.Duration)
}
