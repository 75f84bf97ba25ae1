package controllers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/roomcall/roomcall-server/bot-service/customid"
	"github.com/roomcall/roomcall-server/bot-service/repos"
	"github.com/roomcall/roomcall-server/utils-go"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

const (
	msgSent           = "We sent your message!"
	msgInvalidRoom    = "Invalid room code or room link!"
	msgContentTooLong = "Room information is too long!"
	msgInviteLink     = "Invite link: %s"
	msgGone           = "This invitation is no longer available."
	msgNotAuthor      = "You are not the author of this message!"
	msgDeleted        = "Message deleted."
	msgNotModerator   = "You need the Ban Members permission to inspect RSVPs."
	msgInvalidMsgId   = "Invalid message ID!"
	msgRsvps          = "Here are the RSVPs"
	msgFailed         = "Something went wrong, please try again later."
	msgCooldown       = "Slow mode is on in this channel. You can send another invitation in %s."

	invitationTitle  = "Room link"
	noContent        = "No content"
	invitationFooter = "**Press the button below to get the room link**"
)

// InvitationController runs the invitation lifecycle. Every event is handled
// on its own against the store and the cache; the controller keeps no
// per-invitation state in memory.
type InvitationController struct {
	fx.In

	Store     InvitationStore
	Cooldowns CooldownGate
	Links     LinkResolver
	Messenger Messenger
	Auth      Authorizer
	Validate  *validator.Validate
	Now       func() time.Time `optional:"true"`
}

func (r *InvitationController) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}

	return time.Now()
}

// Send posts a new invitation. The row is written only after the message is
// sent, since it references the message id. If the write fails the message
// stays up without a row and the user gets a generic failure.
func (r *InvitationController) Send(ctx context.Context, cmd SendCommand) error {
	it := cmd.Interaction
	unix := r.now().Unix()

	slowMode, err := r.Messenger.SlowMode(ctx, it.ChannelId)
	if err != nil {
		log.Warn().Err(err).Str("channel", it.ChannelId).Msg("Could not read slow mode, assuming none")
		slowMode = 0
	}

	if slowMode > 0 && r.Cooldowns.IsBlocked(ctx, it.UserId, it.ChannelId) {
		return r.respond(ctx, it, fmt.Sprintf(msgCooldown, slowMode))
	}

	if msg := r.validateSend(cmd); msg != "" {
		return r.respond(ctx, it, msg)
	}

	link, ok := r.Links.Normalize(cmd.Room)
	if !ok {
		return r.respond(ctx, it, msgInvalidRoom)
	}

	msgId, err := r.Messenger.SendInvitation(ctx, it.ChannelId, invitationMessage(cmd, unix))
	if err != nil {
		return r.fail(ctx, it, fmt.Errorf("send invitation: %w", err))
	}

	if _, err := r.Store.Create(ctx, it.UserId, unix, msgId, link); err != nil {
		return r.fail(ctx, it, fmt.Errorf("invitation message %s has no backing row: %w", msgId, err))
	}

	if slowMode > 0 {
		r.Cooldowns.Arm(ctx, it.UserId, it.ChannelId, slowMode)
	}

	return r.respond(ctx, it, msgSent)
}

func (r *InvitationController) validateSend(cmd SendCommand) string {
	for _, e := range utils.ValidateStruct(r.Validate.Struct(cmd)) {
		if e.Field == "Content" {
			return msgContentTooLong
		}

		return msgInvalidRoom
	}

	return ""
}

func invitationMessage(cmd SendCommand, unix int64) InvitationMessage {
	content := cmd.Content
	if content == "" {
		content = noContent
	}

	return InvitationMessage{
		AuthorId:     cmd.UserId,
		AuthorName:   cmd.AuthorName,
		AuthorAvatar: cmd.AuthorAvatar,
		Title:        invitationTitle,
		Description:  content + "\n" + invitationFooter,
		Controls: []Control{
			{Label: "Get room link", CustomId: customid.Encode(cmd.UserId, unix), Style: StylePrimary},
			{Label: "Delete message", CustomId: customid.EncodeDelete(cmd.UserId, unix), Style: StyleDanger},
		},
	}
}

// HandleComponent dispatches a button click. Identifiers this bot did not
// produce are dropped without a response.
func (r *InvitationController) HandleComponent(ctx context.Context, click ComponentClick) error {
	action, err := customid.Decode(click.CustomId)
	if err != nil {
		log.Debug().Str("custom_id", click.CustomId).Msg("Ignoring unknown component")
		return nil
	}

	switch a := action.(type) {
	case customid.FetchLink:
		return r.fetchLink(ctx, click.Interaction, a)
	case customid.DeleteRequest:
		return r.deleteMessage(ctx, click.Interaction)
	}

	return nil
}

// fetchLink has no authorization: anyone may ask, and every click is
// recorded as a new RSVP.
func (r *InvitationController) fetchLink(ctx context.Context, it Interaction, a customid.FetchLink) error {
	invitation, err := r.Store.FindByCreatorAndTimestamp(ctx, a.CreatorId, a.Unix)
	if err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return r.respond(ctx, it, msgGone)
		}

		return r.fail(ctx, it, fmt.Errorf("find invitation: %w", err))
	}

	if _, err := r.Store.RecordRsvp(ctx, invitation.Id, it.UserId, r.now().Unix()); err != nil {
		return r.fail(ctx, it, fmt.Errorf("record rsvp: %w", err))
	}

	return r.respond(ctx, it, fmt.Sprintf(msgInviteLink, invitation.Invite))
}

func (r *InvitationController) deleteMessage(ctx context.Context, it Interaction) error {
	author, err := r.Messenger.MessageAuthor(ctx, it.ChannelId, it.MessageId)
	if err != nil {
		return r.fail(ctx, it, fmt.Errorf("message author: %w", err))
	}

	if author != it.UserId {
		return r.respond(ctx, it, msgNotAuthor)
	}

	if err := r.Messenger.DeleteMessage(ctx, it.ChannelId, it.MessageId); err != nil {
		return r.fail(ctx, it, fmt.Errorf("delete message: %w", err))
	}

	return r.respond(ctx, it, msgDeleted)
}

// Inspect exports the RSVPs of the invitation posted as cmd.MsgId. The store
// is not queried unless the caller has moderator rights.
func (r *InvitationController) Inspect(ctx context.Context, cmd InspectCommand) error {
	it := cmd.Interaction

	allowed, err := r.Auth.HasModeratorRights(ctx, it)
	if err != nil {
		return r.fail(ctx, it, fmt.Errorf("permission check: %w", err))
	}
	if !allowed {
		return r.respond(ctx, it, msgNotModerator)
	}

	if len(utils.ValidateStruct(r.Validate.Struct(cmd))) > 0 {
		return r.respond(ctx, it, msgInvalidMsgId)
	}

	entries, err := r.Store.ListRsvps(ctx, cmd.MsgId)
	if err != nil {
		return r.fail(ctx, it, fmt.Errorf("list rsvps: %w", err))
	}

	var buf bytes.Buffer
	if err := WriteRsvpCsv(&buf, entries); err != nil {
		return r.fail(ctx, it, fmt.Errorf("render rsvps: %w", err))
	}

	return r.Messenger.Respond(ctx, it, Response{
		Content: msgRsvps,
		File: &Attachment{
			Name:        "rsvps-" + cmd.MsgId + ".csv",
			ContentType: "text/csv",
			Data:        buf.Bytes(),
		},
	})
}

func (r *InvitationController) respond(ctx context.Context, it Interaction, content string) error {
	return r.Messenger.Respond(ctx, it, Response{Content: content})
}

// fail tells the user something went wrong and hands the cause back to the
// dispatcher for logging.
func (r *InvitationController) fail(ctx context.Context, it Interaction, cause error) error {
	if err := r.respond(ctx, it, msgFailed); err != nil {
		log.Error().Err(err).Str("user", it.UserId).Msg("Could not report failure")
	}

	return cause
}
