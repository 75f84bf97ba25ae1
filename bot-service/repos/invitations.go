package repos

import (
	"context"
	"database/sql"
	"errors"

	"github.com/roomcall/roomcall-server/bot-service/models"
	"github.com/uptrace/bun"
)

type InvitationRepo struct {
	db *bun.DB
}

func NewInvitationRepo(db *bun.DB) *InvitationRepo {
	return &InvitationRepo{db: db}
}

func (c *InvitationRepo) Create(ctx context.Context, userId string, unix int64, msgId, invite string) (models.Invitation, error) {
	invitation := models.Invitation{
		UserId: userId,
		Unix:   unix,
		MsgId:  msgId,
		Invite: invite,
	}

	_, err := c.db.NewInsert().Model(&invitation).Returning("id").Exec(ctx)
	if err != nil {
		return invitation, persistenceError("create invitation", err)
	}

	return invitation, nil
}

func (c *InvitationRepo) FindByCreatorAndTimestamp(ctx context.Context, userId string, unix int64) (models.Invitation, error) {
	invitation := new(models.Invitation)
	err := c.db.NewSelect().Model(invitation).Where("user_id = ?", userId).Where("unix = ?", unix).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return *invitation, ErrNotFound
		}

		return *invitation, persistenceError("find invitation", err)
	}

	return *invitation, nil
}

func (c *InvitationRepo) RecordRsvp(ctx context.Context, invitationId int64, userId string, unix int64) (models.Rsvp, error) {
	rsvp := models.Rsvp{
		InvitationId: invitationId,
		UserId:       userId,
		Unix:         unix,
	}

	_, err := c.db.NewInsert().Model(&rsvp).Returning("id").Exec(ctx)
	if err != nil {
		return rsvp, persistenceError("record rsvp", err)
	}

	return rsvp, nil
}

// ListRsvps returns the RSVPs of the invitation posted as msgId in insertion
// order. An unknown message yields an empty list.
func (c *InvitationRepo) ListRsvps(ctx context.Context, msgId string) ([]models.RsvpEntry, error) {
	entries := make([]models.RsvpEntry, 0)
	err := c.db.NewSelect().
		TableExpr("rsvps AS r").
		ColumnExpr("r.user_id, r.unix").
		Join("JOIN invitations AS i ON r.invitation_id = i.id").
		Where("i.msg_id = ?", msgId).
		OrderExpr("r.id ASC").
		Scan(ctx, &entries)
	if err != nil {
		return nil, persistenceError("list rsvps", err)
	}

	return entries, nil
}
