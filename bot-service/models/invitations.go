package models

import "github.com/uptrace/bun"

// Invitation is one room announcement tied to one sent message. UserId and
// Unix together form the identifier carried by the message's buttons.
type Invitation struct {
	bun.BaseModel `bun:"table:invitations,alias:i"`

	Id     int64  `bun:"id,pk,autoincrement" json:"id"`
	UserId string `bun:"user_id,notnull,unique:invitations_user_unix" json:"user_id"`
	Unix   int64  `bun:"unix,notnull,unique:invitations_user_unix" json:"unix"`
	MsgId  string `bun:"msg_id,notnull" json:"msg_id"`
	Invite string `bun:"invite,notnull" json:"invite"`
}

// Rsvp rows are append-only. The same user may appear many times for one
// invitation.
type Rsvp struct {
	bun.BaseModel `bun:"table:rsvps,alias:r"`

	Id           int64  `bun:"id,pk,autoincrement" json:"id"`
	InvitationId int64  `bun:"invitation_id,notnull" json:"invitation_id"`
	UserId       string `bun:"user_id,notnull" json:"user_id"`
	Unix         int64  `bun:"unix,notnull" json:"unix"`
}

type RsvpEntry struct {
	UserId string `bun:"user_id" json:"user_id"`
	Unix   int64  `bun:"unix" json:"unix"`
}
