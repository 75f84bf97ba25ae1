package models

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"
)

func CreateSchema(db *bun.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	if _, err := db.NewCreateTable().Model((*Invitation)(nil)).IfNotExists().Exec(ctx); err != nil {
		return err
	}

	_, err := db.NewCreateTable().
		Model((*Rsvp)(nil)).
		IfNotExists().
		ForeignKey(`("invitation_id") REFERENCES "invitations" ("id") ON DELETE CASCADE`).
		Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().
		Model((*Invitation)(nil)).
		Index("invitations_msg_id_idx").
		IfNotExists().
		Column("msg_id").
		Exec(ctx)
	if err != nil {
		return err
	}

	log.Info().Msg("Database schema ready")
	return nil
}
