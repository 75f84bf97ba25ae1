package controllers

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/roomcall/roomcall-server/bot-service/models"
)

var rsvpCsvHeader = []string{"user_id", "unix"}

func WriteRsvpCsv(w io.Writer, entries []models.RsvpEntry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(rsvpCsvHeader); err != nil {
		return err
	}

	for _, entry := range entries {
		if err := cw.Write([]string{entry.UserId, strconv.FormatInt(entry.Unix, 10)}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
