// Package customid encodes and decodes the identifiers attached to the
// buttons of an invitation message.
//
// A button identifier is the only payload a component interaction carries, so
// the intent is encoded in its shape: "creator-unix" asks for the room link,
// "creator-unix-del" asks to delete the message.
package customid

import (
	"errors"
	"strconv"
	"strings"
)

const (
	separator = "-"
	DeleteTag = "del"
)

var ErrMalformed = errors.New("customid: malformed identifier")

// Action is either FetchLink or DeleteRequest.
type Action interface {
	Invitation() (creatorId string, unix int64)
	isAction()
}

type FetchLink struct {
	CreatorId string
	Unix      int64
}

type DeleteRequest struct {
	CreatorId string
	Unix      int64
}

func (a FetchLink) Invitation() (string, int64)     { return a.CreatorId, a.Unix }
func (a DeleteRequest) Invitation() (string, int64) { return a.CreatorId, a.Unix }

func (FetchLink) isAction()     {}
func (DeleteRequest) isAction() {}

func Encode(creatorId string, unix int64) string {
	return creatorId + separator + strconv.FormatInt(unix, 10)
}

func EncodeDelete(creatorId string, unix int64) string {
	return Encode(creatorId, unix) + separator + DeleteTag
}

func Decode(id string) (Action, error) {
	parts := strings.Split(id, separator)
	if len(parts) != 2 && len(parts) != 3 {
		return nil, ErrMalformed
	}

	if parts[0] == "" {
		return nil, ErrMalformed
	}

	unix, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil, ErrMalformed
	}

	if len(parts) == 2 {
		return FetchLink{CreatorId: parts[0], Unix: unix}, nil
	}

	if parts[2] != DeleteTag {
		return nil, ErrMalformed
	}

	return DeleteRequest{CreatorId: parts[0], Unix: unix}, nil
}
