package controllers

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/roomcall/roomcall-server/bot-service/models"
	"github.com/roomcall/roomcall-server/bot-service/repos"
)

type fakeStore struct {
	mu          sync.Mutex
	invitations []models.Invitation
	rsvps       []models.Rsvp
	listCalls   int

	createErr error
	findErr   error
	rsvpErr   error
	listErr   error
}

func (s *fakeStore) Create(ctx context.Context, userId string, unix int64, msgId, invite string) (models.Invitation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.createErr != nil {
		return models.Invitation{}, s.createErr
	}

	inv := models.Invitation{Id: int64(len(s.invitations) + 1), UserId: userId, Unix: unix, MsgId: msgId, Invite: invite}
	s.invitations = append(s.invitations, inv)
	return inv, nil
}

func (s *fakeStore) FindByCreatorAndTimestamp(ctx context.Context, userId string, unix int64) (models.Invitation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findErr != nil {
		return models.Invitation{}, s.findErr
	}

	for _, inv := range s.invitations {
		if inv.UserId == userId && inv.Unix == unix {
			return inv, nil
		}
	}
	return models.Invitation{}, repos.ErrNotFound
}

func (s *fakeStore) RecordRsvp(ctx context.Context, invitationId int64, userId string, unix int64) (models.Rsvp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rsvpErr != nil {
		return models.Rsvp{}, s.rsvpErr
	}

	rsvp := models.Rsvp{Id: int64(len(s.rsvps) + 1), InvitationId: invitationId, UserId: userId, Unix: unix}
	s.rsvps = append(s.rsvps, rsvp)
	return rsvp, nil
}

func (s *fakeStore) ListRsvps(ctx context.Context, msgId string) ([]models.RsvpEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listCalls++
	if s.listErr != nil {
		return nil, s.listErr
	}

	entries := make([]models.RsvpEntry, 0)
	for _, inv := range s.invitations {
		if inv.MsgId != msgId {
			continue
		}
		for _, rsvp := range s.rsvps {
			if rsvp.InvitationId == inv.Id {
				entries = append(entries, models.RsvpEntry{UserId: rsvp.UserId, Unix: rsvp.Unix})
			}
		}
	}
	return entries, nil
}

type fakeGate struct {
	mu      sync.Mutex
	blocked map[string]bool
	armed   map[string]time.Duration
}

func newFakeGate() *fakeGate {
	return &fakeGate{blocked: map[string]bool{}, armed: map[string]time.Duration{}}
}

func (g *fakeGate) IsBlocked(ctx context.Context, userId, channelId string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.blocked[userId+"-"+channelId]
}

func (g *fakeGate) Arm(ctx context.Context, userId, channelId string, d time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.armed[userId+"-"+channelId] = d
	g.blocked[userId+"-"+channelId] = true
}

type sentInvitation struct {
	channelId string
	msg       InvitationMessage
}

type response struct {
	it  Interaction
	res Response
}

type fakeMessenger struct {
	mu        sync.Mutex
	slowMode  time.Duration
	slowErr   error
	sendErr   error
	authors   map[string]string
	sent      []sentInvitation
	responses []response
	deleted   []string
	nextMsg   int
}

func newFakeMessenger() *fakeMessenger {
	return &fakeMessenger{authors: map[string]string{}}
}

func (m *fakeMessenger) SendInvitation(ctx context.Context, channelId string, msg InvitationMessage) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sendErr != nil {
		return "", m.sendErr
	}

	m.nextMsg++
	id := "m" + strconv.Itoa(m.nextMsg)
	m.sent = append(m.sent, sentInvitation{channelId: channelId, msg: msg})
	m.authors[id] = msg.AuthorId
	return id, nil
}

func (m *fakeMessenger) Respond(ctx context.Context, it Interaction, res Response) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, response{it: it, res: res})
	return nil
}

func (m *fakeMessenger) DeleteMessage(ctx context.Context, channelId, messageId string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, messageId)
	return nil
}

func (m *fakeMessenger) MessageAuthor(ctx context.Context, channelId, messageId string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	author, ok := m.authors[messageId]
	if !ok {
		return "", errors.New("unknown message")
	}
	return author, nil
}

func (m *fakeMessenger) SlowMode(ctx context.Context, channelId string) (time.Duration, error) {
	return m.slowMode, m.slowErr
}

func (m *fakeMessenger) lastResponse() Response {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.responses) == 0 {
		return Response{}
	}
	return m.responses[len(m.responses)-1].res
}

type fakeAuth struct {
	allowed bool
	err     error
}

func (a fakeAuth) HasModeratorRights(ctx context.Context, it Interaction) (bool, error) {
	return a.allowed, a.err
}
