package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/utils"
	"github.com/MKhiriev/go-chat-client/models"
	"github.com/samber/lo"
)

// Query limits applied when a request leaves them unset or exceeds them.
const (
	DefaultChannelLimit = 10
	MaxChannelLimit     = 30
	DefaultMessageLimit = 25
	MaxMessageLimit     = 300
)

type channelService struct {
	hub    *hub
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

func newChannelService(h *hub, logger *logger.Logger) ChannelService {
	return &channelService{
		hub:    h,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

func (c *channelService) QueryChannels(ctx context.Context, userID string, req models.QueryChannelsRequest) ([]models.ChannelStateResponse, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: empty user ID", ErrInvalidDataProvided)
	}
	if req.Limit < 0 || req.Offset < 0 || req.MessageLimit < 0 {
		return nil, fmt.Errorf("%w: negative limit or offset", ErrInvalidDataProvided)
	}
	if (req.Watch || req.Presence) && req.ConnectionID == "" {
		return nil, ErrConnectionIDRequired
	}

	predicates, err := compileFilter(req.FilterConditions)
	if err != nil {
		return nil, err
	}

	limit := clamp(req.Limit, DefaultChannelLimit, MaxChannelLimit)
	messageLimit := clamp(req.MessageLimit, DefaultMessageLimit, MaxMessageLimit)

	lock := c.hub.mu.RLock
	unlock := c.hub.mu.RUnlock
	if req.Watch {
		lock, unlock = c.hub.mu.Lock, c.hub.mu.Unlock
	}
	lock()
	defer unlock()

	var conn *Connection
	if req.Watch {
		var ok bool
		conn, ok = c.hub.connections[req.ConnectionID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrConnectionNotFound, req.ConnectionID)
		}
		if conn.User.ID != userID {
			return nil, ErrForeignConnection
		}
	}

	// only channels the user belongs to are readable
	records := lo.Filter(lo.Values(c.hub.channels), func(rec *channelRecord, _ int) bool {
		if !rec.hasMember(userID) {
			return false
		}
		return lo.EveryBy(predicates, func(p channelPredicate) bool { return p(rec) })
	})

	if err = sortChannels(records, req.Sort); err != nil {
		return nil, err
	}

	records = lo.Slice(records, req.Offset, req.Offset+limit)

	withState := req.State || req.Watch
	result := make([]models.ChannelStateResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, c.hub.snapshot(rec, withState, messageLimit))
		if conn != nil {
			conn.watched[rec.channel.CID] = struct{}{}
		}
	}

	c.logger.Debug().
		Str("user_id", userID).
		Int("count", len(result)).
		Bool("watch", req.Watch).
		Msg("channels queried")

	return result, nil
}

func (c *channelService) SendMessage(ctx context.Context, userID, channelType, channelID string, msg models.Message) (models.Message, error) {
	if userID == "" || channelType == "" || channelID == "" {
		return models.Message{}, fmt.Errorf("%w: user and channel are required", ErrInvalidDataProvided)
	}
	if strings.TrimSpace(msg.Text) == "" {
		return models.Message{}, ErrEmptyMessage
	}

	cid := channelType + ":" + channelID

	c.hub.mu.Lock()
	defer c.hub.mu.Unlock()

	rec, ok := c.hub.channels[cid]
	if !ok {
		return models.Message{}, fmt.Errorf("%w: %s", ErrChannelNotFound, cid)
	}
	if !rec.hasMember(userID) {
		return models.Message{}, ErrNotChannelMember
	}

	if msg.ID == "" {
		msg.ID = c.ids.Generate()
	}
	msg.CID = cid
	msg.User = c.hub.userRef(userID)
	if msg.Type == "" {
		msg.Type = "regular"
	}
	msg.CreatedAt = time.Now().UTC()

	c.hub.appendMessage(rec, msg)

	c.logger.Debug().
		Str("cid", cid).
		Str("user_id", userID).
		Str("message_id", msg.ID).
		Msg("message sent")

	return msg, nil
}

// clamp returns fallback for zero and caps v at upper.
func clamp(v, fallback, upper int) int {
	if v == 0 {
		return fallback
	}
	return min(v, upper)
}
