package service

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-chat-client/models"
	"github.com/samber/lo"
)

// channelPredicate reports whether a channel record matches one filter
// condition.
type channelPredicate func(rec *channelRecord) bool

// compileFilter turns the backend's filter syntax into predicates. Supported
// conditions are type, id and cid (a string, {"$eq": s} or {"$in": [...]})
// and members ({"$in": [...]}, matching channels with any of the users).
func compileFilter(filter models.Filter) ([]channelPredicate, error) {
	predicates := make([]channelPredicate, 0, len(filter))

	for field, condition := range filter {
		switch field {
		case "type", "id", "cid":
			values, err := stringCondition(field, condition)
			if err != nil {
				return nil, err
			}
			predicates = append(predicates, fieldIn(field, values))
		case "members":
			values, err := inCondition(field, condition)
			if err != nil {
				return nil, err
			}
			predicates = append(predicates, func(rec *channelRecord) bool {
				return lo.SomeBy(values, rec.hasMember)
			})
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedFilter, field)
		}
	}

	return predicates, nil
}

func fieldIn(field string, values []string) channelPredicate {
	return func(rec *channelRecord) bool {
		var got string
		switch field {
		case "type":
			got = rec.channel.Type
		case "id":
			got = rec.channel.ID
		default:
			got = rec.channel.CID
		}
		return lo.Contains(values, got)
	}
}

func stringCondition(field string, condition any) ([]string, error) {
	if s, ok := condition.(string); ok {
		return []string{s}, nil
	}

	ops, ok := condition.(map[string]any)
	if !ok || len(ops) != 1 {
		return nil, fmt.Errorf("%w: %q expects a string or a single operator", ErrUnsupportedFilter, field)
	}
	if eq, ok := ops["$eq"]; ok {
		s, ok := eq.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %q $eq expects a string", ErrUnsupportedFilter, field)
		}
		return []string{s}, nil
	}

	return inCondition(field, condition)
}

func inCondition(field string, condition any) ([]string, error) {
	ops, ok := condition.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q expects {\"$in\": [...]}", ErrUnsupportedFilter, field)
	}

	raw, ok := ops["$in"]
	if !ok || len(ops) != 1 {
		return nil, fmt.Errorf("%w: %q expects {\"$in\": [...]}", ErrUnsupportedFilter, field)
	}

	switch list := raw.(type) {
	case []string:
		return list, nil
	case []any:
		values := make([]string, 0, len(list))
		for _, v := range list {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %q $in expects strings", ErrUnsupportedFilter, field)
			}
			values = append(values, s)
		}
		return values, nil
	default:
		return nil, fmt.Errorf("%w: %q $in expects a list", ErrUnsupportedFilter, field)
	}
}

// sortChannels orders records by the sort options, then by cid. Channels
// without messages have a zero last_message_at.
func sortChannels(records []*channelRecord, sort []models.SortOption) error {
	for _, opt := range sort {
		switch opt.Field {
		case "last_message_at", "created_at", "member_count", "name", "cid":
		default:
			return fmt.Errorf("%w: %q", ErrUnsupportedSortField, opt.Field)
		}
	}

	slices.SortStableFunc(records, func(a, b *channelRecord) int {
		for _, opt := range sort {
			c := compareField(a, b, opt.Field)
			if opt.Direction < 0 {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return cmp.Compare(a.channel.CID, b.channel.CID)
	})

	return nil
}

func compareField(a, b *channelRecord, field string) int {
	switch field {
	case "last_message_at":
		return lastMessageAt(a).Compare(lastMessageAt(b))
	case "created_at":
		return a.createdAt.Compare(b.createdAt)
	case "member_count":
		return cmp.Compare(len(a.members), len(b.members))
	case "name":
		return cmp.Compare(a.channel.Name, b.channel.Name)
	default:
		return cmp.Compare(a.channel.CID, b.channel.CID)
	}
}

func lastMessageAt(rec *channelRecord) time.Time {
	if rec.channel.LastMessageAt == nil {
		return time.Time{}
	}
	return *rec.channel.LastMessageAt
}
