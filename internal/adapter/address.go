package adapter

import (
	"fmt"
	"net/url"
	"strings"
)

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// websocketBaseURL returns wsRaw normalised, or httpBase with its scheme
// switched to ws/wss when wsRaw is empty.
func websocketBaseURL(httpBase, wsRaw string) (string, error) {
	if strings.TrimSpace(wsRaw) != "" {
		if !strings.Contains(wsRaw, "://") {
			wsRaw = "ws://" + strings.TrimSpace(wsRaw)
		}
		return normalizeBaseURL(wsRaw)
	}

	u, err := url.Parse(httpBase)
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}

	return strings.TrimRight(u.String(), "/"), nil
}
