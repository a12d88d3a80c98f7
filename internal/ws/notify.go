package ws

import (
	"encoding/json"
	"strings"
	"sync/atomic"
	"time"
)

type LeaderboardUpdatedEvent struct {
	Type      string `json:"type"`
	Username  string `json:"username,omitempty"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyLeaderboardUpdated tells connected clients that a user record
// changed and the leaderboard may have reordered. No-op without a hub.
func NotifyLeaderboardUpdated(username string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := LeaderboardUpdatedEvent{
		Type:      "leaderboard_updated",
		Username:  strings.TrimSpace(username),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
