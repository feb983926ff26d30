package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"
)

type DeadlinesRefreshedEvent struct {
	Type        string `json:"type"`
	RefreshedAt string `json:"refreshed_at"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyDeadlinesRefreshed tells connected dashboards to re-query the board
// so countdown labels pick up the new clock instant.
func NotifyDeadlinesRefreshed(refreshedAt time.Time) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := DeadlinesRefreshedEvent{
		Type:        "deadlines_refreshed",
		RefreshedAt: refreshedAt.UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
