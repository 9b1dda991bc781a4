package lucidfeed

import (
	"time"

	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/domain"
)

// Endpoint describes one entry of the well-known endpoint directory.
type Endpoint struct {
	Template string    `json:"template"`
	Method   string    `json:"method"`
	Query    *[]string `json:"query,omitempty"`
}

// WellKnownLucidFeed is served at /.well-known/lucidfeed so presentation
// layers can discover the retrieval surface.
type WellKnownLucidFeed struct {
	Version   string              `json:"version"`
	Endpoints map[string]Endpoint `json:"endpoints"`
}

// Event is one engagement update on the realtime stream.
type Event struct {
	Type       string            `json:"type"`
	ItemID     string            `json:"itemID"`
	DigestID   string            `json:"digestID,omitempty"`
	Engagement domain.Engagement `json:"engagement"`
	Magnitude  int64             `json:"magnitude"`
	Timestamp  time.Time         `json:"timestamp"`
}

// EngagementChannel is the pub/sub channel engagement events broadcast on.
const EngagementChannel = "lucidfeed:engagement"
