package domain

import "time"

// SourceType describes the provenance of a curated item or catalog feed.
type SourceType string

const (
	SourceJournal    SourceType = "journal"
	SourceCommunity  SourceType = "community"
	SourceCommentary SourceType = "commentary"
)

// Engagement holds the raw per-item engagement counters. Counters are
// append-only: they only ever grow as new signal arrives.
type Engagement struct {
	Upvotes  int64 `json:"upvotes"`
	Views    int64 `json:"views"`
	Comments int64 `json:"comments"`
}

// ScoreBreakdown is the composed quality score of an item. TotalScore is
// always recomputed from the subscores, never edited independently.
type ScoreBreakdown struct {
	Subscores  map[string]float64 `json:"subscores"`
	TotalScore float64            `json:"totalScore"`
}

// Item is a single piece of curated content.
type Item struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	URL         string         `json:"url"`
	SourceType  SourceType     `json:"sourceType"`
	DigestID    string         `json:"digestId,omitempty"`
	PublishedAt time.Time      `json:"publishedAt"`
	Topics      []string       `json:"topics"`
	Methodology Methodology    `json:"methodology"`
	Engagement  Engagement     `json:"engagement"`
	Score       ScoreBreakdown `json:"scoreBreakdown"`
}
