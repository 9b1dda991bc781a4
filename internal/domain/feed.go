package domain

import "time"

// Feed is a catalog entry describing an ingestible source. An approved feed
// is a permission to ingest, not a content container.
type Feed struct {
	Name       string     `json:"name"`
	URL        string     `json:"url"`
	SourceType SourceType `json:"sourceType"`
	Category   string     `json:"category"`
	Topics     []string   `json:"topics"`
	IsApproved bool       `json:"isApproved"`
}

// Digest is a curated, dated grouping of items. The engine only needs it as
// an addressable scope target.
type Digest struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
}
