package models

import "time"

type Item struct {
	ID          string             `json:"id" gorm:"primaryKey;type:text"`
	Title       string             `json:"title" gorm:"type:text;not null"`
	URL         string             `json:"url" gorm:"type:text;not null;uniqueIndex:item_url"`
	SourceType  string             `json:"sourceType" gorm:"type:text"`
	DigestID    string             `json:"digestID" gorm:"type:text;index"`
	PublishedAt time.Time          `json:"publishedAt" gorm:"->;<-:create;type:timestamp with time zone;not null"`
	Topics      []string           `json:"topics" gorm:"serializer:json;type:jsonb"`
	Methodology string             `json:"methodology" gorm:"type:text;not null"`
	Upvotes     int64              `json:"upvotes" gorm:"not null;default:0"`
	Views       int64              `json:"views" gorm:"not null;default:0"`
	Comments    int64              `json:"comments" gorm:"not null;default:0"`
	Subscores   map[string]float64 `json:"subscores" gorm:"serializer:json;type:jsonb"`
	TotalScore  float64            `json:"totalScore" gorm:"not null;default:0;index"`
	CDate       time.Time          `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type Digest struct {
	ID    string    `json:"id" gorm:"primaryKey;type:text"`
	Title string    `json:"title" gorm:"type:text"`
	Date  time.Time `json:"date" gorm:"type:timestamp with time zone;not null"`
}

type Folder struct {
	ID          string    `json:"id" gorm:"primaryKey;type:text"`
	UserID      string    `json:"userID" gorm:"type:text;index;not null"`
	Name        string    `json:"name" gorm:"type:text;not null"`
	Description string    `json:"description" gorm:"type:text"`
	CDate       time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	MDate       time.Time `json:"mdate" gorm:"type:timestamp with time zone;not null;default:clock_timestamp()"`
}

// FolderItem is a membership edge. No foreign key to items: item deletion
// never cascades here, stale edges are pruned lazily.
type FolderItem struct {
	FolderID string    `json:"folderID" gorm:"primaryKey;type:text"`
	Folder   Folder    `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	ItemID   string    `json:"itemID" gorm:"primaryKey;type:text;index"`
	CDate    time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type Bookmark struct {
	UserID string    `json:"userID" gorm:"primaryKey;type:text"`
	ItemID string    `json:"itemID" gorm:"primaryKey;type:text;index"`
	CDate  time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type Feed struct {
	Name       string    `json:"name" gorm:"primaryKey;type:text"`
	URL        string    `json:"url" gorm:"type:text;not null"`
	SourceType string    `json:"sourceType" gorm:"type:text"`
	Category   string    `json:"category" gorm:"type:text"`
	Topics     []string  `json:"topics" gorm:"serializer:json;type:jsonb"`
	IsApproved bool      `json:"isApproved" gorm:"not null;default:false;index"`
	CDate      time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}
