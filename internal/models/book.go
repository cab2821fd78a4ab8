package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Book is a catalog entry. Only Title and Author are required; Rating is a
// pointer so "unrated" is distinguishable from a zero rating. CreatedAt is
// the listing sort key (newest first).
type Book struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title         string    `gorm:"size:500;not null" json:"title"`
	Author        string    `gorm:"size:255;not null" json:"author"`
	Genre         string    `gorm:"size:100;index" json:"genre"`
	Description   string    `gorm:"type:text" json:"description"`
	Language      string    `gorm:"size:50;index" json:"language"`
	CoverImage    string    `gorm:"size:2048" json:"coverImage"`
	Rating        *float64  `json:"rating,omitempty"`
	PublishedYear int       `json:"publishedYear"`
	Pages         int       `json:"pages"`
	Featured      bool      `gorm:"default:false" json:"featured"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (b *Book) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
