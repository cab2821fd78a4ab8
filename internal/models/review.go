package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review links a user to a book with a rating and comment. UserID is a weak
// reference: the reviewer may no longer exist when the review is read, in
// which case listing falls back to an anonymous display name.
type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"userId"`
	BookID    uuid.UUID `gorm:"type:uuid;not null;index" json:"book"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"type:text;not null" json:"comment"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
