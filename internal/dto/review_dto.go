package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitReviewRequest struct {
	UserID  string `json:"userId"`
	Book    string `json:"book"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ReviewResponse is a review enriched with the reviewer's display name,
// resolved at read time. Deleted reviewers show as "Anonymous".
type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	BookID    uuid.UUID `json:"book"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	UserName  string    `json:"userName"`
	CreatedAt time.Time `json:"created_at"`
}
