package services

import (
	"errors"

	"github.com/bookverse/bookverse-backend/internal/apperr"
	"github.com/bookverse/bookverse-backend/internal/dto"
	"github.com/bookverse/bookverse-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// anonymousReviewer is the display name used when a review's user no
// longer exists.
const anonymousReviewer = "Anonymous"

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// ListForBook returns the book's reviews newest first, each enriched with
// the reviewer's display name. The name lookup is an explicit second query
// against the users table, not an ORM association.
func (s *ReviewService) ListForBook(bookID string) ([]dto.ReviewResponse, error) {
	if bookID == "" {
		return nil, apperr.Validation("Book ID is required")
	}
	id, err := uuid.Parse(bookID)
	if err != nil {
		return nil, apperr.Validation("Book ID is required")
	}

	var reviews []models.Review
	err = s.db.Where("book_id = ?", id).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, apperr.Store("Error fetching reviews", err)
	}

	names, err := s.reviewerNames(reviews)
	if err != nil {
		return nil, apperr.Store("Error fetching reviews", err)
	}

	out := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		name, ok := names[r.UserID]
		if !ok {
			name = anonymousReviewer
		}
		out = append(out, dto.ReviewResponse{
			ID:        r.ID,
			UserID:    r.UserID,
			BookID:    r.BookID,
			Rating:    r.Rating,
			Comment:   r.Comment,
			UserName:  name,
			CreatedAt: r.CreatedAt,
		})
	}

	return out, nil
}

func (s *ReviewService) reviewerNames(reviews []models.Review) (map[uuid.UUID]string, error) {
	if len(reviews) == 0 {
		return nil, nil
	}

	seen := make(map[uuid.UUID]bool, len(reviews))
	ids := make([]uuid.UUID, 0, len(reviews))
	for _, r := range reviews {
		if !seen[r.UserID] {
			seen[r.UserID] = true
			ids = append(ids, r.UserID)
		}
	}

	var users []models.User
	if err := s.db.Select("id", "name").Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return names, nil
}

// Submit persists a new review. All four fields are required and the
// target book must exist; the user reference stays weak by design, since
// submission carries no authenticated identity.
func (s *ReviewService) Submit(req *dto.SubmitReviewRequest) (*models.Review, error) {
	if req.UserID == "" || req.Book == "" || req.Rating == 0 || req.Comment == "" {
		return nil, apperr.Validation("All fields are required")
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, apperr.Validation("All fields are required")
	}
	bookID, err := uuid.Parse(req.Book)
	if err != nil {
		return nil, apperr.Validation("All fields are required")
	}

	var book models.Book
	err = s.db.First(&book, "id = ?", bookID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Book not found")
	}
	if err != nil {
		return nil, apperr.Store("Failed to submit review", err)
	}

	review := models.Review{
		ID:      uuid.New(),
		UserID:  userID,
		BookID:  bookID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if err := s.db.Create(&review).Error; err != nil {
		return nil, apperr.Store("Failed to submit review", err)
	}

	return &review, nil
}
