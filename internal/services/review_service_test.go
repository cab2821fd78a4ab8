package services

import (
	"testing"
	"time"

	"github.com/bookverse/bookverse-backend/internal/apperr"
	"github.com/bookverse/bookverse-backend/internal/dto"
	"github.com/bookverse/bookverse-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createReview(t *testing.T, db *gorm.DB, userID, bookID uuid.UUID, comment string, createdAt time.Time) {
	t.Helper()
	review := models.Review{
		ID:        uuid.New(),
		UserID:    userID,
		BookID:    bookID,
		Rating:    4,
		Comment:   comment,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(&review).Error)
}

func TestListForBookNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	book := createBook(t, db, models.Book{Title: "Dune", Author: "Frank Herbert"}, time.Now())
	user := models.User{ID: uuid.New(), Name: "Ann", Email: "ann@x.com", PasswordHash: "h"}
	require.NoError(t, db.Create(&user).Error)

	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	createReview(t, db, user.ID, book.ID, "first", base)
	createReview(t, db, user.ID, book.ID, "second", base.Add(time.Hour))
	createReview(t, db, user.ID, book.ID, "third", base.Add(2*time.Hour))

	reviews, err := svc.ListForBook(book.ID.String())
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	assert.Equal(t, "third", reviews[0].Comment)
	assert.Equal(t, "second", reviews[1].Comment)
	assert.Equal(t, "first", reviews[2].Comment)
	for _, r := range reviews {
		assert.Equal(t, "Ann", r.UserName)
	}
}

func TestListForBookAnonymousFallback(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	book := createBook(t, db, models.Book{Title: "Dune", Author: "Frank Herbert"}, time.Now())
	user := models.User{ID: uuid.New(), Name: "Ann", Email: "ann@x.com", PasswordHash: "h"}
	require.NoError(t, db.Create(&user).Error)

	ghost := uuid.New() // reviewer that never existed
	createReview(t, db, user.ID, book.ID, "known", time.Now())
	createReview(t, db, ghost, book.ID, "orphan", time.Now().Add(time.Hour))

	reviews, err := svc.ListForBook(book.ID.String())
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "Anonymous", reviews[0].UserName)
	assert.Equal(t, "Ann", reviews[1].UserName)
}

func TestListForBookValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	_, err := svc.ListForBook("")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.ListForBook("not-a-uuid")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	// A valid id with no reviews is fine and returns an empty list.
	reviews, err := svc.ListForBook(uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestSubmitReview(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	book := createBook(t, db, models.Book{Title: "Dune", Author: "Frank Herbert"}, time.Now())
	userID := uuid.NewString()

	review, err := svc.Submit(&dto.SubmitReviewRequest{
		UserID: userID, Book: book.ID.String(), Rating: 5, Comment: "great",
	})
	require.NoError(t, err)
	assert.Equal(t, book.ID, review.BookID)
	assert.Equal(t, 5, review.Rating)

	// Same user may review the same book again.
	_, err = svc.Submit(&dto.SubmitReviewRequest{
		UserID: userID, Book: book.ID.String(), Rating: 1, Comment: "changed my mind",
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Review{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestSubmitReviewValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)
	book := createBook(t, db, models.Book{Title: "Dune", Author: "Frank Herbert"}, time.Now())

	for _, req := range []*dto.SubmitReviewRequest{
		{Book: book.ID.String(), Rating: 5, Comment: "x"},
		{UserID: uuid.NewString(), Rating: 5, Comment: "x"},
		{UserID: uuid.NewString(), Book: book.ID.String(), Comment: "x"},
		{UserID: uuid.NewString(), Book: book.ID.String(), Rating: 5},
		{UserID: "junk", Book: book.ID.String(), Rating: 5, Comment: "x"},
	} {
		_, err := svc.Submit(req)
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	}

	// Unknown book is rejected at write time.
	_, err := svc.Submit(&dto.SubmitReviewRequest{
		UserID: uuid.NewString(), Book: uuid.NewString(), Rating: 5, Comment: "x",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
