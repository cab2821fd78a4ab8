package services

import (
	"errors"
	"strings"

	"github.com/bookverse/bookverse-backend/internal/apperr"
	"github.com/bookverse/bookverse-backend/internal/dto"
	"github.com/bookverse/bookverse-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultPage  = 1
	defaultLimit = 12
)

// BookFilter holds the independently optional listing predicates. Provided
// fields combine with AND; pointer fields distinguish "absent" from a zero
// value.
type BookFilter struct {
	Search        string
	Genre         string
	Language      string
	MinRating     *float64
	PublishedFrom *int
	PublishedTo   *int
	MinPages      *int
	MaxPages      *int
	Featured      *bool
}

// BookPage is one page of catalog results plus the pagination totals the
// client renders.
type BookPage struct {
	Books       []models.Book
	CurrentPage int
	TotalPages  int
	TotalCount  int64
}

type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// ListBooks returns the requested page of the filtered catalog, newest
// first. A page past the end yields an empty slice, not an error.
func (s *CatalogService) ListBooks(filter BookFilter, page, limit int) (*BookPage, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	query := s.applyFilter(s.db.Model(&models.Book{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperr.Store("Failed to fetch books", err)
	}

	var books []models.Book
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&books).Error
	if err != nil {
		return nil, apperr.Store("Failed to fetch books", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &BookPage{
		Books:       books,
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  total,
	}, nil
}

func (s *CatalogService) applyFilter(query *gorm.DB, f BookFilter) *gorm.DB {
	if f.Search != "" {
		pattern := "%" + escapeLike(strings.ToLower(f.Search)) + "%"
		query = query.Where(`LOWER(title) LIKE ? ESCAPE '\' OR LOWER(author) LIKE ? ESCAPE '\'`, pattern, pattern)
	}
	if f.Genre != "" {
		query = query.Where("genre = ?", f.Genre)
	}
	if f.Language != "" {
		query = query.Where("language = ?", f.Language)
	}
	if f.MinRating != nil {
		query = query.Where("rating >= ?", *f.MinRating)
	}
	if f.PublishedFrom != nil {
		query = query.Where("published_year >= ?", *f.PublishedFrom)
	}
	if f.PublishedTo != nil {
		query = query.Where("published_year <= ?", *f.PublishedTo)
	}
	if f.MinPages != nil {
		query = query.Where("pages >= ?", *f.MinPages)
	}
	if f.MaxPages != nil {
		query = query.Where("pages <= ?", *f.MaxPages)
	}
	if f.Featured != nil {
		query = query.Where("featured = ?", *f.Featured)
	}
	return query
}

// likeEscaper neutralizes LIKE metacharacters so search terms match
// literally: "100%" must not match "1000".
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// GetBook fetches a single record. A malformed id resolves to not-found.
func (s *CatalogService) GetBook(id string) (*models.Book, error) {
	bookID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.NotFound("Book not found")
	}

	var book models.Book
	err = s.db.First(&book, "id = ?", bookID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Book not found")
	}
	if err != nil {
		return nil, apperr.Store("Error fetching book", err)
	}

	return &book, nil
}

// AddBook persists a new catalog entry. Title and author are required.
func (s *CatalogService) AddBook(req *dto.CreateBookRequest) (*models.Book, error) {
	if req.Title == "" || req.Author == "" {
		return nil, apperr.Validation("Title and Author are required")
	}

	book := models.Book{
		ID:            uuid.New(),
		Title:         req.Title,
		Author:        req.Author,
		Genre:         req.Genre,
		Description:   req.Description,
		Language:      req.Language,
		CoverImage:    req.CoverImage,
		Rating:        req.Rating,
		PublishedYear: req.PublishedYear,
		Pages:         req.Pages,
		Featured:      req.Featured,
	}

	if err := s.db.Create(&book).Error; err != nil {
		return nil, apperr.Store("Error adding book", err)
	}

	return &book, nil
}

// DeleteBook permanently removes a book and its reviews in one
// transaction, so reviews never orphan against the catalog.
func (s *CatalogService) DeleteBook(id string) error {
	bookID, err := uuid.Parse(id)
	if err != nil {
		return apperr.NotFound("Book not found")
	}

	var book models.Book
	err = s.db.First(&book, "id = ?", bookID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Book not found")
	}
	if err != nil {
		return apperr.Store("Error deleting book", err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", bookID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&book).Error
	})
	if err != nil {
		return apperr.Store("Error deleting book", err)
	}

	return nil
}
