package handlers

import (
	"strconv"

	"github.com/bookverse/bookverse-backend/internal/dto"
	"github.com/bookverse/bookverse-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type BookHandler struct {
	catalog *services.CatalogService
}

func NewBookHandler(catalog *services.CatalogService) *BookHandler {
	return &BookHandler{catalog: catalog}
}

func (h *BookHandler) List(c *fiber.Ctx) error {
	filter := parseBookFilter(c)
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 12)

	result, err := h.catalog.ListBooks(filter, page, limit)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"books":       result.Books,
		"currentPage": result.CurrentPage,
		"totalPages":  result.TotalPages,
		"totalCount":  result.TotalCount,
	})
}

// parseBookFilter builds the typed filter from the query string, leaving
// absent parameters nil so the service applies no predicate for them.
func parseBookFilter(c *fiber.Ctx) services.BookFilter {
	filter := services.BookFilter{
		Search:   c.Query("search"),
		Genre:    c.Query("genre"),
		Language: c.Query("language"),
	}

	if raw := c.Query("rating"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinRating = &v
		}
	}
	if raw := c.Query("publishedFrom"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.PublishedFrom = &v
		}
	}
	if raw := c.Query("publishedTo"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.PublishedTo = &v
		}
	}
	if raw := c.Query("minPages"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.MinPages = &v
		}
	}
	if raw := c.Query("maxPages"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.MaxPages = &v
		}
	}
	if raw := c.Query("featured"); raw == "true" || raw == "false" {
		v := raw == "true"
		filter.Featured = &v
	}

	return filter
}

func (h *BookHandler) Get(c *fiber.Ctx) error {
	book, err := h.catalog.GetBook(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"book":    book,
	})
}

func (h *BookHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateBookRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	book, err := h.catalog.AddBook(&req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Book added successfully",
		"book":    book,
	})
}

func (h *BookHandler) Delete(c *fiber.Ctx) error {
	if err := h.catalog.DeleteBook(c.Params("id")); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Book deleted successfully",
	})
}
