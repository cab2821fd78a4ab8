package handlers

import (
	"github.com/bookverse/bookverse-backend/internal/dto"
	"github.com/bookverse/bookverse-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ReviewHandler struct {
	reviews *services.ReviewService
}

func NewReviewHandler(reviews *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

func (h *ReviewHandler) ListByBook(c *fiber.Ctx) error {
	reviews, err := h.reviews.ListForBook(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"reviews": reviews,
	})
}

func (h *ReviewHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	review, err := h.reviews.Submit(&req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Review submitted",
		"review":  review,
	})
}
