package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HomeHandler serves the static marketing homepage.
type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

func (h *HomeHandler) Index(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>BookVerse - Your Book Review Platform</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;max-width:800px;margin:0 auto;padding:20px;color:#333}h1{color:#1a1a1a}h2{color:#444;margin-top:30px}a{color:#b45309}</style>
</head><body>
<h1>BookVerse</h1>
<p>Discover your next favorite book. Browse a curated catalog, read honest reviews from fellow readers, and share your own.</p>
<h2>Browse the Catalog</h2>
<p>Filter by genre, language, rating, era and length. Featured picks are refreshed regularly.</p>
<h2>Write Reviews</h2>
<p>Create an account, verify your email and start rating the books you love (or don't).</p>
<h2>API</h2>
<p>The catalog is available at <a href="/api/books">/api/books</a>.</p>
</body></html>`)
}
