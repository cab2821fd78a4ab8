package dto

type CreateBookRequest struct {
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	Genre         string   `json:"genre"`
	Description   string   `json:"description"`
	Language      string   `json:"language"`
	CoverImage    string   `json:"coverImage"`
	Rating        *float64 `json:"rating"`
	PublishedYear int      `json:"publishedYear"`
	Pages         int      `json:"pages"`
	Featured      bool     `json:"featured"`
}
