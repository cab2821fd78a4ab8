// Package seed performs boot-time population: the starter catalog and
// admin promotion from the allow-list.
package seed

import (
	"log/slog"

	"github.com/bookverse/bookverse-backend/internal/models"
	"gorm.io/gorm"
)

type seedBook struct {
	Title         string
	Author        string
	Genre         string
	Rating        float64
	PublishedYear int
	CoverImage    string
	Language      string
	Pages         int
	Description   string
	Featured      bool
}

var starterBooks = []seedBook{
	{Title: "The Silent Patient", Author: "Alex Michaelides", Genre: "Thriller", Rating: 4.4, PublishedYear: 2019, CoverImage: "https://images.unsplash.com/photo-1512820790803-83ca734da794", Language: "English", Pages: 336, Description: "A gripping thriller about a woman's act of violence and the therapist uncovering her motive.", Featured: true},
	{Title: "Atomic Habits", Author: "James Clear", Genre: "Self-Help", Rating: 4.8, PublishedYear: 2018, CoverImage: "https://images.unsplash.com/photo-1524995997946-a1c2e315a42f", Language: "English", Pages: 320, Description: "A practical guide to building good habits and breaking bad ones.", Featured: true},
	{Title: "1984", Author: "George Orwell", Genre: "Fiction", Rating: 4.6, PublishedYear: 1949, CoverImage: "https://images.unsplash.com/photo-1495446815901-a7297e633e8d", Language: "English", Pages: 328, Description: "A dystopian novel depicting a totalitarian regime with constant surveillance.", Featured: false},
	{Title: "The Alchemist", Author: "Paulo Coelho", Genre: "Fiction", Rating: 4.3, PublishedYear: 1988, CoverImage: "https://images.unsplash.com/photo-1544717305-2782549b5136", Language: "English", Pages: 208, Description: "A mystical story of a shepherd boy's journey to realize his personal legend.", Featured: true},
	{Title: "Sapiens", Author: "Yuval Noah Harari", Genre: "Non-Fiction", Rating: 4.7, PublishedYear: 2011, CoverImage: "https://images.unsplash.com/photo-1516979187457-637abb4f9353", Language: "English", Pages: 464, Description: "A brief history of humankind from the Stone Age to the modern day.", Featured: false},
	{Title: "To Kill a Mockingbird", Author: "Harper Lee", Genre: "Classic", Rating: 4.9, PublishedYear: 1960, CoverImage: "https://images.unsplash.com/photo-1544935207-cdbc2dd60fa2", Language: "English", Pages: 281, Description: "A novel on racial injustice and childhood innocence in the Deep South.", Featured: true},
	{Title: "The Power of Now", Author: "Eckhart Tolle", Genre: "Spirituality", Rating: 4.5, PublishedYear: 1997, CoverImage: "https://images.unsplash.com/photo-1519681393784-d120267933ba", Language: "English", Pages: 236, Description: "A guide to spiritual enlightenment and living in the present moment.", Featured: false},
	{Title: "Rich Dad Poor Dad", Author: "Robert T. Kiyosaki", Genre: "Finance", Rating: 4.4, PublishedYear: 1997, CoverImage: "https://images.unsplash.com/photo-1529070538774-1843cb3265df", Language: "English", Pages: 207, Description: "What the rich teach their kids about money that the poor and middle class do not.", Featured: false},
	{Title: "The Subtle Art of Not Giving a F*ck", Author: "Mark Manson", Genre: "Self-Help", Rating: 4.2, PublishedYear: 2016, CoverImage: "https://images.unsplash.com/photo-1520975918310-52eeb3e0d8d4", Language: "English", Pages: 224, Description: "A counterintuitive approach to living a good life.", Featured: false},
	{Title: "The Book Thief", Author: "Markus Zusak", Genre: "Historical Fiction", Rating: 4.6, PublishedYear: 2005, CoverImage: "https://images.unsplash.com/photo-1526304640581-d334cdbbf45e", Language: "English", Pages: 552, Description: "A young girl finds solace in books during WWII in Nazi Germany.", Featured: true},
	{Title: "Harry Potter and the Sorcerer's Stone", Author: "J.K. Rowling", Genre: "Fantasy", Rating: 4.9, PublishedYear: 1997, CoverImage: "https://images.unsplash.com/photo-1589987601171-dc9b0db4a8d2", Language: "English", Pages: 309, Description: "A young wizard discovers his magical heritage and destiny at Hogwarts.", Featured: true},
	{Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Genre: "Classic", Rating: 4.2, PublishedYear: 1925, CoverImage: "https://images.unsplash.com/photo-1528209392026-c4d892f7bc6b", Language: "English", Pages: 180, Description: "A story of wealth, love, and the American Dream set in the 1920s.", Featured: false},
	{Title: "Ikigai", Author: "Héctor García", Genre: "Self-Help", Rating: 4.3, PublishedYear: 2016, CoverImage: "https://images.unsplash.com/photo-1507842217343-583bb7270b66", Language: "English", Pages: 208, Description: "The Japanese secret to a long and happy life.", Featured: false},
	{Title: "Think and Grow Rich", Author: "Napoleon Hill", Genre: "Motivational", Rating: 4.5, PublishedYear: 1937, CoverImage: "https://images.unsplash.com/photo-1516979187457-637abb4f9353", Language: "English", Pages: 238, Description: "A classic book on achieving success through personal beliefs and persistence.", Featured: false},
	{Title: "The Kite Runner", Author: "Khaled Hosseini", Genre: "Fiction", Rating: 4.8, PublishedYear: 2003, CoverImage: "https://images.unsplash.com/photo-1553531384-cc64ac30f6a6", Language: "English", Pages: 371, Description: "A heartbreaking story of friendship and redemption set in Afghanistan.", Featured: true},
}

// Catalog inserts the starter books when the books table is empty. It is a
// no-op on an already-populated catalog, so it is safe to run on every boot.
func Catalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Book{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	books := make([]models.Book, 0, len(starterBooks))
	for _, b := range starterBooks {
		rating := b.Rating
		books = append(books, models.Book{
			Title:         b.Title,
			Author:        b.Author,
			Genre:         b.Genre,
			Rating:        &rating,
			PublishedYear: b.PublishedYear,
			CoverImage:    b.CoverImage,
			Language:      b.Language,
			Pages:         b.Pages,
			Description:   b.Description,
			Featured:      b.Featured,
		})
	}

	if err := db.Create(&books).Error; err != nil {
		return err
	}

	slog.Info("catalog seeded", "books", len(books))
	return nil
}
