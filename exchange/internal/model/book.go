package model

import "github.com/google/uuid"

// CatalogBook is book metadata as the external catalog describes it.
type CatalogBook struct {
	ExternalID    string  `json:"google_id"`
	Title         string  `json:"title"`
	Authors       *string `json:"authors"`
	Publisher     *string `json:"publisher"`
	PublishedDate *string `json:"published_date"`
	Description   *string `json:"description"`
	ImageURL      *string `json:"image_url"`
	PageCount     *int32  `json:"page_count"`
}

// Book is a cached catalog book with its internal id.
type Book struct {
	ID uuid.UUID `json:"id"`
	CatalogBook
}

type UserBooks struct {
	Offered []Book `json:"offered_books"`
	Wanted  []Book `json:"wanted_books"`
}

type List string

const (
	ListOffered List = "offered"
	ListWanted  List = "wanted"
)

// ListEntry is one row of the offered or wanted relation.
type ListEntry struct {
	BookID uuid.UUID `json:"book_id"`
	UserID uuid.UUID `json:"user_id"`
}

type AddBookRequest struct {
	ExternalID string `json:"google_id" validate:"required"`
}

type SearchRequest struct {
	Query string `json:"query" validate:"required"`
}
