// Package service provides the business logic layer for the Shelfmark catalog.
package service

import (
	"context"
	"log/slog"

	"github.com/shelfmarkapp/shelfmark-server/internal/apperr"
	"github.com/shelfmarkapp/shelfmark-server/internal/domain"
	"github.com/shelfmarkapp/shelfmark-server/internal/id"
	"github.com/shelfmarkapp/shelfmark-server/internal/sanitize"
	"github.com/shelfmarkapp/shelfmark-server/internal/search"
	"github.com/shelfmarkapp/shelfmark-server/internal/store"
	"github.com/shelfmarkapp/shelfmark-server/internal/validation"
)

// CreateBookInput is the payload for creating a book. All fields are
// required; Quantity is a pointer so that an explicit zero survives decoding.
type CreateBookInput struct {
	Title       string `json:"title" validate:"required,max=100"`
	Author      string `json:"author" validate:"required,max=50"`
	Description string `json:"description" validate:"required,max=500"`
	Quantity    *int   `json:"quantity" validate:"required,gte=0"`
}

// UpdateBookInput is the payload for a partial update. Nil fields were not
// supplied and leave the stored value untouched.
type UpdateBookInput struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=100"`
	Author      *string `json:"author" validate:"omitempty,min=1,max=50"`
	Description *string `json:"description" validate:"omitempty,min=1,max=500"`
	Quantity    *int    `json:"quantity" validate:"omitempty,gte=0"`
}

// BookList is the result of a list request: one page of the match set plus
// the page count for the whole match set.
type BookList struct {
	Books      []domain.Book `json:"books"`
	TotalPages int           `json:"totalPages"`
}

// BookService orchestrates catalog operations: validation and sanitization
// in front, the store behind.
type BookService struct {
	store     *store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewBookService creates a new book service.
func NewBookService(store *store.Store, validator *validation.Validator, logger *slog.Logger) *BookService {
	return &BookService{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

// List returns the requested page of books matching query, and the total
// page count. The query is escaped before it is used as a filter predicate,
// the same way stored text was escaped on the way in, so a query typed
// against rendered records still matches. page and limit are assumed
// normalized (>= 1) by the caller.
//
// The read-filter-slice sequence is not atomic with respect to concurrent
// writes; a record created or deleted mid-request may or may not appear.
func (s *BookService) List(ctx context.Context, query string, page, limit int) (*BookList, error) {
	books, err := s.store.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	pageOf, totalPages := search.Search(books, sanitize.Escape(query), page, limit)
	if pageOf == nil {
		pageOf = []domain.Book{}
	}

	if s.logger != nil {
		s.logger.DebugContext(ctx, "list books",
			"query", query, "page", page, "limit", limit,
			"returned", len(pageOf), "total_pages", totalPages)
	}
	return &BookList{Books: pageOf, TotalPages: totalPages}, nil
}

// Get retrieves a single book by ID.
func (s *BookService) Get(ctx context.Context, bookID string) (*domain.Book, error) {
	if !id.IsValid(bookID) {
		return nil, apperr.InvalidID("Invalid book ID")
	}
	return s.store.GetBook(ctx, bookID)
}

// Create validates and sanitizes the input, then persists a new record.
// The store assigns the identifier.
func (s *BookService) Create(ctx context.Context, in CreateBookInput) (*domain.Book, error) {
	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	book := domain.Book{
		Title:       sanitize.Escape(in.Title),
		Author:      sanitize.Escape(in.Author),
		Description: sanitize.Escape(in.Description),
		Quantity:    *in.Quantity,
	}
	return s.store.CreateBook(ctx, book)
}

// Update applies a partial update: only supplied fields are validated,
// escaped, and written; omitted fields retain their prior values.
func (s *BookService) Update(ctx context.Context, bookID string, in UpdateBookInput) (*domain.Book, error) {
	if !id.IsValid(bookID) {
		return nil, apperr.InvalidID("Invalid book ID")
	}
	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	current, err := s.store.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	update := domain.BookUpdate{
		Title:       escapePtr(in.Title),
		Author:      escapePtr(in.Author),
		Description: escapePtr(in.Description),
		Quantity:    in.Quantity,
	}

	// An update carrying no fields changes nothing; skip the write.
	if update.IsEmpty() {
		return current, nil
	}

	update.Apply(current)

	return s.store.UpdateBook(ctx, *current)
}

// Delete removes a book by ID.
func (s *BookService) Delete(ctx context.Context, bookID string) error {
	if !id.IsValid(bookID) {
		return apperr.InvalidID("Invalid book ID")
	}
	return s.store.DeleteBook(ctx, bookID)
}

func escapePtr(s *string) *string {
	if s == nil {
		return nil
	}
	escaped := sanitize.Escape(*s)
	return &escaped
}
