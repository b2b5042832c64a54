package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/shelfmarkapp/shelfmark-server/internal/apperr"
	"github.com/shelfmarkapp/shelfmark-server/internal/domain"
	"github.com/shelfmarkapp/shelfmark-server/internal/id"
)

const bookPrefix = "book:"

// CreateBook assigns a fresh identifier to book and persists it. The input's
// ID field is ignored; the returned record carries the assigned one.
func (s *Store) CreateBook(ctx context.Context, book domain.Book) (*domain.Book, error) {
	bookID, err := id.Generate()
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	book.ID = bookID

	if err := s.set([]byte(bookPrefix+book.ID), &book); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "book created", "id", book.ID, "title", book.Title)
	}
	return &book, nil
}

// GetBook retrieves a book by ID.
func (s *Store) GetBook(ctx context.Context, bookID string) (*domain.Book, error) {
	var book domain.Book
	err := s.get([]byte(bookPrefix+bookID), &book)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, apperr.NotFound("Book not found")
		}
		return nil, apperr.ErrStorageUnavailable.WithCause(fmt.Errorf("get book: %w", err))
	}
	return &book, nil
}

// ListBooks returns every book in the store, in key order. The store does
// not promise insertion order; callers must not rely on one.
//
// A read failure is surfaced as a storage error, never flattened to an
// empty result: "no matches" and "store down" are different answers.
func (s *Store) ListBooks(ctx context.Context) ([]domain.Book, error) {
	var books []domain.Book
	prefix := []byte(bookPrefix)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var book domain.Book
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &book)
			})
			if err != nil {
				return fmt.Errorf("unmarshal book %s: %w", it.Item().Key(), err)
			}
			books = append(books, book)
		}
		return nil
	})
	if err != nil {
		return nil, apperr.ErrStorageUnavailable.WithCause(fmt.Errorf("list books: %w", err))
	}
	return books, nil
}

// UpdateBook saves the full record under its existing ID.
func (s *Store) UpdateBook(ctx context.Context, book domain.Book) (*domain.Book, error) {
	key := []byte(bookPrefix + book.ID)

	exists, err := s.exists(key)
	if err != nil {
		return nil, apperr.ErrStorageUnavailable.WithCause(fmt.Errorf("update book: %w", err))
	}
	if !exists {
		return nil, apperr.NotFound("Book not found")
	}

	if err := s.set(key, &book); err != nil {
		return nil, fmt.Errorf("update book: %w", err)
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "book updated", "id", book.ID, "title", book.Title)
	}
	return &book, nil
}

// DeleteBook removes a book by ID. Deletion is immediate and irreversible.
func (s *Store) DeleteBook(ctx context.Context, bookID string) error {
	key := []byte(bookPrefix + bookID)

	exists, err := s.exists(key)
	if err != nil {
		return apperr.ErrStorageUnavailable.WithCause(fmt.Errorf("delete book: %w", err))
	}
	if !exists {
		return apperr.NotFound("Book not found")
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "book deleted", "id", bookID)
	}
	return nil
}
