// Package search implements the catalog's search and pagination engine.
//
// Matching is plain case-insensitive substring containment on title or
// author. There is no tokenizing, ranking, or stemming; records keep the
// order the store returned them in.
package search

import (
	"strings"

	"github.com/shelfmarkapp/shelfmark-server/internal/domain"
)

// DefaultLimit is the page size used when the client supplies none.
const DefaultLimit = 10

// MaxLimit caps the page size to keep response bodies bounded.
const MaxLimit = 100

// Search filters records by query and slices out the requested page.
// It returns the page contents and the total page count for the match set.
// Both page and limit must be >= 1; callers normalize them first.
//
// Concatenating pages 1..totalPages reconstructs the full match set exactly,
// assuming a stable snapshot of records.
func Search(records []domain.Book, query string, page, limit int) ([]domain.Book, int) {
	var matches []domain.Book
	if query == "" {
		matches = records
	} else {
		matches = make([]domain.Book, 0, len(records))
		for _, b := range records {
			if Match(b.Title, b.Author, query) {
				matches = append(matches, b)
			}
		}
	}

	start, end := Page(len(matches), page, limit)
	return matches[start:end], TotalPages(len(matches), limit)
}

// Match reports whether a record with the given title and author satisfies
// the query. The empty query matches everything.
func Match(title, author, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(title), q) ||
		strings.Contains(strings.ToLower(author), q)
}

// TotalPages returns the number of pages needed for matchCount records at
// the given page size. Zero matches means zero pages.
func TotalPages(matchCount, limit int) int {
	if matchCount == 0 {
		return 0
	}
	return (matchCount + limit - 1) / limit
}

// Page returns the half-open slice bounds [start, end) for the requested
// page. Pages beyond the match set collapse to an empty range; that is the
// accepted behavior, not an error.
func Page(matchCount, page, limit int) (start, end int) {
	start = (page - 1) * limit
	if start >= matchCount {
		return matchCount, matchCount
	}
	end = start + limit
	if end > matchCount {
		end = matchCount
	}
	return start, end
}
