package api

import (
	"encoding/json/v2"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfmarkapp/shelfmark-server/internal/domain"
	"github.com/shelfmarkapp/shelfmark-server/internal/id"
	"github.com/shelfmarkapp/shelfmark-server/internal/service"
)

// doJSON sends a request with an optional JSON body through the full router.
func doJSON(server *Server, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	return w
}

func createTestBook(t *testing.T, server *Server, title, author string, quantity int) domain.Book {
	t.Helper()

	body := fmt.Sprintf(`{"title":%q,"author":%q,"description":"A test description","quantity":%d}`,
		title, author, quantity)
	w := doJSON(server, http.MethodPost, "/api/books/", body)
	require.Equal(t, http.StatusCreated, w.Code, "unexpected body: %s", w.Body.String())

	var book domain.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
	return book
}

func TestCreateBook(t *testing.T) {
	server, cleanup := setupTestServer(t, false)
	defer cleanup()

	w := doJSON(server, http.MethodPost, "/api/books/",
		`{"title":"Dune","author":"Frank Herbert","description":"Desert planet epic","quantity":5}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var book domain.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
	assert.True(t, id.IsValid(book.ID))
	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, "Frank Herbert", book.Author)
	assert.Equal(t, 5, book.Quantity)
}

func TestCreateBook_SanitizesFields(t *testing.T) {
	server, cleanup := setupTestServer(t, false)
	defer cleanup()

	w := doJSON(server, http.MethodPost, "/api/books/",
		`{"title":"<script>alert(1)</script>","author":"O'Brien","description":"a & b","quantity":1}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var book domain.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
	assert.Equal(t, "&lt;script&gt;alert(1)&lt;&#x2F;script&gt;", book.Title)
	assert.Equal(t, "O&#x27;Brien", book.Author)
	assert.Equal(t, "a &amp; b", book.Description)
}

func TestCreateBook_NegativeQuantity(t *testing.T) {
	server, cleanup := setupTestServer(t, false)
	defer cleanup()

	w := doJSON(server, http.MethodPost, "/api/books/",
		`{"title":"Dune","author":"Frank Herbert","description":"Desert planet epic","quantity":-1}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Nothing was persisted.
	list := listBooks(t, server, "/api/books/")
	assert.Empty(t, list.Books)
}

func TestCreateBook_MissingFields(t *testing.T) {
	server, cleanup := setupTestServer(t, false)
	defer cleanup()

	w := doJSON(server, http.MethodPost, "/api/books/", `{"title":"Dune"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBook_MalformedBody(t *testing.T) {
	server, cleanup := setupTestServer(t, false)
	defer cleanup()

	w := doJSON(server, http.MethodPost, "/api/books/", `{"title": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestGetBook(t *testing.T) {
	server, cleanup := setupTestServer(t, false)
	defer cleanup()

	created := createTestBook(t, server, "Dune", "Frank Herbert", 5)

	w := doJSON(server, http.MethodGet, "/api/books/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	var book domain.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
	assert.Equal(t, created, book)
}

func TestGetBook_InvalidID(t *testing.T) {
	server, cleanup := setupTestServer(t, false)
	defer cleanup()

	w := doJSON(server, http.MethodGet, "/api/books/not-an-id", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid book ID"}`, w.Body.String())
}

func TestGetBook_NotFound(t *testing.T) {
	server, cleanup := setupTestServer(t, false)
	defer cleanup()

	w := doJSON(server, http.MethodGet, "/api/books/"+id.MustGenerate(), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Book not found"}`, w.Body.String())
}

func TestUpdateBook_Partial(t *testing.T) {
	server, cleanup := setupTestServer(t, false)
	defer cleanup()

	created := createTestBook(t, server, "Dune", "Frank Herbert", 5)

	w := doJSON(server, http.MethodPut, "/api/books/"+created.ID, `{"quantity":0}`)
	require.Equal(t, http.StatusOK, w.Code)

	var book domain.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, "Frank Herbert", book.Author)
	assert.Equal(t, 0, book.Quantity)
}

func TestUpdateBook_InvalidID(t *testing.T) {
	server, cleanup := setupTestServer(t, false)
	defer cleanup()

	w := doJSON(server, http.MethodPut, "/api/books/xyz", `{"quantity":1}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid book ID"}`, w.Body.String())
}

func TestUpdateBook_NotFound(t *testing.T) {
	server, cleanup := setupTestServer(t, false)
	defer cleanup()

	w := doJSON(server, http.MethodPut, "/api/books/"+id.MustGenerate(), `{"quantity":1}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Book not found"}`, w.Body.String())
}

func TestUpdateBook_EmptyTitleRejected(t *testing.T) {
	server, cleanup := setupTestServer(t, false)
	defer cleanup()

	created := createTestBook(t, server, "Dune", "Frank Herbert", 5)

	w := doJSON(server, http.MethodPut, "/api/books/"+created.ID, `{"title":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The record is unchanged.
	get := doJSON(server, http.MethodGet, "/api/books/"+created.ID, "")
	var book domain.Book
	require.NoError(t, json.Unmarshal(get.Body.Bytes(), &book))
	assert.Equal(t, "Dune", book.Title)
}

func TestDeleteBook(t *testing.T) {
	server, cleanup := setupTestServer(t, false)
	defer cleanup()

	created := createTestBook(t, server, "Dune", "Frank Herbert", 5)

	w := doJSON(server, http.MethodDelete, "/api/books/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	get := doJSON(server, http.MethodGet, "/api/books/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, get.Code)
}

func TestDeleteBook_NotFound(t *testing.T) {
	server, cleanup := setupTestServer(t, false)
	defer cleanup()

	w := doJSON(server, http.MethodDelete, "/api/books/"+id.MustGenerate(), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Book not found"}`, w.Body.String())
}

func listBooks(t *testing.T, server *Server, target string) service.BookList {
	t.Helper()

	w := doJSON(server, http.MethodGet, target, "")
	require.Equal(t, http.StatusOK, w.Code, "unexpected body: %s", w.Body.String())

	var list service.BookList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	return list
}

func TestListBooks_Empty(t *testing.T) {
	server, cleanup := setupTestServer(t, false)
	defer cleanup()

	w := doJSON(server, http.MethodGet, "/api/books/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"books":[],"totalPages":0}`, w.Body.String())
}

func TestListBooks_DefaultPageSize(t *testing.T) {
	server, cleanup := setupTestServer(t, false)
	defer cleanup()

	for i := 0; i < 12; i++ {
		createTestBook(t, server, fmt.Sprintf("Book %02d", i), "Author", 1)
	}

	list := listBooks(t, server, "/api/books/")
	assert.Len(t, list.Books, 10)
	assert.Equal(t, 2, list.TotalPages)

	second := listBooks(t, server, "/api/books/?_page=2")
	assert.Len(t, second.Books, 2)
	assert.Equal(t, 2, second.TotalPages)
}

func TestListBooks_Search(t *testing.T) {
	server, cleanup := setupTestServer(t, false)
	defer cleanup()

	createTestBook(t, server, "The Go Programming Language", "Donovan", 3)
	createTestBook(t, server, "Effective Java", "Bloch", 2)
	createTestBook(t, server, "Learning Go", "Bodner", 1)

	list := listBooks(t, server, "/api/books/?q=go")
	assert.Len(t, list.Books, 2)
	assert.Equal(t, 1, list.TotalPages)

	byAuthor := listBooks(t, server, "/api/books/?q=bloch")
	require.Len(t, byAuthor.Books, 1)
	assert.Equal(t, "Effective Java", byAuthor.Books[0].Title)
}

func TestListBooks_SearchMatchesEscapedText(t *testing.T) {
	server, cleanup := setupTestServer(t, false)
	defer cleanup()

	createTestBook(t, server, "War & Peace", "Tolstoy", 2)

	// The query goes through the same escaping as stored fields, so a raw
	// ampersand still matches.
	list := listBooks(t, server, "/api/books/?q="+"War+%26")
	require.Len(t, list.Books, 1)
	assert.Equal(t, "War &amp; Peace", list.Books[0].Title)
}

func TestListBooks_OutOfRangePage(t *testing.T) {
	server, cleanup := setupTestServer(t, false)
	defer cleanup()

	createTestBook(t, server, "Dune", "Frank Herbert", 5)

	list := listBooks(t, server, "/api/books/?_page=99")
	assert.Empty(t, list.Books)
	assert.Equal(t, 1, list.TotalPages)
}

func TestListBooks_InvalidPagination(t *testing.T) {
	server, cleanup := setupTestServer(t, false)
	defer cleanup()

	for _, target := range []string{
		"/api/books/?_page=abc",
		"/api/books/?_limit=abc",
		"/api/books/?_page=1.5",
	} {
		w := doJSON(server, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.JSONEq(t, `{"error":"Invalid pagination values"}`, w.Body.String(), target)
	}
}

func TestListBooks_CustomLimit(t *testing.T) {
	server, cleanup := setupTestServer(t, false)
	defer cleanup()

	for i := 0; i < 5; i++ {
		createTestBook(t, server, fmt.Sprintf("Book %d", i), "Author", 1)
	}

	list := listBooks(t, server, "/api/books/?_limit=2")
	assert.Len(t, list.Books, 2)
	assert.Equal(t, 3, list.TotalPages)
}
