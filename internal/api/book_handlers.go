package api

import (
	"encoding/json/v2"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shelfmarkapp/shelfmark-server/internal/http/response"
	"github.com/shelfmarkapp/shelfmark-server/internal/service"
)

// handleListBooks returns one page of the catalog, filtered by the q query
// parameter when present.
func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	list, err := s.bookService.List(r.Context(), params.Query, params.Page, params.Limit)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.OK(w, list, s.logger)
}

// handleGetBook returns a single book by ID.
func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	book, err := s.bookService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.OK(w, book, s.logger)
}

// handleCreateBook creates a new catalog record from the request body.
func (s *Server) handleCreateBook(w http.ResponseWriter, r *http.Request) {
	var in service.CreateBookInput
	if err := json.UnmarshalRead(r.Body, &in); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	book, err := s.bookService.Create(r.Context(), in)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, book, s.logger)
}

// handleUpdateBook applies a partial update: only fields present in the
// request body are validated and written.
func (s *Server) handleUpdateBook(w http.ResponseWriter, r *http.Request) {
	var in service.UpdateBookInput
	if err := json.UnmarshalRead(r.Body, &in); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	book, err := s.bookService.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.OK(w, book, s.logger)
}

// handleDeleteBook removes a book by ID.
func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	if err := s.bookService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.NoContent(w)
}
