package book

import (
	"errors"
	"net/http"

	"readinglog/internal/httpx"

	"go.uber.org/zap"
)

const notFoundMessage = "Book not found"

type HTTPHandler struct {
	service *Service
	logger  *zap.Logger
}

func NewHTTPHandler(service *Service, logger *zap.Logger) *HTTPHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPHandler{service: service, logger: logger}
}

// Register mounts the book routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /books", h.List)
	mux.HandleFunc("POST /books", h.Create)
	mux.HandleFunc("GET /books/{id}", h.Get)
	mux.HandleFunc("PUT /books/{id}", h.Update)
	mux.HandleFunc("DELETE /books/{id}", h.Delete)
}

// List handles GET /books
//
// @Summary Get all books
// @Description Returns every book in the reading log
// @Tags Books
// @Produce json
// @Success 200 {array} Book "Returns all books"
// @Failure 500 {object} httpx.MessageResponse
// @Router /books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, books)
}

// Get handles GET /books/{id}
//
// @Summary Get a book by ID
// @Tags Books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} Book "Book found"
// @Failure 404 {object} httpx.MessageResponse "Book not found"
// @Failure 500 {object} httpx.MessageResponse
// @Router /books/{id} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, b)
}

// Create handles POST /books
//
// @Summary Add a new book
// @Tags Books
// @Accept json
// @Produce json
// @Param book body CreateInput true "Book to add"
// @Success 201 {object} Book "Book added successfully"
// @Failure 400 {object} httpx.MessageResponse "All fields are required"
// @Failure 500 {object} httpx.MessageResponse
// @Router /books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in CreateInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.JSONMessage(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if details := httpx.ValidateStruct(in); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "All fields are required", details)
		return
	}

	b, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	h.logger.Info("book created", zap.String("book_id", b.ID), zap.String("request_id", httpx.RequestIDFrom(r)))
	httpx.JSONSuccessCreated(w, b)
}

// Update handles PUT /books/{id}
//
// @Summary Update a book by ID
// @Description Replaces only the provided fields, such as readStatus
// @Tags Books
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Param book body UpdateInput true "Fields to replace"
// @Success 200 {object} Book "Book updated successfully"
// @Failure 400 {object} httpx.MessageResponse
// @Failure 404 {object} httpx.MessageResponse "Book not found"
// @Failure 500 {object} httpx.MessageResponse
// @Router /books/{id} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in UpdateInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.JSONMessage(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if details := httpx.ValidateStruct(in); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid field values", details)
		return
	}

	b, err := h.service.Update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, b)
}

// Delete handles DELETE /books/{id}
//
// @Summary Delete a book by ID
// @Tags Books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} httpx.MessageResponse "Book deleted successfully"
// @Failure 404 {object} httpx.MessageResponse "Book not found"
// @Failure 500 {object} httpx.MessageResponse
// @Router /books/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.storeError(w, r, err)
		return
	}

	h.logger.Info("book deleted", zap.String("book_id", r.PathValue("id")), zap.String("request_id", httpx.RequestIDFrom(r)))
	httpx.JSONMessage(w, http.StatusOK, "Book successfully deleted")
}

func (h *HTTPHandler) storeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrNotFound) {
		httpx.JSONMessage(w, http.StatusNotFound, notFoundMessage)
		return
	}
	h.internalError(w, r, err)
}

// internalError exposes the underlying message to the caller.
func (h *HTTPHandler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("book store call failed",
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("request_id", httpx.RequestIDFrom(r)),
	)
	httpx.JSONMessage(w, http.StatusInternalServerError, err.Error())
}
