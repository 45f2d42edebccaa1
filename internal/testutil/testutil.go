package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"readinglog/internal/book"
)

// DuneInput is the canonical valid creation payload used across tests.
func DuneInput() map[string]any {
	return map[string]any{
		"title":           "Dune",
		"authorFirstName": "Frank",
		"authorLastName":  "Herbert",
		"genre":           "SciFi",
		"publishedDate":   "1965-01-01",
		"pages":           412,
	}
}

// TestBook is a stored book for handler tests.
var TestBook = book.Book{
	ID:              "64b7f0c2a1b2c3d4e5f60718",
	Title:           "Dune",
	AuthorFirstName: "Frank",
	AuthorLastName:  "Herbert",
	Genre:           "SciFi",
	PublishedDate:   book.NewDate(1965, time.January, 1),
	Pages:           412,
}

// NewRequest creates a new HTTP request for testing. A string body is sent
// verbatim; anything else is JSON encoded.
func NewRequest(method, path string, body any) *http.Request {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		bodyBytes, _ := json.Marshal(b)
		reader = bytes.NewReader(bodyBytes)
	}

	r := httptest.NewRequest(method, path, reader)
	if reader != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Raw    []byte
	Body   map[string]any
}

// RecordHTTPResponse records the HTTP response. Body is only filled for JSON objects.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]any
	if len(bodyBytes) > 0 {
		_ = json.Unmarshal(bodyBytes, &bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Raw:    bodyBytes,
		Body:   bodyMap,
	}
}

// DecodeBook decodes a single book from a recorded response.
func (rr RecordResponse) DecodeBook() (book.Book, error) {
	var b book.Book
	err := json.Unmarshal(rr.Raw, &b)
	return b, err
}

// DecodeBooks decodes a list of books from a recorded response.
func (rr RecordResponse) DecodeBooks() ([]book.Book, error) {
	var books []book.Book
	err := json.Unmarshal(rr.Raw, &books)
	return books, err
}
