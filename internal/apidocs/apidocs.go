// Package apidocs serves the generated OpenAPI document and its browser UI.
//
// The document itself is produced at build time by swag from the handler
// annotations (see the go:generate directive in cmd/api) into package docs.
package apidocs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"readinglog/docs"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Prefix is where the UI and the raw document are mounted.
const Prefix = "/api-docs/"

// SetHost points the document's host at the local listener.
func SetHost(port string) {
	docs.SwaggerInfo.Host = "localhost:" + port
}

// Document returns the OpenAPI document as indented JSON.
func Document() ([]byte, error) {
	raw := docs.SwaggerInfo.ReadDoc()

	var out bytes.Buffer
	if err := json.Indent(&out, []byte(raw), "", "  "); err != nil {
		return nil, fmt.Errorf("render api document: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// WriteSnapshot writes the document to path, replacing any existing file.
func WriteSnapshot(path string) error {
	doc, err := Document()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return fmt.Errorf("write api document: %w", err)
	}
	return nil
}

// Register mounts the browser UI under Prefix. The UI loads Prefix+"doc.json".
func Register(mux *http.ServeMux) {
	mux.Handle("GET "+Prefix, httpSwagger.Handler(
		httpSwagger.URL(Prefix+"doc.json"),
		httpSwagger.DocExpansion("list"),
	))
}
