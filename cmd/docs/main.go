// Command docs writes the OpenAPI document to disk.
package main

import (
	"flag"
	"fmt"
	"log"

	"readinglog/internal/apidocs"
)

func main() {
	var (
		out  = flag.String("out", "swagger.json", "Output path for the OpenAPI document")
		port = flag.String("port", "3000", "Port advertised in the document's host")
	)
	flag.Parse()

	apidocs.SetHost(*port)
	if err := apidocs.WriteSnapshot(*out); err != nil {
		log.Fatalf("Failed to write API document: %v", err)
	}
	fmt.Printf("API document written to %s\n", *out)
}
