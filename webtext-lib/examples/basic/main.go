// ABOUTME: Basic example showing readable text extraction with the webtext library
// ABOUTME: Demonstrates minimal configuration and inspecting which strategy answered

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	webtext "webtext/webtext-lib"
)

func main() {
	url := "https://go.dev/blog/go1.23"
	if len(os.Args) > 1 {
		url = os.Args[1]
	}

	// Example 1: Create a client with default configuration
	client, err := webtext.NewClient(webtext.WithQuietMode())
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	// Example 2: Extract text and see which strategy produced it
	fmt.Println("=== Extracting Page ===")
	result := client.ExtractResult(ctx, url)
	fmt.Printf("Provenance: %s\n", result.Provenance)
	fmt.Printf("Degraded: %v\n", result.Degraded)
	fmt.Printf("Characters: %d\n", len([]rune(result.Text)))

	preview := []rune(result.Text)
	if len(preview) > 300 {
		preview = preview[:300]
	}
	fmt.Printf("Preview:\n%s\n", string(preview))
}
