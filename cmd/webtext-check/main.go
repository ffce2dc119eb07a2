// ABOUTME: Manual check harness that scrapes one URL and previews the result
// ABOUTME: Prints a success banner and the first 500 characters of extracted text

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	webtext "webtext/webtext-lib"
)

const previewChars = 500

type extractFunc func(ctx context.Context, url string) (string, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, defaultExtract))
}

// run requires exactly one argument and writes everything to stdout
func run(ctx context.Context, args []string, stdout io.Writer, extract extractFunc) (code int) {
	if len(args) != 1 {
		fmt.Fprintln(stdout, "Usage: webtext-check <url>")
		return 1
	}
	url := args[0]

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stdout, "Error scraping %s: %v\n", url, r)
			code = 1
		}
	}()

	text, err := extract(ctx, url)
	if err != nil {
		fmt.Fprintf(stdout, "Error scraping %s: %v\n", url, err)
		return 1
	}

	fmt.Fprintf(stdout, "Successfully scraped content from %s\n", url)
	fmt.Fprintln(stdout, "First 500 characters of content:")
	fmt.Fprintln(stdout, preview(text))
	return 0
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewChars {
		return text
	}
	return string(runes[:previewChars]) + "..."
}

func defaultExtract(ctx context.Context, url string) (string, error) {
	client, err := webtext.NewClient()
	if err != nil {
		return "", err
	}
	return client.Extract(ctx, url), nil
}
