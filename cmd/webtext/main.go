// ABOUTME: Command line entry point that prints the readable text of a web page
// ABOUTME: Wires the webtext client with default settings and reports failures on stderr

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	webtext "webtext/webtext-lib"
)

// extractFunc runs the extraction chain for one URL
type extractFunc func(ctx context.Context, url string) (string, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, defaultExtract))
}

// run executes the CLI and returns its exit code. Arguments after the first are ignored.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, extract extractFunc) (code int) {
	if len(args) < 1 {
		fmt.Fprintln(stderr, "Error: URL is required")
		return 1
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "Error scraping website: %v\n", r)
			code = 1
		}
	}()

	text, err := extract(ctx, args[0])
	if err != nil {
		fmt.Fprintf(stderr, "Error scraping website: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, text)
	return 0
}

func defaultExtract(ctx context.Context, url string) (string, error) {
	client, err := webtext.NewClient()
	if err != nil {
		return "", err
	}
	return client.Extract(ctx, url), nil
}
