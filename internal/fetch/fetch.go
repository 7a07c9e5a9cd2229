// Package fetch downloads package artifacts over HTTP.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Client downloads artifacts into a destination directory.
type Client struct {
	http     *http.Client
	progress bool
}

// New creates a Client. timeout bounds the whole download; zero means no
// limit beyond the caller's context. progress controls the terminal bar.
func New(timeout time.Duration, progress bool) *Client {
	return &Client{
		http:     &http.Client{Timeout: timeout},
		progress: progress,
	}
}

// Fetch downloads rawURL into destDir and returns the path of the
// written file. The filename is the final path segment of the URL.
func (c *Client) Fetch(ctx context.Context, rawURL, destDir string) (string, error) {
	name, err := FileName(rawURL)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("building request for %s: %w", rawURL, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("fetching %s: unexpected status %s", rawURL, resp.Status)
	}

	destPath := filepath.Join(destDir, name)
	out, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return "", err
	}
	defer out.Close()

	var w io.Writer = out
	if c.progress {
		bar := progressbar.NewOptions64(resp.ContentLength,
			progressbar.OptionSetDescription("downloading "+name),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowBytes(true),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
		w = io.MultiWriter(out, bar)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return "", fmt.Errorf("writing %s: %w", destPath, err)
	}

	return destPath, nil
}

// FileName derives the artifact filename from the final path segment of
// a URL, ignoring any query string.
func FileName(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", rawURL, err)
	}

	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return "", fmt.Errorf("url %q has no file name", rawURL)
	}
	return name, nil
}
