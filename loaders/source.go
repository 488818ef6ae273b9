package loaders

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Source reads recipe markdown for import from local files and HTTP(S) URLs.
type Source struct {
	// Client is used for HTTP(S) requests; if nil, http.DefaultClient is used.
	Client *http.Client
}

// Fetch returns the markdown at location and a recipe name derived from its
// base name without extension.
func (s *Source) Fetch(location string) (markdown, name string, err error) {
	if isURL(location) {
		u, err := url.Parse(location)
		if err != nil {
			return "", "", fmt.Errorf("invalid recipe URL %q: %w", location, err)
		}
		content, err := s.fetchFromWeb(location)
		if err != nil {
			return "", "", err
		}
		return content, baseName(path.Base(u.Path)), nil
	}

	content, err := os.ReadFile(location)
	if err != nil {
		return "", "", fmt.Errorf("failed to read recipe file: %w", err)
	}
	return string(content), baseName(filepath.Base(location)), nil
}

func (s *Source) fetchFromWeb(location string) (content string, err error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Get(location)
	if err != nil {
		return "", fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close response body: %w", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("server returned non-200 status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return string(body), nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func baseName(base string) string {
	name := strings.TrimSuffix(base, path.Ext(base))
	if name == "" || name == "." || name == "/" {
		return "recipe"
	}
	return name
}
