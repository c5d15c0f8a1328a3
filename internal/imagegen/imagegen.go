// Package imagegen builds prompt URLs for a remote text-to-image service.
package imagegen

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const promptSuffix = ", African small business, vibrant colors, professional marketing style, high quality"

var ErrEmptyPrompt = errors.New("imagegen: empty prompt")

type Client struct {
	baseURL string
	width   int
	height  int
	client  *http.Client
}

func NewClient(baseURL string, width, height int) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		width:   width,
		height:  height,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Prompt decorates a description with the marketing style suffix.
func Prompt(description string) string {
	return strings.TrimSpace(description) + promptSuffix
}

// ImageURL returns the URL that renders an image for description. The image
// is produced lazily by the service when the URL is fetched.
func (c *Client) ImageURL(_ context.Context, description string, seed int64) (string, error) {
	if strings.TrimSpace(description) == "" {
		return "", ErrEmptyPrompt
	}

	q := url.Values{}
	q.Set("width", fmt.Sprint(c.width))
	q.Set("height", fmt.Sprint(c.height))
	q.Set("seed", fmt.Sprint(seed))

	return fmt.Sprintf("%s/prompt/%s?%s", c.baseURL, url.PathEscape(Prompt(description)), q.Encode()), nil
}

// Check requests the image and reports whether the service answered with
// an image.
func (c *Client) Check(ctx context.Context, imageURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "image/") {
		return fmt.Errorf("unexpected content type %q", ct)
	}

	return nil
}
