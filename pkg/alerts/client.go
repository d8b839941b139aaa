package alerts

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

var baseURL = "https://wsdot.com/ferries/bulletins"

// Client fetches service bulletins from the ferry operator's website.
type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// get fetches the given path off the bulletins site.
func (c *Client) get(path string) (*http.Response, error) {
	url := baseURL
	if path != "" {
		url = fmt.Sprintf("%s/%s", baseURL, path)
	}

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code %d when fetching %s", resp.StatusCode, url)
	}

	return resp, nil
}

// ParseBulletins extracts service advisories from the bulletins page HTML.
func ParseBulletins(r io.Reader) ([]Bulletin, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var bulletins []Bulletin

	doc.Find("div.bulletin").Each(func(i int, sel *goquery.Selection) {
		title := strings.TrimSpace(sel.Find("h3.bulletin-title").Text())
		body := strings.TrimSpace(sel.Find("div.bulletin-body").Text())
		posted := strings.TrimSpace(sel.Find("span.bulletin-date").Text())

		if title == "" && body == "" {
			return
		}

		bulletins = append(bulletins, Bulletin{
			Title:  title,
			Body:   body,
			Posted: posted,
		})
	})

	return bulletins, nil
}

// FetchBulletins downloads and parses the current service bulletins, serving
// an unexpired cached copy when one exists. Advisories are garnish on the
// board, so callers should treat any error here as "show nothing".
func (c *Client) FetchBulletins() ([]Bulletin, error) {
	if cached, ok := readCache(); ok {
		return cached, nil
	}

	resp, err := c.get("")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bulletins, err := ParseBulletins(resp.Body)
	if err != nil {
		return nil, err
	}

	writeCache(bulletins)
	return bulletins, nil
}
