package quotes

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Songmu/go-httpdate"
	"github.com/mmcdole/gofeed"
	"github.com/spf13/viper"
)

// RequestFeed requests the remote quotes feed and parses it with gofeed
// We're using this rather than gofeed.ParseURL to have more control on the request
func (q *Quotes) RequestFeed() ([]string, error) {
	// A remote feed is optional
	url := viper.GetString("QuotesFeed")
	if url == "" {
		return nil, nil
	}

	// Create the request
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(q.ctx)
	req.Header.Set("User-Agent", "MotivationBot/1.0")
	if !q.lastModified.IsZero() {
		req.Header.Set("If-Modified-Since", q.lastModified.Format(time.RFC1123Z))
	}
	if q.etag != "" {
		req.Header.Set("If-None-Match", q.etag)
	}

	// Send the request and read the data
	resp, err := q.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// Status code
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// 304: not modified, so return an empty list
		if resp.StatusCode == http.StatusNotModified {
			q.log.Println("Quotes feed not modified")
			return nil, nil
		}
		return nil, fmt.Errorf("invalid response status code: %d", resp.StatusCode)
	}

	// Get the ETag and Last-Modified headers
	etag := resp.Header.Get("ETag")
	if etag != "" {
		q.etag = etag
	}
	lastModified := resp.Header.Get("Last-Modified")
	if lastModified != "" {
		d, err := httpdate.Str2Time(lastModified, nil)
		if err == nil && !d.IsZero() {
			q.lastModified = d
		}
	}

	// Parse the feed
	fp := gofeed.NewParser()
	feed, err := fp.Parse(resp.Body)
	if err != nil {
		return nil, err
	}

	// The quote is the entry's title; the author, when present, is appended
	res := make([]string, 0, len(feed.Items))
	for _, el := range feed.Items {
		if el == nil {
			continue
		}
		text := CleanQuote(el.Title)
		if text == "" {
			q.log.Printf("Error in feed %s: skipping entry with empty title\n", url)
			continue
		}
		if el.Author != nil && el.Author.Name != "" {
			text += " — " + CleanQuote(el.Author.Name)
		}
		res = append(res, text)
	}

	q.log.Printf("Found %d quotes in the feed\n", len(res))

	return res, nil
}
