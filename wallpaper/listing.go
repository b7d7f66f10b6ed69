package wallpaper

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	jsoniter "github.com/json-iterator/go"
)

// FeedURL is the ranked listing the wallpaper is taken from.
const FeedURL = "https://old.reddit.com/r/aww/top/"

// maxListing bounds how much of a listing page is read.
const maxListing = 10 << 20

var titleLinks = cascadia.MustCompile("a.title.may-blank")

type listingTemp struct {
	Data struct {
		Children []struct {
			Data struct {
				URL string `json:"url"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// redditTop fetches the top listing and returns its post links.
type redditTop struct {
	Client *http.Client
	URL    string
}

func (r *redditTop) GetCandidates() ([]Candidate, error) {
	log.Println("[start GetCandidates] url \n", r.URL)
	body, ct, err := FetchListing(r.Client, r.URL)
	if err != nil {
		return nil, err
	}
	base, err := url.Parse(r.URL)
	if err != nil {
		return nil, fmt.Errorf("parse feed url: %w", err)
	}
	cs, err := ExtractCandidates(body, ct, base)
	if err != nil {
		return nil, err
	}
	log.Println("[info] get candidates succ\n", len(cs))
	return cs, nil
}

// FetchListing downloads the listing page and returns its body and
// Content-Type.
func FetchListing(client *http.Client, feedURL string) ([]byte, string, error) {
	res, err := get(client, feedURL)
	if err != nil {
		return nil, "", fmt.Errorf("fetch listing: %w", err)
	}
	defer res.Body.Close()
	b, err := io.ReadAll(io.LimitReader(res.Body, maxListing))
	if err != nil {
		return nil, "", fmt.Errorf("read listing: %w", err)
	}
	return b, res.Header.Get("Content-Type"), nil
}

// ExtractCandidates returns the post links of a listing in rank order.
// Both the HTML page and the JSON form of the listing are understood.
// Relative links are resolved against base.
func ExtractCandidates(body []byte, contentType string, base *url.URL) ([]Candidate, error) {
	var hrefs []string
	if isJSON(body, contentType) {
		tp := &listingTemp{}
		if err := jsoniter.Unmarshal(body, tp); err != nil {
			return nil, fmt.Errorf("decode listing: %w", err)
		}
		for _, c := range tp.Data.Children {
			hrefs = append(hrefs, c.Data.URL)
		}
	} else {
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("parse listing: %w", err)
		}
		doc.FindMatcher(titleLinks).Each(func(_ int, s *goquery.Selection) {
			href, _ := s.Attr("href")
			hrefs = append(hrefs, href)
		})
	}

	cs := make([]Candidate, 0, len(hrefs))
	for _, href := range hrefs {
		href = strings.TrimSpace(href)
		if href == "" {
			continue
		}
		u, err := base.Parse(href)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			continue
		}
		cs = append(cs, Candidate{Rank: len(cs), URL: u.String()})
	}
	return cs, nil
}

func isJSON(body []byte, contentType string) bool {
	if strings.Contains(contentType, "json") {
		return true
	}
	return bytes.HasPrefix(bytes.TrimSpace(body), []byte("{"))
}
