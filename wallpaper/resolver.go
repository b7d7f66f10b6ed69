package wallpaper

import (
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

var images = cascadia.MustCompile("img")

// animated path suffixes used by image hosts for gifs and clips
var animatedExt = map[string]bool{
	".gif":  true,
	".gifv": true,
	".mp4":  true,
	".webm": true,
}

// PlaceholderClassifier takes the first embedded image of a page. Pages
// without images, or whose first image is one of the host's generic icons,
// are not still images.
type PlaceholderClassifier struct {
	Markers []string
}

func (p *PlaceholderClassifier) Classify(doc *goquery.Document, _ *url.URL) (string, Kind) {
	first := doc.FindMatcher(images).First()
	if first.Length() == 0 {
		return "", KindAbsent
	}
	src, _ := first.Attr("src")
	src = strings.TrimSpace(src)
	if src == "" {
		return "", KindAbsent
	}
	low := strings.ToLower(src)
	for _, m := range p.Markers {
		if m != "" && strings.Contains(low, strings.ToLower(m)) {
			return src, KindAnimation
		}
	}
	return src, KindStatic
}

// Resolver turns a candidate link into a direct image URL.
type Resolver struct {
	Client     *http.Client
	Classifier Classifier
}

// Resolve fetches the candidate page. A page that does not host a still
// image is reported through the Kind of the result, not as an error;
// errors are network or parse failures.
func (r *Resolver) Resolve(c Candidate) (ResolvedImage, error) {
	res, err := get(r.Client, c.URL)
	if err != nil {
		return ResolvedImage{}, fmt.Errorf("fetch candidate %d: %w", c.Rank, err)
	}
	defer res.Body.Close()
	page := res.Request.URL

	mt, _, _ := mime.ParseMediaType(res.Header.Get("Content-Type"))
	switch {
	case mt == "image/gif" || strings.HasPrefix(mt, "video/"):
		return ResolvedImage{Kind: KindAnimation}, nil
	case strings.HasPrefix(mt, "image/"):
		return ResolvedImage{URL: page.String(), Kind: KindStatic}, nil
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(res.Body, maxListing))
	if err != nil {
		return ResolvedImage{}, fmt.Errorf("parse candidate %d: %w", c.Rank, err)
	}
	src, kind := r.Classifier.Classify(doc, page)
	if kind != KindStatic {
		return ResolvedImage{Kind: kind}, nil
	}

	u, err := page.Parse(src)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		log.Println("[info Resolve] unusable image src \n", src)
		return ResolvedImage{Kind: KindAbsent}, nil
	}
	if animatedExt[strings.ToLower(path.Ext(u.Path))] {
		return ResolvedImage{Kind: KindAnimation}, nil
	}
	return ResolvedImage{URL: u.String(), Kind: KindStatic}, nil
}
