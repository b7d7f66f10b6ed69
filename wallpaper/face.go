package wallpaper

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"
)

// Setter 设置桌面壁纸
type Setter interface {
	SetWallpaper(path string) error
}

// Classifier decides what a fetched candidate page hosts. It returns the
// raw image source (possibly relative) when the page holds a still image.
type Classifier interface {
	Classify(doc *goquery.Document, page *url.URL) (src string, kind Kind)
}

type engineface interface {
	GetCandidates() ([]Candidate, error)
}

// Kind is the classification of a candidate page.
type Kind int

const (
	KindAbsent Kind = iota
	KindAnimation
	KindStatic
)

func (k Kind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindAnimation:
		return "animation"
	default:
		return "absent"
	}
}

// Candidate is a ranked outbound link taken from the listing.
type Candidate struct {
	Rank int
	URL  string
}

// ResolvedImage is the result of resolving one candidate.
type ResolvedImage struct {
	URL  string
	Kind Kind
}
