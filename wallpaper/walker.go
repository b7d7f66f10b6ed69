package wallpaper

import (
	"fmt"
	"log"
)

// Walk resolves candidates in rank order and returns the first still
// image. A resolve error stops the walk.
func Walk(cs []Candidate, resolve func(Candidate) (ResolvedImage, error)) (ResolvedImage, Candidate, error) {
	if len(cs) == 0 {
		return ResolvedImage{}, Candidate{}, ErrNoCandidates
	}
	for _, c := range cs {
		img, err := resolve(c)
		if err != nil {
			return ResolvedImage{}, c, err
		}
		if img.Kind == KindStatic {
			return img, c, nil
		}
		// 跳过 gif/视频/已删除
		log.Printf("[info Walk] skip candidate %d (%s)\n%s\n", c.Rank, img.Kind, c.URL)
	}
	return ResolvedImage{}, Candidate{}, fmt.Errorf("%d candidates tried: %w", len(cs), ErrExhausted)
}
